package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Settings are the integrator constants.
type Settings struct {
	Gravity     float32 // m/s^2 along Y
	TickRate    int     // ticks per simulated second
	Restitution float32 // vertical bounce factor on ground contact
	Friction    float32 // fraction of horizontal and angular momentum lost per contact tick
}

// DefaultSettings returns earth gravity at 60 ticks per second.
func DefaultSettings() Settings {
	return Settings{Gravity: -9.81, TickRate: 60, Restitution: 0.4, Friction: 0.05}
}

// Registry is the ordered body collection. Permanent bodies come first and
// keep their indices for the life of the registry.
type Registry struct {
	settings Settings
	bodies   []*Body
	ground   int // index of the static body used for contact, -1 if none
}

// NewRegistry returns an empty registry.
func NewRegistry(settings Settings) *Registry {
	if settings.TickRate <= 0 {
		settings.TickRate = DefaultSettings().TickRate
	}
	return &Registry{settings: settings, ground: -1}
}

// Settings returns the integrator constants.
func (r *Registry) Settings() Settings {
	return r.settings
}

// SetSettings replaces the integrator constants from the next Step on.
// A non-positive tick rate keeps the current one.
func (r *Registry) SetSettings(s Settings) {
	if s.TickRate <= 0 {
		s.TickRate = r.settings.TickRate
	}
	r.settings = s
}

// AddPermanent appends a body that survives ClearSpawned and is restored by
// ResetAll. Permanent bodies must be added before any spawned body.
// The first non-live permanent body becomes the ground.
func (r *Registry) AddPermanent(s State) int {
	r.bodies = append(r.bodies, newBody(s, false))
	idx := len(r.bodies) - 1
	if !s.Live && r.ground < 0 {
		r.ground = idx
	}
	return idx
}

// Add appends a spawned body and returns its index.
func (r *Registry) Add(s State) int {
	r.bodies = append(r.bodies, newBody(s, true))
	return len(r.bodies) - 1
}

// Len returns the number of bodies.
func (r *Registry) Len() int {
	return len(r.bodies)
}

// At returns the body at index i.
func (r *Registry) At(i int) *Body {
	return r.bodies[i]
}

// Permanent returns the number of permanent bodies.
func (r *Registry) Permanent() int {
	n := 0
	for _, b := range r.bodies {
		if !b.Spawned {
			n++
		}
	}
	return n
}

// RemoveRange removes bodies in [from, to). Permanent bodies inside the
// range are kept. Out-of-range bounds are clamped.
func (r *Registry) RemoveRange(from, to int) {
	from = max(from, 0)
	to = min(to, len(r.bodies))
	if from >= to {
		return
	}

	kept := r.bodies[:from]
	for _, b := range r.bodies[from:to] {
		if !b.Spawned {
			kept = append(kept, b)
		}
	}
	kept = append(kept, r.bodies[to:]...)
	clear(r.bodies[len(kept):])
	r.bodies = kept
}

// ClearSpawned removes every spawned body.
func (r *Registry) ClearSpawned() {
	r.RemoveRange(0, len(r.bodies))
}

// ResetAll restores permanent bodies to their initial state and discards
// spawned ones.
func (r *Registry) ResetAll() {
	r.ClearSpawned()
	for _, b := range r.bodies {
		b.State = b.initial
	}
}

// ForEach calls fn for every body in index order.
func (r *Registry) ForEach(fn func(i int, b *Body)) {
	for i, b := range r.bodies {
		fn(i, b)
	}
}

// Step advances every live body by one tick.
func (r *Registry) Step() {
	dt := 1 / float32(r.settings.TickRate)

	var ground *Body
	if r.ground >= 0 {
		ground = r.bodies[r.ground]
	}

	for _, b := range r.bodies {
		if !b.Live {
			continue
		}
		r.integrate(&b.State, dt)
		if ground != nil {
			r.collideGround(&b.State, &ground.State)
		}
	}
}

// integrate is a semi-implicit Euler step: forces first, then positions.
func (r *Registry) integrate(s *State, dt float32) {
	s.LinMomentum = s.LinMomentum.Add(mgl32.Vec3{0, r.settings.Gravity * s.Mass, 0}.Mul(dt))
	s.Position = s.Position.Add(s.Velocity().Mul(dt))

	inertia := s.inertia()
	if inertia == 0 {
		return
	}
	omega := s.AngMomentum.Mul(1 / inertia)
	if omega.Len() == 0 {
		return
	}
	spin := mgl32.Quat{W: 0, V: omega}.Mul(s.Rotation).Scale(dt / 2)
	s.Rotation = s.Rotation.Add(spin).Normalize()
}

// collideGround resolves contact against the top face of the ground box.
// Boxes are treated by their axis-aligned half extents.
func (r *Registry) collideGround(s, ground *State) {
	top := ground.Position.Y() + ground.Scale.Y()
	if abs(s.Position.X()-ground.Position.X()) > ground.Scale.X()+s.Scale.X() ||
		abs(s.Position.Z()-ground.Position.Z()) > ground.Scale.Z()+s.Scale.Z() {
		return
	}

	bottom := s.Position.Y() - s.Scale.Y()
	if bottom >= top || s.LinMomentum.Y() > 0 {
		return
	}
	// Already sunk below the surface: it fell past the edge, keep falling.
	if s.Position.Y() < top {
		return
	}

	s.Position[1] = top + s.Scale.Y()
	keep := 1 - r.settings.Friction
	s.LinMomentum = mgl32.Vec3{
		s.LinMomentum.X() * keep,
		-s.LinMomentum.Y() * r.settings.Restitution,
		s.LinMomentum.Z() * keep,
	}
	s.AngMomentum = s.AngMomentum.Mul(keep)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
