// Package physics owns the rigid boxes of the sandbox and advances them one
// fixed tick at a time.
package physics

import "github.com/go-gl/mathgl/mgl32"

// State is the full physical state of one box.
type State struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3 // half extents of the unit cube mesh
	Mass        float32
	LinMomentum mgl32.Vec3
	AngMomentum mgl32.Vec3
	Live        bool // integrated by Step when true
}

// Velocity returns linear momentum divided by mass.
func (s State) Velocity() mgl32.Vec3 {
	if s.Mass == 0 {
		return mgl32.Vec3{}
	}
	return s.LinMomentum.Mul(1 / s.Mass)
}

// Model returns the model matrix T * R * S.
func (s State) Model() mgl32.Mat4 {
	return mgl32.Translate3D(s.Position.Elem()).
		Mul4(s.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s.Scale.Elem()))
}

// inertia approximates the box as a solid cuboid with half extents Scale,
// collapsed to a scalar so angular velocity is L / I.
func (s State) inertia() float32 {
	w, h, d := 2*s.Scale.X(), 2*s.Scale.Y(), 2*s.Scale.Z()
	return s.Mass * (w*w + h*h + d*d) / 18
}

// Body is a registry entry.
type Body struct {
	State
	// Spawned marks bodies created at runtime. Permanent bodies are never
	// removed and return to their initial state on reset.
	Spawned bool

	initial State
}

func newBody(s State, spawned bool) *Body {
	if s.Rotation == (mgl32.Quat{}) {
		s.Rotation = mgl32.QuatIdent()
	}
	return &Body{State: s, Spawned: spawned, initial: s}
}

// Initial returns the state the body was created with.
func (b *Body) Initial() State {
	return b.initial
}
