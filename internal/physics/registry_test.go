package physics

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallingBox() State {
	return State{
		Position: mgl32.Vec3{0, 10, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Mass:     1,
		Live:     true,
	}
}

func groundBox() State {
	return State{
		Scale: mgl32.Vec3{10, 0.5, 10},
		Mass:  1,
	}
}

func newScene() *Registry {
	r := NewRegistry(DefaultSettings())
	r.AddPermanent(fallingBox())
	r.AddPermanent(groundBox())
	return r
}

func spawnN(r *Registry, n int) {
	for i := 0; i < n; i++ {
		r.Add(State{
			Position: mgl32.Vec3{float32(i), 20, 0},
			Scale:    mgl32.Vec3{0.5, 0.5, 0.5},
			Mass:     1,
			Live:     true,
		})
	}
}

func TestAddAppendsSpawned(t *testing.T) {
	r := newScene()
	idx := r.Add(State{Mass: 1, Live: true})

	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.At(2).Spawned)
	assert.False(t, r.At(0).Spawned)
	assert.False(t, r.At(1).Spawned)
	assert.Equal(t, mgl32.QuatIdent(), r.At(2).Rotation, "zero rotation defaults to identity")
}

func TestClearSpawnedKeepsPermanentBodies(t *testing.T) {
	for _, n := range []int{0, 1, 1000} {
		t.Run(fmt.Sprintf("%d spawned", n), func(t *testing.T) {
			r := newScene()
			first, ground := r.At(0), r.At(1)
			spawnN(r, n)

			r.ClearSpawned()

			require.Equal(t, 2, r.Len())
			assert.Same(t, first, r.At(0))
			assert.Same(t, ground, r.At(1))
			assert.Equal(t, 2, r.Permanent())
		})
	}
}

func TestRemoveRange(t *testing.T) {
	r := newScene()
	spawnN(r, 5) // indices 2..6, X = 0..4

	r.RemoveRange(3, 5)

	require.Equal(t, 5, r.Len())
	var xs []float32
	r.ForEach(func(i int, b *Body) {
		if b.Spawned {
			xs = append(xs, b.Position.X())
		}
	})
	assert.Equal(t, []float32{0, 3, 4}, xs)
}

func TestRemoveRangeProtectsPermanentAndClamps(t *testing.T) {
	r := newScene()
	spawnN(r, 3)

	r.RemoveRange(-10, 100)
	assert.Equal(t, 2, r.Len())

	r.RemoveRange(5, 1)
	assert.Equal(t, 2, r.Len())
}

func TestResetAllRestoresPermanentState(t *testing.T) {
	r := newScene()
	spawnN(r, 4)
	for i := 0; i < 120; i++ {
		r.Step()
	}
	require.NotEqual(t, fallingBox().Position, r.At(0).Position)

	r.ResetAll()

	require.Equal(t, 2, r.Len())
	assert.Equal(t, fallingBox(), r.At(0).State)
	assert.Equal(t, r.At(1).Initial(), r.At(1).State)
}

func TestStepSkipsNonLiveBodies(t *testing.T) {
	r := newScene()
	before := r.At(1).State

	r.Step()

	assert.Equal(t, before, r.At(1).State)
	assert.Less(t, r.At(0).Position.Y(), float32(10))
	assert.Less(t, r.At(0).LinMomentum.Y(), float32(0))
}

func TestBoxComesToRestOnGround(t *testing.T) {
	r := newScene()
	for i := 0; i < 60*10; i++ {
		r.Step()
	}

	// Ground top is 0.5, the unit box rests with its centre one half extent above.
	assert.InDelta(t, 1.5, r.At(0).Position.Y(), 0.05)
}

func TestBoxOffTheEdgeKeepsFalling(t *testing.T) {
	r := newScene()
	r.Add(State{Position: mgl32.Vec3{50, 5, 0}, Scale: mgl32.Vec3{0.5, 0.5, 0.5}, Mass: 1, Live: true})
	for i := 0; i < 120; i++ {
		r.Step()
	}

	assert.Less(t, r.At(2).Position.Y(), float32(-5))
}

func TestSpinKeepsRotationNormalized(t *testing.T) {
	r := newScene()
	r.At(0).AngMomentum = mgl32.Vec3{0.3, 1, 0}
	for i := 0; i < 200; i++ {
		r.Step()
	}

	assert.InDelta(t, 1, r.At(0).Rotation.Len(), 1e-4)
	assert.NotEqual(t, mgl32.QuatIdent(), r.At(0).Rotation)
}

func TestVelocity(t *testing.T) {
	s := State{Mass: 2, LinMomentum: mgl32.Vec3{2, 4, 6}}
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Velocity())
	assert.Equal(t, mgl32.Vec3{}, State{}.Velocity())
}

func TestModelAppliesScaleThenTranslation(t *testing.T) {
	s := State{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{2, 2, 2}}
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, s.Model())
	assert.True(t, p.ApproxEqual(mgl32.Vec3{3, 4, 5}), "got %v", p)
}

func TestSetSettingsKeepsTickRateWhenUnset(t *testing.T) {
	r := newScene()
	r.SetSettings(Settings{Gravity: 0, TickRate: 0})

	assert.Equal(t, 60, r.Settings().TickRate)

	r.Step()
	assert.Equal(t, fallingBox().Position, r.At(0).Position, "no gravity, no motion")
}
