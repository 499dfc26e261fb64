package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

var start = mgl32.Vec3{0, 5, 50}

func newTestCamera() *FlyCamera {
	return NewFlyCamera(start, NewProjection(0.45, 0.1, 1000, 1600, 900))
}

func requireConsistent(t *testing.T, c *FlyCamera) {
	t.Helper()
	f := c.Forward()
	assert.InDelta(t, 1, f.Len(), eps, "forward must be unit length")
	assert.InDelta(t, 1, f.Dot(c.Orientation().Rotate(mgl32.Vec3{0, 0, -1})), eps)
	assert.InDelta(t, 1, c.Orientation().Len(), eps, "orientation must stay normalized")
}

func TestNewCameraIsRefreshed(t *testing.T) {
	c := newTestCamera()

	assert.Equal(t, start, c.Position())
	assert.True(t, c.Forward().ApproxEqual(mgl32.Vec3{0, 0, -1}))

	// The eye maps to the view-space origin.
	eye := mgl32.TransformCoordinate(start, c.View())
	assert.True(t, eye.ApproxEqualThreshold(mgl32.Vec3{}, eps), "got %v", eye)
}

func TestMoveFollowsLocalAxes(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy, dz float32
		want       mgl32.Vec3
	}{
		{"forward", 0, 0, 1, mgl32.Vec3{0, 5, 49.75}},
		{"back", 0, 0, -1, mgl32.Vec3{0, 5, 50.25}},
		{"right", 1, 0, 0, mgl32.Vec3{0.25, 5, 50}},
		{"left", -1, 0, 0, mgl32.Vec3{-0.25, 5, 50}},
		{"up", 0, 1, 0, mgl32.Vec3{0, 5.25, 50}},
		{"down", 0, -1, 0, mgl32.Vec3{0, 4.75, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			c.Move(tt.dx, tt.dy, tt.dz)
			assert.True(t, c.Position().ApproxEqualThreshold(tt.want, eps), "got %v", c.Position())
			requireConsistent(t, c)
		})
	}
}

func TestMoveAfterYawUsesRotatedForward(t *testing.T) {
	c := newTestCamera()
	c.TurnStep = float32(math.Pi / 2)
	c.Rotate(0, 1, 0)

	// A quarter yaw to the left faces -X.
	require.True(t, c.Forward().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, eps), "got %v", c.Forward())

	c.Move(0, 0, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{-0.25, 5, 50}, eps), "got %v", c.Position())
}

func TestRotateKeepsForwardConsistent(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 500; i++ {
		c.Rotate(1, 0, 0)
		c.Rotate(0, -1, 0)
		c.Rotate(0, 0, 1)
		requireConsistent(t, c)
	}
}

func TestPitchUpRaisesForward(t *testing.T) {
	c := newTestCamera()
	c.Rotate(1, 0, 0)
	assert.Greater(t, c.Forward().Y(), float32(0))
}

func TestRollKeepsForward(t *testing.T) {
	c := newTestCamera()
	c.Rotate(0, 0, 1)
	assert.True(t, c.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps))
	assert.NotEqual(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestResetRestoresStartExactly(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 37; i++ {
		c.Move(1, -1, 1)
		c.Rotate(1, 1, -1)
	}
	require.NotEqual(t, start, c.Position())

	c.Reset()

	assert.Equal(t, start, c.Position())
	assert.Equal(t, mgl32.QuatIdent(), c.Orientation())
	assert.Equal(t, newTestCamera().StackResult(), c.StackResult())
	requireConsistent(t, c)
}

func TestStackResultIsProjectionTimesView(t *testing.T) {
	lens := NewProjection(0.45, 0.1, 1000, 1600, 900)
	c := NewFlyCamera(start, lens)
	c.Move(0, 0, 3)

	want := lens.Matrix().Mul4(c.View())
	assert.True(t, c.StackResult().ApproxEqual(want))
}

func TestRefreshPicksUpResizedLens(t *testing.T) {
	lens := NewProjection(0.45, 0.1, 1000, 1600, 900)
	c := NewFlyCamera(start, lens)
	before := c.StackResult()

	require.True(t, lens.Resize(800, 600))
	assert.Equal(t, before, c.StackResult(), "derived state only changes on refresh")

	c.Refresh()
	assert.True(t, c.StackResult().ApproxEqual(lens.Matrix().Mul4(c.View())))
	assert.NotEqual(t, before, c.StackResult())
}
