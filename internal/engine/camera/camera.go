// Package camera provides the free-flying view camera and its projection.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Local reference axes. The camera looks down -Z when unrotated.
var (
	axisRight   = mgl32.Vec3{1, 0, 0}
	axisUp      = mgl32.Vec3{0, 1, 0}
	axisForward = mgl32.Vec3{0, 0, -1}
	axisBack    = mgl32.Vec3{0, 0, 1}
)

// FlyCamera is a six-degree-of-freedom camera moved in fixed per-frame steps.
// Forward, View and StackResult are derived state, rebuilt by Refresh after
// every mutation.
type FlyCamera struct {
	// Step sizes per call: world units for Move, radians for Rotate.
	MoveStep float32
	TurnStep float32

	startPosition    mgl32.Vec3
	startOrientation mgl32.Quat

	position    mgl32.Vec3
	orientation mgl32.Quat

	lens        *Projection
	forward     mgl32.Vec3
	view        mgl32.Mat4
	stackResult mgl32.Mat4
}

// NewFlyCamera creates a camera at position with identity orientation.
// The camera starts refreshed.
func NewFlyCamera(position mgl32.Vec3, lens *Projection) *FlyCamera {
	c := &FlyCamera{
		MoveStep:         0.25,
		TurnStep:         0.02,
		startPosition:    position,
		startOrientation: mgl32.QuatIdent(),
		lens:             lens,
	}
	c.Reset()
	return c
}

// Move translates along the local axes: dx right, dy up, dz forward.
func (c *FlyCamera) Move(dx, dy, dz float32) {
	delta := c.Right().Mul(dx).
		Add(c.Up().Mul(dy)).
		Add(c.forward.Mul(dz))
	c.position = c.position.Add(delta.Mul(c.MoveStep))
	c.Refresh()
}

// Rotate turns about the local axes: dx pitch, dy yaw, dz roll.
func (c *FlyCamera) Rotate(dx, dy, dz float32) {
	step := mgl32.QuatRotate(dx*c.TurnStep, axisRight).
		Mul(mgl32.QuatRotate(dy*c.TurnStep, axisUp)).
		Mul(mgl32.QuatRotate(dz*c.TurnStep, axisBack))
	c.orientation = c.orientation.Mul(step).Normalize()
	c.Refresh()
}

// Reset restores the start position and orientation.
func (c *FlyCamera) Reset() {
	c.position = c.startPosition
	c.orientation = c.startOrientation
	c.Refresh()
}

// Refresh rebuilds forward, the view matrix and projection * view.
func (c *FlyCamera) Refresh() {
	c.forward = c.orientation.Rotate(axisForward).Normalize()
	c.view = c.orientation.Conjugate().Mat4().Mul4(
		mgl32.Translate3D(-c.position.X(), -c.position.Y(), -c.position.Z()),
	)
	c.stackResult = c.lens.Matrix().Mul4(c.view)
}

// Position returns the eye position.
func (c *FlyCamera) Position() mgl32.Vec3 { return c.position }

// Orientation returns the normalized orientation.
func (c *FlyCamera) Orientation() mgl32.Quat { return c.orientation }

// Forward returns the unit view direction as of the last Refresh.
func (c *FlyCamera) Forward() mgl32.Vec3 { return c.forward }

// Right returns the local +X axis in world space.
func (c *FlyCamera) Right() mgl32.Vec3 { return c.orientation.Rotate(axisRight) }

// Up returns the local +Y axis in world space.
func (c *FlyCamera) Up() mgl32.Vec3 { return c.orientation.Rotate(axisUp) }

// View returns the world-to-eye matrix.
func (c *FlyCamera) View() mgl32.Mat4 { return c.view }

// StackResult returns projection * view, shared by every drawable this frame.
func (c *FlyCamera) StackResult() mgl32.Mat4 { return c.stackResult }
