package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection is a perspective lens whose aspect ratio follows the viewport.
type Projection struct {
	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32

	matrix mgl32.Mat4
}

// NewProjection creates a lens for a width x height viewport.
func NewProjection(fov, near, far float32, width, height int) *Projection {
	p := &Projection{FOV: fov, Near: near, Far: far, Aspect: 1}
	if !p.Resize(width, height) {
		p.rebuild()
	}
	return p
}

// Resize sets Aspect to width/height and rebuilds the matrix. Degenerate
// sizes (a minimized window) are rejected and leave the lens unchanged.
func (p *Projection) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	p.Aspect = float32(width) / float32(height)
	p.rebuild()
	return true
}

// Matrix returns the projection matrix.
func (p *Projection) Matrix() mgl32.Mat4 {
	return p.matrix
}

func (p *Projection) rebuild() {
	p.matrix = mgl32.Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}
