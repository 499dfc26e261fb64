// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/SignalWalker/PhysCubes/internal/engine/mesh"
	"github.com/SignalWalker/PhysCubes/internal/engine/shader"
	"github.com/SignalWalker/PhysCubes/internal/logger"
)

// GroundSize is the edge length of the ground plane quad.
const GroundSize = 20

// Renderer draws textured boxes and the ground plane with one program.
type Renderer struct {
	program *shader.Program

	cube   vertexArray
	ground vertexArray
}

type vertexArray struct {
	vao, vbo uint32
	count    int32
}

// New loads GL function pointers and builds the shared program and meshes.
// The GL context must already be current.
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("GL Version",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearDepth(1)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	program, err := shader.NewProgram(shader.TexturedVertex, shader.TexturedFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{program: program}
	r.cube = upload(mesh.Cube())
	r.ground = upload(mesh.Plane(GroundSize))

	program.Use()
	program.SetInt("tex", 0)

	logger.Debug("renderer ready",
		zap.Uint32("program", program.ID()),
		zap.Int32("cubeVertices", r.cube.count),
		zap.Int32("groundVertices", r.ground.count),
	)
	return r, nil
}

func upload(m mesh.Mesh) vertexArray {
	va := vertexArray{count: int32(m.Count())}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return va
}

func (va *vertexArray) release() {
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
	}
	if va.vbo != 0 {
		gl.DeleteBuffers(1, &va.vbo)
	}
	*va = vertexArray{}
}

// Close releases the program and meshes.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.cube.release()
	r.ground.release()
	if r.program != nil {
		r.program.Delete()
	}
}

// SetViewport maps clip space onto the given window rectangle.
func (r *Renderer) SetViewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear clears colour and depth.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawBody draws the unit cube with the given clip-space transform.
func (r *Renderer) DrawBody(transform mgl32.Mat4, texture uint32) {
	r.draw(&r.cube, transform, texture)
}

// DrawGround draws the ground plane with the given clip-space transform.
func (r *Renderer) DrawGround(transform mgl32.Mat4, texture uint32) {
	r.draw(&r.ground, transform, texture)
}

func (r *Renderer) draw(va *vertexArray, transform mgl32.Mat4, texture uint32) {
	r.program.Use()
	r.program.SetMat4("transform_mat", transform)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.BindVertexArray(va.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, va.count)
	gl.BindVertexArray(0)
}

// CheckError drains the GL error queue, logging each entry against stage.
func (r *Renderer) CheckError(stage string) {
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		logger.Warn("GL error",
			zap.String("stage", stage),
			zap.String("error", errorName(code)),
			zap.Uint32("code", code),
		)
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("0x%04X", code)
}
