// Package mesh builds the interleaved vertex data the renderer uploads.
package mesh

// Stride is the number of floats per vertex: position xyz, then uv.
const Stride = 5

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Vertices []float32
}

// Count returns the number of vertices.
func (m Mesh) Count() int {
	return len(m.Vertices) / Stride
}

type face struct {
	corners [4][3]float32 // counter-clockwise seen from outside
}

var cubeFaces = [6]face{
	{[4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},     // +z
	{[4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}}, // -z
	{[4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},     // +x
	{[4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}}, // -x
	{[4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},     // +y
	{[4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}}, // -y
}

// Image row 0 is v = 0, so the top of each face samples v = 0.
var quadUV = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cube returns a cube spanning -1..1 on each axis with the whole texture on
// every face. Scaling by a body's half extents gives its world size.
func Cube() Mesh {
	v := make([]float32, 0, 6*6*Stride)
	for _, f := range cubeFaces {
		v = appendQuad(v, f.corners)
	}
	return Mesh{Vertices: v}
}

// Plane returns a size x size quad on y = 0 centred at the origin, wound
// both ways so it survives back-face culling from above and below.
func Plane(size float32) Mesh {
	h := size / 2
	up := [4][3]float32{{-h, 0, h}, {h, 0, h}, {h, 0, -h}, {-h, 0, -h}}
	down := [4][3]float32{up[3], up[2], up[1], up[0]}

	v := make([]float32, 0, 2*6*Stride)
	v = appendQuad(v, up)
	v = appendQuad(v, down)
	return Mesh{Vertices: v}
}

func appendQuad(v []float32, c [4][3]float32) []float32 {
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		v = append(v, c[i][0], c[i][1], c[i][2], quadUV[i][0], quadUV[i][1])
	}
	return v
}
