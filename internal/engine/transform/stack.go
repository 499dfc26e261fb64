// Package transform composes model matrices for static scene geometry.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Stack is an ordered list of matrices composed into one model transform.
// Result is m[0] * m[1] * ... * m[n-1], so the last pushed matrix is the
// first one applied to a vertex.
type Stack struct {
	entries []mgl32.Mat4
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Push appends m.
func (s *Stack) Push(m mgl32.Mat4) {
	s.entries = append(s.entries, m)
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Result returns the composition of all entries, or identity when empty.
func (s *Stack) Result() mgl32.Mat4 {
	out := mgl32.Ident4()
	for _, m := range s.entries {
		out = out.Mul4(m)
	}
	return out
}
