package gxgl

import "github.com/go-gl/mathgl/mgl32"

// MaxMatrixStackDepth is the number of entries in each matrix stack.
const MaxMatrixStackDepth = 16

// matrixStack is a bounded stack of 4×4 matrices. Entry 0 always exists,
// so the depth stays in [0, MaxMatrixStackDepth-1].
type matrixStack struct {
	entries [MaxMatrixStackDepth]mgl32.Mat4
	depth   int
}

// reset empties the stack and loads identity into its only entry.
func (s *matrixStack) reset() {
	s.entries = [MaxMatrixStackDepth]mgl32.Mat4{}
	s.entries[0] = mgl32.Ident4()
	s.depth = 0
}

func (s *matrixStack) top() mgl32.Mat4 { return s.entries[s.depth] }

func (s *matrixStack) setTop(m mgl32.Mat4) { s.entries[s.depth] = m }

// push duplicates the top entry. It reports false when the stack is full.
func (s *matrixStack) push() bool {
	if s.depth+1 >= MaxMatrixStackDepth {
		return false
	}
	s.entries[s.depth+1] = s.entries[s.depth]
	s.depth++
	return true
}

// pop discards the top entry. It reports false at depth zero.
func (s *matrixStack) pop() bool {
	if s.depth == 0 {
		return false
	}
	s.depth--
	return true
}
