package gxgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gxgl/gx"
)

// Matrix stacks are kept in GL form (column-major mgl32.Mat4) and converted
// to the row-major hardware layout on upload. Every mutation of a stack top
// is uploaded immediately.

const (
	stackModelView = iota
	stackProjection
	stackTexture
	stackCount
)

func stackIndex(mode MatrixMode) (int, bool) {
	switch mode {
	case ModelView:
		return stackModelView, true
	case Projection:
		return stackProjection, true
	case Texture:
		return stackTexture, true
	}
	return 0, false
}

// hwMtx44 converts m to the hardware 4×4 layout.
func hwMtx44(m mgl32.Mat4) gx.Mtx44 {
	var out gx.Mtx44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = m.At(row, col)
		}
	}
	return out
}

// hwMtx converts the affine part of m to the hardware 3×4 layout.
func hwMtx(m mgl32.Mat4) gx.Mtx {
	return hwMtx44(m).Affine()
}

// normalMatrix returns the inverse transpose of the upper 3×3 of m. A
// singular input yields the zero matrix.
func normalMatrix(m mgl32.Mat4) mgl32.Mat4 {
	return m.Mat3().Inv().Transpose().Mat4()
}

// projectionKind classifies m by its bottom row.
func projectionKind(m mgl32.Mat4) gx.ProjectionType {
	if m.At(3, 0) == 0 && m.At(3, 1) == 0 && m.At(3, 2) == 0 && m.At(3, 3) == 1 {
		return gx.Orthographic
	}
	return gx.Perspective
}

// orthoMatrix builds an orthographic projection mapping depth to [-1, 0]
// in clip space, the convention of the hardware clipper.
func orthoMatrix(l, r, b, t, n, f float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -1 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -f / (f - n), 1,
	}
}

// frustumMatrix builds a perspective projection in the same depth
// convention as orthoMatrix.
func frustumMatrix(l, r, b, t, n, f float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 * n / (r - l), 0, 0, 0,
		0, 2 * n / (t - b), 0, 0,
		(r + l) / (r - l), (t + b) / (t - b), -n / (f - n), -1,
		0, 0, -(f * n) / (f - n), 0,
	}
}

// MatrixMode selects the stack that subsequent matrix calls modify.
func (c *Context) MatrixMode(mode MatrixMode) error {
	if _, ok := stackIndex(mode); !ok {
		return c.fail("MatrixMode", ErrInvalidEnum, "mode %v", mode)
	}
	c.matrixMode = mode
	return nil
}

// PushMatrix duplicates the top of the active stack.
func (c *Context) PushMatrix() error {
	s := c.activeStack()
	if !s.push() {
		return c.fail("PushMatrix", ErrStackOverflow, "%v stack holds %d entries", c.matrixMode, MaxMatrixStackDepth)
	}
	return nil
}

// PopMatrix discards the top of the active stack and uploads the entry
// below it.
func (c *Context) PopMatrix() error {
	s := c.activeStack()
	if !s.pop() {
		return c.fail("PopMatrix", ErrStackUnderflow, "%v stack is at depth 0", c.matrixMode)
	}
	c.uploadMatrix(c.matrixMode)
	return nil
}

// LoadIdentity replaces the top of the active stack with identity.
func (c *Context) LoadIdentity() error {
	c.replaceTop(mgl32.Ident4())
	return nil
}

// LoadMatrixf replaces the top of the active stack with m, given in
// column-major order.
func (c *Context) LoadMatrixf(m [16]float32) error {
	c.replaceTop(mgl32.Mat4(m))
	return nil
}

// MultMatrixf post-multiplies the top of the active stack by m, given in
// column-major order.
func (c *Context) MultMatrixf(m [16]float32) error {
	c.multTop(mgl32.Mat4(m))
	return nil
}

// Translatef post-multiplies the top of the active stack by a translation.
func (c *Context) Translatef(x, y, z float32) error {
	c.multTop(mgl32.Translate3D(x, y, z))
	return nil
}

// Scalef post-multiplies the top of the active stack by a scale.
func (c *Context) Scalef(x, y, z float32) error {
	c.multTop(mgl32.Scale3D(x, y, z))
	return nil
}

// Rotatef post-multiplies the top of the active stack by a rotation of
// angle degrees about the axis (x, y, z). The axis is normalized first.
func (c *Context) Rotatef(angle, x, y, z float32) error {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return c.fail("Rotatef", ErrInvalidValue, "zero rotation axis")
	}
	c.multTop(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize()))
	return nil
}

// Ortho post-multiplies the top of the active stack by an orthographic
// projection.
func (c *Context) Ortho(left, right, bottom, top, near, far float32) error {
	if left == right || bottom == top || near == far {
		return c.fail("Ortho", ErrInvalidValue, "degenerate volume")
	}
	c.multTop(orthoMatrix(left, right, bottom, top, near, far))
	return nil
}

// Frustum post-multiplies the top of the active stack by a perspective
// projection.
func (c *Context) Frustum(left, right, bottom, top, near, far float32) error {
	if near <= 0 || far <= 0 {
		return c.fail("Frustum", ErrInvalidValue, "near %v and far %v must be positive", near, far)
	}
	if left == right || bottom == top || near == far {
		return c.fail("Frustum", ErrInvalidValue, "degenerate volume")
	}
	c.multTop(frustumMatrix(left, right, bottom, top, near, far))
	return nil
}

// CurrentMatrix returns the top of the stack selected by mode in
// column-major order.
func (c *Context) CurrentMatrix(mode MatrixMode) ([16]float32, error) {
	i, ok := stackIndex(mode)
	if !ok {
		return [16]float32{}, c.fail("CurrentMatrix", ErrInvalidEnum, "mode %v", mode)
	}
	return [16]float32(c.stacks[i].top()), nil
}

// MatrixDepth returns the depth of the stack selected by mode.
func (c *Context) MatrixDepth(mode MatrixMode) (int, error) {
	i, ok := stackIndex(mode)
	if !ok {
		return 0, c.fail("MatrixDepth", ErrInvalidEnum, "mode %v", mode)
	}
	return c.stacks[i].depth, nil
}

func (c *Context) activeStack() *matrixStack {
	i, _ := stackIndex(c.matrixMode)
	return &c.stacks[i]
}

func (c *Context) replaceTop(m mgl32.Mat4) {
	c.activeStack().setTop(m)
	c.uploadMatrix(c.matrixMode)
}

func (c *Context) multTop(m mgl32.Mat4) {
	s := c.activeStack()
	s.setTop(s.top().Mul4(m))
	c.uploadMatrix(c.matrixMode)
}

// uploadMatrix loads the top of the stack for mode into its hardware slot.
func (c *Context) uploadMatrix(mode MatrixMode) {
	i, _ := stackIndex(mode)
	m := c.stacks[i].top()
	switch i {
	case stackModelView:
		c.dev.LoadPosMtxImm(hwMtx(m), gx.PNMtx0)
		c.dev.LoadNrmMtxImm(hwMtx(normalMatrix(m)), gx.PNMtx0)
	case stackProjection:
		c.loadProjection(m)
	case stackTexture:
		c.dev.LoadTexMtxImm(hwMtx(m), gx.TexMtx0, gx.Mtx2x4)
	}
}

func (c *Context) loadProjection(m mgl32.Mat4) {
	c.dev.LoadProjectionMtx(hwMtx44(m), projectionKind(m))
}
