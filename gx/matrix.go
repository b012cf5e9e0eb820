package gx

// Mtx is a row-major 3×4 affine matrix as loaded into position, normal
// and texture matrix memory. The implicit fourth row is (0, 0, 0, 1).
type Mtx [3][4]float32

// Mtx44 is a row-major 4×4 matrix as loaded into the projection unit.
type Mtx44 [4][4]float32

// Identity44 returns the 4×4 identity matrix.
func Identity44() Mtx44 {
	return Mtx44{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Affine returns the top three rows of m.
func (m Mtx44) Affine() Mtx {
	return Mtx{m[0], m[1], m[2]}
}

// Color is an 8-bit-per-channel RGBA color register value.
type Color struct {
	R, G, B, A uint8
}

// White is the opaque white color.
var White = Color{R: 255, G: 255, B: 255, A: 255}
