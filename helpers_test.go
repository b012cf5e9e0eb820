package gxgl

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/gx/record"
)

// newTestContext returns a reset context on a recorder with an NTSC
// display. The reset commands are dropped so tests see only their own.
func newTestContext(t *testing.T, opts ...ContextOption) (*Context, *record.Recorder) {
	t.Helper()
	rec := record.NewRecorder()
	ctx, err := NewContext(rec, record.NewDisplay(gx.NTSC480i), opts...)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	rec.Reset()
	return ctx, rec
}

// countingHandler returns an ErrorHandler that counts its calls.
func countingHandler(n *int) ErrorHandler {
	return func(error) { *n++ }
}

const epsilon = 1e-5

// mat4ApproxEqual compares element-wise with an absolute tolerance.
// mgl32's ApproxEqualThreshold is relative and rejects tiny values
// against an expected zero.
func mat4ApproxEqual(a, b mgl32.Mat4) bool {
	for i := range a {
		if !floatApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func vec4ApproxEqual(a, b mgl32.Vec4) bool {
	for i := range a {
		if !floatApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func floatApproxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

// lastOf returns the last recorded command of type T.
func lastOf[T record.Command](t *testing.T, rec *record.Recorder) T {
	t.Helper()
	cmds := rec.Commands()
	for i := len(cmds) - 1; i >= 0; i-- {
		if c, ok := cmds[i].(T); ok {
			return c
		}
	}
	var zero T
	t.Fatalf("no %T recorded", zero)
	return zero
}

// allOf returns every recorded command of type T in order.
func allOf[T record.Command](rec *record.Recorder) []T {
	var out []T
	for _, c := range rec.Commands() {
		if c, ok := c.(T); ok {
			out = append(out, c)
		}
	}
	return out
}
