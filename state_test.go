package gxgl

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/gx/record"
)

func TestClearColor(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.ClearColor(0, 0.5, 1, 1)
	cmd := lastOf[record.SetCopyClearCommand](t, rec)
	if cmd.Color != (gx.Color{R: 0, G: 128, B: 255, A: 255}) || cmd.Z != zClear {
		t.Errorf("copy clear = %+v", cmd)
	}
}

func TestClearMask(t *testing.T) {
	ctx, rec := newTestContext(t)
	if err := ctx.Clear(ColorBufferBit | DepthBufferBit | StencilBufferBit); err != nil {
		t.Errorf("Clear(all) = %v", err)
	}
	if rec.Len() != 0 {
		t.Errorf("Clear emitted %d commands", rec.Len())
	}
	if err := ctx.Clear(0x0001); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Clear(bad) = %v, want ErrInvalidValue", err)
	}
}

func TestCurrentColor(t *testing.T) {
	ctx, rec := newTestContext(t)
	if r, g, b, a := ctx.CurrentColor(); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("default color = %d %d %d %d, want opaque white", r, g, b, a)
	}

	ctx.Color4f(1, 0, 0.25, 2)
	cmd := lastOf[record.SetTevColorCommand](t, rec)
	want := gx.Color{R: 255, G: 0, B: 64, A: 255}
	if cmd.Reg != gx.TevReg0 || cmd.Color != want {
		t.Errorf("Color4f -> %+v, want REG0 %+v", cmd, want)
	}

	ctx.Color4ub(1, 2, 3, 4)
	if r, g, b, a := ctx.CurrentColor(); r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("Color4ub -> %d %d %d %d", r, g, b, a)
	}
}

func TestColorMask(t *testing.T) {
	tests := []struct {
		r, g, b, a       bool
		wantColor, wantA bool
	}{
		{true, true, true, true, true, true},
		{false, false, false, false, false, false},
		{false, true, false, false, true, false},
		{false, false, false, true, false, true},
	}
	for _, tt := range tests {
		ctx, rec := newTestContext(t)
		ctx.ColorMask(tt.r, tt.g, tt.b, tt.a)
		if got := lastOf[record.SetColorUpdateCommand](t, rec); got.Enable != tt.wantColor {
			t.Errorf("ColorMask(%v,%v,%v,%v) color update = %v", tt.r, tt.g, tt.b, tt.a, got.Enable)
		}
		if got := lastOf[record.SetAlphaUpdateCommand](t, rec); got.Enable != tt.wantA {
			t.Errorf("ColorMask(%v,%v,%v,%v) alpha update = %v", tt.r, tt.g, tt.b, tt.a, got.Enable)
		}
	}
}

func TestPointSize(t *testing.T) {
	tests := []struct {
		size float32
		want uint8
	}{
		{1, 6},
		{0.1, 1},
		{2.5, 15},
		{42.4, 254},
		{100, 255},
	}
	for _, tt := range tests {
		ctx, rec := newTestContext(t)
		if err := ctx.PointSize(tt.size); err != nil {
			t.Fatalf("PointSize(%v) = %v", tt.size, err)
		}
		if cmd := lastOf[record.SetPointSizeCommand](t, rec); cmd.Width != tt.want || cmd.Offset != gx.ToZero {
			t.Errorf("PointSize(%v) = %+v, want width %d", tt.size, cmd, tt.want)
		}
	}

	ctx, rec := newTestContext(t)
	for _, bad := range []float32{0, -1, float32(math.NaN())} {
		if err := ctx.PointSize(bad); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("PointSize(%v) = %v, want ErrInvalidValue", bad, err)
		}
	}
	if rec.Len() != 0 {
		t.Errorf("rejected sizes emitted %d commands", rec.Len())
	}
}

func TestViewportFlipsY(t *testing.T) {
	ctx, rec := newTestContext(t)
	if err := ctx.Viewport(10, 20, 300, 200); err != nil {
		t.Fatalf("Viewport() = %v", err)
	}
	vp := lastOf[record.SetViewportCommand](t, rec)
	want := record.SetViewportCommand{X: 10, Y: 480 - 20 - 200, Width: 300, Height: 200, Near: 0, Far: 1}
	if vp != want {
		t.Errorf("viewport = %+v, want %+v", vp, want)
	}
	sc := lastOf[record.SetScissorCommand](t, rec)
	if sc != (record.SetScissorCommand{X: 10, Y: 260, Width: 300, Height: 200}) {
		t.Errorf("scissor = %+v", sc)
	}

	if err := ctx.Viewport(0, 0, -1, 1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative width = %v, want ErrInvalidValue", err)
	}
}

func TestViewportWithoutDisplay(t *testing.T) {
	rec := record.NewRecorder()
	ctx, err := NewContext(rec, nil)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	rec.Reset()
	ctx.Viewport(0, 5, 64, 64)
	if vp := lastOf[record.SetViewportCommand](t, rec); vp.Y != 5 {
		t.Errorf("y = %v without a video mode, want 5", vp.Y)
	}
}

func TestDepthMaskAndFunc(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.Enable(DepthTest)
	ctx.DepthFunc(Greater)
	ctx.DepthMask(false)
	z := lastOf[record.SetZModeCommand](t, rec)
	if !z.Enable || z.Func != gx.Greater || z.Update {
		t.Errorf("z mode = %+v, want enabled GREATER without update", z)
	}
	if err := ctx.DepthFunc(0x1234); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("DepthFunc(bad) = %v, want ErrInvalidEnum", err)
	}
}

func TestGetIntegerv(t *testing.T) {
	ctx, _ := newTestContext(t, WithMaxTextureSize(512))
	tests := []struct {
		q    Query
		want int
	}{
		{MaxTextureSize, 512},
		{MaxTextureUnits, 8},
		{MaxLightsQuery, MaxLights},
	}
	for _, tt := range tests {
		got, err := ctx.GetIntegerv(tt.q)
		if err != nil || got != tt.want {
			t.Errorf("GetIntegerv(0x%04X) = %d, %v; want %d", uint32(tt.q), got, err, tt.want)
		}
	}
	if _, err := ctx.GetIntegerv(0x1234); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("unknown query = %v, want ErrInvalidEnum", err)
	}
}

func TestGetString(t *testing.T) {
	ctx, _ := newTestContext(t)
	tests := []struct {
		name StringName
		want string
	}{
		{Vendor, VendorString},
		{Renderer, RendererString},
		{Version, VersionString},
		{Extensions, ""},
	}
	for _, tt := range tests {
		if got, err := ctx.GetString(tt.name); err != nil || got != tt.want {
			t.Errorf("GetString(0x%04X) = %q, %v; want %q", uint32(tt.name), got, err, tt.want)
		}
	}
	if _, err := ctx.GetString(0x1234); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("unknown name = %v, want ErrInvalidEnum", err)
	}
}

func TestDescribeDefaults(t *testing.T) {
	ctx, _ := newTestContext(t)
	d, err := ctx.Describe(Triangles)
	if err != nil {
		t.Fatalf("Describe() = %v", err)
	}
	want := Description{
		Topology:     gputypes.PrimitiveTopologyTriangleList,
		FrontFace:    gputypes.FrontFaceCCW,
		CullMode:     gputypes.CullModeNone,
		DepthCompare: gputypes.CompareFunctionAlways,
	}
	if d != want {
		t.Errorf("Describe() = %+v, want %+v", d, want)
	}
}

func TestDescribeState(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Enable(DepthTest)
	ctx.DepthFunc(Less)
	ctx.Enable(CullFace)
	ctx.CullFace(Front)
	ctx.FrontFace(CW)
	ctx.Enable(Blend)
	ctx.BlendFunc(SrcAlpha, OneMinusSrcAlpha)
	ctx.Enable(Lighting)

	d, err := ctx.Describe(LineLoop)
	if err != nil {
		t.Fatalf("Describe() = %v", err)
	}
	if d.Topology != gputypes.PrimitiveTopologyLineStrip {
		t.Errorf("topology = %v, want line strip", d.Topology)
	}
	if d.FrontFace != gputypes.FrontFaceCW || d.CullMode != gputypes.CullModeFront {
		t.Errorf("faces = %v/%v, want CW culling front", d.FrontFace, d.CullMode)
	}
	if d.DepthCompare != gputypes.CompareFunctionLess || !d.DepthWrite {
		t.Errorf("depth = %v write %v", d.DepthCompare, d.DepthWrite)
	}
	if !d.Lit || d.Textured {
		t.Errorf("lit %v textured %v, want lit untextured", d.Lit, d.Textured)
	}
	wantBlend := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	}
	if d.Blend == nil || d.Blend.Color != wantBlend || d.Blend.Alpha != wantBlend {
		t.Errorf("blend = %+v, want %+v", d.Blend, wantBlend)
	}

	ctx.CullFace(FrontAndBack)
	if d, _ := ctx.Describe(Points); d.CullMode != gputypes.CullModeNone {
		t.Errorf("both faces = %v, want none", d.CullMode)
	}
	if _, err := ctx.Describe(0x42); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("bad mode = %v, want ErrInvalidEnum", err)
	}
}
