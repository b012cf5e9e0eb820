package gxgl

import (
	"errors"
	"testing"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/gx/record"
)

// failingDisplay is a Display whose Init always fails.
type failingDisplay struct{}

var errNoVideo = errors.New("no video")

func (failingDisplay) Init() (gx.VideoMode, error) { return gx.VideoMode{}, errNoVideo }
func (failingDisplay) SetNextFramebuffer(int)      {}
func (failingDisplay) WaitVSync()                  {}

func TestNewContextNilDevice(t *testing.T) {
	if _, err := NewContext(nil, nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("NewContext(nil) = %v, want ErrInvalidValue", err)
	}
}

func TestNewContextVideoInitFailure(t *testing.T) {
	_, err := NewContext(record.NewRecorder(), failingDisplay{})
	if !errors.Is(err, errNoVideo) {
		t.Errorf("NewContext() = %v, want wrapped display error", err)
	}
}

func TestNewContextInitializesVideo(t *testing.T) {
	rec := record.NewRecorder()
	disp := record.NewDisplay(gx.NTSC480i)
	ctx, err := NewContext(rec, disp)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	if disp.Inits() != 1 {
		t.Errorf("display initialized %d times, want 1", disp.Inits())
	}
	if ctx.VideoMode() != gx.NTSC480i {
		t.Errorf("VideoMode() = %+v, want NTSC480i", ctx.VideoMode())
	}

	vp := lastOf[record.SetViewportCommand](t, rec)
	if vp.Width != 640 || vp.Height != 480 || vp.Near != 0 || vp.Far != 1 {
		t.Errorf("viewport = %+v", vp)
	}
	dst := lastOf[record.SetDispCopyDstCommand](t, rec)
	if dst.Width != 640 || dst.Height != 480 {
		t.Errorf("copy destination = %+v", dst)
	}
	if cp := lastOf[record.CopyDispCommand](t, rec); cp.Framebuffer != 0 || !cp.Clear {
		t.Errorf("first copy = %+v, want framebuffer 0 with clear", cp)
	}
}

func TestResetInitializesVideoOnce(t *testing.T) {
	rec := record.NewRecorder()
	disp := record.NewDisplay(gx.NTSC480i)
	ctx, err := NewContext(rec, disp)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	rec.Reset()

	if err := ctx.Reset(); err != nil {
		t.Fatalf("Reset() = %v", err)
	}
	if disp.Inits() != 1 {
		t.Errorf("display initialized %d times, want 1", disp.Inits())
	}
	if n := rec.Recording().Count(record.CmdSetDispCopySrc); n != 0 {
		t.Errorf("second reset reprogrammed the copy engine %d times", n)
	}
}

func TestResetState(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.Enable(DepthTest)
	ctx.Enable(Lighting)
	ctx.EnableClientState(VertexArray)
	ctx.MatrixMode(Projection)
	ctx.PushMatrix()
	ctx.Color4ub(1, 2, 3, 4)
	rec.Reset()

	if err := ctx.Reset(); err != nil {
		t.Fatalf("Reset() = %v", err)
	}

	if on, _ := ctx.IsEnabled(DepthTest); on {
		t.Error("depth test still enabled after reset")
	}
	if on, _ := ctx.IsClientStateEnabled(VertexArray); on {
		t.Error("vertex array still enabled after reset")
	}
	if d, _ := ctx.MatrixDepth(Projection); d != 0 {
		t.Errorf("projection depth = %d, want 0", d)
	}
	if r, g, b, a := ctx.CurrentColor(); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("current color = %d,%d,%d,%d, want white", r, g, b, a)
	}

	rs := rec.Recording()
	z := lastOf[record.SetZModeCommand](t, rec)
	if z.Enable || z.Func != gx.LEqual || !z.Update {
		t.Errorf("z mode = %+v, want disabled LEQUAL with update", z)
	}
	for _, ct := range []record.CommandType{record.CmdSetNumTevStages, record.CmdSetNumTexGens, record.CmdSetNumChans} {
		if n := rs.Count(ct); n != 1 {
			t.Errorf("%v issued %d times, want 1", ct, n)
		}
	}
	if n := lastOf[record.SetNumChansCommand](t, rec).N; n != 1 {
		t.Errorf("channels = %d, want 1", n)
	}
	gen := lastOf[record.SetTexCoordGenCommand](t, rec)
	if gen.Src != gx.TexGenSrcTex0 || gen.Mtx != gx.TexMtx0 {
		t.Errorf("texcoord generator = %+v", gen)
	}
	if rs.Count(record.CmdClearVtxDesc) != 1 {
		t.Error("vertex descriptors not cleared")
	}
	amb := allOf[record.SetChanAmbColorCommand](rec)
	if len(amb) != 1 || amb[0].Channel != gx.Color1A1 || amb[0].Color != defaultAmbient {
		t.Errorf("ambient = %+v", amb)
	}
}

func TestPresentFlipsFramebuffers(t *testing.T) {
	rec := record.NewRecorder()
	disp := record.NewDisplay(gx.NTSC480i)
	ctx, err := NewContext(rec, disp)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	rec.Reset()

	for i := 0; i < 3; i++ {
		if err := ctx.Present(); err != nil {
			t.Fatalf("Present() = %v", err)
		}
	}

	var fbs []int
	for _, c := range allOf[record.CopyDispCommand](rec) {
		fbs = append(fbs, c.Framebuffer)
	}
	want := []int{1, 0, 1}
	if len(fbs) != len(want) {
		t.Fatalf("copies = %v, want %v", fbs, want)
	}
	for i := range want {
		if fbs[i] != want[i] {
			t.Errorf("copy %d to framebuffer %d, want %d", i, fbs[i], want[i])
		}
	}
	if disp.VSyncs() != 3 {
		t.Errorf("vsyncs = %d, want 3", disp.VSyncs())
	}
	if n := rec.Recording().Count(record.CmdDrawDone); n != 3 {
		t.Errorf("DrawDone issued %d times, want 3", n)
	}
	cmds := rec.Commands()
	if cmds[0].Type() != record.CmdDrawDone || cmds[1].Type() != record.CmdCopyDisp {
		t.Errorf("present order = %v, %v, want DrawDone, CopyDisp", cmds[0].Type(), cmds[1].Type())
	}
}

func TestContextWithoutDisplay(t *testing.T) {
	rec := record.NewRecorder()
	ctx, err := NewContext(rec, nil)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	if rec.Recording().Count(record.CmdSetDispCopySrc) != 0 {
		t.Error("copy engine configured without a display")
	}
	if err := ctx.Present(); err != nil {
		t.Errorf("Present() = %v", err)
	}
	if ctx.Device() != rec {
		t.Error("Device() did not return the recorder")
	}
}

func TestContextOnRegisteredDevice(t *testing.T) {
	dev, err := gx.NewDevice("discard")
	if err != nil {
		t.Fatalf("NewDevice(discard) = %v", err)
	}
	ctx, err := NewContext(dev, nil)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	if err := ctx.DrawArrays(Triangles, 0, 0); err != nil {
		t.Errorf("DrawArrays() = %v", err)
	}
}
