package gxgl

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/gx/record"
)

// newBoundTexture generates a texture and binds it.
func newBoundTexture(t *testing.T, ctx *Context) TextureID {
	t.Helper()
	ids, err := ctx.GenTextures(1)
	if err != nil {
		t.Fatalf("GenTextures() = %v", err)
	}
	if err := ctx.BindTexture(TextureTarget2D, ids[0]); err != nil {
		t.Fatalf("BindTexture() = %v", err)
	}
	return ids[0]
}

// solidRGBA returns w*h pixels of one color.
func solidRGBA(w, h int, c color.NRGBA) []byte {
	b := make([]byte, 0, 4*w*h)
	for range w * h {
		b = append(b, c.R, c.G, c.B, c.A)
	}
	return b
}

func TestTexImage2DUpload(t *testing.T) {
	ctx, rec := newTestContext(t)
	id := newBoundTexture(t, ctx)
	rec.Reset()

	err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 6, 3, 0, RGBA, UnsignedByte,
		solidRGBA(6, 3, color.NRGBA{R: 255, A: 255}))
	if err != nil {
		t.Fatalf("TexImage2D() = %v", err)
	}

	flush := lastOf[record.FlushRangeCommand](t, rec)
	// 6x3 pads to two 4x4 tiles of 2-byte texels.
	if flush.Size != 64 {
		t.Errorf("flushed %d bytes, want 64", flush.Size)
	}
	if n := rec.Recording().Count(record.CmdInvalidateTexAll); n != 1 {
		t.Errorf("InvalidateTexAll count = %d, want 1", n)
	}
	types := rec.Commands()
	if types[0].Type() != record.CmdFlushRange || types[len(types)-1].Type() != record.CmdInvalidateTexAll {
		t.Errorf("upload order = %v, want FlushRange before InvalidateTexAll", types)
	}

	obj := ctx.textures[id].obj
	if obj.Width != 6 || obj.Height != 3 || obj.Format != gx.TexFmtRGB5A3 {
		t.Errorf("texture object = %dx%d %v", obj.Width, obj.Height, obj.Format)
	}
	if obj.WrapS != gx.Clamp || obj.WrapT != gx.Clamp || obj.Mipmap {
		t.Errorf("wrap = %v/%v mipmap %v, want clamp without mipmaps", obj.WrapS, obj.WrapT, obj.Mipmap)
	}
	if obj.MinFilter != gx.Linear || obj.MagFilter != gx.Linear {
		t.Errorf("filters = %v/%v, want linear", obj.MinFilter, obj.MagFilter)
	}
}

func TestTexImage2DErrors(t *testing.T) {
	pixels := solidRGBA(2, 2, color.NRGBA{A: 255})
	tests := []struct {
		name string
		call func(*Context) error
		want error
	}{
		{"target", func(c *Context) error {
			return c.TexImage2D(0x0DE0, 0, RGBA, 2, 2, 0, RGBA, UnsignedByte, pixels)
		}, ErrInvalidEnum},
		{"type", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, RGBA, 2, 2, 0, RGBA, Float, pixels)
		}, ErrInvalidEnum},
		{"internal format", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, 0x1234, 2, 2, 0, RGBA, UnsignedByte, pixels)
		}, ErrInvalidEnum},
		{"format", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, RGBA, 2, 2, 0, 0x1234, UnsignedByte, pixels)
		}, ErrInvalidEnum},
		{"negative width", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, RGBA, -2, 2, 0, RGBA, UnsignedByte, pixels)
		}, ErrInvalidValue},
		{"negative level", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, -1, RGBA, 2, 2, 0, RGBA, UnsignedByte, pixels)
		}, ErrInvalidValue},
		{"border", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, RGBA, 2, 2, 1, RGBA, UnsignedByte, pixels)
		}, ErrInvalidValue},
		{"too large", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, RGBA, DefaultMaxTextureSize+1, 1, 0, RGBA, UnsignedByte, nil)
		}, ErrInvalidValue},
		{"short data", func(c *Context) error {
			return c.TexImage2D(TextureTarget2D, 0, RGBA, 2, 2, 0, RGBA, UnsignedByte, pixels[:15])
		}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t)
			id := newBoundTexture(t, ctx)
			rec.Reset()

			if err := tt.call(ctx); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			if rec.Len() != 0 {
				t.Errorf("rejected upload emitted %d commands", rec.Len())
			}
			if ctx.textures[id].initialized {
				t.Error("rejected upload initialized the texture")
			}
		})
	}
}

func TestTexImage2DNoTextureBound(t *testing.T) {
	ctx, _ := newTestContext(t)
	err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 1, 1, 0, RGBA, UnsignedByte, nil)
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("got %v, want ErrInvalidOperation", err)
	}
}

func TestTexImage2DIgnoresMipLevels(t *testing.T) {
	ctx, rec := newTestContext(t)
	id := newBoundTexture(t, ctx)
	rec.Reset()

	if err := ctx.TexImage2D(TextureTarget2D, 1, RGBA, 2, 2, 0, RGBA, UnsignedByte, nil); err != nil {
		t.Fatalf("TexImage2D(level 1) = %v", err)
	}
	if rec.Len() != 0 || ctx.textures[id].initialized {
		t.Error("level 1 upload was stored")
	}
}

func TestTexImage2DNilDataAndLuminance(t *testing.T) {
	ctx, _ := newTestContext(t)
	id := newBoundTexture(t, ctx)

	if err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 4, 4, 0, RGBA, UnsignedByte, nil); err != nil {
		t.Fatalf("TexImage2D(nil) = %v", err)
	}
	img, err := ctx.TextureImage(id)
	if err != nil {
		t.Fatalf("TextureImage() = %v", err)
	}
	if got := img.NRGBAAt(3, 3); got != (color.NRGBA{}) {
		t.Errorf("nil upload pixel = %v, want transparent black", got)
	}

	lum := []byte{255, 255, 255, 255}
	if err := ctx.TexImage2D(TextureTarget2D, 0, Luminance, 2, 2, 0, Luminance, UnsignedByte, lum); err != nil {
		t.Fatalf("TexImage2D(luminance) = %v", err)
	}
	img, _ = ctx.TextureImage(id)
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("luminance pixel = %v, want opaque white", got)
	}
}

func TestTextureImageRoundTrip(t *testing.T) {
	ctx, _ := newTestContext(t)
	id := newBoundTexture(t, ctx)

	colors := []color.NRGBA{
		{R: 255, A: 255}, {G: 255, A: 255},
		{B: 255, A: 255}, {R: 255, G: 255, B: 255, A: 255},
	}
	var pixels []byte
	for _, c := range colors {
		pixels = append(pixels, c.R, c.G, c.B, c.A)
	}
	if err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 2, 2, 0, RGBA, UnsignedByte, pixels); err != nil {
		t.Fatalf("TexImage2D() = %v", err)
	}

	img, err := ctx.TextureImage(id)
	if err != nil {
		t.Fatalf("TextureImage() = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}
	for i, want := range colors {
		if got := img.NRGBAAt(i%2, i/2); got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestTextureImageErrors(t *testing.T) {
	ctx, _ := newTestContext(t)
	if _, err := ctx.TextureImage(7); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("unknown texture = %v, want ErrInvalidOperation", err)
	}
	id := newBoundTexture(t, ctx)
	if _, err := ctx.TextureImage(id); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("empty texture = %v, want ErrInvalidOperation", err)
	}
}

func TestTexImageFromImageDownscales(t *testing.T) {
	ctx, _ := newTestContext(t, WithMaxTextureSize(8))
	id := newBoundTexture(t, ctx)

	src := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	for y := range 16 {
		for x := range 32 {
			src.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	if err := ctx.TexImageFromImage(TextureTarget2D, src); err != nil {
		t.Fatalf("TexImageFromImage() = %v", err)
	}
	obj := ctx.textures[id].obj
	if obj.Width != 8 || obj.Height != 4 {
		t.Errorf("size = %dx%d, want 8x4", obj.Width, obj.Height)
	}
	img, _ := ctx.TextureImage(id)
	if got := img.NRGBAAt(4, 2); got.R != 0 || got.G < 240 || got.A != 255 {
		t.Errorf("scaled pixel = %v, want opaque green", got)
	}

	if err := ctx.TexImageFromImage(TextureTarget2D, nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("nil image = %v, want ErrInvalidValue", err)
	}
}

func TestTexParameteri(t *testing.T) {
	ctx, _ := newTestContext(t)
	id := newBoundTexture(t, ctx)

	if err := ctx.TexParameteri(TextureTarget2D, TextureMinFilter, Nearest); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("before upload = %v, want ErrInvalidOperation", err)
	}
	ctx.TexImage2D(TextureTarget2D, 0, RGB, 2, 2, 0, RGB, UnsignedByte, nil)

	steps := []struct {
		pname TexParam
		value TexParamValue
	}{
		{TextureMinFilter, LinearMipmapNearest},
		{TextureMagFilter, Nearest},
		{TextureWrapS, Repeat},
		{TextureWrapT, MirroredRepeat},
	}
	for _, s := range steps {
		if err := ctx.TexParameteri(TextureTarget2D, s.pname, s.value); err != nil {
			t.Fatalf("TexParameteri(%v, %v) = %v", s.pname, s.value, err)
		}
	}
	obj := ctx.textures[id].obj
	if obj.MinFilter != gx.LinMipNear || obj.MagFilter != gx.Near {
		t.Errorf("filters = %v/%v, want LIN_MIP_NEAR/NEAR", obj.MinFilter, obj.MagFilter)
	}
	if obj.WrapS != gx.Repeat || obj.WrapT != gx.Mirror {
		t.Errorf("wrap = %v/%v, want REPEAT/MIRROR", obj.WrapS, obj.WrapT)
	}

	// A new image keeps the filters and resets the wrap.
	ctx.TexImage2D(TextureTarget2D, 0, RGB, 2, 2, 0, RGB, UnsignedByte, nil)
	obj = ctx.textures[id].obj
	if obj.MagFilter != gx.Near || obj.WrapS != gx.Clamp {
		t.Errorf("after re-upload mag %v wrap %v, want NEAR/CLAMP", obj.MagFilter, obj.WrapS)
	}
}

func TestTexParameteriErrors(t *testing.T) {
	tests := []struct {
		name   string
		target TextureTarget
		pname  TexParam
		value  TexParamValue
		want   error
	}{
		{"target", 0x0DE0, TextureMinFilter, Linear, ErrInvalidEnum},
		{"pname", TextureTarget2D, 0x1234, Linear, ErrInvalidEnum},
		{"mipmap mag filter", TextureTarget2D, TextureMagFilter, LinearMipmapLinear, ErrInvalidEnum},
		{"min filter value", TextureTarget2D, TextureMinFilter, Repeat, ErrInvalidEnum},
		{"wrap value", TextureTarget2D, TextureWrapS, Nearest, ErrInvalidEnum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			newBoundTexture(t, ctx)
			ctx.TexImage2D(TextureTarget2D, 0, RGBA, 1, 1, 0, RGBA, UnsignedByte, nil)
			if err := ctx.TexParameteri(tt.target, tt.pname, tt.value); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTextureNames(t *testing.T) {
	ctx, _ := newTestContext(t)
	ids, _ := ctx.GenTextures(3)
	if ids[0] == 0 || ids[0] == ids[1] || ids[1] == ids[2] {
		t.Errorf("names = %v, want distinct non-zero", ids)
	}
	if _, err := ctx.GenTextures(-1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative count = %v, want ErrInvalidValue", err)
	}
	if err := ctx.BindTexture(TextureTarget2D, 99); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("bind unknown = %v, want ErrInvalidOperation", err)
	}

	ctx.BindTexture(TextureTarget2D, ids[1])
	ctx.DeleteTextures(ids[1], 99, 0)
	if ctx.IsTexture(ids[1]) || !ctx.IsTexture(ids[0]) {
		t.Error("DeleteTextures removed the wrong names")
	}
	if ctx.boundTex != 0 {
		t.Errorf("bound texture = %d after delete, want 0", ctx.boundTex)
	}
}

func TestIdenticalUploadsShareConversion(t *testing.T) {
	ctx, rec := newTestContext(t)
	pixels := solidRGBA(4, 4, color.NRGBA{B: 255, A: 255})
	ids, _ := ctx.GenTextures(2)
	for _, id := range ids {
		ctx.BindTexture(TextureTarget2D, id)
		if err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 4, 4, 0, RGBA, UnsignedByte, pixels); err != nil {
			t.Fatalf("TexImage2D() = %v", err)
		}
	}
	a, b := ctx.textures[ids[0]].obj.Image, ctx.textures[ids[1]].obj.Image
	if &a[0] != &b[0] {
		t.Error("identical uploads converted twice")
	}
	if n := rec.Recording().Count(record.CmdFlushRange); n != 2 {
		t.Errorf("FlushRange count = %d, want one per upload", n)
	}
}

func TestUploadTextureShortPixels(t *testing.T) {
	ctx, rec := newTestContext(t)
	id := newBoundTexture(t, ctx)
	rec.Reset()

	tex := ctx.textures[id]
	r := ctx.uploadTexture(tex, make([]byte, 15), 2, 2)
	if r == nil {
		t.Fatal("uploadTexture() accepted 15 bytes for a 2x2 image")
	}
	if !errors.Is(r.kind, ErrOutOfBounds) {
		t.Errorf("rejection kind = %v, want %v", r.kind, ErrOutOfBounds)
	}
	if tex.initialized {
		t.Error("texture marked initialized after a failed upload")
	}
	if rec.Len() != 0 {
		t.Errorf("failed upload emitted %d commands", rec.Len())
	}
}
