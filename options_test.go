package gxgl

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.strictness != StrictnessStrict {
		t.Errorf("strictness = %v, want Strict", o.strictness)
	}
	if o.byteOrder != binary.BigEndian {
		t.Errorf("byte order = %v, want big-endian", o.byteOrder)
	}
	if o.maxTextureSize != DefaultMaxTextureSize {
		t.Errorf("max texture size = %d, want %d", o.maxTextureSize, DefaultMaxTextureSize)
	}
	if o.errorHandler != nil || o.logger != nil {
		t.Error("handler or logger set by default")
	}
}

func TestOptionsIgnoreZeroValues(t *testing.T) {
	o := defaultOptions()
	WithByteOrder(nil)(&o)
	WithMaxTextureSize(0)(&o)
	WithMaxTextureSize(-4)(&o)
	if o.byteOrder != binary.BigEndian || o.maxTextureSize != DefaultMaxTextureSize {
		t.Errorf("zero options changed defaults: %v %d", o.byteOrder, o.maxTextureSize)
	}

	WithByteOrder(binary.LittleEndian)(&o)
	WithMaxTextureSize(64)(&o)
	WithStrictness(StrictnessLenient)(&o)
	if o.byteOrder != binary.LittleEndian || o.maxTextureSize != 64 || o.strictness != StrictnessLenient {
		t.Errorf("options not applied: %+v", o)
	}
}

func TestLittleEndianIndices(t *testing.T) {
	ctx, rec := newTestContext(t, WithByteOrder(binary.LittleEndian))
	ctx.EnableClientState(VertexArray)
	ctx.VertexPointer(2, Float, 0, Client(Float32Bytes(make([]float32, 1024)...)))
	rec.Reset()

	if err := ctx.DrawElements(Points, 1, UnsignedShort, Client([]byte{0x02, 0x01})); err != nil {
		t.Fatalf("DrawElements() = %v", err)
	}
	if vs := rec.Recording().Vertices(); len(vs) != 1 || vs[0].Indices[0] != 0x0102 {
		t.Errorf("vertices = %+v, want index 0x0102", vs)
	}
}

func TestMaxTextureSizeEnforced(t *testing.T) {
	ctx, _ := newTestContext(t, WithMaxTextureSize(16))
	newBoundTexture(t, ctx)
	if err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 16, 16, 0, RGBA, UnsignedByte, nil); err != nil {
		t.Errorf("16x16 = %v, want nil", err)
	}
	if err := ctx.TexImage2D(TextureTarget2D, 0, RGBA, 17, 1, 0, RGBA, UnsignedByte, nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("17x1 = %v, want ErrInvalidValue", err)
	}
}
