package gxgl

import (
	"math"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/internal/texconv"
)

// Every GL token domain that reaches the hardware has one table below. A
// token missing from its table is rejected with ErrInvalidEnum before any
// command is issued.

var primitives = map[Mode]gx.Primitive{
	Points:        gx.Points,
	Lines:         gx.Lines,
	LineLoop:      gx.LineStrip,
	LineStrip:     gx.LineStrip,
	Triangles:     gx.Triangles,
	TriangleStrip: gx.TriangleStrip,
	TriangleFan:   gx.TriangleFan,
	Quads:         gx.Quads,
	QuadStrip:     gx.TriangleStrip,
}

var compareFuncs = map[CompareFunc]gx.CompareFunc{
	Never:    gx.Never,
	Less:     gx.Less,
	Equal:    gx.Equal,
	LEqual:   gx.LEqual,
	Greater:  gx.Greater,
	NotEqual: gx.NEqual,
	GEqual:   gx.GEqual,
	Always:   gx.Always,
}

var blendFactors = map[BlendFactor]gx.BlendFactor{
	Zero:             gx.BlZero,
	One:              gx.BlOne,
	SrcColor:         gx.BlSrcClr,
	OneMinusSrcColor: gx.BlInvSrcClr,
	SrcAlpha:         gx.BlSrcAlpha,
	OneMinusSrcAlpha: gx.BlInvSrcAlpha,
	DstAlpha:         gx.BlDstAlpha,
	OneMinusDstAlpha: gx.BlInvDstAlpha,
	DstColor:         gx.BlDstClr,
	OneMinusDstColor: gx.BlInvDstClr,
}

var minFilters = map[TexParamValue]gx.TexFilter{
	Nearest:              gx.Near,
	Linear:               gx.Linear,
	NearestMipmapNearest: gx.NearMipNear,
	LinearMipmapNearest:  gx.LinMipNear,
	NearestMipmapLinear:  gx.NearMipLin,
	LinearMipmapLinear:   gx.LinMipLin,
}

var magFilters = map[TexParamValue]gx.TexFilter{
	Nearest: gx.Near,
	Linear:  gx.Linear,
}

var wrapModes = map[TexParamValue]gx.WrapMode{
	Clamp:          gx.Clamp,
	ClampToEdge:    gx.Clamp,
	Repeat:         gx.Repeat,
	MirroredRepeat: gx.Mirror,
}

var pixelFormats = map[PixelFormat]texconv.Format{
	Alpha:          texconv.FormatAlpha,
	Luminance:      texconv.FormatLuminance,
	LuminanceAlpha: texconv.FormatLuminanceAlpha,
	RGB:            texconv.FormatRGB,
	RGBA:           texconv.FormatRGBA,
}

// compTypes maps vertex component data types to hardware component types.
var compTypes = map[DataType]gx.CompType{
	Byte:          gx.S8,
	UnsignedByte:  gx.U8,
	Short:         gx.S16,
	UnsignedShort: gx.U16,
	Float:         gx.F32,
}

// attribFormat is the hardware vertex format of one attribute.
type attribFormat struct {
	cnt gx.CompCount
	typ gx.CompType
}

// attribFormatFunc maps a (size, type) pair to a hardware format.
type attribFormatFunc func(size int, typ DataType) (attribFormat, bool)

func positionFormat(size int, typ DataType) (attribFormat, bool) {
	ct, ok := compTypes[typ]
	if !ok {
		return attribFormat{}, false
	}
	switch size {
	case 2:
		return attribFormat{gx.PosXY, ct}, true
	case 3:
		return attribFormat{gx.PosXYZ, ct}, true
	}
	return attribFormat{}, false
}

func normalFormat(size int, typ DataType) (attribFormat, bool) {
	if size != 3 {
		return attribFormat{}, false
	}
	switch typ {
	case Byte, Short, Float:
		return attribFormat{gx.NrmXYZ, compTypes[typ]}, true
	}
	return attribFormat{}, false
}

func colorFormat(size int, typ DataType) (attribFormat, bool) {
	if typ != UnsignedByte {
		return attribFormat{}, false
	}
	switch size {
	case 3:
		return attribFormat{gx.ClrRGB, gx.RGB8}, true
	case 4:
		return attribFormat{gx.ClrRGBA, gx.RGBA8}, true
	}
	return attribFormat{}, false
}

// texCoordFormat truncates three-component coordinates to S and T; the
// hardware has no R coordinate.
func texCoordFormat(size int, typ DataType) (attribFormat, bool) {
	ct, ok := compTypes[typ]
	if !ok {
		return attribFormat{}, false
	}
	switch size {
	case 1:
		return attribFormat{gx.TexS, ct}, true
	case 2, 3:
		return attribFormat{gx.TexST, ct}, true
	}
	return attribFormat{}, false
}

// cullMode returns the hardware cull mode that discards face when
// winding marks front faces. The hardware treats clockwise polygons as
// front facing, the inverse of the GL default.
func cullMode(face Face, winding Winding) (gx.CullMode, bool) {
	var front, back gx.CullMode
	switch winding {
	case CCW:
		front, back = gx.CullBack, gx.CullFront
	case CW:
		front, back = gx.CullFront, gx.CullBack
	default:
		return gx.CullNone, false
	}
	switch face {
	case Front:
		return front, true
	case Back:
		return back, true
	case FrontAndBack:
		return gx.CullAll, true
	}
	return gx.CullNone, false
}

// colorFromFloats converts a normalized color to 8-bit channels, clamping
// each component to [0, 1].
func colorFromFloats(r, g, b, a float32) gx.Color {
	return gx.Color{R: unorm8(r), G: unorm8(g), B: unorm8(b), A: unorm8(a)}
}

func unorm8(v float32) uint8 {
	switch {
	case v <= 0 || math.IsNaN(float64(v)):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
