package gxgl

import "fmt"

// Each GL token domain has its own type so that a capability cannot be
// passed where a primitive mode is expected. Values match the GL 1.x
// header so that tokens read from existing code or data keep their meaning.

// DataType is the element type of vertex, index or pixel data.
type DataType uint32

const (
	Byte          DataType = 0x1400
	UnsignedByte  DataType = 0x1401
	Short         DataType = 0x1402
	UnsignedShort DataType = 0x1403
	Int           DataType = 0x1404
	UnsignedInt   DataType = 0x1405
	Float         DataType = 0x1406
)

var dataTypeNames = map[DataType]string{
	Byte:          "BYTE",
	UnsignedByte:  "UNSIGNED_BYTE",
	Short:         "SHORT",
	UnsignedShort: "UNSIGNED_SHORT",
	Int:           "INT",
	UnsignedInt:   "UNSIGNED_INT",
	Float:         "FLOAT",
}

// String returns the GL name of the type.
func (t DataType) String() string { return tokenName(dataTypeNames, t) }

// Size returns the size of one element in bytes, or zero for unknown types.
func (t DataType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	}
	return 0
}

// Mode is a primitive topology.
type Mode uint32

const (
	Points        Mode = 0x0000
	Lines         Mode = 0x0001
	LineLoop      Mode = 0x0002
	LineStrip     Mode = 0x0003
	Triangles     Mode = 0x0004
	TriangleStrip Mode = 0x0005
	TriangleFan   Mode = 0x0006
	Quads         Mode = 0x0007
	QuadStrip     Mode = 0x0008
)

var modeNames = map[Mode]string{
	Points:        "POINTS",
	Lines:         "LINES",
	LineLoop:      "LINE_LOOP",
	LineStrip:     "LINE_STRIP",
	Triangles:     "TRIANGLES",
	TriangleStrip: "TRIANGLE_STRIP",
	TriangleFan:   "TRIANGLE_FAN",
	Quads:         "QUADS",
	QuadStrip:     "QUAD_STRIP",
}

// String returns the GL name of the mode.
func (m Mode) String() string { return tokenName(modeNames, m) }

// Capability is a server-side feature toggled by Enable and Disable.
type Capability uint32

const (
	AlphaTest         Capability = 0x0BC0
	Blend             Capability = 0x0BE2
	ClipPlane0        Capability = 0x3000
	ClipPlane1        Capability = 0x3001
	ClipPlane2        Capability = 0x3002
	ClipPlane3        Capability = 0x3003
	ClipPlane4        Capability = 0x3004
	ClipPlane5        Capability = 0x3005
	ColorMaterial     Capability = 0x0B57
	CullFace          Capability = 0x0B44
	DepthTest         Capability = 0x0B71
	Light0            Capability = 0x4000
	Light1            Capability = 0x4001
	Light2            Capability = 0x4002
	Light3            Capability = 0x4003
	Light4            Capability = 0x4004
	Light5            Capability = 0x4005
	Light6            Capability = 0x4006
	Light7            Capability = 0x4007
	Lighting          Capability = 0x0B50
	Normalize         Capability = 0x0BA1
	PolygonOffsetFill Capability = 0x8037
	PointSprite       Capability = 0x8861
	StencilTest       Capability = 0x0B90
	Texture2D         Capability = 0x0DE1
	TextureGenS       Capability = 0x0C60
	TextureGenT       Capability = 0x0C61
)

// MaxLights is the number of hardware lights.
const MaxLights = 8

// MaxClipPlanes is the number of tracked clip planes.
const MaxClipPlanes = 6

var capabilityNames = map[Capability]string{
	AlphaTest:         "ALPHA_TEST",
	Blend:             "BLEND",
	ColorMaterial:     "COLOR_MATERIAL",
	CullFace:          "CULL_FACE",
	DepthTest:         "DEPTH_TEST",
	Lighting:          "LIGHTING",
	Normalize:         "NORMALIZE",
	PolygonOffsetFill: "POLYGON_OFFSET_FILL",
	PointSprite:       "POINT_SPRITE",
	StencilTest:       "STENCIL_TEST",
	Texture2D:         "TEXTURE_2D",
	TextureGenS:       "TEXTURE_GEN_S",
	TextureGenT:       "TEXTURE_GEN_T",
}

// String returns the GL name of the capability.
func (c Capability) String() string {
	if n, ok := c.light(); ok {
		return fmt.Sprintf("LIGHT%d", n)
	}
	if n, ok := c.clipPlane(); ok {
		return fmt.Sprintf("CLIP_PLANE%d", n)
	}
	return tokenName(capabilityNames, c)
}

// light reports whether c is one of Light0..Light7 and which.
func (c Capability) light() (int, bool) {
	if c >= Light0 && c < Light0+MaxLights {
		return int(c - Light0), true
	}
	return 0, false
}

// clipPlane reports whether c is one of ClipPlane0..ClipPlane5 and which.
func (c Capability) clipPlane() (int, bool) {
	if c >= ClipPlane0 && c < ClipPlane0+MaxClipPlanes {
		return int(c - ClipPlane0), true
	}
	return 0, false
}

// ClientArray is a client-side vertex array toggled by EnableClientState.
type ClientArray uint32

const (
	VertexArray       ClientArray = 0x8074
	NormalArray       ClientArray = 0x8075
	ColorArray        ClientArray = 0x8076
	IndexArray        ClientArray = 0x8077
	TextureCoordArray ClientArray = 0x8078
)

var clientArrayNames = map[ClientArray]string{
	VertexArray:       "VERTEX_ARRAY",
	NormalArray:       "NORMAL_ARRAY",
	ColorArray:        "COLOR_ARRAY",
	IndexArray:        "INDEX_ARRAY",
	TextureCoordArray: "TEXTURE_COORD_ARRAY",
}

// String returns the GL name of the array.
func (a ClientArray) String() string { return tokenName(clientArrayNames, a) }

// MatrixMode selects the matrix stack targeted by matrix operations.
type MatrixMode uint32

const (
	ModelView  MatrixMode = 0x1700
	Projection MatrixMode = 0x1701
	Texture    MatrixMode = 0x1702
	Color      MatrixMode = 0x1800
)

var matrixModeNames = map[MatrixMode]string{
	ModelView:  "MODELVIEW",
	Projection: "PROJECTION",
	Texture:    "TEXTURE",
	Color:      "COLOR",
}

// String returns the GL name of the matrix mode.
func (m MatrixMode) String() string { return tokenName(matrixModeNames, m) }

// CompareFunc is a depth or alpha comparison.
type CompareFunc uint32

const (
	Never    CompareFunc = 0x0200
	Less     CompareFunc = 0x0201
	Equal    CompareFunc = 0x0202
	LEqual   CompareFunc = 0x0203
	Greater  CompareFunc = 0x0204
	NotEqual CompareFunc = 0x0205
	GEqual   CompareFunc = 0x0206
	Always   CompareFunc = 0x0207
)

// Face selects front, back or both polygon faces.
type Face uint32

const (
	Front        Face = 0x0404
	Back         Face = 0x0405
	FrontAndBack Face = 0x0408
)

// Winding is the vertex order that makes a polygon front facing.
type Winding uint32

const (
	CW  Winding = 0x0900
	CCW Winding = 0x0901
)

// BlendFactor is a source or destination blend factor.
type BlendFactor uint32

const (
	Zero             BlendFactor = 0
	One              BlendFactor = 1
	SrcColor         BlendFactor = 0x0300
	OneMinusSrcColor BlendFactor = 0x0301
	SrcAlpha         BlendFactor = 0x0302
	OneMinusSrcAlpha BlendFactor = 0x0303
	DstAlpha         BlendFactor = 0x0304
	OneMinusDstAlpha BlendFactor = 0x0305
	DstColor         BlendFactor = 0x0306
	OneMinusDstColor BlendFactor = 0x0307
)

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

// BufferUsage is a buffer usage hint. It is validated and otherwise ignored.
type BufferUsage uint32

const (
	StreamDraw  BufferUsage = 0x88E0
	StaticDraw  BufferUsage = 0x88E4
	DynamicDraw BufferUsage = 0x88E8
)

// TextureTarget is a texture binding point.
type TextureTarget uint32

// TextureTarget2D is the only texture target.
const TextureTarget2D TextureTarget = 0x0DE1

// PixelFormat is the channel layout of client pixel data.
type PixelFormat uint32

const (
	Alpha          PixelFormat = 0x1906
	RGB            PixelFormat = 0x1907
	RGBA           PixelFormat = 0x1908
	Luminance      PixelFormat = 0x1909
	LuminanceAlpha PixelFormat = 0x190A
)

var pixelFormatNames = map[PixelFormat]string{
	Alpha:          "ALPHA",
	RGB:            "RGB",
	RGBA:           "RGBA",
	Luminance:      "LUMINANCE",
	LuminanceAlpha: "LUMINANCE_ALPHA",
}

// String returns the GL name of the format.
func (f PixelFormat) String() string { return tokenName(pixelFormatNames, f) }

// TexParam names a texture parameter.
type TexParam uint32

const (
	TextureMagFilter TexParam = 0x2800
	TextureMinFilter TexParam = 0x2801
	TextureWrapS     TexParam = 0x2802
	TextureWrapT     TexParam = 0x2803
)

// TexParamValue is a filter or wrap mode passed to TexParameteri.
type TexParamValue int32

const (
	Nearest              TexParamValue = 0x2600
	Linear               TexParamValue = 0x2601
	NearestMipmapNearest TexParamValue = 0x2700
	LinearMipmapNearest  TexParamValue = 0x2701
	NearestMipmapLinear  TexParamValue = 0x2702
	LinearMipmapLinear   TexParamValue = 0x2703
	Clamp                TexParamValue = 0x2900
	Repeat               TexParamValue = 0x2901
	ClampToEdge          TexParamValue = 0x812F
	MirroredRepeat       TexParamValue = 0x8370
)

// LightParam names a light or material parameter.
type LightParam uint32

const (
	Ambient           LightParam = 0x1200
	Diffuse           LightParam = 0x1201
	Specular          LightParam = 0x1202
	Position          LightParam = 0x1203
	Emission          LightParam = 0x1600
	Shininess         LightParam = 0x1601
	AmbientAndDiffuse LightParam = 0x1602
)

// LightModelParam names a light model parameter.
type LightModelParam uint32

// LightModelAmbient is the global ambient color.
const LightModelAmbient LightModelParam = 0x0B53

// TexCoordName names a generated texture coordinate.
type TexCoordName uint32

const (
	S TexCoordName = 0x2000
	T TexCoordName = 0x2001
)

// TexGenParam names a texture coordinate generation parameter.
type TexGenParam uint32

// TextureGenMode selects the generation function.
const TextureGenMode TexGenParam = 0x2500

// TexGenMode is a texture coordinate generation function.
type TexGenMode int32

const (
	EyeLinear    TexGenMode = 0x2400
	ObjectLinear TexGenMode = 0x2401
	SphereMap    TexGenMode = 0x2402
)

// ClearMask is a set of buffer bits passed to Clear.
type ClearMask uint32

const (
	DepthBufferBit   ClearMask = 0x0100
	StencilBufferBit ClearMask = 0x0400
	ColorBufferBit   ClearMask = 0x4000
)

// Query names an integer state value read by GetIntegerv.
type Query uint32

const (
	MaxLightsQuery  Query = 0x0D31
	MaxTextureSize  Query = 0x0D33
	MaxTextureUnits Query = 0x84E2
)

// StringName names a string read by GetString.
type StringName uint32

const (
	Vendor     StringName = 0x1F00
	Renderer   StringName = 0x1F01
	Version    StringName = 0x1F02
	Extensions StringName = 0x1F03
)

// tokenName formats a token from its name table, falling back to hex.
func tokenName[K ~uint32](names map[K]string, k K) string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("0x%04X", uint32(k))
}
