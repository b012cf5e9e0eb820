package gx

// Primitive is a hardware primitive type passed to Device.Begin.
type Primitive uint8

const (
	Quads         Primitive = 0x80
	Triangles     Primitive = 0x90
	TriangleStrip Primitive = 0x98
	TriangleFan   Primitive = 0xA0
	Lines         Primitive = 0xA8
	LineStrip     Primitive = 0xB0
	Points        Primitive = 0xB8
)

// String returns the GX name of the primitive.
func (p Primitive) String() string {
	switch p {
	case Quads:
		return "QUADS"
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLESTRIP"
	case TriangleFan:
		return "TRIANGLEFAN"
	case Lines:
		return "LINES"
	case LineStrip:
		return "LINESTRIP"
	case Points:
		return "POINTS"
	}
	return "Unknown"
}

// VtxFmt selects one of the eight vertex attribute format tables.
type VtxFmt uint8

// VtxFmt0 is the only format table gxgl programs.
const VtxFmt0 VtxFmt = 0

// Attr identifies a vertex attribute.
type Attr uint8

const (
	AttrPos  Attr = 9
	AttrNrm  Attr = 10
	AttrClr0 Attr = 11
	AttrClr1 Attr = 12
	AttrTex0 Attr = 13
)

var attrNames = map[Attr]string{
	AttrPos:  "POS",
	AttrNrm:  "NRM",
	AttrClr0: "CLR0",
	AttrClr1: "CLR1",
	AttrTex0: "TEX0",
}

// String returns the GX name of the attribute.
func (a Attr) String() string {
	if s, ok := attrNames[a]; ok {
		return s
	}
	return "Unknown"
}

// AttrType describes how an attribute is supplied per vertex.
type AttrType uint8

const (
	AttrNone    AttrType = iota // attribute not present
	AttrDirect                  // data inline in the FIFO
	AttrIndex8                  // 8-bit index into the array
	AttrIndex16                 // 16-bit index into the array
)

// CompCount is the per-attribute component count selector. Its meaning
// depends on the attribute: PosXY/PosXYZ, NrmXYZ, ClrRGB/ClrRGBA, TexS/TexST.
type CompCount uint8

const (
	PosXY   CompCount = 0
	PosXYZ  CompCount = 1
	NrmXYZ  CompCount = 0
	ClrRGB  CompCount = 0
	ClrRGBA CompCount = 1
	TexS    CompCount = 0
	TexST   CompCount = 1
)

// CompType is the storage format of an attribute component. Positions,
// normals and texture coordinates use U8..F32; colors use RGB565..RGBA8.
// The two ranges share encodings, as on the hardware.
type CompType uint8

const (
	U8  CompType = 0
	S8  CompType = 1
	U16 CompType = 2
	S16 CompType = 3
	F32 CompType = 4

	RGB565 CompType = 0
	RGB8   CompType = 1
	RGBX8  CompType = 2
	RGBA4  CompType = 3
	RGBA6  CompType = 4
	RGBA8  CompType = 5
)

// CompareFunc is a depth or alpha comparison.
type CompareFunc uint8

const (
	Never CompareFunc = iota
	Less
	Equal
	LEqual
	Greater
	NEqual
	GEqual
	Always
)

var compareNames = [...]string{
	Never:   "NEVER",
	Less:    "LESS",
	Equal:   "EQUAL",
	LEqual:  "LEQUAL",
	Greater: "GREATER",
	NEqual:  "NEQUAL",
	GEqual:  "GEQUAL",
	Always:  "ALWAYS",
}

// String returns the GX name of the comparison.
func (c CompareFunc) String() string {
	if int(c) < len(compareNames) {
		return compareNames[c]
	}
	return "Unknown"
}

// AlphaOp combines the two alpha comparisons.
type AlphaOp uint8

const (
	AlphaOpAnd AlphaOp = iota
	AlphaOpOr
	AlphaOpXor
	AlphaOpXnor
)

// CullMode selects which winding is discarded. GX treats clockwise
// polygons as front facing.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullAll
)

var cullNames = [...]string{
	CullNone:  "NONE",
	CullFront: "FRONT",
	CullBack:  "BACK",
	CullAll:   "ALL",
}

// String returns the GX name of the cull mode.
func (c CullMode) String() string {
	if int(c) < len(cullNames) {
		return cullNames[c]
	}
	return "Unknown"
}

// BlendMode is the pixel engine blend equation.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendLogic
	BlendSubtract
)

// BlendFactor is a source or destination blend factor.
type BlendFactor uint8

const (
	BlZero BlendFactor = iota
	BlOne
	BlSrcClr
	BlInvSrcClr
	BlSrcAlpha
	BlInvSrcAlpha
	BlDstAlpha
	BlInvDstAlpha
)

// BlDstClr and BlInvDstClr share encodings with the source-color factors;
// the hardware interprets them by position (source or destination slot).
const (
	BlDstClr    = BlSrcClr
	BlInvDstClr = BlInvSrcClr
)

// LogicOp is the pixel engine logic operation used with BlendLogic.
type LogicOp uint8

// LogicClear is the only logic op gxgl issues.
const LogicClear LogicOp = 0

// WrapMode is a texture coordinate wrap mode.
type WrapMode uint8

const (
	Clamp WrapMode = iota
	Repeat
	Mirror
)

var wrapNames = [...]string{Clamp: "CLAMP", Repeat: "REPEAT", Mirror: "MIRROR"}

// String returns the GX name of the wrap mode.
func (w WrapMode) String() string {
	if int(w) < len(wrapNames) {
		return wrapNames[w]
	}
	return "Unknown"
}

// TexFilter is a texture minification or magnification filter.
type TexFilter uint8

const (
	Near TexFilter = iota
	Linear
	NearMipNear
	LinMipNear
	NearMipLin
	LinMipLin
)

var filterNames = [...]string{
	Near:        "NEAR",
	Linear:      "LINEAR",
	NearMipNear: "NEAR_MIP_NEAR",
	LinMipNear:  "LIN_MIP_NEAR",
	NearMipLin:  "NEAR_MIP_LIN",
	LinMipLin:   "LIN_MIP_LIN",
}

// String returns the GX name of the filter.
func (f TexFilter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return "Unknown"
}

// TexFmt is a hardware texel format.
type TexFmt uint8

const (
	TexFmtI4     TexFmt = 0x0
	TexFmtI8     TexFmt = 0x1
	TexFmtIA4    TexFmt = 0x2
	TexFmtIA8    TexFmt = 0x3
	TexFmtRGB565 TexFmt = 0x4
	TexFmtRGB5A3 TexFmt = 0x5
	TexFmtRGBA8  TexFmt = 0x6
)

// TexMapID names a texture map slot.
type TexMapID uint8

const (
	TexMap0    TexMapID = 0
	TexMapNull TexMapID = 0xFF
)

// TexCoordID names a texture coordinate generator output.
type TexCoordID uint8

const (
	TexCoord0    TexCoordID = 0
	TexCoordNull TexCoordID = 0xFF
)

// TexGenType is the texture coordinate generation function.
type TexGenType uint8

const (
	TexGenMtx3x4 TexGenType = 0
	TexGenMtx2x4 TexGenType = 1
)

// TexGenSrc is the input of a texture coordinate generator.
type TexGenSrc uint8

const (
	TexGenSrcPos  TexGenSrc = 0
	TexGenSrcNrm  TexGenSrc = 1
	TexGenSrcTex0 TexGenSrc = 4
)

// TexMtx names a texture matrix slot.
type TexMtx uint8

const (
	TexMtx0     TexMtx = 30
	TexIdentity TexMtx = 60
)

// TexMtxType is the shape of a loaded texture matrix.
type TexMtxType uint8

const (
	Mtx3x4 TexMtxType = 0
	Mtx2x4 TexMtxType = 1
)

// PosMtx names a position/normal matrix slot.
type PosMtx uint8

// PNMtx0 is the only position/normal slot gxgl uses.
const PNMtx0 PosMtx = 0

// ProjectionType selects how the projection matrix is interpreted.
type ProjectionType uint8

const (
	Perspective ProjectionType = iota
	Orthographic
)

// String returns the GX name of the projection type.
func (p ProjectionType) String() string {
	if p == Orthographic {
		return "ORTHOGRAPHIC"
	}
	return "PERSPECTIVE"
}

// TevStage names a TEV stage.
type TevStage uint8

const (
	TevStage0 TevStage = iota
	TevStage1
)

// TevColorArg is a color input of a TEV stage.
type TevColorArg uint8

const (
	CCCPrev TevColorArg = 0
	CCAPrev TevColorArg = 1
	CCC0    TevColorArg = 2
	CCA0    TevColorArg = 3
	CCC1    TevColorArg = 4
	CCA1    TevColorArg = 5
	CCTexC  TevColorArg = 8
	CCTexA  TevColorArg = 9
	CCRasC  TevColorArg = 10
	CCRasA  TevColorArg = 11
	CCOne   TevColorArg = 12
	CCHalf  TevColorArg = 13
	CCZero  TevColorArg = 15
)

var colorArgNames = map[TevColorArg]string{
	CCCPrev: "CPREV", CCAPrev: "APREV", CCC0: "C0", CCA0: "A0",
	CCC1: "C1", CCA1: "A1", CCTexC: "TEXC", CCTexA: "TEXA",
	CCRasC: "RASC", CCRasA: "RASA", CCOne: "ONE", CCHalf: "HALF",
	CCZero: "ZERO",
}

// String returns the GX name of the color argument.
func (a TevColorArg) String() string {
	if s, ok := colorArgNames[a]; ok {
		return s
	}
	return "Unknown"
}

// TevAlphaArg is an alpha input of a TEV stage.
type TevAlphaArg uint8

const (
	CAAPrev TevAlphaArg = 0
	CAA0    TevAlphaArg = 1
	CAA1    TevAlphaArg = 2
	CATexA  TevAlphaArg = 4
	CARasA  TevAlphaArg = 5
	CAZero  TevAlphaArg = 7
)

var alphaArgNames = map[TevAlphaArg]string{
	CAAPrev: "APREV", CAA0: "A0", CAA1: "A1", CATexA: "TEXA",
	CARasA: "RASA", CAZero: "ZERO",
}

// String returns the GX name of the alpha argument.
func (a TevAlphaArg) String() string {
	if s, ok := alphaArgNames[a]; ok {
		return s
	}
	return "Unknown"
}

// TevOp is the TEV combine operation.
type TevOp uint8

const (
	TevAdd TevOp = 0
	TevSub TevOp = 1
)

// TevBias is added to a TEV stage result.
type TevBias uint8

// TevBiasZero adds nothing.
const TevBiasZero TevBias = 0

// TevScale multiplies a TEV stage result.
type TevScale uint8

// TevScale1 leaves the result unscaled.
const TevScale1 TevScale = 0

// TevReg is a TEV color register.
type TevReg uint8

const (
	TevPrev TevReg = iota
	TevReg0
	TevReg1
	TevReg2
)

// ChannelID names a lighting color channel.
type ChannelID uint8

const (
	Color0    ChannelID = 0
	Color1    ChannelID = 1
	Color0A0  ChannelID = 4
	Color1A1  ChannelID = 5
	ColorNull ChannelID = 0xFF
)

// ColorSrc selects a channel color source.
type ColorSrc uint8

const (
	SrcReg ColorSrc = iota
	SrcVtx
)

// LightMask is a bitmask of hardware lights, bit n for light n.
type LightMask uint8

// Light0 is the first hardware light.
const Light0 LightMask = 1

// DiffuseFn is the diffuse lighting function.
type DiffuseFn uint8

const (
	DfNone DiffuseFn = iota
	DfSign
	DfClamp
)

// AttnFn is the light attenuation function.
type AttnFn uint8

const (
	AfSpec AttnFn = iota
	AfSpot
	AfNone
)

// PointOffset is the texture coordinate offset applied to points.
type PointOffset uint8

// ToZero leaves point texture coordinates unmodified.
const ToZero PointOffset = 0

// Gamma is the display copy gamma.
type Gamma uint8

// Gamma10 is linear output.
const Gamma10 Gamma = 0
