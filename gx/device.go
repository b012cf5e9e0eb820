package gx

// Device is the graphics processor command generator.
//
// Every method appends to the hardware command FIFO (or updates the shadow
// registers that back it) and returns immediately. Calls take effect in the
// order they are made. A Device is driven from a single goroutine.
//
// # Implementation Contract
//
// Implementations must accept every method even when it has no visible
// effect on their output, and must not retain slices passed to SetArray,
// LoadTexObj or FlushRange beyond the lifetime the caller gives them: the
// caller owns that memory and may replace it after the next draw.
type Device interface {
	// Framebuffer setup and copy

	SetViewport(x, y, width, height, near, far float32)
	SetScissor(x, y, width, height uint32)
	SetDispCopySrc(left, top, width, height uint16)
	SetDispCopyDst(width, height uint16)
	SetDispCopyYScale(scale float32)
	SetFieldMode(field, halfAspect bool)
	SetDispCopyGamma(g Gamma)
	SetCopyClear(c Color, z uint32)
	CopyDisp(framebuffer int, clear bool)
	DrawDone()

	// Pixel engine

	SetZMode(enable bool, fn CompareFunc, update bool)
	SetCullMode(mode CullMode)
	SetBlendMode(mode BlendMode, src, dst BlendFactor, op LogicOp)
	SetAlphaCompare(comp0 CompareFunc, ref0 uint8, op AlphaOp, comp1 CompareFunc, ref1 uint8)
	SetColorUpdate(enable bool)
	SetAlphaUpdate(enable bool)
	SetPointSize(width uint8, offset PointOffset)

	// Transform unit

	LoadPosMtxImm(m Mtx, slot PosMtx)
	LoadNrmMtxImm(m Mtx, slot PosMtx)
	LoadProjectionMtx(m Mtx44, kind ProjectionType)
	LoadTexMtxImm(m Mtx, slot TexMtx, kind TexMtxType)

	// Vertex descriptors and arrays

	ClearVtxDesc()
	SetVtxDesc(attr Attr, typ AttrType)
	SetVtxAttrFmt(fmt VtxFmt, attr Attr, cnt CompCount, typ CompType, frac uint8)
	SetArray(attr Attr, data []byte, stride uint8)
	InvVtxCache()

	// Immediate submission

	Begin(prim Primitive, fmt VtxFmt, count uint16)
	Position1x16(index uint16)
	Normal1x16(index uint16)
	Color1x16(index uint16)
	TexCoord1x16(index uint16)
	End()

	// Texture environment

	SetNumTevStages(n uint8)
	SetTevOrder(stage TevStage, coord TexCoordID, texMap TexMapID, ch ChannelID)
	SetTevColorIn(stage TevStage, a, b, c, d TevColorArg)
	SetTevAlphaIn(stage TevStage, a, b, c, d TevAlphaArg)
	SetTevColorOp(stage TevStage, op TevOp, bias TevBias, scale TevScale, clamp bool, out TevReg)
	SetTevAlphaOp(stage TevStage, op TevOp, bias TevBias, scale TevScale, clamp bool, out TevReg)
	SetTevColor(reg TevReg, c Color)
	SetNumTexGens(n uint8)
	SetTexCoordGen(coord TexCoordID, typ TexGenType, src TexGenSrc, mtx TexMtx)

	// Lighting

	SetNumChans(n uint8)
	SetChanCtrl(ch ChannelID, enable bool, amb, mat ColorSrc, lights LightMask, diff DiffuseFn, attn AttnFn)
	SetChanAmbColor(ch ChannelID, c Color)
	SetChanMatColor(ch ChannelID, c Color)
	LoadLightObj(obj *LightObj, id LightMask)

	// Textures and memory

	LoadTexObj(obj *TexObj, slot TexMapID)
	InvalidateTexAll()
	FlushRange(data []byte)
}

// VideoMode describes the configured television mode.
type VideoMode struct {
	FBWidth        uint16
	EFBHeight      uint16
	XFBHeight      uint16
	VIHeight       uint16
	FieldRendering bool
	AntiAliasing   bool
}

// Interlaced reports whether the mode scans out two fields per frame.
func (m VideoMode) Interlaced() bool {
	return m.VIHeight == 2*m.XFBHeight
}

// YScale returns the vertical scale from the embedded framebuffer to the
// external framebuffer.
func (m VideoMode) YScale() float32 {
	if m.EFBHeight == 0 {
		return 1
	}
	return float32(m.XFBHeight) / float32(m.EFBHeight)
}

// NTSC480i is the standard 640×480 interlaced mode.
var NTSC480i = VideoMode{
	FBWidth:   640,
	EFBHeight: 480,
	XFBHeight: 480,
	VIHeight:  480,
}

// Display is the video interface: it owns the two external framebuffers
// and scans one of them out.
type Display interface {
	// Init powers up video, selects the preferred mode, allocates two
	// framebuffers and unblanks the screen. It is called at most once.
	Init() (VideoMode, error)

	// SetNextFramebuffer selects which framebuffer (0 or 1) is scanned out
	// from the next retrace on.
	SetNextFramebuffer(framebuffer int)

	// WaitVSync blocks until the next vertical retrace.
	WaitVSync()
}
