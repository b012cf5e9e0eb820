package record

import "github.com/gogpu/gxgl/gx"

func init() {
	gx.Register("record", func() gx.Device { return NewRecorder() })
	gx.Register("discard", func() gx.Device { return gx.NopDevice{} })
}

// Recorder is a gx.Device that captures every call as a typed command
// instead of writing the hardware FIFO. Use FinishRecording to obtain an
// immutable Recording that can be inspected or replayed onto another device.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
}

var _ gx.Device = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns an immutable Recording of everything captured so
// far and leaves the Recorder empty and ready for the next frame.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 256)
	r.resources = NewResourcePool()
	return rec
}

// Recording returns a view of the commands captured so far without
// finishing. The view shares memory with the Recorder and is invalidated
// by the next call.
func (r *Recorder) Recording() *Recording {
	return &Recording{commands: r.commands, resources: r.resources}
}

// Commands returns the commands captured so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of commands captured so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards everything captured so far.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// --------------------------------------------------------------------------
// Framebuffer setup and copy
// --------------------------------------------------------------------------

// SetViewport records a SetViewportCommand.
func (r *Recorder) SetViewport(x, y, width, height, near, far float32) {
	r.record(SetViewportCommand{X: x, Y: y, Width: width, Height: height, Near: near, Far: far})
}

// SetScissor records a SetScissorCommand.
func (r *Recorder) SetScissor(x, y, width, height uint32) {
	r.record(SetScissorCommand{X: x, Y: y, Width: width, Height: height})
}

// SetDispCopySrc records a SetDispCopySrcCommand.
func (r *Recorder) SetDispCopySrc(left, top, width, height uint16) {
	r.record(SetDispCopySrcCommand{Left: left, Top: top, Width: width, Height: height})
}

// SetDispCopyDst records a SetDispCopyDstCommand.
func (r *Recorder) SetDispCopyDst(width, height uint16) {
	r.record(SetDispCopyDstCommand{Width: width, Height: height})
}

// SetDispCopyYScale records a SetDispCopyYScaleCommand.
func (r *Recorder) SetDispCopyYScale(scale float32) {
	r.record(SetDispCopyYScaleCommand{Scale: scale})
}

// SetFieldMode records a SetFieldModeCommand.
func (r *Recorder) SetFieldMode(field, halfAspect bool) {
	r.record(SetFieldModeCommand{Field: field, HalfAspect: halfAspect})
}

// SetDispCopyGamma records a SetDispCopyGammaCommand.
func (r *Recorder) SetDispCopyGamma(g gx.Gamma) {
	r.record(SetDispCopyGammaCommand{Gamma: g})
}

// SetCopyClear records a SetCopyClearCommand.
func (r *Recorder) SetCopyClear(c gx.Color, z uint32) {
	r.record(SetCopyClearCommand{Color: c, Z: z})
}

// CopyDisp records a CopyDispCommand.
func (r *Recorder) CopyDisp(framebuffer int, clear bool) {
	r.record(CopyDispCommand{Framebuffer: framebuffer, Clear: clear})
}

// DrawDone records a DrawDoneCommand.
func (r *Recorder) DrawDone() {
	r.record(DrawDoneCommand{})
}

// --------------------------------------------------------------------------
// Pixel engine
// --------------------------------------------------------------------------

// SetZMode records a SetZModeCommand.
func (r *Recorder) SetZMode(enable bool, fn gx.CompareFunc, update bool) {
	r.record(SetZModeCommand{Enable: enable, Func: fn, Update: update})
}

// SetCullMode records a SetCullModeCommand.
func (r *Recorder) SetCullMode(mode gx.CullMode) {
	r.record(SetCullModeCommand{Mode: mode})
}

// SetBlendMode records a SetBlendModeCommand.
func (r *Recorder) SetBlendMode(mode gx.BlendMode, src, dst gx.BlendFactor, op gx.LogicOp) {
	r.record(SetBlendModeCommand{Mode: mode, Src: src, Dst: dst, Op: op})
}

// SetAlphaCompare records a SetAlphaCompareCommand.
func (r *Recorder) SetAlphaCompare(comp0 gx.CompareFunc, ref0 uint8, op gx.AlphaOp, comp1 gx.CompareFunc, ref1 uint8) {
	r.record(SetAlphaCompareCommand{Comp0: comp0, Ref0: ref0, Op: op, Comp1: comp1, Ref1: ref1})
}

// SetColorUpdate records a SetColorUpdateCommand.
func (r *Recorder) SetColorUpdate(enable bool) {
	r.record(SetColorUpdateCommand{Enable: enable})
}

// SetAlphaUpdate records a SetAlphaUpdateCommand.
func (r *Recorder) SetAlphaUpdate(enable bool) {
	r.record(SetAlphaUpdateCommand{Enable: enable})
}

// SetPointSize records a SetPointSizeCommand.
func (r *Recorder) SetPointSize(width uint8, offset gx.PointOffset) {
	r.record(SetPointSizeCommand{Width: width, Offset: offset})
}

// --------------------------------------------------------------------------
// Transform unit
// --------------------------------------------------------------------------

// LoadPosMtxImm records a LoadPosMtxImmCommand.
func (r *Recorder) LoadPosMtxImm(m gx.Mtx, slot gx.PosMtx) {
	r.record(LoadPosMtxImmCommand{Mtx: m, Slot: slot})
}

// LoadNrmMtxImm records a LoadNrmMtxImmCommand.
func (r *Recorder) LoadNrmMtxImm(m gx.Mtx, slot gx.PosMtx) {
	r.record(LoadNrmMtxImmCommand{Mtx: m, Slot: slot})
}

// LoadProjectionMtx records a LoadProjectionMtxCommand.
func (r *Recorder) LoadProjectionMtx(m gx.Mtx44, kind gx.ProjectionType) {
	r.record(LoadProjectionMtxCommand{Mtx: m, Kind: kind})
}

// LoadTexMtxImm records a LoadTexMtxImmCommand.
func (r *Recorder) LoadTexMtxImm(m gx.Mtx, slot gx.TexMtx, kind gx.TexMtxType) {
	r.record(LoadTexMtxImmCommand{Mtx: m, Slot: slot, Kind: kind})
}

// --------------------------------------------------------------------------
// Vertex descriptors and arrays
// --------------------------------------------------------------------------

// ClearVtxDesc records a ClearVtxDescCommand.
func (r *Recorder) ClearVtxDesc() {
	r.record(ClearVtxDescCommand{})
}

// SetVtxDesc records a SetVtxDescCommand.
func (r *Recorder) SetVtxDesc(attr gx.Attr, typ gx.AttrType) {
	r.record(SetVtxDescCommand{Attr: attr, AttrType: typ})
}

// SetVtxAttrFmt records a SetVtxAttrFmtCommand.
func (r *Recorder) SetVtxAttrFmt(fmt gx.VtxFmt, attr gx.Attr, cnt gx.CompCount, typ gx.CompType, frac uint8) {
	r.record(SetVtxAttrFmtCommand{Fmt: fmt, Attr: attr, Count: cnt, CompType: typ, Frac: frac})
}

// SetArray records a SetArrayCommand. The array bytes are copied.
func (r *Recorder) SetArray(attr gx.Attr, data []byte, stride uint8) {
	ref := r.resources.AddArray(data)
	r.record(SetArrayCommand{Attr: attr, Array: ref, Stride: stride})
}

// InvVtxCache records an InvVtxCacheCommand.
func (r *Recorder) InvVtxCache() {
	r.record(InvVtxCacheCommand{})
}

// --------------------------------------------------------------------------
// Immediate submission
// --------------------------------------------------------------------------

// Begin records a BeginCommand.
func (r *Recorder) Begin(prim gx.Primitive, fmt gx.VtxFmt, count uint16) {
	r.record(BeginCommand{Prim: prim, Fmt: fmt, Count: count})
}

// Position1x16 records a position IndexCommand.
func (r *Recorder) Position1x16(index uint16) {
	r.record(IndexCommand{Attr: gx.AttrPos, Index: index})
}

// Normal1x16 records a normal IndexCommand.
func (r *Recorder) Normal1x16(index uint16) {
	r.record(IndexCommand{Attr: gx.AttrNrm, Index: index})
}

// Color1x16 records a color IndexCommand.
func (r *Recorder) Color1x16(index uint16) {
	r.record(IndexCommand{Attr: gx.AttrClr0, Index: index})
}

// TexCoord1x16 records a texture coordinate IndexCommand.
func (r *Recorder) TexCoord1x16(index uint16) {
	r.record(IndexCommand{Attr: gx.AttrTex0, Index: index})
}

// End records an EndCommand.
func (r *Recorder) End() {
	r.record(EndCommand{})
}

// --------------------------------------------------------------------------
// Texture environment
// --------------------------------------------------------------------------

// SetNumTevStages records a SetNumTevStagesCommand.
func (r *Recorder) SetNumTevStages(n uint8) {
	r.record(SetNumTevStagesCommand{N: n})
}

// SetTevOrder records a SetTevOrderCommand.
func (r *Recorder) SetTevOrder(stage gx.TevStage, coord gx.TexCoordID, texMap gx.TexMapID, ch gx.ChannelID) {
	r.record(SetTevOrderCommand{Stage: stage, Coord: coord, TexMap: texMap, Channel: ch})
}

// SetTevColorIn records a SetTevColorInCommand.
func (r *Recorder) SetTevColorIn(stage gx.TevStage, a, b, c, d gx.TevColorArg) {
	r.record(SetTevColorInCommand{Stage: stage, A: a, B: b, C: c, D: d})
}

// SetTevAlphaIn records a SetTevAlphaInCommand.
func (r *Recorder) SetTevAlphaIn(stage gx.TevStage, a, b, c, d gx.TevAlphaArg) {
	r.record(SetTevAlphaInCommand{Stage: stage, A: a, B: b, C: c, D: d})
}

// SetTevColorOp records a SetTevColorOpCommand.
func (r *Recorder) SetTevColorOp(stage gx.TevStage, op gx.TevOp, bias gx.TevBias, scale gx.TevScale, clamp bool, out gx.TevReg) {
	r.record(SetTevColorOpCommand{Stage: stage, Op: op, Bias: bias, Scale: scale, Clamp: clamp, Out: out})
}

// SetTevAlphaOp records a SetTevAlphaOpCommand.
func (r *Recorder) SetTevAlphaOp(stage gx.TevStage, op gx.TevOp, bias gx.TevBias, scale gx.TevScale, clamp bool, out gx.TevReg) {
	r.record(SetTevAlphaOpCommand{Stage: stage, Op: op, Bias: bias, Scale: scale, Clamp: clamp, Out: out})
}

// SetTevColor records a SetTevColorCommand.
func (r *Recorder) SetTevColor(reg gx.TevReg, c gx.Color) {
	r.record(SetTevColorCommand{Reg: reg, Color: c})
}

// SetNumTexGens records a SetNumTexGensCommand.
func (r *Recorder) SetNumTexGens(n uint8) {
	r.record(SetNumTexGensCommand{N: n})
}

// SetTexCoordGen records a SetTexCoordGenCommand.
func (r *Recorder) SetTexCoordGen(coord gx.TexCoordID, typ gx.TexGenType, src gx.TexGenSrc, mtx gx.TexMtx) {
	r.record(SetTexCoordGenCommand{Coord: coord, Gen: typ, Src: src, Mtx: mtx})
}

// --------------------------------------------------------------------------
// Lighting
// --------------------------------------------------------------------------

// SetNumChans records a SetNumChansCommand.
func (r *Recorder) SetNumChans(n uint8) {
	r.record(SetNumChansCommand{N: n})
}

// SetChanCtrl records a SetChanCtrlCommand.
func (r *Recorder) SetChanCtrl(ch gx.ChannelID, enable bool, amb, mat gx.ColorSrc, lights gx.LightMask, diff gx.DiffuseFn, attn gx.AttnFn) {
	r.record(SetChanCtrlCommand{Channel: ch, Enable: enable, Amb: amb, Mat: mat, Lights: lights, Diff: diff, Attn: attn})
}

// SetChanAmbColor records a SetChanAmbColorCommand.
func (r *Recorder) SetChanAmbColor(ch gx.ChannelID, c gx.Color) {
	r.record(SetChanAmbColorCommand{Channel: ch, Color: c})
}

// SetChanMatColor records a SetChanMatColorCommand.
func (r *Recorder) SetChanMatColor(ch gx.ChannelID, c gx.Color) {
	r.record(SetChanMatColorCommand{Channel: ch, Color: c})
}

// LoadLightObj records a LoadLightObjCommand. The light is copied.
func (r *Recorder) LoadLightObj(obj *gx.LightObj, id gx.LightMask) {
	var l gx.LightObj
	if obj != nil {
		l = *obj
	}
	r.record(LoadLightObjCommand{Light: l, ID: id})
}

// --------------------------------------------------------------------------
// Textures and memory
// --------------------------------------------------------------------------

// LoadTexObj records a LoadTexObjCommand. The texture image is copied.
func (r *Recorder) LoadTexObj(obj *gx.TexObj, slot gx.TexMapID) {
	ref := r.resources.AddTexObj(obj)
	r.record(LoadTexObjCommand{Tex: ref, Slot: slot})
}

// InvalidateTexAll records an InvalidateTexAllCommand.
func (r *Recorder) InvalidateTexAll() {
	r.record(InvalidateTexAllCommand{})
}

// FlushRange records a FlushRangeCommand.
func (r *Recorder) FlushRange(data []byte) {
	r.record(FlushRangeCommand{Size: len(data)})
}
