package record

import "github.com/gogpu/gxgl/gx"

// CommandType identifies the type of a command.
// Each command type corresponds to one gx.Device method.
type CommandType uint8

const (
	// Framebuffer setup and copy
	CmdSetViewport       CommandType = iota // Set viewport transform
	CmdSetScissor                           // Set scissor box
	CmdSetDispCopySrc                       // Set copy source rectangle
	CmdSetDispCopyDst                       // Set copy destination size
	CmdSetDispCopyYScale                    // Set vertical copy scale
	CmdSetFieldMode                         // Set field rendering mode
	CmdSetDispCopyGamma                     // Set copy gamma
	CmdSetCopyClear                         // Set clear color and depth
	CmdCopyDisp                             // Copy EFB to external framebuffer
	CmdDrawDone                             // Wait for the FIFO to drain

	// Pixel engine
	CmdSetZMode        // Set depth test/update
	CmdSetCullMode     // Set cull mode
	CmdSetBlendMode    // Set blend equation
	CmdSetAlphaCompare // Set alpha test
	CmdSetColorUpdate  // Enable color writes
	CmdSetAlphaUpdate  // Enable alpha writes
	CmdSetPointSize    // Set point size

	// Transform unit
	CmdLoadPosMtxImm     // Load position matrix
	CmdLoadNrmMtxImm     // Load normal matrix
	CmdLoadProjectionMtx // Load projection matrix
	CmdLoadTexMtxImm     // Load texture matrix

	// Vertex descriptors and arrays
	CmdClearVtxDesc  // Clear all vertex descriptors
	CmdSetVtxDesc    // Set one vertex descriptor
	CmdSetVtxAttrFmt // Set attribute format
	CmdSetArray      // Register attribute array
	CmdInvVtxCache   // Invalidate vertex cache

	// Immediate submission
	CmdBegin    // Begin primitive
	CmdPosition // Position index
	CmdNormal   // Normal index
	CmdColor    // Color index
	CmdTexCoord // Texture coordinate index
	CmdEnd      // End primitive

	// Texture environment
	CmdSetNumTevStages // Set active TEV stages
	CmdSetTevOrder     // Set TEV stage inputs
	CmdSetTevColorIn   // Set TEV color arguments
	CmdSetTevAlphaIn   // Set TEV alpha arguments
	CmdSetTevColorOp   // Set TEV color operation
	CmdSetTevAlphaOp   // Set TEV alpha operation
	CmdSetTevColor     // Set TEV color register
	CmdSetNumTexGens   // Set active texcoord generators
	CmdSetTexCoordGen  // Set texcoord generator

	// Lighting
	CmdSetNumChans     // Set active color channels
	CmdSetChanCtrl     // Set channel lighting control
	CmdSetChanAmbColor // Set channel ambient color
	CmdSetChanMatColor // Set channel material color
	CmdLoadLightObj    // Load light

	// Textures and memory
	CmdLoadTexObj       // Load texture
	CmdInvalidateTexAll // Invalidate texture cache
	CmdFlushRange       // Flush CPU cache range
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetViewport:       "SetViewport",
	CmdSetScissor:        "SetScissor",
	CmdSetDispCopySrc:    "SetDispCopySrc",
	CmdSetDispCopyDst:    "SetDispCopyDst",
	CmdSetDispCopyYScale: "SetDispCopyYScale",
	CmdSetFieldMode:      "SetFieldMode",
	CmdSetDispCopyGamma:  "SetDispCopyGamma",
	CmdSetCopyClear:      "SetCopyClear",
	CmdCopyDisp:          "CopyDisp",
	CmdDrawDone:          "DrawDone",
	CmdSetZMode:          "SetZMode",
	CmdSetCullMode:       "SetCullMode",
	CmdSetBlendMode:      "SetBlendMode",
	CmdSetAlphaCompare:   "SetAlphaCompare",
	CmdSetColorUpdate:    "SetColorUpdate",
	CmdSetAlphaUpdate:    "SetAlphaUpdate",
	CmdSetPointSize:      "SetPointSize",
	CmdLoadPosMtxImm:     "LoadPosMtxImm",
	CmdLoadNrmMtxImm:     "LoadNrmMtxImm",
	CmdLoadProjectionMtx: "LoadProjectionMtx",
	CmdLoadTexMtxImm:     "LoadTexMtxImm",
	CmdClearVtxDesc:      "ClearVtxDesc",
	CmdSetVtxDesc:        "SetVtxDesc",
	CmdSetVtxAttrFmt:     "SetVtxAttrFmt",
	CmdSetArray:          "SetArray",
	CmdInvVtxCache:       "InvVtxCache",
	CmdBegin:             "Begin",
	CmdPosition:          "Position1x16",
	CmdNormal:            "Normal1x16",
	CmdColor:             "Color1x16",
	CmdTexCoord:          "TexCoord1x16",
	CmdEnd:               "End",
	CmdSetNumTevStages:   "SetNumTevStages",
	CmdSetTevOrder:       "SetTevOrder",
	CmdSetTevColorIn:     "SetTevColorIn",
	CmdSetTevAlphaIn:     "SetTevAlphaIn",
	CmdSetTevColorOp:     "SetTevColorOp",
	CmdSetTevAlphaOp:     "SetTevAlphaOp",
	CmdSetTevColor:       "SetTevColor",
	CmdSetNumTexGens:     "SetNumTexGens",
	CmdSetTexCoordGen:    "SetTexCoordGen",
	CmdSetNumChans:       "SetNumChans",
	CmdSetChanCtrl:       "SetChanCtrl",
	CmdSetChanAmbColor:   "SetChanAmbColor",
	CmdSetChanMatColor:   "SetChanMatColor",
	CmdLoadLightObj:      "LoadLightObj",
	CmdLoadTexObj:        "LoadTexObj",
	CmdInvalidateTexAll:  "InvalidateTexAll",
	CmdFlushRange:        "FlushRange",
}

// commandTypeCount is the number of defined command types.
const commandTypeCount = len(commandTypeNames)

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ArrayRef is a reference to an attribute array snapshot in the resource pool.
type ArrayRef uint32

// TexRef is a reference to a texture object snapshot in the resource pool.
type TexRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid array.
func (r ArrayRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid texture.
func (r TexRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// Framebuffer Commands
// --------------------------------------------------------------------------

// SetViewportCommand sets the viewport transform.
type SetViewportCommand struct {
	X, Y, Width, Height, Near, Far float32
}

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// SetScissorCommand sets the scissor box.
type SetScissorCommand struct {
	X, Y, Width, Height uint32
}

// Type implements Command.
func (SetScissorCommand) Type() CommandType { return CmdSetScissor }

// SetDispCopySrcCommand sets the EFB region copied to the display.
type SetDispCopySrcCommand struct {
	Left, Top, Width, Height uint16
}

// Type implements Command.
func (SetDispCopySrcCommand) Type() CommandType { return CmdSetDispCopySrc }

// SetDispCopyDstCommand sets the external framebuffer size.
type SetDispCopyDstCommand struct {
	Width, Height uint16
}

// Type implements Command.
func (SetDispCopyDstCommand) Type() CommandType { return CmdSetDispCopyDst }

// SetDispCopyYScaleCommand sets the vertical scale applied during copy.
type SetDispCopyYScaleCommand struct {
	Scale float32
}

// Type implements Command.
func (SetDispCopyYScaleCommand) Type() CommandType { return CmdSetDispCopyYScale }

// SetFieldModeCommand configures field rendering.
type SetFieldModeCommand struct {
	Field      bool
	HalfAspect bool
}

// Type implements Command.
func (SetFieldModeCommand) Type() CommandType { return CmdSetFieldMode }

// SetDispCopyGammaCommand sets the copy gamma.
type SetDispCopyGammaCommand struct {
	Gamma gx.Gamma
}

// Type implements Command.
func (SetDispCopyGammaCommand) Type() CommandType { return CmdSetDispCopyGamma }

// SetCopyClearCommand sets the color and depth the EFB is cleared to on copy.
type SetCopyClearCommand struct {
	Color gx.Color
	Z     uint32
}

// Type implements Command.
func (SetCopyClearCommand) Type() CommandType { return CmdSetCopyClear }

// CopyDispCommand copies the EFB into an external framebuffer.
type CopyDispCommand struct {
	Framebuffer int
	Clear       bool
}

// Type implements Command.
func (CopyDispCommand) Type() CommandType { return CmdCopyDisp }

// DrawDoneCommand waits until all queued commands have executed.
type DrawDoneCommand struct{}

// Type implements Command.
func (DrawDoneCommand) Type() CommandType { return CmdDrawDone }

// --------------------------------------------------------------------------
// Pixel Engine Commands
// --------------------------------------------------------------------------

// SetZModeCommand configures the depth test.
type SetZModeCommand struct {
	Enable bool
	Func   gx.CompareFunc
	Update bool
}

// Type implements Command.
func (SetZModeCommand) Type() CommandType { return CmdSetZMode }

// SetCullModeCommand selects the culled winding.
type SetCullModeCommand struct {
	Mode gx.CullMode
}

// Type implements Command.
func (SetCullModeCommand) Type() CommandType { return CmdSetCullMode }

// SetBlendModeCommand sets the blend equation.
type SetBlendModeCommand struct {
	Mode gx.BlendMode
	Src  gx.BlendFactor
	Dst  gx.BlendFactor
	Op   gx.LogicOp
}

// Type implements Command.
func (SetBlendModeCommand) Type() CommandType { return CmdSetBlendMode }

// SetAlphaCompareCommand configures the alpha test.
type SetAlphaCompareCommand struct {
	Comp0 gx.CompareFunc
	Ref0  uint8
	Op    gx.AlphaOp
	Comp1 gx.CompareFunc
	Ref1  uint8
}

// Type implements Command.
func (SetAlphaCompareCommand) Type() CommandType { return CmdSetAlphaCompare }

// SetColorUpdateCommand enables or disables color writes.
type SetColorUpdateCommand struct {
	Enable bool
}

// Type implements Command.
func (SetColorUpdateCommand) Type() CommandType { return CmdSetColorUpdate }

// SetAlphaUpdateCommand enables or disables alpha writes.
type SetAlphaUpdateCommand struct {
	Enable bool
}

// Type implements Command.
func (SetAlphaUpdateCommand) Type() CommandType { return CmdSetAlphaUpdate }

// SetPointSizeCommand sets the point width in 1/6 pixel units.
type SetPointSizeCommand struct {
	Width  uint8
	Offset gx.PointOffset
}

// Type implements Command.
func (SetPointSizeCommand) Type() CommandType { return CmdSetPointSize }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// LoadPosMtxImmCommand loads a position matrix.
type LoadPosMtxImmCommand struct {
	Mtx  gx.Mtx
	Slot gx.PosMtx
}

// Type implements Command.
func (LoadPosMtxImmCommand) Type() CommandType { return CmdLoadPosMtxImm }

// LoadNrmMtxImmCommand loads a normal matrix.
type LoadNrmMtxImmCommand struct {
	Mtx  gx.Mtx
	Slot gx.PosMtx
}

// Type implements Command.
func (LoadNrmMtxImmCommand) Type() CommandType { return CmdLoadNrmMtxImm }

// LoadProjectionMtxCommand loads the projection matrix.
type LoadProjectionMtxCommand struct {
	Mtx  gx.Mtx44
	Kind gx.ProjectionType
}

// Type implements Command.
func (LoadProjectionMtxCommand) Type() CommandType { return CmdLoadProjectionMtx }

// LoadTexMtxImmCommand loads a texture matrix.
type LoadTexMtxImmCommand struct {
	Mtx  gx.Mtx
	Slot gx.TexMtx
	Kind gx.TexMtxType
}

// Type implements Command.
func (LoadTexMtxImmCommand) Type() CommandType { return CmdLoadTexMtxImm }

// --------------------------------------------------------------------------
// Vertex Commands
// --------------------------------------------------------------------------

// ClearVtxDescCommand sets every vertex descriptor to none.
type ClearVtxDescCommand struct{}

// Type implements Command.
func (ClearVtxDescCommand) Type() CommandType { return CmdClearVtxDesc }

// SetVtxDescCommand sets how one attribute is supplied.
type SetVtxDescCommand struct {
	Attr     gx.Attr
	AttrType gx.AttrType
}

// Type implements Command.
func (SetVtxDescCommand) Type() CommandType { return CmdSetVtxDesc }

// SetVtxAttrFmtCommand sets the storage format of one attribute.
type SetVtxAttrFmtCommand struct {
	Fmt      gx.VtxFmt
	Attr     gx.Attr
	Count    gx.CompCount
	CompType gx.CompType
	Frac     uint8
}

// Type implements Command.
func (SetVtxAttrFmtCommand) Type() CommandType { return CmdSetVtxAttrFmt }

// SetArrayCommand registers an attribute array.
type SetArrayCommand struct {
	Attr gx.Attr
	// Array references the array snapshot in the resource pool.
	Array  ArrayRef
	Stride uint8
}

// Type implements Command.
func (SetArrayCommand) Type() CommandType { return CmdSetArray }

// InvVtxCacheCommand invalidates the vertex cache.
type InvVtxCacheCommand struct{}

// Type implements Command.
func (InvVtxCacheCommand) Type() CommandType { return CmdInvVtxCache }

// BeginCommand starts a primitive.
type BeginCommand struct {
	Prim  gx.Primitive
	Fmt   gx.VtxFmt
	Count uint16
}

// Type implements Command.
func (BeginCommand) Type() CommandType { return CmdBegin }

// IndexCommand submits one 16-bit attribute index. The attribute selects
// the command type.
type IndexCommand struct {
	Attr  gx.Attr
	Index uint16
}

// Type implements Command.
func (c IndexCommand) Type() CommandType {
	switch c.Attr {
	case gx.AttrNrm:
		return CmdNormal
	case gx.AttrClr0:
		return CmdColor
	case gx.AttrTex0:
		return CmdTexCoord
	}
	return CmdPosition
}

// EndCommand finishes a primitive.
type EndCommand struct{}

// Type implements Command.
func (EndCommand) Type() CommandType { return CmdEnd }

// --------------------------------------------------------------------------
// Texture Environment Commands
// --------------------------------------------------------------------------

// SetNumTevStagesCommand sets the number of active TEV stages.
type SetNumTevStagesCommand struct {
	N uint8
}

// Type implements Command.
func (SetNumTevStagesCommand) Type() CommandType { return CmdSetNumTevStages }

// SetTevOrderCommand selects the texcoord, texture map and color channel
// feeding a stage.
type SetTevOrderCommand struct {
	Stage   gx.TevStage
	Coord   gx.TexCoordID
	TexMap  gx.TexMapID
	Channel gx.ChannelID
}

// Type implements Command.
func (SetTevOrderCommand) Type() CommandType { return CmdSetTevOrder }

// SetTevColorInCommand sets the color arguments of a stage.
type SetTevColorInCommand struct {
	Stage      gx.TevStage
	A, B, C, D gx.TevColorArg
}

// Type implements Command.
func (SetTevColorInCommand) Type() CommandType { return CmdSetTevColorIn }

// SetTevAlphaInCommand sets the alpha arguments of a stage.
type SetTevAlphaInCommand struct {
	Stage      gx.TevStage
	A, B, C, D gx.TevAlphaArg
}

// Type implements Command.
func (SetTevAlphaInCommand) Type() CommandType { return CmdSetTevAlphaIn }

// TevOpCommand is the shared shape of the color and alpha operation
// commands.
type TevOpCommand struct {
	Stage gx.TevStage
	Op    gx.TevOp
	Bias  gx.TevBias
	Scale gx.TevScale
	Clamp bool
	Out   gx.TevReg
}

// SetTevColorOpCommand sets the color operation of a stage.
type SetTevColorOpCommand TevOpCommand

// Type implements Command.
func (SetTevColorOpCommand) Type() CommandType { return CmdSetTevColorOp }

// SetTevAlphaOpCommand sets the alpha operation of a stage.
type SetTevAlphaOpCommand TevOpCommand

// Type implements Command.
func (SetTevAlphaOpCommand) Type() CommandType { return CmdSetTevAlphaOp }

// SetTevColorCommand loads a TEV color register.
type SetTevColorCommand struct {
	Reg   gx.TevReg
	Color gx.Color
}

// Type implements Command.
func (SetTevColorCommand) Type() CommandType { return CmdSetTevColor }

// SetNumTexGensCommand sets the number of active texcoord generators.
type SetNumTexGensCommand struct {
	N uint8
}

// Type implements Command.
func (SetNumTexGensCommand) Type() CommandType { return CmdSetNumTexGens }

// SetTexCoordGenCommand configures a texcoord generator.
type SetTexCoordGenCommand struct {
	Coord gx.TexCoordID
	Gen   gx.TexGenType
	Src   gx.TexGenSrc
	Mtx   gx.TexMtx
}

// Type implements Command.
func (SetTexCoordGenCommand) Type() CommandType { return CmdSetTexCoordGen }

// --------------------------------------------------------------------------
// Lighting Commands
// --------------------------------------------------------------------------

// SetNumChansCommand sets the number of active color channels.
type SetNumChansCommand struct {
	N uint8
}

// Type implements Command.
func (SetNumChansCommand) Type() CommandType { return CmdSetNumChans }

// SetChanCtrlCommand configures lighting for a channel.
type SetChanCtrlCommand struct {
	Channel gx.ChannelID
	Enable  bool
	Amb     gx.ColorSrc
	Mat     gx.ColorSrc
	Lights  gx.LightMask
	Diff    gx.DiffuseFn
	Attn    gx.AttnFn
}

// Type implements Command.
func (SetChanCtrlCommand) Type() CommandType { return CmdSetChanCtrl }

// SetChanAmbColorCommand sets a channel ambient color register.
type SetChanAmbColorCommand struct {
	Channel gx.ChannelID
	Color   gx.Color
}

// Type implements Command.
func (SetChanAmbColorCommand) Type() CommandType { return CmdSetChanAmbColor }

// SetChanMatColorCommand sets a channel material color register.
type SetChanMatColorCommand struct {
	Channel gx.ChannelID
	Color   gx.Color
}

// Type implements Command.
func (SetChanMatColorCommand) Type() CommandType { return CmdSetChanMatColor }

// LoadLightObjCommand loads a light into the hardware.
type LoadLightObjCommand struct {
	Light gx.LightObj
	ID    gx.LightMask
}

// Type implements Command.
func (LoadLightObjCommand) Type() CommandType { return CmdLoadLightObj }

// --------------------------------------------------------------------------
// Texture and Memory Commands
// --------------------------------------------------------------------------

// LoadTexObjCommand loads a texture into a texture map slot.
type LoadTexObjCommand struct {
	// Tex references the texture snapshot in the resource pool.
	Tex  TexRef
	Slot gx.TexMapID
}

// Type implements Command.
func (LoadTexObjCommand) Type() CommandType { return CmdLoadTexObj }

// InvalidateTexAllCommand invalidates the texture cache.
type InvalidateTexAllCommand struct{}

// Type implements Command.
func (InvalidateTexAllCommand) Type() CommandType { return CmdInvalidateTexAll }

// FlushRangeCommand flushes a range of CPU cache. Only the length is kept.
type FlushRangeCommand struct {
	Size int
}

// Type implements Command.
func (FlushRangeCommand) Type() CommandType { return CmdFlushRange }
