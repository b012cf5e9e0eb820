package gxgl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/internal/texconv"
)

// Context holds the complete GL state of one rendering context and
// translates calls against it into commands for a gx.Device.
//
// A Context is not safe for concurrent use. Every method runs to completion
// on the calling goroutine; only Present blocks, waiting for vertical sync.
type Context struct {
	dev  gx.Device
	disp gx.Display
	opts contextOptions
	log  *slog.Logger

	// Video
	video       gx.VideoMode
	videoReady  bool
	framebuffer int

	// Transform
	matrixMode MatrixMode
	stacks     [stackCount]matrixStack

	// Capabilities and client arrays
	caps   capabilities
	client clientArrays

	// Raster state applied when the matching capability is enabled
	cullFace  Face
	frontFace Winding
	zFunc     CompareFunc
	zUpdate   bool
	blendSrc  BlendFactor
	blendDst  BlendFactor
	alphaFunc CompareFunc
	alphaRef  uint8

	polyOffsetFactor float32
	polyOffsetUnits  float32
	currentColor     gx.Color
	texGenMode       TexGenMode

	// Objects
	buffers     map[BufferID]*buffer
	nextBuffer  BufferID
	bound       [bindingCount]BufferID
	attribs     [attribCount]attribDesc
	textures    map[TextureID]*texture
	nextTexture TextureID
	boundTex    TextureID
	texCache    *texconv.Cache

	lights [MaxLights]gx.LightObj
}

// NewContext creates a context that drives dev and presents through disp,
// then resets it to the initial GL state. disp may be nil, in which case
// video setup is skipped and Present only copies the framebuffer.
//
//	dev := gx.MustDevice("record")
//	ctx, err := gxgl.NewContext(dev, record.NewDisplay(gx.NTSC480i))
func NewContext(dev gx.Device, disp gx.Display, opts ...ContextOption) (*Context, error) {
	if dev == nil {
		return nil, fmt.Errorf("gxgl: NewContext: %w: nil device", ErrInvalidValue)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	log := options.logger
	if log == nil {
		log = Logger()
	}

	c := &Context{
		dev:      dev,
		disp:     disp,
		opts:     options,
		log:      log,
		buffers:  make(map[BufferID]*buffer),
		textures: make(map[TextureID]*texture),
		texCache: texconv.NewCache(options.textureCacheSize),
	}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Device returns the device the context drives.
func (c *Context) Device() gx.Device { return c.dev }

// VideoMode returns the mode reported by the display, or the zero mode when
// the context has no display.
func (c *Context) VideoMode() gx.VideoMode { return c.video }

// Reset returns the context to the initial GL state and reprograms the
// hardware to match. The display is initialized on the first call only.
// Buffer and texture objects survive a reset; bindings and array pointers
// do not.
func (c *Context) Reset() error {
	if !c.videoReady && c.disp != nil {
		if err := c.initVideo(); err != nil {
			return err
		}
	}

	c.matrixMode = ModelView
	for i := range c.stacks {
		c.stacks[i].reset()
	}
	c.uploadMatrix(ModelView)
	c.uploadMatrix(Projection)
	c.uploadMatrix(Texture)

	c.caps = capabilities{}
	c.client = clientArrays{}
	c.bound = [bindingCount]BufferID{}
	c.attribs = [attribCount]attribDesc{}
	c.boundTex = 0
	c.lights = [MaxLights]gx.LightObj{}

	c.cullFace = Back
	c.frontFace = CCW
	c.zFunc = LEqual
	c.zUpdate = true
	c.blendSrc = One
	c.blendDst = Zero
	c.alphaFunc = Always
	c.alphaRef = 0
	c.polyOffsetFactor = 0
	c.polyOffsetUnits = 0
	c.currentColor = gx.White
	c.texGenMode = EyeLinear

	c.dev.SetCopyClear(gx.Color{}, zClear)
	c.applyZMode()
	c.applyCullMode()
	c.applyBlendMode()
	c.applyAlphaCompare()
	c.dev.SetTevColor(gx.TevReg0, c.currentColor)
	c.dev.SetPointSize(pointWidth(1), gx.ToZero)

	c.dev.SetNumTevStages(1)
	c.dev.SetNumTexGens(1)
	c.dev.SetNumChans(1)

	// Stage 0 combines vertex color and texture; its inputs are chosen per
	// draw. The vertex channel passes vertex colors through unlit.
	c.dev.SetTevOrder(gx.TevStage0, gx.TexCoord0, gx.TexMap0, gx.Color0A0)
	c.dev.SetChanCtrl(gx.Color0A0, false, gx.SrcReg, gx.SrcVtx, 0, gx.DfNone, gx.AfNone)

	// Stage 1 modulates the stage 0 result by the lit channel. It only runs
	// while lighting is enabled.
	c.dev.SetTevColorIn(gx.TevStage1, gx.CCZero, gx.CCRasC, gx.CCCPrev, gx.CCZero)
	c.dev.SetTevAlphaIn(gx.TevStage1, gx.CAZero, gx.CARasA, gx.CAAPrev, gx.CAZero)
	c.dev.SetTevColorOp(gx.TevStage1, gx.TevAdd, gx.TevBiasZero, gx.TevScale1, true, gx.TevPrev)
	c.dev.SetTevAlphaOp(gx.TevStage1, gx.TevAdd, gx.TevBiasZero, gx.TevScale1, true, gx.TevPrev)
	c.dev.SetTevOrder(gx.TevStage1, gx.TexCoordNull, gx.TexMapNull, gx.Color1A1)

	c.dev.SetChanAmbColor(gx.Color1A1, defaultAmbient)
	c.dev.SetChanMatColor(gx.Color1A1, gx.White)
	c.dev.SetChanCtrl(gx.Color1A1, true, gx.SrcReg, gx.SrcReg, c.caps.lights, gx.DfClamp, gx.AfNone)

	c.dev.SetTexCoordGen(gx.TexCoord0, gx.TexGenMtx2x4, gx.TexGenSrcTex0, gx.TexMtx0)
	c.dev.ClearVtxDesc()

	c.log.Debug("gxgl: context reset")
	return nil
}

// zClear is the depth value the copy engine writes when clearing.
const zClear = 0x00FFFFFF

// defaultAmbient is the ambient color of the lit channel after reset.
var defaultAmbient = gx.Color{R: 128, G: 128, B: 128, A: 255}

// initVideo brings up the display and configures the copy engine for the
// mode it reports.
func (c *Context) initVideo() error {
	mode, err := c.disp.Init()
	if err != nil {
		return fmt.Errorf("gxgl: video init: %w", err)
	}
	c.video = mode
	c.videoReady = true
	c.framebuffer = 0

	w, h := mode.FBWidth, mode.EFBHeight
	c.dev.SetViewport(0, 0, float32(w), float32(h), 0, 1)
	c.dev.SetDispCopyYScale(mode.YScale())
	c.dev.SetScissor(0, 0, uint32(w), uint32(h))
	c.dev.SetDispCopySrc(0, 0, w, h)
	c.dev.SetDispCopyDst(w, mode.XFBHeight)
	c.dev.SetFieldMode(mode.FieldRendering, mode.Interlaced())
	c.dev.CopyDisp(c.framebuffer, true)
	c.dev.SetDispCopyGamma(gx.Gamma10)
	c.dev.SetBlendMode(gx.BlendBlend, gx.BlSrcAlpha, gx.BlInvSrcAlpha, gx.LogicClear)
	c.dev.SetAlphaUpdate(true)
	c.dev.SetColorUpdate(true)
	c.dev.SetCullMode(gx.CullNone)
	c.disp.SetNextFramebuffer(c.framebuffer)

	c.log.Info("gxgl: video initialized",
		"width", w,
		"height", h,
		"interlaced", mode.Interlaced())
	return nil
}

// Present finishes the frame: it waits for the hardware to drain, waits
// for vertical sync, copies the embedded framebuffer into the back
// external framebuffer and flips to it.
func (c *Context) Present() error {
	c.framebuffer ^= 1
	c.dev.DrawDone()
	if c.disp != nil {
		c.disp.WaitVSync()
	}
	c.dev.CopyDisp(c.framebuffer, true)
	if c.disp != nil {
		c.disp.SetNextFramebuffer(c.framebuffer)
	}
	return nil
}

// modelView returns the top of the model-view stack.
func (c *Context) modelView() mgl32.Mat4 {
	return c.stacks[stackModelView].top()
}
