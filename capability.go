package gxgl

import "github.com/gogpu/gxgl/gx"

// capabilities holds the server-side flags toggled by Enable and Disable.
type capabilities struct {
	alphaTest         bool
	blend             bool
	colorMaterial     bool
	cullFace          bool
	depthTest         bool
	lighting          bool
	normalize         bool
	polygonOffsetFill bool
	pointSprite       bool
	stencilTest       bool
	texture2D         bool
	texGenS           bool
	texGenT           bool

	clipPlanes uint8        // bit n for ClipPlane n
	lights     gx.LightMask // bit n for Light n
}

// clientArrays holds the flags toggled by EnableClientState.
type clientArrays struct {
	color    bool
	index    bool
	normal   bool
	texCoord bool
	vertex   bool
}

// Enable turns on a server-side capability and applies its hardware side
// effect.
func (c *Context) Enable(capability Capability) error {
	return c.setCapability("Enable", capability, true)
}

// Disable turns off a server-side capability and applies its hardware side
// effect.
func (c *Context) Disable(capability Capability) error {
	return c.setCapability("Disable", capability, false)
}

// IsEnabled reports whether a server-side capability is on.
func (c *Context) IsEnabled(capability Capability) (bool, error) {
	if n, ok := capability.light(); ok {
		return c.caps.lights&(1<<n) != 0, nil
	}
	if n, ok := capability.clipPlane(); ok {
		return c.caps.clipPlanes&(1<<n) != 0, nil
	}
	flag := c.capabilityFlag(capability)
	if flag == nil {
		return false, c.fail("IsEnabled", ErrInvalidEnum, "capability %v", capability)
	}
	return *flag, nil
}

func (c *Context) capabilityFlag(capability Capability) *bool {
	switch capability {
	case AlphaTest:
		return &c.caps.alphaTest
	case Blend:
		return &c.caps.blend
	case ColorMaterial:
		return &c.caps.colorMaterial
	case CullFace:
		return &c.caps.cullFace
	case DepthTest:
		return &c.caps.depthTest
	case Lighting:
		return &c.caps.lighting
	case Normalize:
		return &c.caps.normalize
	case PolygonOffsetFill:
		return &c.caps.polygonOffsetFill
	case PointSprite:
		return &c.caps.pointSprite
	case StencilTest:
		return &c.caps.stencilTest
	case Texture2D:
		return &c.caps.texture2D
	case TextureGenS:
		return &c.caps.texGenS
	case TextureGenT:
		return &c.caps.texGenT
	}
	return nil
}

func (c *Context) setCapability(op string, capability Capability, on bool) error {
	if n, ok := capability.light(); ok {
		if on {
			c.caps.lights |= 1 << n
		} else {
			c.caps.lights &^= 1 << n
		}
		c.applyLightMask()
		return nil
	}
	if n, ok := capability.clipPlane(); ok {
		if on {
			c.caps.clipPlanes |= 1 << n
		} else {
			c.caps.clipPlanes &^= 1 << n
		}
		return nil
	}

	flag := c.capabilityFlag(capability)
	if flag == nil {
		return c.fail(op, ErrInvalidEnum, "capability %v", capability)
	}
	*flag = on

	switch capability {
	case CullFace:
		c.applyCullMode()
	case DepthTest:
		c.applyZMode()
	case Lighting:
		n := uint8(1)
		if on {
			n = 2
		}
		c.dev.SetNumChans(n)
		c.dev.SetNumTevStages(n)
	case Blend:
		c.applyBlendMode()
	case AlphaTest:
		c.applyAlphaCompare()
	case TextureGenS, TextureGenT:
		if !on {
			c.restoreTexCoordGen()
		}
	}
	return nil
}

func (c *Context) applyLightMask() {
	c.dev.SetChanCtrl(gx.Color1A1, true, gx.SrcReg, gx.SrcReg, c.caps.lights, gx.DfClamp, gx.AfNone)
}

func (c *Context) applyCullMode() {
	mode := gx.CullNone
	if c.caps.cullFace {
		mode, _ = cullMode(c.cullFace, c.frontFace)
	}
	c.dev.SetCullMode(mode)
}

func (c *Context) applyZMode() {
	c.dev.SetZMode(c.caps.depthTest, compareFuncs[c.zFunc], c.zUpdate)
}

func (c *Context) applyBlendMode() {
	mode := gx.BlendNone
	if c.caps.blend {
		mode = gx.BlendBlend
	}
	c.dev.SetBlendMode(mode, blendFactors[c.blendSrc], blendFactors[c.blendDst], gx.LogicClear)
}

func (c *Context) applyAlphaCompare() {
	if c.caps.alphaTest {
		c.dev.SetAlphaCompare(compareFuncs[c.alphaFunc], c.alphaRef, gx.AlphaOpAnd, gx.Always, 0)
		return
	}
	c.dev.SetAlphaCompare(gx.Always, 0, gx.AlphaOpAnd, gx.Always, 0)
}

// restoreTexCoordGen routes texture coordinate 0 from the vertex texcoord
// through the texture matrix stack again.
func (c *Context) restoreTexCoordGen() {
	c.dev.SetTexCoordGen(gx.TexCoord0, gx.TexGenMtx2x4, gx.TexGenSrcTex0, gx.TexMtx0)
	c.uploadMatrix(Texture)
}

// EnableClientState turns on a client-side vertex array. Enabled arrays
// are fetched by index on every draw.
func (c *Context) EnableClientState(array ClientArray) error {
	return c.setClientState("EnableClientState", array, true)
}

// DisableClientState turns off a client-side vertex array.
func (c *Context) DisableClientState(array ClientArray) error {
	return c.setClientState("DisableClientState", array, false)
}

func (c *Context) setClientState(op string, array ClientArray, on bool) error {
	var attr gx.Attr
	switch array {
	case VertexArray:
		c.client.vertex, attr = on, gx.AttrPos
	case NormalArray:
		c.client.normal, attr = on, gx.AttrNrm
	case ColorArray:
		c.client.color, attr = on, gx.AttrClr0
	case TextureCoordArray:
		c.client.texCoord, attr = on, gx.AttrTex0
	case IndexArray:
		c.client.index = on
		return nil
	default:
		return c.fail(op, ErrInvalidEnum, "array %v", array)
	}

	typ := gx.AttrNone
	if on {
		typ = gx.AttrIndex16
	}
	c.dev.SetVtxDesc(attr, typ)
	return nil
}

// IsClientStateEnabled reports whether a client-side array is on.
func (c *Context) IsClientStateEnabled(array ClientArray) (bool, error) {
	switch array {
	case VertexArray:
		return c.client.vertex, nil
	case NormalArray:
		return c.client.normal, nil
	case ColorArray:
		return c.client.color, nil
	case TextureCoordArray:
		return c.client.texCoord, nil
	case IndexArray:
		return c.client.index, nil
	}
	return false, c.fail("IsClientStateEnabled", ErrInvalidEnum, "array %v", array)
}
