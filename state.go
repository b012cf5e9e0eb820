package gxgl

import "github.com/gogpu/gxgl/gx"

// ClearColor sets the color the copy engine writes when it clears the
// framebuffer. Components are clamped to [0, 1].
func (c *Context) ClearColor(r, g, b, a float32) error {
	c.dev.SetCopyClear(colorFromFloats(r, g, b, a), zClear)
	return nil
}

// Clear validates mask. The hardware clears the embedded framebuffer while
// copying it out in Present, so there is nothing to emit.
func (c *Context) Clear(mask ClearMask) error {
	if mask&^(ColorBufferBit|DepthBufferBit|StencilBufferBit) != 0 {
		return c.fail("Clear", ErrInvalidValue, "mask 0x%04X", uint32(mask))
	}
	return nil
}

// Color4f sets the current color used when the color array is off.
func (c *Context) Color4f(r, g, b, a float32) error {
	return c.setColor(colorFromFloats(r, g, b, a))
}

// Color4ub sets the current color used when the color array is off.
func (c *Context) Color4ub(r, g, b, a uint8) error {
	return c.setColor(gx.Color{R: r, G: g, B: b, A: a})
}

func (c *Context) setColor(col gx.Color) error {
	c.currentColor = col
	c.dev.SetTevColor(gx.TevReg0, col)
	return nil
}

// CurrentColor returns the current color.
func (c *Context) CurrentColor() (r, g, b, a uint8) {
	col := c.currentColor
	return col.R, col.G, col.B, col.A
}

// DepthMask enables or disables depth writes.
func (c *Context) DepthMask(flag bool) error {
	c.zUpdate = flag
	c.applyZMode()
	return nil
}

// DepthFunc sets the depth comparison.
func (c *Context) DepthFunc(fn CompareFunc) error {
	if _, ok := compareFuncs[fn]; !ok {
		return c.fail("DepthFunc", ErrInvalidEnum, "function 0x%04X", uint32(fn))
	}
	c.zFunc = fn
	c.applyZMode()
	return nil
}

// CullFace selects the faces discarded while face culling is enabled.
func (c *Context) CullFace(face Face) error {
	if _, ok := cullMode(face, c.frontFace); !ok {
		return c.fail("CullFace", ErrInvalidEnum, "face 0x%04X", uint32(face))
	}
	c.cullFace = face
	if c.caps.cullFace {
		c.applyCullMode()
	}
	return nil
}

// FrontFace selects the winding of front-facing polygons.
func (c *Context) FrontFace(winding Winding) error {
	if _, ok := cullMode(c.cullFace, winding); !ok {
		return c.fail("FrontFace", ErrInvalidEnum, "winding 0x%04X", uint32(winding))
	}
	c.frontFace = winding
	if c.caps.cullFace {
		c.applyCullMode()
	}
	return nil
}

// BlendFunc sets the blend factors used while blending is enabled.
func (c *Context) BlendFunc(src, dst BlendFactor) error {
	if _, ok := blendFactors[src]; !ok {
		return c.fail("BlendFunc", ErrInvalidEnum, "source factor 0x%04X", uint32(src))
	}
	if _, ok := blendFactors[dst]; !ok {
		return c.fail("BlendFunc", ErrInvalidEnum, "destination factor 0x%04X", uint32(dst))
	}
	c.blendSrc, c.blendDst = src, dst
	if c.caps.blend {
		c.applyBlendMode()
	}
	return nil
}

// AlphaFunc sets the alpha test used while alpha testing is enabled. ref is
// clamped to [0, 1].
func (c *Context) AlphaFunc(fn CompareFunc, ref float32) error {
	if _, ok := compareFuncs[fn]; !ok {
		return c.fail("AlphaFunc", ErrInvalidEnum, "function 0x%04X", uint32(fn))
	}
	c.alphaFunc, c.alphaRef = fn, unorm8(ref)
	if c.caps.alphaTest {
		c.applyAlphaCompare()
	}
	return nil
}

// ColorMask enables or disables color and alpha writes. The hardware has a
// single switch for all three color channels, so color writes stay on
// while any of r, g and b is set.
func (c *Context) ColorMask(r, g, b, a bool) error {
	c.dev.SetColorUpdate(r || g || b)
	c.dev.SetAlphaUpdate(a)
	return nil
}

// PolygonOffset sets the depth offset applied to draws while polygon
// offset fill is enabled. Only units contribute; the slope factor is
// stored and ignored.
func (c *Context) PolygonOffset(factor, units float32) error {
	c.polyOffsetFactor = factor
	c.polyOffsetUnits = units
	return nil
}

// PointSize sets the rasterized point diameter in pixels.
func (c *Context) PointSize(size float32) error {
	if !(size > 0) {
		return c.fail("PointSize", ErrInvalidValue, "size %v", size)
	}
	c.dev.SetPointSize(pointWidth(size), gx.ToZero)
	return nil
}

// pointWidth converts a diameter in pixels to the hardware unit of 1/6
// pixel, saturating at the register limit.
func pointWidth(size float32) uint8 {
	w := size*6 + 0.5
	if w >= 255 {
		return 255
	}
	return uint8(w)
}

// Viewport maps normalized device coordinates to the window rectangle
// with its origin at the bottom left, and scissors to the same rectangle.
func (c *Context) Viewport(x, y, width, height int) error {
	if width < 0 || height < 0 {
		return c.fail("Viewport", ErrInvalidValue, "size %dx%d", width, height)
	}
	top := y
	if h := int(c.video.EFBHeight); h > 0 {
		top = h - y - height
	}
	c.dev.SetViewport(float32(x), float32(top), float32(width), float32(height), 0, 1)
	c.dev.SetScissor(clampU32(x), clampU32(top), clampU32(width), clampU32(height))
	return nil
}

func clampU32(v int) uint32 {
	if v < 0 {
		return 0
	}
	// #nosec G115 -- non-negative
	return uint32(v)
}

// GetIntegerv returns an implementation limit.
func (c *Context) GetIntegerv(q Query) (int, error) {
	switch q {
	case MaxTextureSize:
		return c.opts.maxTextureSize, nil
	case MaxTextureUnits:
		return maxTextureUnits, nil
	case MaxLightsQuery:
		return MaxLights, nil
	}
	return 0, c.fail("GetIntegerv", ErrInvalidEnum, "query 0x%04X", uint32(q))
}

// maxTextureUnits is the number of hardware texture map slots.
const maxTextureUnits = 8

// Strings returned by GetString.
const (
	VendorString   = "gogpu"
	RendererString = "gxgl fixed-function translator for the GX command processor"
	VersionString  = "1.1 gxgl"
)

// GetString returns a description of the implementation.
func (c *Context) GetString(name StringName) (string, error) {
	switch name {
	case Vendor:
		return VendorString, nil
	case Renderer:
		return RendererString, nil
	case Version:
		return VersionString, nil
	case Extensions:
		return "", nil
	}
	return "", c.fail("GetString", ErrInvalidEnum, "name 0x%04X", uint32(name))
}
