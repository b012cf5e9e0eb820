package gxgl

import (
	"errors"
	"image"

	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/internal/texconv"
)

// TextureID names a texture object. Zero means no texture.
type TextureID uint32

// texture is a texture object. The filters are kept apart from obj so
// that they survive a new image upload.
type texture struct {
	obj         gx.TexObj
	initialized bool
	width       int
	height      int
	minFilter   gx.TexFilter
	magFilter   gx.TexFilter
}

func newTexture() *texture {
	return &texture{minFilter: gx.Linear, magFilter: gx.Linear}
}

// GenTextures allocates n unused texture names.
func (c *Context) GenTextures(n int) ([]TextureID, error) {
	if n < 0 {
		return nil, c.fail("GenTextures", ErrInvalidValue, "negative count %d", n)
	}
	ids := make([]TextureID, n)
	for i := range ids {
		c.nextTexture++
		ids[i] = c.nextTexture
		c.textures[ids[i]] = newTexture()
	}
	return ids, nil
}

// DeleteTextures frees the named textures. A bound texture is unbound
// first. Zero and unknown names are ignored.
func (c *Context) DeleteTextures(ids ...TextureID) error {
	for _, id := range ids {
		if _, ok := c.textures[id]; !ok {
			continue
		}
		if c.boundTex == id {
			c.boundTex = 0
		}
		delete(c.textures, id)
	}
	return nil
}

// IsTexture reports whether id names a live texture.
func (c *Context) IsTexture(id TextureID) bool {
	_, ok := c.textures[id]
	return ok
}

// BindTexture binds id to target. Zero unbinds.
func (c *Context) BindTexture(target TextureTarget, id TextureID) error {
	if target != TextureTarget2D {
		return c.fail("BindTexture", ErrInvalidEnum, "target 0x%04X", uint32(target))
	}
	if id != 0 {
		if _, ok := c.textures[id]; !ok {
			return c.fail("BindTexture", ErrInvalidOperation, "texture %d does not exist", id)
		}
	}
	c.boundTex = id
	return nil
}

// TexImage2D uploads an image to the bound texture. Pixels are unsigned
// bytes in one of the alpha, luminance, luminance-alpha, RGB or RGBA
// layouts; they are converted to tiled RGB5A3. Only level 0 is stored;
// other levels are accepted and ignored. A nil data slice allocates a
// transparent black image.
func (c *Context) TexImage2D(target TextureTarget, level int, internalFormat PixelFormat,
	width, height, border int, format PixelFormat, typ DataType, data []byte) error {
	const op = "TexImage2D"
	if target != TextureTarget2D {
		return c.fail(op, ErrInvalidEnum, "target 0x%04X", uint32(target))
	}
	t := c.textures[c.boundTex]
	if t == nil {
		return c.fail(op, ErrInvalidOperation, "no texture bound")
	}
	if typ != UnsignedByte {
		return c.fail(op, ErrInvalidEnum, "type %v", typ)
	}
	if _, ok := pixelFormats[internalFormat]; !ok {
		return c.fail(op, ErrInvalidEnum, "internal format %v", internalFormat)
	}
	src, ok := pixelFormats[format]
	if !ok {
		return c.fail(op, ErrInvalidEnum, "format %v", format)
	}
	if width < 0 || height < 0 || level < 0 {
		return c.fail(op, ErrInvalidValue, "level %d size %dx%d", level, width, height)
	}
	if border != 0 {
		return c.fail(op, ErrInvalidValue, "border %d", border)
	}
	if limit := c.opts.maxTextureSize; width > limit || height > limit {
		return c.fail(op, ErrInvalidValue, "size %dx%d exceeds %d", width, height, limit)
	}
	if level != 0 {
		c.log.Debug("gxgl: mipmap level ignored", "level", level)
		return nil
	}
	if data == nil {
		data = make([]byte, src.ImageSize(width, height))
	}

	rgba, err := texconv.Normalize(data, width, height, src)
	if errors.Is(err, texconv.ErrShortBuffer) {
		return c.fail(op, ErrOutOfBounds, "%d bytes for %dx%d %v", len(data), width, height, format)
	}
	if err != nil {
		return c.fail(op, ErrInvalidValue, "%v", err)
	}
	if r := c.uploadTexture(t, rgba, width, height); r != nil {
		return c.report(op, r)
	}
	return nil
}

// TexImageFromImage uploads img to the bound texture. Images larger than
// the maximum texture size are scaled down first.
func (c *Context) TexImageFromImage(target TextureTarget, img image.Image) error {
	const op = "TexImageFromImage"
	if target != TextureTarget2D {
		return c.fail(op, ErrInvalidEnum, "target 0x%04X", uint32(target))
	}
	t := c.textures[c.boundTex]
	if t == nil {
		return c.fail(op, ErrInvalidOperation, "no texture bound")
	}
	if img == nil {
		return c.fail(op, ErrInvalidValue, "nil image")
	}
	nrgba := texconv.FromImage(img, c.opts.maxTextureSize)
	b := nrgba.Bounds()
	if r := c.uploadTexture(t, nrgba.Pix, b.Dx(), b.Dy()); r != nil {
		return c.report(op, r)
	}
	return nil
}

// uploadTexture converts rgba to the hardware format and points the
// texture object at it. Identical images share one conversion.
func (c *Context) uploadTexture(t *texture, rgba []byte, width, height int) *rejection {
	tiled, err := c.texCache.Encode(rgba, width, height)
	if err != nil {
		return reject(ErrOutOfBounds, "%d pixel bytes for %dx%d: %v", len(rgba), width, height, err)
	}
	c.dev.FlushRange(tiled)

	// #nosec G115 -- size checked against the maximum texture size
	w, h := uint16(width), uint16(height)
	gx.InitTexObj(&t.obj, tiled, w, h, gx.TexFmtRGB5A3, gx.Clamp, gx.Clamp, false)
	gx.InitTexObjFilterMode(&t.obj, t.minFilter, t.magFilter)
	t.initialized = true
	t.width, t.height = width, height
	c.dev.InvalidateTexAll()

	c.log.Debug("gxgl: texture upload",
		"texture", c.boundTex,
		"width", width,
		"height", height,
		"bytes", len(tiled))
	return nil
}

// TexParameteri sets a filter or wrap mode of the bound texture. The
// texture must already hold an image.
func (c *Context) TexParameteri(target TextureTarget, pname TexParam, value TexParamValue) error {
	const op = "TexParameteri"
	if target != TextureTarget2D {
		return c.fail(op, ErrInvalidEnum, "target 0x%04X", uint32(target))
	}
	t := c.textures[c.boundTex]
	if t == nil || !t.initialized {
		return c.fail(op, ErrInvalidOperation, "bound texture has no image")
	}

	switch pname {
	case TextureMinFilter:
		f, ok := minFilters[value]
		if !ok {
			return c.fail(op, ErrInvalidEnum, "min filter 0x%04X", int32(value))
		}
		t.minFilter = f
		gx.InitTexObjFilterMode(&t.obj, t.minFilter, t.magFilter)
	case TextureMagFilter:
		f, ok := magFilters[value]
		if !ok {
			return c.fail(op, ErrInvalidEnum, "mag filter 0x%04X", int32(value))
		}
		t.magFilter = f
		gx.InitTexObjFilterMode(&t.obj, t.minFilter, t.magFilter)
	case TextureWrapS, TextureWrapT:
		w, ok := wrapModes[value]
		if !ok {
			return c.fail(op, ErrInvalidEnum, "wrap mode 0x%04X", int32(value))
		}
		_, _, _, _, wrapS, wrapT, _ := gx.GetTexObjAll(&t.obj)
		if pname == TextureWrapS {
			wrapS = w
		} else {
			wrapT = w
		}
		gx.InitTexObjWrapMode(&t.obj, wrapS, wrapT)
	default:
		return c.fail(op, ErrInvalidEnum, "parameter 0x%04X", uint32(pname))
	}
	return nil
}

// TextureImage decodes the hardware image of the named texture back to
// 8-bit RGBA. The result shows the precision lost in conversion.
func (c *Context) TextureImage(id TextureID) (*image.NRGBA, error) {
	const op = "TextureImage"
	t, ok := c.textures[id]
	if !ok {
		return nil, c.fail(op, ErrInvalidOperation, "texture %d does not exist", id)
	}
	if !t.initialized {
		return nil, c.fail(op, ErrInvalidOperation, "texture %d has no image", id)
	}
	img, err := texconv.DecodeRGB5A3(t.obj.Image, t.width, t.height)
	if err != nil {
		return nil, c.fail(op, ErrOutOfBounds, "%v", err)
	}
	return img, nil
}

// boundTexObj returns the hardware object of the bound texture, or nil when
// no texture with an image is bound.
func (c *Context) boundTexObj() *gx.TexObj {
	t := c.textures[c.boundTex]
	if t == nil || !t.initialized {
		return nil
	}
	return &t.obj
}
