package gxgl

import (
	"fmt"

	"github.com/gogpu/gxgl/gx"
)

// Pointer locates vertex or index data: either client memory or a byte
// offset into the buffer bound at the time of the call.
type Pointer struct {
	data     []byte
	offset   int
	isOffset bool
}

// Client points at client memory.
func Client(data []byte) Pointer { return Pointer{data: data} }

// Offset points at byte n of the bound buffer.
func Offset(n int) Pointer { return Pointer{offset: n, isOffset: true} }

// IsOffset reports whether p is a buffer offset.
func (p Pointer) IsOffset() bool { return p.isOffset }

// String returns a short description of p.
func (p Pointer) String() string {
	if p.isOffset {
		return fmt.Sprintf("Offset(%d)", p.offset)
	}
	return fmt.Sprintf("Client(%d bytes)", len(p.data))
}

const (
	attribPosition = iota
	attribNormal
	attribColor
	attribTexCoord
	attribCount
)

// attribAttrs is the hardware attribute of each slot, in submission order.
var attribAttrs = [attribCount]gx.Attr{
	attribPosition: gx.AttrPos,
	attribNormal:   gx.AttrNrm,
	attribColor:    gx.AttrClr0,
	attribTexCoord: gx.AttrTex0,
}

var attribNames = [attribCount]string{
	attribPosition: "VertexPointer",
	attribNormal:   "NormalPointer",
	attribColor:    "ColorPointer",
	attribTexCoord: "TexCoordPointer",
}

var attribFormats = [attribCount]attribFormatFunc{
	attribPosition: positionFormat,
	attribNormal:   normalFormat,
	attribColor:    colorFormat,
	attribTexCoord: texCoordFormat,
}

// attribDesc is the array state of one vertex attribute.
type attribDesc struct {
	set    bool
	size   int
	format attribFormat
	stride int
	ptr    Pointer

	// For buffer-relative pointers, the buffer and the generation its
	// storage had when the array was registered with the hardware.
	buf BufferID
	gen uint64
}

// VertexPointer sets the position array: size 2 or 3 components of byte,
// unsigned byte, short, unsigned short or float.
func (c *Context) VertexPointer(size int, typ DataType, stride int, ptr Pointer) error {
	return c.setPointer(attribPosition, size, typ, stride, ptr)
}

// NormalPointer sets the normal array: three components of byte, short or
// float.
func (c *Context) NormalPointer(typ DataType, stride int, ptr Pointer) error {
	return c.setPointer(attribNormal, 3, typ, stride, ptr)
}

// ColorPointer sets the color array: 3 or 4 unsigned bytes.
func (c *Context) ColorPointer(size int, typ DataType, stride int, ptr Pointer) error {
	return c.setPointer(attribColor, size, typ, stride, ptr)
}

// TexCoordPointer sets the texture coordinate array: 1, 2 or 3 components
// of any vertex data type. A third component is ignored.
func (c *Context) TexCoordPointer(size int, typ DataType, stride int, ptr Pointer) error {
	return c.setPointer(attribTexCoord, size, typ, stride, ptr)
}

func (c *Context) setPointer(slot, size int, typ DataType, stride int, ptr Pointer) error {
	op := attribNames[slot]
	format, ok := attribFormats[slot](size, typ)
	if !ok {
		return c.fail(op, ErrInvalidEnum, "size %d type %v", size, typ)
	}
	if stride < 0 {
		return c.fail(op, ErrInvalidValue, "negative stride %d", stride)
	}
	if stride == 0 {
		stride = size * typ.Size()
	}
	if stride > 255 {
		return c.fail(op, ErrInvalidValue, "stride %d exceeds 255", stride)
	}

	d := attribDesc{set: true, size: size, format: format, stride: stride, ptr: ptr}
	data := ptr.data
	if ptr.isOffset {
		id := c.bound[bindingArray]
		if id == 0 {
			return c.fail(op, ErrInvalidOperation, "offset pointer without a bound array buffer")
		}
		b := c.buffers[id]
		if ptr.offset < 0 {
			return c.fail(op, ErrInvalidValue, "negative offset %d", ptr.offset)
		}
		if ptr.offset > len(b.data) {
			return c.fail(op, ErrOutOfBounds, "offset %d exceeds buffer size %d", ptr.offset, len(b.data))
		}
		d.buf, d.gen = id, b.gen
		data = b.data[ptr.offset:]
	}

	c.attribs[slot] = d
	attr := attribAttrs[slot]
	c.dev.SetVtxAttrFmt(gx.VtxFmt0, attr, format.cnt, format.typ, 0)
	// #nosec G115 -- stride checked against 255 above
	c.dev.SetArray(attr, data, uint8(stride))
	return nil
}

// attribEnabled reports whether the client array of slot is on.
func (c *Context) attribEnabled(slot int) bool {
	switch slot {
	case attribPosition:
		return c.client.vertex
	case attribNormal:
		return c.client.normal
	case attribColor:
		return c.client.color
	case attribTexCoord:
		return c.client.texCoord
	}
	return false
}

// arrayData returns the bytes the array of slot currently reads from,
// together with whether the buffer storage changed since registration.
func (c *Context) arrayData(slot int) ([]byte, bool, *rejection) {
	d := &c.attribs[slot]
	if !d.ptr.isOffset {
		return d.ptr.data, false, nil
	}
	b, ok := c.buffers[d.buf]
	if !ok {
		return nil, false, reject(ErrInvalidOperation, "%v buffer %d was deleted", attribAttrs[slot], d.buf)
	}
	if d.ptr.offset > len(b.data) {
		return nil, false, reject(ErrOutOfBounds, "%v offset %d exceeds buffer size %d", attribAttrs[slot], d.ptr.offset, len(b.data))
	}
	return b.data[d.ptr.offset:], b.gen != d.gen, nil
}

// checkArrays validates every enabled array against the largest index a
// draw will fetch. Nothing is emitted.
func (c *Context) checkArrays(maxIndex int) *rejection {
	for slot := range c.attribs {
		if !c.attribEnabled(slot) {
			continue
		}
		d := &c.attribs[slot]
		if !d.set {
			return reject(ErrInvalidOperation, "%v array enabled without a pointer", attribAttrs[slot])
		}
		data, _, r := c.arrayData(slot)
		if r != nil {
			return r
		}
		need := maxIndex*d.stride + d.size*compSize(d.format, slot)
		if len(data) < need {
			return reject(ErrOutOfBounds, "%v array holds %d bytes, index %d needs %d", attribAttrs[slot], len(data), maxIndex, need)
		}
	}
	return nil
}

// refreshArrays re-registers buffer-relative arrays whose storage changed
// since they were set. Call checkArrays first.
func (c *Context) refreshArrays() {
	for slot := range c.attribs {
		d := &c.attribs[slot]
		if !d.set || !d.ptr.isOffset || !c.attribEnabled(slot) {
			continue
		}
		data, stale, r := c.arrayData(slot)
		if r != nil || !stale {
			continue
		}
		d.gen = c.buffers[d.buf].gen
		// #nosec G115 -- stride checked against 255 when set
		c.dev.SetArray(attribAttrs[slot], data, uint8(d.stride))
	}
}

// compSize returns the byte size of one component of format.
func compSize(f attribFormat, slot int) int {
	if slot == attribColor {
		return 1
	}
	switch f.typ {
	case gx.U8, gx.S8:
		return 1
	case gx.U16, gx.S16:
		return 2
	}
	return 4
}
