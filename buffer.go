package gxgl

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// BufferID names a buffer object. Zero means no buffer.
type BufferID uint32

// buffer is a buffer object in host memory. gen changes whenever the
// contents change, so array pointers resolved against an older generation
// are re-registered before the next draw.
type buffer struct {
	data       []byte
	hasStorage bool
	gen        uint64
}

const (
	bindingArray = iota
	bindingElement
	bindingCount
)

func bindingIndex(target BufferTarget) (int, bool) {
	switch target {
	case ArrayBuffer:
		return bindingArray, true
	case ElementArrayBuffer:
		return bindingElement, true
	}
	return 0, false
}

func validUsage(u BufferUsage) bool {
	switch u {
	case StreamDraw, StaticDraw, DynamicDraw:
		return true
	}
	return false
}

// GenBuffers allocates n unused buffer names.
func (c *Context) GenBuffers(n int) ([]BufferID, error) {
	if n < 0 {
		return nil, c.fail("GenBuffers", ErrInvalidValue, "negative count %d", n)
	}
	ids := make([]BufferID, n)
	for i := range ids {
		c.nextBuffer++
		ids[i] = c.nextBuffer
		c.buffers[ids[i]] = &buffer{}
	}
	return ids, nil
}

// DeleteBuffers frees the named buffers. Bound buffers are unbound first.
// Zero and unknown names are ignored.
func (c *Context) DeleteBuffers(ids ...BufferID) error {
	for _, id := range ids {
		if _, ok := c.buffers[id]; !ok {
			continue
		}
		for i := range c.bound {
			if c.bound[i] == id {
				c.bound[i] = 0
			}
		}
		delete(c.buffers, id)
	}
	return nil
}

// IsBuffer reports whether id names a live buffer.
func (c *Context) IsBuffer(id BufferID) bool {
	_, ok := c.buffers[id]
	return ok
}

// BindBuffer binds id to target. Zero unbinds.
func (c *Context) BindBuffer(target BufferTarget, id BufferID) error {
	slot, ok := bindingIndex(target)
	if !ok {
		return c.fail("BindBuffer", ErrInvalidEnum, "target 0x%04X", uint32(target))
	}
	if id != 0 {
		if _, ok := c.buffers[id]; !ok {
			return c.fail("BindBuffer", ErrInvalidOperation, "buffer %d does not exist", id)
		}
	}
	c.bound[slot] = id
	return nil
}

// BufferData replaces the storage of the buffer bound to target with size
// bytes. When data is non-nil its first size bytes are copied in and the
// CPU cache is flushed so the hardware sees them.
func (c *Context) BufferData(target BufferTarget, size int, data []byte, usage BufferUsage) error {
	const op = "BufferData"
	b, r := c.boundBuffer(target)
	if r != nil {
		return c.report(op, r)
	}
	if !validUsage(usage) {
		return c.fail(op, ErrInvalidEnum, "usage 0x%04X", uint32(usage))
	}
	if size < 0 {
		return c.fail(op, ErrInvalidValue, "negative size %d", size)
	}
	if data != nil && len(data) < size {
		return c.fail(op, ErrOutOfBounds, "size %d exceeds %d bytes of data", size, len(data))
	}

	b.data = make([]byte, size)
	b.hasStorage = true
	b.gen++
	if data != nil {
		copy(b.data, data)
		c.dev.FlushRange(b.data)
	}
	c.log.Debug("gxgl: buffer data", "target", uint32(target), "size", size)
	return nil
}

// BufferDataFloat32 uploads vertex floats to the buffer bound to target in
// the big-endian layout the hardware reads.
func (c *Context) BufferDataFloat32(target BufferTarget, data []float32, usage BufferUsage) error {
	b := Float32Bytes(data...)
	return c.BufferData(target, len(b), b, usage)
}

// BufferSubData overwrites part of the storage of the buffer bound to
// target. The range must lie within storage created by BufferData;
// otherwise nothing is written.
func (c *Context) BufferSubData(target BufferTarget, offset int, data []byte) error {
	const op = "BufferSubData"
	b, r := c.boundBuffer(target)
	if r != nil {
		return c.report(op, r)
	}
	if !b.hasStorage {
		return c.fail(op, ErrInvalidOperation, "buffer has no storage")
	}
	if offset < 0 {
		return c.fail(op, ErrInvalidValue, "negative offset %d", offset)
	}
	if offset > len(b.data) || len(data) > len(b.data)-offset {
		return c.fail(op, ErrOutOfBounds, "%d bytes at offset %d exceed size %d", len(data), offset, len(b.data))
	}

	dst := b.data[offset : offset+len(data)]
	copy(dst, data)
	b.gen++
	c.dev.FlushRange(dst)
	return nil
}

// BufferBytes returns a copy of the storage of the named buffer.
func (c *Context) BufferBytes(id BufferID) ([]byte, error) {
	b, ok := c.buffers[id]
	if !ok {
		return nil, c.fail("BufferBytes", ErrInvalidOperation, "buffer %d does not exist", id)
	}
	return append([]byte(nil), b.data...), nil
}

// boundBuffer returns the buffer bound to target.
func (c *Context) boundBuffer(target BufferTarget) (*buffer, *rejection) {
	slot, ok := bindingIndex(target)
	if !ok {
		return nil, reject(ErrInvalidEnum, "target 0x%04X", uint32(target))
	}
	id := c.bound[slot]
	if id == 0 {
		return nil, reject(ErrInvalidOperation, "no buffer bound to target 0x%04X", uint32(target))
	}
	return c.buffers[id], nil
}

// Float32Bytes encodes vertex floats in the big-endian layout the hardware
// reads.
func Float32Bytes(v ...float32) []byte {
	return f32.Bytes(binary.BigEndian, v...)
}

// IndexBytes encodes 16-bit indices in the byte order the context reads
// them with.
func (c *Context) IndexBytes(indices ...uint16) []byte {
	b := make([]byte, 2*len(indices))
	for i, v := range indices {
		c.opts.byteOrder.PutUint16(b[2*i:], v)
	}
	return b
}
