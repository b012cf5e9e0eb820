package gxgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gxgl/gx"
)

// maxVertices is the largest vertex count one Begin can announce.
const maxVertices = 0xFFFF

// polygonOffsetScale converts polygon offset units to a clip-space depth
// shift.
const polygonOffsetScale = 0.1

// DrawArrays draws count vertices starting at first from the enabled
// arrays.
func (c *Context) DrawArrays(mode Mode, first, count int) error {
	const op = "DrawArrays"
	if _, ok := primitives[mode]; !ok {
		return c.fail(op, ErrInvalidEnum, "mode %v", mode)
	}
	if first < 0 || count < 0 {
		return c.fail(op, ErrInvalidValue, "first %d count %d", first, count)
	}
	if count > maxVertices || first > maxVertices || count > maxVertices-first+1 {
		return c.fail(op, ErrInvalidValue, "range [%d, %d) exceeds 16-bit indices", first, first+count)
	}
	if count == 0 {
		return nil
	}

	indices := make([]uint16, count)
	for i := range indices {
		// #nosec G115 -- range checked above
		indices[i] = uint16(first + i)
	}
	return c.draw(op, mode, indices)
}

// DrawElements draws count vertices whose indices are read from indices,
// either client memory or, when an element buffer is bound, an offset into
// it. Index types are unsigned byte and unsigned short; shorts use the
// context byte order.
func (c *Context) DrawElements(mode Mode, count int, typ DataType, indices Pointer) error {
	const op = "DrawElements"
	if _, ok := primitives[mode]; !ok {
		return c.fail(op, ErrInvalidEnum, "mode %v", mode)
	}
	if typ != UnsignedByte && typ != UnsignedShort {
		return c.fail(op, ErrInvalidEnum, "index type %v", typ)
	}
	if count < 0 || count > maxVertices {
		return c.fail(op, ErrInvalidValue, "count %d", count)
	}

	src := indices.data
	if id := c.bound[bindingElement]; id != 0 {
		if !indices.isOffset {
			return c.fail(op, ErrInvalidOperation, "client indices with element buffer %d bound", id)
		}
		data := c.buffers[id].data
		if indices.offset < 0 || indices.offset > len(data) {
			return c.fail(op, ErrOutOfBounds, "offset %d outside element buffer of %d bytes", indices.offset, len(data))
		}
		src = data[indices.offset:]
	} else if indices.isOffset {
		return c.fail(op, ErrInvalidOperation, "offset indices without an element buffer")
	}

	size := typ.Size()
	if len(src) < count*size {
		return c.fail(op, ErrOutOfBounds, "%d index bytes, need %d", len(src), count*size)
	}
	if count == 0 {
		return nil
	}

	idx := make([]uint16, count)
	for i := range idx {
		if typ == UnsignedByte {
			idx[i] = uint16(src[i])
		} else {
			idx[i] = c.opts.byteOrder.Uint16(src[2*i:])
		}
	}
	return c.draw(op, mode, idx)
}

// draw emits one primitive over indices. All checks that can fail run
// before the first command.
func (c *Context) draw(op string, mode Mode, indices []uint16) error {
	indices = expandIndices(mode, indices)
	if len(indices) > maxVertices {
		return c.fail(op, ErrInvalidValue, "%d vertices exceed one primitive", len(indices))
	}
	maxIndex := 0
	for _, i := range indices {
		maxIndex = max(maxIndex, int(i))
	}
	if r := c.checkArrays(maxIndex); r != nil {
		return c.report(op, r)
	}

	if c.caps.texture2D {
		if obj := c.boundTexObj(); obj != nil {
			c.dev.LoadTexObj(obj, gx.TexMap0)
		}
	}

	offset := c.caps.polygonOffsetFill && c.polyOffsetUnits != 0
	if offset {
		proj := c.stacks[stackProjection].top()
		shift := mgl32.Translate3D(0, 0, -c.polyOffsetUnits*polygonOffsetScale)
		c.loadProjection(shift.Mul4(proj))
	}

	c.setupDrawing()
	c.refreshArrays()
	c.dev.InvVtxCache()

	// #nosec G115 -- length checked against maxVertices above
	c.dev.Begin(primitives[mode], gx.VtxFmt0, uint16(len(indices)))
	for _, i := range indices {
		if c.client.vertex {
			c.dev.Position1x16(i)
		}
		if c.client.normal {
			c.dev.Normal1x16(i)
		}
		if c.client.color {
			c.dev.Color1x16(i)
		}
		if c.client.texCoord {
			c.dev.TexCoord1x16(i)
		}
	}
	c.dev.End()

	if offset {
		c.loadProjection(c.stacks[stackProjection].top())
	}

	c.log.Debug("gxgl: draw", "op", op, "mode", mode, "vertices", len(indices))
	return nil
}

// expandIndices rewrites topologies the hardware lacks. A line loop becomes
// a strip that returns to its first vertex; a quad strip has the vertex
// order of a triangle strip already.
func expandIndices(mode Mode, indices []uint16) []uint16 {
	if mode == LineLoop && len(indices) > 1 {
		return append(indices, indices[0])
	}
	return indices
}
