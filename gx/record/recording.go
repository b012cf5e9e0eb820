package record

import (
	"fmt"
	"io"

	"github.com/gogpu/gxgl/gx"
)

// Recording is an immutable container for recorded device commands.
// It can be inspected or replayed onto any gx.Device.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Filter returns the commands of type t in recording order.
func (r *Recording) Filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent command of type t.
func (r *Recording) Last(t CommandType) (Command, bool) {
	for i := len(r.commands) - 1; i >= 0; i-- {
		if r.commands[i].Type() == t {
			return r.commands[i], true
		}
	}
	return nil, false
}

// Histogram returns the number of recorded commands per type, indexed by
// CommandType.
func (r *Recording) Histogram() []int {
	h := make([]int, commandTypeCount)
	for _, c := range r.commands {
		if t := int(c.Type()); t < len(h) {
			h[t]++
		}
	}
	return h
}

// Vertex is one submitted vertex: the attribute indices in the order they
// reached the FIFO.
type Vertex struct {
	Attrs   []gx.Attr
	Indices []uint16
}

// Index returns the index submitted for attr.
func (v Vertex) Index(attr gx.Attr) (uint16, bool) {
	for i, a := range v.Attrs {
		if a == attr {
			return v.Indices[i], true
		}
	}
	return 0, false
}

// Draw is one Begin/End block.
type Draw struct {
	Prim     gx.Primitive
	Count    uint16
	Vertices []Vertex
}

// vertexAttrOrder is the order in which the hardware expects indexed
// attributes within a vertex.
var vertexAttrOrder = [...]gx.Attr{gx.AttrPos, gx.AttrNrm, gx.AttrClr0, gx.AttrClr1, gx.AttrTex0}

// Draws groups the submitted indices into vertices. The number of
// attributes per vertex follows from the count announced by Begin, or from
// the vertex descriptors in effect when the count does not divide the
// indices evenly.
func (r *Recording) Draws() []Draw {
	desc := make(map[gx.Attr]gx.AttrType)
	var draws []Draw
	var cur *Draw
	var idx []IndexCommand

	for _, c := range r.commands {
		switch c := c.(type) {
		case ClearVtxDescCommand:
			clear(desc)
		case SetVtxDescCommand:
			desc[c.Attr] = c.AttrType
		case BeginCommand:
			draws = append(draws, Draw{Prim: c.Prim, Count: c.Count})
			cur = &draws[len(draws)-1]
			idx = idx[:0]
		case IndexCommand:
			if cur != nil {
				idx = append(idx, c)
			}
		case EndCommand:
			if cur != nil {
				cur.Vertices = groupVertices(idx, int(cur.Count), desc)
			}
			cur = nil
		}
	}
	return draws
}

func groupVertices(idx []IndexCommand, count int, desc map[gx.Attr]gx.AttrType) []Vertex {
	perVertex := 0
	if count > 0 && len(idx)%count == 0 {
		perVertex = len(idx) / count
	}
	if perVertex == 0 {
		for _, a := range vertexAttrOrder {
			if desc[a] != gx.AttrNone {
				perVertex++
			}
		}
	}
	perVertex = max(perVertex, 1)

	var out []Vertex
	for len(idx) > 0 {
		n := min(perVertex, len(idx))
		v := Vertex{Attrs: make([]gx.Attr, n), Indices: make([]uint16, n)}
		for i, c := range idx[:n] {
			v.Attrs[i], v.Indices[i] = c.Attr, c.Index
		}
		out = append(out, v)
		idx = idx[n:]
	}
	return out
}

// Vertices returns every submitted vertex across all draws.
func (r *Recording) Vertices() []Vertex {
	var out []Vertex
	for _, d := range r.Draws() {
		out = append(out, d.Vertices...)
	}
	return out
}

// Dump writes one line per command to w.
func (r *Recording) Dump(w io.Writer) error {
	for i, c := range r.commands {
		if _, err := fmt.Fprintf(w, "%6d  %-18s %+v\n", i, c.Type(), c); err != nil {
			return err
		}
	}
	return nil
}

// Playback replays the recording onto dev.
func (r *Recording) Playback(dev gx.Device) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetViewportCommand:
			dev.SetViewport(c.X, c.Y, c.Width, c.Height, c.Near, c.Far)
		case SetScissorCommand:
			dev.SetScissor(c.X, c.Y, c.Width, c.Height)
		case SetDispCopySrcCommand:
			dev.SetDispCopySrc(c.Left, c.Top, c.Width, c.Height)
		case SetDispCopyDstCommand:
			dev.SetDispCopyDst(c.Width, c.Height)
		case SetDispCopyYScaleCommand:
			dev.SetDispCopyYScale(c.Scale)
		case SetFieldModeCommand:
			dev.SetFieldMode(c.Field, c.HalfAspect)
		case SetDispCopyGammaCommand:
			dev.SetDispCopyGamma(c.Gamma)
		case SetCopyClearCommand:
			dev.SetCopyClear(c.Color, c.Z)
		case CopyDispCommand:
			dev.CopyDisp(c.Framebuffer, c.Clear)
		case DrawDoneCommand:
			dev.DrawDone()
		case SetZModeCommand:
			dev.SetZMode(c.Enable, c.Func, c.Update)
		case SetCullModeCommand:
			dev.SetCullMode(c.Mode)
		case SetBlendModeCommand:
			dev.SetBlendMode(c.Mode, c.Src, c.Dst, c.Op)
		case SetAlphaCompareCommand:
			dev.SetAlphaCompare(c.Comp0, c.Ref0, c.Op, c.Comp1, c.Ref1)
		case SetColorUpdateCommand:
			dev.SetColorUpdate(c.Enable)
		case SetAlphaUpdateCommand:
			dev.SetAlphaUpdate(c.Enable)
		case SetPointSizeCommand:
			dev.SetPointSize(c.Width, c.Offset)
		case LoadPosMtxImmCommand:
			dev.LoadPosMtxImm(c.Mtx, c.Slot)
		case LoadNrmMtxImmCommand:
			dev.LoadNrmMtxImm(c.Mtx, c.Slot)
		case LoadProjectionMtxCommand:
			dev.LoadProjectionMtx(c.Mtx, c.Kind)
		case LoadTexMtxImmCommand:
			dev.LoadTexMtxImm(c.Mtx, c.Slot, c.Kind)
		case ClearVtxDescCommand:
			dev.ClearVtxDesc()
		case SetVtxDescCommand:
			dev.SetVtxDesc(c.Attr, c.AttrType)
		case SetVtxAttrFmtCommand:
			dev.SetVtxAttrFmt(c.Fmt, c.Attr, c.Count, c.CompType, c.Frac)
		case SetArrayCommand:
			if int(c.Array) >= r.resources.ArrayCount() {
				return fmt.Errorf("record: command %d: invalid array ref %d", i, c.Array)
			}
			dev.SetArray(c.Attr, r.resources.GetArray(c.Array), c.Stride)
		case InvVtxCacheCommand:
			dev.InvVtxCache()
		case BeginCommand:
			dev.Begin(c.Prim, c.Fmt, c.Count)
		case IndexCommand:
			switch c.Attr {
			case gx.AttrNrm:
				dev.Normal1x16(c.Index)
			case gx.AttrClr0:
				dev.Color1x16(c.Index)
			case gx.AttrTex0:
				dev.TexCoord1x16(c.Index)
			default:
				dev.Position1x16(c.Index)
			}
		case EndCommand:
			dev.End()
		case SetNumTevStagesCommand:
			dev.SetNumTevStages(c.N)
		case SetTevOrderCommand:
			dev.SetTevOrder(c.Stage, c.Coord, c.TexMap, c.Channel)
		case SetTevColorInCommand:
			dev.SetTevColorIn(c.Stage, c.A, c.B, c.C, c.D)
		case SetTevAlphaInCommand:
			dev.SetTevAlphaIn(c.Stage, c.A, c.B, c.C, c.D)
		case SetTevColorOpCommand:
			dev.SetTevColorOp(c.Stage, c.Op, c.Bias, c.Scale, c.Clamp, c.Out)
		case SetTevAlphaOpCommand:
			dev.SetTevAlphaOp(c.Stage, c.Op, c.Bias, c.Scale, c.Clamp, c.Out)
		case SetTevColorCommand:
			dev.SetTevColor(c.Reg, c.Color)
		case SetNumTexGensCommand:
			dev.SetNumTexGens(c.N)
		case SetTexCoordGenCommand:
			dev.SetTexCoordGen(c.Coord, c.Gen, c.Src, c.Mtx)
		case SetNumChansCommand:
			dev.SetNumChans(c.N)
		case SetChanCtrlCommand:
			dev.SetChanCtrl(c.Channel, c.Enable, c.Amb, c.Mat, c.Lights, c.Diff, c.Attn)
		case SetChanAmbColorCommand:
			dev.SetChanAmbColor(c.Channel, c.Color)
		case SetChanMatColorCommand:
			dev.SetChanMatColor(c.Channel, c.Color)
		case LoadLightObjCommand:
			light := c.Light
			dev.LoadLightObj(&light, c.ID)
		case LoadTexObjCommand:
			if int(c.Tex) >= r.resources.TexObjCount() {
				return fmt.Errorf("record: command %d: invalid texture ref %d", i, c.Tex)
			}
			dev.LoadTexObj(r.resources.GetTexObj(c.Tex), c.Slot)
		case InvalidateTexAllCommand:
			dev.InvalidateTexAll()
		case FlushRangeCommand:
			dev.FlushRange(make([]byte, c.Size))
		default:
			return fmt.Errorf("record: command %d: unknown command %T", i, cmd)
		}
	}
	return nil
}
