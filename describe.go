package gxgl

import "github.com/gogpu/gputypes"

// Description summarizes the fixed-function state a draw would run with,
// in the vocabulary of portable GPU pipeline descriptors. It lets tools
// compare a GL state snapshot with a pipeline built for another backend.
type Description struct {
	Topology     gputypes.PrimitiveTopology
	FrontFace    gputypes.FrontFace
	CullMode     gputypes.CullMode
	DepthCompare gputypes.CompareFunction // Always while depth testing is off
	DepthWrite   bool
	Blend        *gputypes.BlendState // nil while blending is off
	Textured     bool
	Lit          bool
}

var topologies = map[Mode]gputypes.PrimitiveTopology{
	Points:        gputypes.PrimitiveTopologyPointList,
	Lines:         gputypes.PrimitiveTopologyLineList,
	LineLoop:      gputypes.PrimitiveTopologyLineStrip,
	LineStrip:     gputypes.PrimitiveTopologyLineStrip,
	Triangles:     gputypes.PrimitiveTopologyTriangleList,
	TriangleStrip: gputypes.PrimitiveTopologyTriangleStrip,
	TriangleFan:   gputypes.PrimitiveTopologyTriangleList,
	Quads:         gputypes.PrimitiveTopologyTriangleList,
	QuadStrip:     gputypes.PrimitiveTopologyTriangleStrip,
}

var compareFunctions = map[CompareFunc]gputypes.CompareFunction{
	Never:    gputypes.CompareFunctionNever,
	Less:     gputypes.CompareFunctionLess,
	Equal:    gputypes.CompareFunctionEqual,
	LEqual:   gputypes.CompareFunctionLessEqual,
	Greater:  gputypes.CompareFunctionGreater,
	NotEqual: gputypes.CompareFunctionNotEqual,
	GEqual:   gputypes.CompareFunctionGreaterEqual,
	Always:   gputypes.CompareFunctionAlways,
}

var portableBlendFactors = map[BlendFactor]gputypes.BlendFactor{
	Zero:             gputypes.BlendFactorZero,
	One:              gputypes.BlendFactorOne,
	SrcColor:         gputypes.BlendFactorSrc,
	OneMinusSrcColor: gputypes.BlendFactorOneMinusSrc,
	SrcAlpha:         gputypes.BlendFactorSrcAlpha,
	OneMinusSrcAlpha: gputypes.BlendFactorOneMinusSrcAlpha,
	DstColor:         gputypes.BlendFactorDst,
	OneMinusDstColor: gputypes.BlendFactorOneMinusDst,
	DstAlpha:         gputypes.BlendFactorDstAlpha,
	OneMinusDstAlpha: gputypes.BlendFactorOneMinusDstAlpha,
}

// Describe returns the state a draw with mode would use. Culling both
// faces has no portable equivalent and is reported as CullModeNone.
func (c *Context) Describe(mode Mode) (Description, error) {
	topo, ok := topologies[mode]
	if !ok {
		return Description{}, c.fail("Describe", ErrInvalidEnum, "mode %v", mode)
	}

	d := Description{
		Topology:     topo,
		FrontFace:    gputypes.FrontFaceCCW,
		CullMode:     gputypes.CullModeNone,
		DepthCompare: gputypes.CompareFunctionAlways,
		DepthWrite:   c.caps.depthTest && c.zUpdate,
		Textured:     c.caps.texture2D && c.boundTexObj() != nil,
		Lit:          c.caps.lighting,
	}
	if c.frontFace == CW {
		d.FrontFace = gputypes.FrontFaceCW
	}
	if c.caps.cullFace {
		switch c.cullFace {
		case Front:
			d.CullMode = gputypes.CullModeFront
		case Back:
			d.CullMode = gputypes.CullModeBack
		}
	}
	if c.caps.depthTest {
		d.DepthCompare = compareFunctions[c.zFunc]
	}
	if c.caps.blend {
		comp := gputypes.BlendComponent{
			SrcFactor: portableBlendFactors[c.blendSrc],
			DstFactor: portableBlendFactors[c.blendDst],
			Operation: gputypes.BlendOperationAdd,
		}
		d.Blend = &gputypes.BlendState{Color: comp, Alpha: comp}
	}
	return d, nil
}
