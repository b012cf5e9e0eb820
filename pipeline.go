package gxgl

import "github.com/gogpu/gxgl/gx"

// setupDrawing wires TEV stage 0 for the next draw. The stage computes
// d = a·(1-c) + b·c with a = 0, that is vertex color times texture color.
//
// The vertex color is the rasterized color when the color array is on and
// the current color (register C0) otherwise. The texture color is the
// sampled texel when the texcoord array is on and constant one otherwise.
// When lighting is on, stage 1 (set up by Reset) multiplies the result by
// the lit channel.
func (c *Context) setupDrawing() {
	vtxC, vtxA := gx.CCC0, gx.CAA0
	if c.client.color {
		vtxC, vtxA = gx.CCRasC, gx.CARasA
	}

	texC, texA := gx.CCTexC, gx.CATexA
	if !c.client.texCoord {
		texC, texA = gx.CCOne, gx.CAA1
		c.dev.SetTevColor(gx.TevReg1, gx.White)
	}

	c.dev.SetTevColorIn(gx.TevStage0, gx.CCZero, vtxC, texC, gx.CCZero)
	c.dev.SetTevAlphaIn(gx.TevStage0, gx.CAZero, vtxA, texA, gx.CAZero)
	c.dev.SetTevColorOp(gx.TevStage0, gx.TevAdd, gx.TevBiasZero, gx.TevScale1, true, gx.TevPrev)
	c.dev.SetTevAlphaOp(gx.TevStage0, gx.TevAdd, gx.TevBiasZero, gx.TevScale1, true, gx.TevPrev)
}
