package gxgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gxgl/gx"
)

// Lightfv sets a parameter of one light and reloads it into the hardware.
// Positions are transformed by the current model-view matrix. Ambient and
// specular light colors are accepted but have no hardware equivalent.
func (c *Context) Lightfv(light Capability, pname LightParam, params []float32) error {
	const op = "Lightfv"
	n, ok := light.light()
	if !ok {
		return c.fail(op, ErrInvalidEnum, "light %v", light)
	}
	if len(params) < 4 {
		return c.fail(op, ErrInvalidValue, "%d parameters, need 4", len(params))
	}

	obj := &c.lights[n]
	switch pname {
	case Position:
		p := c.modelView().Mul4x1(mgl32.Vec4{params[0], params[1], params[2], params[3]})
		gx.InitLightPos(obj, p.X(), p.Y(), p.Z())
	case Diffuse:
		gx.InitLightColor(obj, colorFromFloats(params[0], params[1], params[2], 1))
	case Ambient, Specular:
		c.log.Warn("gxgl: light parameter has no hardware effect", "light", light, "pname", uint32(pname))
	default:
		return c.fail(op, ErrInvalidEnum, "parameter 0x%04X", uint32(pname))
	}
	c.dev.LoadLightObj(obj, 1<<n)
	return nil
}

// Materialfv sets a material color of the lit channel. Both faces share
// one material.
func (c *Context) Materialfv(face Face, pname LightParam, params []float32) error {
	const op = "Materialfv"
	switch face {
	case Front, Back, FrontAndBack:
	default:
		return c.fail(op, ErrInvalidEnum, "face 0x%04X", uint32(face))
	}

	switch pname {
	case Ambient, Diffuse, AmbientAndDiffuse, Specular, Emission:
		if len(params) < 4 {
			return c.fail(op, ErrInvalidValue, "%d parameters, need 4", len(params))
		}
	case Shininess:
		if len(params) < 1 {
			return c.fail(op, ErrInvalidValue, "no parameters")
		}
	default:
		return c.fail(op, ErrInvalidEnum, "parameter 0x%04X", uint32(pname))
	}

	switch pname {
	case Ambient:
		c.dev.SetChanAmbColor(gx.Color1A1, colorFromFloats(params[0], params[1], params[2], params[3]))
	case Diffuse:
		c.dev.SetChanMatColor(gx.Color1A1, colorFromFloats(params[0], params[1], params[2], params[3]))
	case AmbientAndDiffuse:
		col := colorFromFloats(params[0], params[1], params[2], params[3])
		c.dev.SetChanAmbColor(gx.Color1A1, col)
		c.dev.SetChanMatColor(gx.Color1A1, col)
	default:
		c.log.Warn("gxgl: material parameter has no hardware effect", "pname", uint32(pname))
	}
	return nil
}

// LightModelfv sets the global ambient color.
func (c *Context) LightModelfv(pname LightModelParam, params []float32) error {
	const op = "LightModelfv"
	if pname != LightModelAmbient {
		return c.fail(op, ErrInvalidEnum, "parameter 0x%04X", uint32(pname))
	}
	if len(params) < 4 {
		return c.fail(op, ErrInvalidValue, "%d parameters, need 4", len(params))
	}
	c.dev.SetChanAmbColor(gx.Color1A1, colorFromFloats(params[0], params[1], params[2], params[3]))
	return nil
}

// TexGeni selects the texture coordinate generation function. Sphere
// mapping derives coordinates from eye-space normals; the linear modes are
// recorded but generate nothing.
func (c *Context) TexGeni(coord TexCoordName, pname TexGenParam, mode TexGenMode) error {
	const op = "TexGeni"
	if coord != S && coord != T {
		return c.fail(op, ErrInvalidEnum, "coordinate 0x%04X", uint32(coord))
	}
	if pname != TextureGenMode {
		return c.fail(op, ErrInvalidEnum, "parameter 0x%04X", uint32(pname))
	}
	switch mode {
	case SphereMap:
		c.dev.LoadTexMtxImm(hwMtx(sphereMapMatrix(c.modelView())), gx.TexMtx0, gx.Mtx2x4)
		c.dev.SetTexCoordGen(gx.TexCoord0, gx.TexGenMtx2x4, gx.TexGenSrcNrm, gx.TexMtx0)
	case EyeLinear, ObjectLinear:
		c.log.Warn("gxgl: texgen mode has no hardware effect", "mode", int32(mode))
	default:
		return c.fail(op, ErrInvalidEnum, "mode 0x%04X", int32(mode))
	}
	c.texGenMode = mode
	return nil
}

// sphereMapMatrix maps eye-space normals of model-view mv to texture
// coordinates.
func sphereMapMatrix(mv mgl32.Mat4) mgl32.Mat4 {
	m := normalMatrix(mv)
	m = mgl32.Translate3D(0.5, -0.5, 0).Mul4(m)
	return mgl32.Scale3D(0.5, 0.5, 1).Mul4(m)
}
