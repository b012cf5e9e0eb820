package gx

// TexObj describes a texture to the hardware. It is a plain value: the
// Init functions only fill in the descriptor, nothing reaches the FIFO until
// Device.LoadTexObj is called.
type TexObj struct {
	Image     []byte
	Width     uint16
	Height    uint16
	Format    TexFmt
	WrapS     WrapMode
	WrapT     WrapMode
	Mipmap    bool
	MinFilter TexFilter
	MagFilter TexFilter
}

// InitTexObj resets obj to describe img with the given size, format and
// wrap modes. Filters default to linear.
func InitTexObj(obj *TexObj, img []byte, width, height uint16, format TexFmt, wrapS, wrapT WrapMode, mipmap bool) {
	*obj = TexObj{
		Image:     img,
		Width:     width,
		Height:    height,
		Format:    format,
		WrapS:     wrapS,
		WrapT:     wrapT,
		Mipmap:    mipmap,
		MinFilter: Linear,
		MagFilter: Linear,
	}
}

// InitTexObjFilterMode sets the minification and magnification filters.
func InitTexObjFilterMode(obj *TexObj, minFilter, magFilter TexFilter) {
	obj.MinFilter = minFilter
	obj.MagFilter = magFilter
}

// InitTexObjWrapMode sets the wrap modes.
func InitTexObjWrapMode(obj *TexObj, wrapS, wrapT WrapMode) {
	obj.WrapS = wrapS
	obj.WrapT = wrapT
}

// LightObj holds the parameters of one hardware light.
type LightObj struct {
	Pos   [3]float32
	Dir   [3]float32
	Color Color
}

// InitLightPos sets the light position in eye space.
func InitLightPos(obj *LightObj, x, y, z float32) {
	obj.Pos = [3]float32{x, y, z}
}

// InitLightColor sets the light color.
func InitLightColor(obj *LightObj, c Color) {
	obj.Color = c
}

// GetTexObjAll returns the image descriptor of obj.
func GetTexObjAll(obj *TexObj) (img []byte, width, height uint16, format TexFmt, wrapS, wrapT WrapMode, mipmap bool) {
	return obj.Image, obj.Width, obj.Height, obj.Format, obj.WrapS, obj.WrapT, obj.Mipmap
}
