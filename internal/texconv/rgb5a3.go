package texconv

import (
	"encoding/binary"
	"image"
)

// TileSize is the edge length of an RGB5A3 tile in texels.
const TileSize = 4

// roundUp rounds v up to a multiple of TileSize.
func roundUp(v int) int {
	return (v + TileSize - 1) &^ (TileSize - 1)
}

// TiledSize returns the number of bytes an RGB5A3 image of the given size
// occupies once padded to whole tiles.
func TiledSize(width, height int) int {
	return roundUp(width) * roundUp(height) * 2
}

// PackRGB5A3 packs one color. Fully opaque colors use 1rrrrrgggggbbbbb,
// everything else 0aaarrrrggggbbbb.
func PackRGB5A3(r, g, b, a uint8) uint16 {
	if a == 0xFF {
		return 0x8000 | uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
	}
	return uint16(a>>5)<<12 | uint16(r>>4)<<8 | uint16(g>>4)<<4 | uint16(b>>4)
}

// UnpackRGB5A3 expands one texel to 8-bit channels by bit replication.
func UnpackRGB5A3(v uint16) (r, g, b, a uint8) {
	if v&0x8000 != 0 {
		r = expand5(uint8(v>>10) & 0x1F)
		g = expand5(uint8(v>>5) & 0x1F)
		b = expand5(uint8(v) & 0x1F)
		return r, g, b, 0xFF
	}
	a3 := uint8(v>>12) & 0x7
	a = a3<<5 | a3<<2 | a3>>1
	r = expand4(uint8(v>>8) & 0xF)
	g = expand4(uint8(v>>4) & 0xF)
	b = expand4(uint8(v) & 0xF)
	return r, g, b, a
}

func expand5(v uint8) uint8 { return v<<3 | v>>2 }
func expand4(v uint8) uint8 { return v<<4 | v }

// texelOffset returns the byte offset of texel (x, y) in a tiled image
// whose padded width is paddedWidth.
func texelOffset(x, y, paddedWidth int) int {
	blockCols := paddedWidth / TileSize
	block := x/TileSize + (y/TileSize)*blockCols
	return (block*TileSize*TileSize + (y%TileSize)*TileSize + x%TileSize) * 2
}

// EncodeRGB5A3 packs tightly packed RGBA8 pixels into big-endian RGB5A3
// texels arranged in 4×4 tiles, tiles in row-major order. Dimensions are
// padded up to whole tiles with zero texels.
func EncodeRGB5A3(rgba []byte, width, height int) ([]byte, error) {
	if len(rgba) < width*height*4 {
		return nil, ErrShortBuffer
	}
	paddedWidth := roundUp(width)
	dst := make([]byte, TiledSize(width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := rgba[(y*width+x)*4:]
			v := PackRGB5A3(p[0], p[1], p[2], p[3])
			binary.BigEndian.PutUint16(dst[texelOffset(x, y, paddedWidth):], v)
		}
	}
	return dst, nil
}

// DecodeRGB5A3 unpacks a tiled RGB5A3 image into an NRGBA image of the
// unpadded size.
func DecodeRGB5A3(tiled []byte, width, height int) (*image.NRGBA, error) {
	if len(tiled) < TiledSize(width, height) {
		return nil, ErrShortBuffer
	}
	paddedWidth := roundUp(width)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := binary.BigEndian.Uint16(tiled[texelOffset(x, y, paddedWidth):])
			r, g, b, a := UnpackRGB5A3(v)
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
		}
	}
	return img, nil
}
