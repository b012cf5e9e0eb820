// Package texconv converts client pixel data into the texel layouts the
// graphics processor samples.
//
// Client images arrive in one of five unsigned-byte layouts. They are first
// normalized to 8-bit RGBA and then packed into RGB5A3, 16-bit texels stored
// big-endian in 4×4 tiles.
package texconv

import "errors"

// ErrShortBuffer is returned when pixel data is smaller than its declared
// dimensions require.
var ErrShortBuffer = errors.New("texconv: pixel data shorter than width*height*bytesPerPixel")

// Format is a client pixel layout. Every channel is one unsigned byte.
type Format uint8

const (
	// FormatAlpha is a single alpha channel; color is black.
	FormatAlpha Format = iota

	// FormatLuminance is a single gray channel; alpha is opaque.
	FormatLuminance

	// FormatLuminanceAlpha is gray followed by alpha.
	FormatLuminanceAlpha

	// FormatRGB is red, green, blue; alpha is opaque.
	FormatRGB

	// FormatRGBA is red, green, blue, alpha.
	FormatRGBA

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the GL name of the layout.
	Name string

	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format carries an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if color is a single gray channel.
	IsGrayscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatAlpha:          {Name: "ALPHA", BytesPerPixel: 1, HasAlpha: true},
	FormatLuminance:      {Name: "LUMINANCE", BytesPerPixel: 1, IsGrayscale: true},
	FormatLuminanceAlpha: {Name: "LUMINANCE_ALPHA", BytesPerPixel: 2, HasAlpha: true, IsGrayscale: true},
	FormatRGB:            {Name: "RGB", BytesPerPixel: 3},
	FormatRGBA:           {Name: "RGBA", BytesPerPixel: 4, HasAlpha: true},
}

// Info returns metadata for the format.
// Returns zero FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a known layout.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// ImageSize returns the number of bytes a width×height image occupies.
func (f Format) ImageSize(width, height int) int {
	return width * height * f.BytesPerPixel()
}

// String returns the GL name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].Name
}

// Normalize expands src, laid out as f, to tightly packed 8-bit RGBA.
func Normalize(src []byte, width, height int, f Format) ([]byte, error) {
	if !f.IsValid() {
		return nil, errors.New("texconv: invalid format")
	}
	n := width * height
	if len(src) < f.ImageSize(width, height) {
		return nil, ErrShortBuffer
	}

	dst := make([]byte, n*4)
	for i := 0; i < n; i++ {
		d := dst[i*4 : i*4+4 : i*4+4]
		switch f {
		case FormatAlpha:
			d[0], d[1], d[2], d[3] = 0, 0, 0, src[i]
		case FormatLuminance:
			l := src[i]
			d[0], d[1], d[2], d[3] = l, l, l, 0xFF
		case FormatLuminanceAlpha:
			l := src[i*2]
			d[0], d[1], d[2], d[3] = l, l, l, src[i*2+1]
		case FormatRGB:
			s := src[i*3 : i*3+3 : i*3+3]
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xFF
		case FormatRGBA:
			copy(d, src[i*4:i*4+4])
		}
	}
	return dst, nil
}
