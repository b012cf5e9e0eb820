package texconv

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage converts src to a tightly packed NRGBA image. If either edge
// exceeds maxSize the image is scaled down with Catmull-Rom filtering,
// preserving aspect ratio. A maxSize of zero disables scaling.
func FromImage(src image.Image, maxSize int) *image.NRGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
		return dst
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), src, sb.Min, xdraw.Src)
	return dst
}
