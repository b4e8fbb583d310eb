package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled canvas down to size x size with
// CatmullRom filtering. The preview background is opaque, so no
// premultiplication pass is needed.
func Downsample(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
