package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Canvas is an NRGBA render target with an anti-aliasing rasterizer.
// Coordinates are pixels, y pointing down.
type Canvas struct {
	Width  int
	Height int
	Img    *image.NRGBA
	r      *vector.Rasterizer
}

// NewCanvas allocates a canvas filled with bg.
func NewCanvas(w, h int, bg color.NRGBA) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}
	return &Canvas{
		Width:  w,
		Height: h,
		Img:    img,
		r:      vector.NewRasterizer(w, h),
	}
}

// Line strokes a segment of the given width as a filled quad.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		c.Disc(x0, y0, width/2, col)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	c.r.Reset(c.Width, c.Height)
	c.r.MoveTo(float32(x0+nx), float32(y0+ny))
	c.r.LineTo(float32(x1+nx), float32(y1+ny))
	c.r.LineTo(float32(x1-nx), float32(y1-ny))
	c.r.LineTo(float32(x0-nx), float32(y0-ny))
	c.r.ClosePath()
	c.fill(col)
}

// Disc fills a circle approximated by a polygon.
func (c *Canvas) Disc(cx, cy, radius float64, col color.NRGBA) {
	const steps = 32
	c.r.Reset(c.Width, c.Height)
	c.r.MoveTo(float32(cx+radius), float32(cy))
	for i := 1; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		c.r.LineTo(float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a)))
	}
	c.r.ClosePath()
	c.fill(col)
}

func (c *Canvas) fill(col color.NRGBA) {
	c.r.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{})
}
