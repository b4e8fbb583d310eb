// Package preview draws a top-down plot of a converted camera path so an
// export can be checked at a glance without loading it into the engine.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"camera-path-export/internal/fsutil"
	"camera-path-export/internal/script"
	"camera-path-export/internal/transform"
)

const (
	labelHeight = 16   // px reserved above the plot at output scale
	maxTicks    = 32   // heading ticks drawn per path
	tickLength  = 0.06 // of the output edge
)

// projection maps target X/Z onto output pixels, looking down the Y axis
// with +Z pointing up the image.
type projection struct {
	midX, midZ float64
	cx, cy     float64
	scale      float64
}

func fit(samples []transform.Sample, size int) projection {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		minX, maxX = math.Min(minX, s.Position[0]), math.Max(maxX, s.Position[0])
		minZ, maxZ = math.Min(minZ, s.Position[2]), math.Max(maxZ, s.Position[2])
	}

	pad := float64(size) / 10
	left, right := pad, float64(size)-pad
	top, bottom := pad+labelHeight, float64(size)-pad

	scale := math.Inf(1)
	if w := maxX - minX; w > 0 {
		scale = (right - left) / w
	}
	if h := maxZ - minZ; h > 0 {
		scale = math.Min(scale, (bottom-top)/h)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	return projection{
		midX:  (minX + maxX) / 2,
		midZ:  (minZ + maxZ) / 2,
		cx:    (left + right) / 2,
		cy:    (top + bottom) / 2,
		scale: scale,
	}
}

func (p projection) point(s transform.Sample) (float64, float64) {
	return p.cx + (s.Position[0]-p.midX)*p.scale, p.cy - (s.Position[2]-p.midZ)*p.scale
}

// heading returns the image-space unit direction of a sample's yaw.
// Positive yaw turns clockwise seen from above, from +Z toward +X.
func heading(s transform.Sample) (float64, float64) {
	yaw := s.Rotation[1] * math.Pi / 180
	return math.Sin(yaw), -math.Cos(yaw)
}

// Render plots samples and labels the image. The result is opts.Size
// square regardless of supersampling.
func Render(samples []transform.Sample, label string, opts Options) (*image.NRGBA, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("preview: size must be > 0, got %d", opts.Size)
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	k := float64(ss)
	proj := fit(samples, opts.Size)
	c := NewCanvas(opts.Size*ss, opts.Size*ss, colorBackground)

	for i := 1; i < 4; i++ {
		v := float64(c.Width) * float64(i) / 4
		c.Line(v, 0, v, float64(c.Height), k, colorGrid)
		c.Line(0, v, float64(c.Width), v, k, colorGrid)
	}

	for i := 1; i < len(samples); i++ {
		x0, y0 := proj.point(samples[i-1])
		x1, y1 := proj.point(samples[i])
		c.Line(x0*k, y0*k, x1*k, y1*k, 2*k, colorPath)
	}

	step := (len(samples) + maxTicks - 1) / maxTicks
	tick := tickLength * float64(opts.Size)
	for i := 0; i < len(samples); i += step {
		x, y := proj.point(samples[i])
		dx, dy := heading(samples[i])
		c.Line(x*k, y*k, (x+dx*tick)*k, (y+dy*tick)*k, k, colorHeading)
	}

	ex, ey := proj.point(samples[len(samples)-1])
	c.Disc(ex*k, ey*k, 5*k, colorEnd)
	sx, sy := proj.point(samples[0])
	c.Disc(sx*k, sy*k, 5*k, colorStart)

	img := c.Img
	if ss > 1 {
		img = Downsample(img, opts.Size)
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 13),
	}
	d.DrawString(fmt.Sprintf("%s  %d-%d", label, samples[0].Frame, samples[len(samples)-1].Frame))
	return img, nil
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("preview: unknown format %q", f)
}

// Write renders an entity's preview and writes it next to its script as
// <base>_<entity>.<format>.
func Write(w fsutil.Writer, base, entity string, samples []transform.Sample, opts Options) (string, error) {
	path := script.PathFor(base, entity, opts.Format.Ext())
	img, err := Render(samples, entity, opts)
	if err != nil {
		return path, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts.Format); err != nil {
		return path, fmt.Errorf("preview: encode %s: %w", entity, err)
	}
	if err := w.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return path, fmt.Errorf("preview: write %s: %w", path, err)
	}
	return path, nil
}
