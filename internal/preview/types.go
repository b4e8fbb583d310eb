package preview

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Format selects the preview image encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat accepts "webp" or "tga" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatWebP, FormatTGA:
		return f, nil
	}
	return "", fmt.Errorf("preview: unknown format %q (want webp or tga)", s)
}

// Ext returns the file extension for the format, with the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// Options controls preview rendering.
type Options struct {
	Format      Format
	Size        int // output edge length in pixels
	Supersample int // render at Size*Supersample, then downscale
}

// ErrNoSamples is returned when there is nothing to plot.
var ErrNoSamples = errors.New("preview: no samples")

var (
	colorBackground = color.NRGBA{24, 26, 32, 255}
	colorGrid       = color.NRGBA{44, 48, 58, 255}
	colorPath       = color.NRGBA{90, 170, 255, 255}
	colorHeading    = color.NRGBA{255, 200, 80, 255}
	colorStart      = color.NRGBA{80, 220, 120, 255}
	colorEnd        = color.NRGBA{240, 80, 80, 255}
	colorLabel      = color.NRGBA{230, 230, 230, 255}
)
