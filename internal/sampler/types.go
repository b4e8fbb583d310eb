package sampler

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"camera-path-export/internal/scene"
)

// DefaultPrefix marks cameras for export (compared case-insensitively).
const DefaultPrefix = "b2c2_"

// DefaultCalibration makes the authoring tool's renders match the target
// engine's field of view.
var DefaultCalibration = scene.Sensor{Fit: scene.FitVertical, Width: 42.666666, Height: 24.0}

// RawSample is one frame of one entity in authoring space.
type RawSample struct {
	Frame int
	// World is the entity's world transform captured at Frame.
	World mgl64.Mat4
	// FOV is the vertical field of view in degrees, 0 < FOV < 180.
	FOV float64
}

// Track is one entity's samples in frame order.
type Track struct {
	Entity  string
	Samples []RawSample
	// Err is set when the entity could not be sampled; Samples is then nil.
	Err error
}

// Options configures discovery and sampling.
type Options struct {
	Prefix string
	// FixFOV forces Calibration onto every entity before sampling it.
	FixFOV      bool
	Calibration scene.Sensor
	// Window, when set, narrows sampling to part of the scene range.
	Window *Window
}

// Window is an inclusive frame interval.
type Window struct {
	Start, End int
}

// Clamp limits w to the inclusive range [start, end]. clamped reports
// whether a bound had to move; empty reports a window that misses the
// range altogether.
func (w Window) Clamp(start, end int) (out Window, clamped, empty bool) {
	out = w
	if out.Start < start {
		out.Start, clamped = start, true
	}
	if out.End > end {
		out.End, clamped = end, true
	}
	return out, clamped, out.Start > out.End
}

// FrameError reports an entity whose pose could not be evaluated at Frame.
type FrameError struct {
	Entity string
	Frame  int
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("sampler: %s: frame %d: %v", e.Entity, e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }
