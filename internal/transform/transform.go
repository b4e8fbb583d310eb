// Package transform converts authoring-space camera samples (Z-up,
// right-handed, counter-clockwise-positive) into the target engine's
// convention (Y-up, left-handed, clockwise-positive, Z·X·Y Euler order).
//
// The conversion is:
//
//	R' = normalize(R) · Rx(-90°)            pitch origin: down -> horizon
//	(ex, ey, ez) = euler(R', YXZ)           authoring Z read as target Y
//	position = (tx, tz, ty)
//	rotation = (-ex, -ez, -ey)              handedness flips every sign
package transform

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"camera-path-export/internal/mathutil"
	"camera-path-export/internal/sampler"
)

// ErrDegenerate is returned for transforms with a zero-length axis.
var ErrDegenerate = errors.New("transform: degenerate rotation")

// Convert maps one raw sample into target space. The field of view passes
// through unchanged.
func Convert(raw sampler.RawSample) (Sample, error) {
	rot, ok := mathutil.Orthonormalize(raw.World.Mat3())
	if !ok {
		return Sample{}, fmt.Errorf("frame %d: %w", raw.Frame, ErrDegenerate)
	}
	corrected := rot.Mul3(mathutil.PitchCorrection)

	e := mathutil.DegVec3(mathutil.Mat3ToEuler(corrected, mathutil.TargetOrder))
	rx, rz, ry := e[0], e[1], e[2]

	return Sample{
		Frame:    raw.Frame,
		Position: mathutil.SwapYZ(raw.World.Col(3).Vec3()),
		Rotation: mgl64.Vec3{-rx, -ry, -rz},
		FOV:      raw.FOV,
	}, nil
}

// ConvertAll maps a whole track, preserving order and length.
func ConvertAll(raws []sampler.RawSample) ([]Sample, error) {
	out := make([]Sample, len(raws))
	for i, raw := range raws {
		s, err := Convert(raw)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
