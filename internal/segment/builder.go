// Package segment turns a sequence of target-space samples into the
// movement segments of a playback script.
package segment

import (
	"fmt"

	"camera-path-export/internal/mathutil"
	"camera-path-export/internal/transform"
)

// Build returns one segment per pair of adjacent samples, so len(samples)-1
// segments, or none for fewer than two samples. Every value is rounded here
// and nowhere earlier.
func Build(samples []transform.Sample, frameRate float64) ([]Segment, error) {
	if !(frameRate > 0) || !mathutil.Finite(frameRate) {
		return nil, fmt.Errorf("segment: frame rate must be > 0, got %v", frameRate)
	}
	duration := 1 / frameRate

	n := len(samples) - 1
	if n < 0 {
		n = 0
	}
	segs := make([]Segment, 0, n)
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		segs = append(segs, Segment{
			Index:    i,
			StartPos: position(prev),
			StartRot: rotation(prev),
			EndPos:   position(cur),
			EndRot:   rotation(cur),
			Duration: duration,
		})
	}
	return segs, nil
}

func position(s transform.Sample) Position {
	return Position{
		X:   mathutil.Round(s.Position[0], Places),
		Y:   mathutil.Round(s.Position[1], Places),
		Z:   mathutil.Round(s.Position[2], Places),
		FOV: mathutil.Round(s.FOV, Places),
	}
}

func rotation(s transform.Sample) Rotation {
	return Rotation{
		X: mathutil.Round(s.Rotation[0], Places),
		Y: mathutil.Round(s.Rotation[1], Places),
		Z: mathutil.Round(s.Rotation[2], Places),
	}
}
