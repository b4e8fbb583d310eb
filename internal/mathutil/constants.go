package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Fixed matrices for converting authoring-space (Z-up, right-handed, CCW)
// camera transforms into target-space (Y-up, left-handed, CW) poses.
var (
	// PitchCorrection is a local Rx(-90°). An authoring camera looks straight
	// down at zero pitch; a target camera looks at the horizon.
	PitchCorrection = mgl64.Rotate3DX(math.Pi / -2)

	// TargetOrder decomposes over authoring axes as if authoring Z were the
	// target's Y, which reads the target's Z·X·Y composition.
	TargetOrder = OrderYXZ
)
