package transform

import "github.com/go-gl/mathgl/mgl64"

// Sample is one frame of one entity in target space (Y-up, left-handed,
// clockwise-positive).
type Sample struct {
	Frame int
	// Position is (x, y, z) in target axis order.
	Position mgl64.Vec3
	// Rotation is (pitch, yaw, roll) in degrees about target X, Y and Z.
	// Values are not wrapped and may exceed ±180.
	Rotation mgl64.Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
}
