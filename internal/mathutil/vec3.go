package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SwapYZ exchanges the vertical and depth components. It is its own inverse.
func SwapYZ(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[2], v[1]}
}

// DegVec3 converts each component from radians to degrees.
func DegVec3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{Rad2Deg(v[0]), Rad2Deg(v[1]), Rad2Deg(v[2])}
}

// RadVec3 converts each component from degrees to radians.
func RadVec3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{Deg2Rad(v[0]), Deg2Rad(v[1]), Deg2Rad(v[2])}
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
