package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis indexes X, Y and Z in vectors and Euler triples.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// Rot returns the 3×3 rotation matrix around axis. Angle in radians.
func Rot(axis Axis, a float64) mgl64.Mat3 {
	switch axis {
	case AxisX:
		return mgl64.Rotate3DX(a)
	case AxisY:
		return mgl64.Rotate3DY(a)
	default:
		return mgl64.Rotate3DZ(a)
	}
}

// Orthonormalize strips scale from a rotation×scale matrix by normalizing its columns.
// Returns false when a column is degenerate (zero scale or non-finite).
func Orthonormalize(m mgl64.Mat3) (mgl64.Mat3, bool) {
	cols := [3]mgl64.Vec3{m.Col(0), m.Col(1), m.Col(2)}
	for i, c := range cols {
		l := c.Len()
		if l < 1e-12 || math.IsNaN(l) || math.IsInf(l, 0) {
			return mgl64.Ident3(), false
		}
		cols[i] = c.Mul(1 / l)
	}
	return mgl64.Mat3FromCols(cols[0], cols[1], cols[2]), true
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return mgl64.DegToRad(d)
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return mgl64.RadToDeg(r)
}
