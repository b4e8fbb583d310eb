package mathutil

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EulerOrder names the axis sequence of an Euler triple. The first axis is
// applied first, so XYZ composes as Rz·Ry·Rx.
type EulerOrder string

const (
	OrderXYZ EulerOrder = "XYZ"
	OrderXZY EulerOrder = "XZY"
	OrderYXZ EulerOrder = "YXZ"
	OrderYZX EulerOrder = "YZX"
	OrderZXY EulerOrder = "ZXY"
	OrderZYX EulerOrder = "ZYX"
)

// orderInfo is the (i, j, k) axis sequence plus whether it is an odd
// permutation of XYZ, in which case decomposed angles change sign.
type orderInfo struct {
	axis   [3]Axis
	parity bool
}

var orders = map[EulerOrder]orderInfo{
	OrderXYZ: {[3]Axis{AxisX, AxisY, AxisZ}, false},
	OrderXZY: {[3]Axis{AxisX, AxisZ, AxisY}, true},
	OrderYXZ: {[3]Axis{AxisY, AxisX, AxisZ}, true},
	OrderYZX: {[3]Axis{AxisY, AxisZ, AxisX}, false},
	OrderZXY: {[3]Axis{AxisZ, AxisX, AxisY}, false},
	OrderZYX: {[3]Axis{AxisZ, AxisY, AxisX}, true},
}

// gimbalEpsilon matches the single-precision threshold of the authoring tool,
// below which the first two axes are treated as aligned.
const gimbalEpsilon = 16 * 1.1920929e-07

// ParseEulerOrder validates an order name such as "YXZ".
func ParseEulerOrder(s string) (EulerOrder, error) {
	o := EulerOrder(s)
	if _, ok := orders[o]; !ok {
		return "", fmt.Errorf("mathutil: unknown euler order %q", s)
	}
	return o, nil
}

func (o EulerOrder) info() orderInfo {
	inf, ok := orders[o]
	if !ok {
		panic(fmt.Sprintf("mathutil: unknown euler order %q", string(o)))
	}
	return inf
}

// EulerToMat3 composes angles (radians, indexed by axis: x, y, z) in order.
func EulerToMat3(e mgl64.Vec3, order EulerOrder) mgl64.Mat3 {
	inf := order.info()
	m := mgl64.Ident3()
	for _, ax := range inf.axis {
		m = Rot(ax, e[ax]).Mul3(m)
	}
	return m
}

// Mat3ToEuler decomposes a pure rotation matrix into angles indexed by axis
// (radians). Two solutions exist; the one with the smaller sum of absolute
// angles wins. At gimbal lock the last axis angle is zero.
func Mat3ToEuler(m mgl64.Mat3, order EulerOrder) mgl64.Vec3 {
	inf := order.info()
	i, j, k := inf.axis[0], inf.axis[1], inf.axis[2]

	// a(c, r) is the element in column c, row r.
	a := func(c, r Axis) float64 { return m.At(int(r), int(c)) }

	var e1, e2 mgl64.Vec3
	cy := math.Hypot(a(i, i), a(i, j))
	if cy > gimbalEpsilon {
		e1[i] = math.Atan2(a(j, k), a(k, k))
		e1[j] = math.Atan2(-a(i, k), cy)
		e1[k] = math.Atan2(a(i, j), a(i, i))

		e2[i] = math.Atan2(-a(j, k), -a(k, k))
		e2[j] = math.Atan2(-a(i, k), -cy)
		e2[k] = math.Atan2(-a(i, j), -a(i, i))
	} else {
		e1[i] = math.Atan2(-a(k, j), a(j, j))
		e1[j] = math.Atan2(-a(i, k), cy)
		e1[k] = 0
		e2 = e1
	}

	if inf.parity {
		e1 = e1.Mul(-1)
		e2 = e2.Mul(-1)
	}

	if absSum(e1) > absSum(e2) {
		return e2
	}
	return e1
}

func absSum(v mgl64.Vec3) float64 {
	return math.Abs(v[0]) + math.Abs(v[1]) + math.Abs(v[2])
}
