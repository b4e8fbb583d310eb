package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already three places", 1.234, 1.234},
		{"rounds down", 1.23449, 1.234},
		{"rounds up", 1.2346, 1.235},
		{"negative", -29.4987, -29.499},
		{"negative zero", math.Copysign(0, -1), 0},
		{"tiny negative becomes zero", -0.0001, 0},
		{"integer", 60, 60},
		{"one thirtieth", 1.0 / 30, 0.033},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.in, 3)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.Signbit(got) && got == 0, "negative zero leaked")
		})
	}
}

func TestRoundIdempotent(t *testing.T) {
	for _, v := range []float64{0.1, 1.0005, -2.71828, 123456.78951, 1e-7, 89.99999, -179.9995} {
		once := Round(v, 3)
		assert.Equal(t, once, Round(once, 3), "value %v", v)
	}
}

func TestSwapYZInvolution(t *testing.T) {
	v := mgl64.Vec3{1, 2, 3}
	assert.Equal(t, mgl64.Vec3{1, 3, 2}, SwapYZ(v))
	assert.Equal(t, v, SwapYZ(SwapYZ(v)))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0, -1, 1e300))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}
