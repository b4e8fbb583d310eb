package mathutil

import "strconv"

// Round rounds v to places decimal digits using the shortest correctly
// rounded decimal form, so Round(Round(v, n), n) == Round(v, n).
// Negative zero comes back as zero.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}
