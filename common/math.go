package common

import "math"

// RelativeError is |want - got| / |want|.
// When want is zero it falls back to the absolute error.
func RelativeError(want, got float64) float64 {
	diff := math.Abs(want - got)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}

func WithinRelative(want, got, eps float64) bool {
	return RelativeError(want, got) <= eps
}
