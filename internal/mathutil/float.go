package mathutil

import "math"

// Clamp limits x to [lo, hi]. NaN maps to lo.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// IsFinitePositive reports whether x is a usable, strictly positive distance.
func IsFinitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
