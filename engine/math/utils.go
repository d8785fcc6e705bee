package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Min returns the lesser of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// approxEqual reports whether a and b differ by at most tolerance.
func approxEqual(a, b, tolerance float32) bool {
	return Abs(a-b) <= tolerance
}

// norm returns the Euclidean length of the components at float64 precision,
// so squaring neither overflows nor underflows for any finite float32.
func norm(components ...float32) float64 {
	var sum float64
	for _, c := range components {
		f := float64(c)
		sum += f * f
	}
	return m.Sqrt(sum)
}
