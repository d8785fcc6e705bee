// Package approx holds the series approximations the engine math layer was
// first written with. They are kept to compare against the exact functions
// in engine/math and to document the error budget of the old code paths.
// Nothing outside tests should depend on them.
package approx

import m "math"

const (
	pi    float32 = 3.14159265
	twoPi float32 = 2.0 * pi
	ln10  float32 = 2.3025851
)

// Sqrt runs 10 Newton-Raphson iterations starting from x/2.
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	guess := x / 2
	for i := 0; i < 10; i++ {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}

// Pow multiplies x by itself n times. Non-positive n yields 1.
func Pow(x float32, n int) float32 {
	result := float32(1)
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}

// Exp sums the Taylor series of e^x up to the x^10/10! term.
func Exp(x float32) float32 {
	result := float32(1)
	term := float32(1)
	for i := 1; i <= 10; i++ {
		term *= x / float32(i)
		result += term
	}
	return result
}

// Log evaluates 2·atanh((x-1)/(x+1)) with the first five odd terms.
// Accurate near 1, drifts for large x.
func Log(x float32) float32 {
	if x <= 0 {
		return 0
	}
	y := (x - 1) / (x + 1)
	var result float32
	for i := 1; i < 10; i += 2 {
		result += Pow(y, i) / float32(i)
	}
	return 2 * result
}

func Log10(x float32) float32 {
	return Log(x) / ln10
}

// wrap reduces an angle into [-π, π).
func wrap(x float32) float32 {
	if x >= -pi && x <= pi {
		return x
	}
	return x - twoPi*float32(m.Floor(float64((x+pi)/twoPi)))
}

// Sin is the Taylor polynomial to x^7 after range reduction.
func Sin(x float32) float32 {
	x = wrap(x)
	x2 := x * x
	return x - (x2*x)/6 + (x2*x2*x)/120 - (x2*x2*x2*x)/5040
}

// Cos is the Taylor polynomial to x^6 after range reduction.
func Cos(x float32) float32 {
	x = wrap(x)
	x2 := x * x
	return 1 - x2/2 + (x2*x2)/24 - (x2*x2*x2)/720
}

func Tan(x float32) float32 {
	c := Cos(x)
	if c == 0 {
		return 0
	}
	return Sin(x) / c
}

// Asin keeps three series terms; usable for |x| well below 1.
func Asin(x float32) float32 {
	x2 := x * x
	return x + (x2*x)/6 + (3*x2*x2*x)/40
}

func Acos(x float32) float32 {
	return 1.5707963 - Asin(x)
}

// Atan keeps three series terms; only meaningful for |x| < 1.
func Atan(x float32) float32 {
	return x - (x*x*x)/3 + (x*x*x*x*x)/5
}

func Sinh(x float32) float32 {
	return (Exp(x) - Exp(-x)) / 2
}

func Cosh(x float32) float32 {
	return (Exp(x) + Exp(-x)) / 2
}

func Tanh(x float32) float32 {
	return Sinh(x) / Cosh(x)
}

func Radians(degrees float32) float32 {
	return degrees * pi / 180
}

func Degrees(radians float32) float32 {
	return radians * 180 / pi
}
