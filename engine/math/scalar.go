package math

import m "math"

// The scalar functions below are exact: they wrap the standard library at
// float64 precision and narrow the result. The legacy series approximations
// live in the approx sub-package. Domain violations never fail; they return
// the documented sentinel instead.

// Sqrt returns the square root of x, or 0 when x <= 0.
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(m.Sqrt(float64(x)))
}

func Square(x float32) float32 {
	return x * x
}

func Cube(x float32) float32 {
	return x * x * x
}

// Pow raises x to an integer power by repeated multiplication.
// A negative exponent yields the reciprocal of x^|n|.
func Pow(x float32, n int) float32 {
	negative := n < 0
	if negative {
		n = -n
	}
	result := float32(1)
	for i := 0; i < n; i++ {
		result *= x
	}
	if negative {
		return 1 / result
	}
	return result
}

func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Round rounds half away from zero.
func Round(x float32) int {
	return toInt(m.Round(float64(x)))
}

// Floor rounds toward negative infinity.
func Floor(x float32) int {
	return toInt(m.Floor(float64(x)))
}

// Ceil rounds toward positive infinity.
func Ceil(x float32) int {
	return toInt(m.Ceil(float64(x)))
}

// toInt converts an integral float64 to int, saturating at the int range.
// NaN converts to 0.
func toInt(f float64) int {
	switch {
	case m.IsNaN(f):
		return 0
	case f >= float64(m.MaxInt):
		return m.MaxInt
	case f <= float64(m.MinInt):
		return m.MinInt
	}
	return int(f)
}

// Mod returns the floored remainder a - b*floor(a/b); the result takes the
// sign of b.
func Mod(a, b float32) float32 {
	return a - b*float32(m.Floor(float64(a/b)))
}

func Sin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

// Tan returns sin(x)/cos(x), or 0 where the cosine vanishes.
func Tan(x float32) float32 {
	c := m.Cos(float64(x))
	if m.Abs(c) < float64(K_FLOAT_EPSILON) {
		return 0
	}
	return float32(m.Sin(float64(x)) / c)
}

// Asin clamps x to [-1, 1] before evaluating.
func Asin(x float32) float32 {
	return float32(m.Asin(float64(Clamp(x, -1, 1))))
}

// Acos is defined as π/2 - Asin(x).
func Acos(x float32) float32 {
	return K_HALF_PI - Asin(x)
}

func Atan(x float32) float32 {
	return float32(m.Atan(float64(x)))
}

func Atan2(y, x float32) float32 {
	return float32(m.Atan2(float64(y), float64(x)))
}

func Sinh(x float32) float32 {
	return float32(m.Sinh(float64(x)))
}

func Cosh(x float32) float32 {
	return float32(m.Cosh(float64(x)))
}

func Tanh(x float32) float32 {
	return float32(m.Tanh(float64(x)))
}

func Exp(x float32) float32 {
	return float32(m.Exp(float64(x)))
}

// Log returns the natural logarithm of x, or 0 when x <= 0.
func Log(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(m.Log(float64(x)))
}

// Log10 returns the base-10 logarithm of x, or 0 when x <= 0.
func Log10(x float32) float32 {
	return Log(x) / K_LN10
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
