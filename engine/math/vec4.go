package math

import "fmt"

// ------------------------------------------
// Vector 4
// ------------------------------------------

// NewVec4 creates and returns a new 4-element vector using the supplied values.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// NewVec4FromVec3 returns a new vec4 using v as the x, y and z components and w for w.
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// ToVec3 drops the w component.
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide divides x, y and z by w. A zero w leaves them untouched.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return Vec3{v.X, v.Y, v.Z}
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// Mul multiplies v by other component-wise.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

// Div divides v by other component-wise.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) DivScalar(scalar float32) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Dot(other Vec4) float32 {
	return Vec4DotFloat32(v.X, v.Y, v.Z, v.W, other.X, other.Y, other.Z, other.W)
}

// Vec4DotFloat32 calculates the dot product using the elements of two vec4s
// provided in split-out format.
func Vec4DotFloat32(a0, a1, a2, a3, b0, b1, b2, b3 float32) float32 {
	return a0*b0 + a1*b1 + a2*b2 + a3*b3
}

// LengthSquared returns the squared length of the vector.
func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the length of the vector.
func (v Vec4) Length() float32 {
	return float32(norm(v.X, v.Y, v.Z, v.W))
}

// Normalized returns a unit-length copy of v, or the zero vector when v has
// zero length.
func (v Vec4) Normalized() Vec4 {
	length := norm(v.X, v.Y, v.Z, v.W)
	if length == 0 {
		return Vec4{}
	}
	return Vec4{
		float32(float64(v.X) / length),
		float32(float64(v.Y) / length),
		float32(float64(v.Z) / length),
		float32(float64(v.W) / length)}
}

// Normalize normalizes v in place.
func (v *Vec4) Normalize() {
	*v = v.Normalized()
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v towards other. t is clamped to [0, 1].
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	t = Clamp(t, 0, 1)
	return v.Add(other.Sub(v).MulScalar(t))
}

// Compare reports whether every component of v and other differs by at most
// tolerance.
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if !approxEqual(v.X, other.X, tolerance) {
		return false
	}

	if !approxEqual(v.Y, other.Y, tolerance) {
		return false
	}

	if !approxEqual(v.Z, other.Z, tolerance) {
		return false
	}

	return approxEqual(v.W, other.W, tolerance)
}

// At returns the component at index i (0..3 for X, Y, Z, W).
func (v Vec4) At(i int) float32 {
	switch componentIndex(i, 4, "Vec4") {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// Set assigns the component at index i.
func (v *Vec4) Set(i int, value float32) {
	switch componentIndex(i, 4, "Vec4") {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		v.W = value
	}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
