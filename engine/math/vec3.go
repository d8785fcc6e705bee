package math

import "fmt"

// ------------------------------------------
// Vector 3
// ------------------------------------------

// NewVec3 creates and returns a new 3-element vector using the supplied values.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewVec3FromVec4 returns the x, y and z components of the supplied vec4,
// essentially dropping the w component.
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

// ToVec4 returns a new vec4 using v as the x, y and z components and w for w.
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// ToVec2 drops the z component.
func (v Vec3) ToVec2() Vec2 {
	return Vec2{v.X, v.Y}
}

func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

// NewVec3Up returns (0, 1, 0).
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

// NewVec3Down returns (0, -1, 0).
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

// NewVec3Left returns (-1, 0, 0).
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

// NewVec3Right returns (1, 0, 0).
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

// NewVec3Forward returns (0, 0, -1).
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

// NewVec3Back returns (0, 0, 1).
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

// Add adds other to v and returns a copy of the result.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

// Sub subtracts other from v and returns a copy of the result.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

// Mul multiplies v by other component-wise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

// Div divides v by other component-wise.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

// MulScalar multiplies all elements of v by scalar and returns a copy of the result.
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

// DivScalar divides all elements of v by scalar. Division by zero follows
// IEEE semantics.
func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// LengthSquared returns the squared length of the vector.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the vector.
func (v Vec3) Length() float32 {
	return float32(norm(v.X, v.Y, v.Z))
}

// Normalized returns a unit-length copy of v, or the zero vector when v has
// zero length.
func (v Vec3) Normalized() Vec3 {
	length := norm(v.X, v.Y, v.Z)
	if length == 0 {
		return Vec3{}
	}
	return Vec3{
		float32(float64(v.X) / length),
		float32(float64(v.Y) / length),
		float32(float64(v.Z) / length)}
}

// Normalize normalizes v in place.
func (v *Vec3) Normalize() {
	*v = v.Normalized()
}

// Dot returns the dot product between v and other. Typically used to
// calculate the difference in direction.
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

// Cross calculates and returns the right-handed cross product v × other.
// The result is orthogonal to both vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// Reflect returns the reflection of v around the normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.MulScalar(2 * v.Dot(n)))
}

// Compare reports whether every component of v and other differs by at most
// tolerance.
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if !approxEqual(v.X, other.X, tolerance) {
		return false
	}

	if !approxEqual(v.Y, other.Y, tolerance) {
		return false
	}

	return approxEqual(v.Z, other.Z, tolerance)
}

// Distance returns the distance between v and other.
func (v Vec3) Distance(other Vec3) float32 {
	d := Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}

// Lerp interpolates linearly from v towards other. t is clamped to [0, 1],
// so the result never extrapolates past either endpoint.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	t = Clamp(t, 0, 1)
	return v.Add(other.Sub(v).MulScalar(t))
}

// Move offsets v in place.
func (v *Vec3) Move(offset Vec3) {
	*v = v.Add(offset)
}

// Scale multiplies v in place by per-axis factors.
func (v *Vec3) Scale(factors Vec3) {
	*v = v.Mul(factors)
}

// At returns the component at index i (0 for X, 1 for Y, 2 for Z).
func (v Vec3) At(i int) float32 {
	switch componentIndex(i, 3, "Vec3") {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Set assigns the component at index i.
func (v *Vec3) Set(i int, value float32) {
	switch componentIndex(i, 3, "Vec3") {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
