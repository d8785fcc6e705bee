package math

import "fmt"

// ------------------------------------------
// Vector 2
// ------------------------------------------

// NewVec2 creates and returns a new 2-element vector using the supplied values.
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2Zero creates and returns a 2-component vector with all components set to 0.
func NewVec2Zero() Vec2 {
	return Vec2{}
}

// NewVec2One creates and returns a 2-component vector with all components set to 1.
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

// NewVec2Up returns (0, 1).
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

// NewVec2Down returns (0, -1).
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

// NewVec2Left returns (-1, 0).
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

// NewVec2Right returns (1, 0).
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// Add adds other to v and returns a copy of the result.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v and returns a copy of the result.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies v by other component-wise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Div divides v by other component-wise.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// DivScalar divides every component by scalar. Division by zero follows
// IEEE semantics.
func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared length of the vector.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return float32(norm(v.X, v.Y))
}

// Normalized returns a unit-length copy of v, or the zero vector when v has
// zero length.
func (v Vec2) Normalized() Vec2 {
	length := norm(v.X, v.Y)
	if length == 0 {
		return Vec2{}
	}
	return Vec2{float32(float64(v.X) / length), float32(float64(v.Y) / length)}
}

// Normalize normalizes v in place.
func (v *Vec2) Normalize() {
	*v = v.Normalized()
}

// Distance returns the distance between v and other.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v towards other. t is clamped to [0, 1].
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	t = Clamp(t, 0, 1)
	return v.Add(other.Sub(v).MulScalar(t))
}

// Compare reports whether every component of v and other differs by at most
// tolerance. Typically K_FLOAT_EPSILON or similar.
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return approxEqual(v.X, other.X, tolerance) &&
		approxEqual(v.Y, other.Y, tolerance)
}

// At returns the component at index i (0 for X, 1 for Y).
func (v Vec2) At(i int) float32 {
	if componentIndex(i, 2, "Vec2") == 0 {
		return v.X
	}
	return v.Y
}

// Set assigns the component at index i.
func (v *Vec2) Set(i int, value float32) {
	if componentIndex(i, 2, "Vec2") == 0 {
		v.X = value
		return
	}
	v.Y = value
}

// ToVec3 extends v with the given z component.
func (v Vec2) ToVec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
