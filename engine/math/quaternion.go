package math

import "fmt"

// ------------------------------------------
// Quaternion
// ------------------------------------------

// NewQuat creates a quaternion from its components; w is the real part.
func NewQuat(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

// LengthSquared returns x²+y²+z²+w².
func (q Quaternion) LengthSquared() float32 {
	return q.X*q.X +
		q.Y*q.Y +
		q.Z*q.Z +
		q.W*q.W
}

/**
 * @brief Returns the magnitude (norm) of the quaternion.
 */
func (q Quaternion) Length() float32 {
	return float32(norm(q.X, q.Y, q.Z, q.W))
}

/**
 * @brief Returns a normalized copy of the quaternion. A zero quaternion
 * yields identity rather than dividing by zero.
 */
func (q Quaternion) Normalized() Quaternion {
	length := norm(q.X, q.Y, q.Z, q.W)
	if length == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{
		float32(float64(q.X) / length),
		float32(float64(q.Y) / length),
		float32(float64(q.Z) / length),
		float32(float64(q.W) / length)}
}

// Normalize normalizes q in place.
func (q *Quaternion) Normalize() {
	*q = q.Normalized()
}

/**
 * @brief Returns the conjugate of the quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the multiplicative inverse: the conjugate divided by the
 * squared magnitude. For a unit quaternion this equals the conjugate.
 * A zero quaternion yields identity.
 */
func (q Quaternion) Inverse() Quaternion {
	length := norm(q.X, q.Y, q.Z, q.W)
	lenSq := length * length
	if lenSq == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{
		float32(-float64(q.X) / lenSq),
		float32(-float64(q.Y) / lenSq),
		float32(-float64(q.Z) / lenSq),
		float32(float64(q.W) / lenSq)}
}

/**
 * @brief Multiplies the quaternions (Hamilton product). The result applies
 * other first, then q. Not commutative.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

/**
 * @brief Calculates the dot product of the quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

// Rotate returns the vector part of q·(v, 0)·q⁻¹. q must be normalized
// for the result to be a pure rotation; Rotate does not normalize it.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	qv := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(qv).Mul(q.Inverse())
	return Vec3{r.X, r.Y, r.Z}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the axis should be normalized first. When
 * false a non-unit axis produces a non-unit quaternion.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	if normalize {
		axis = axis.Normalized()
	}
	half_angle := 0.5 * angle
	s := Sin(half_angle)
	c := Cos(half_angle)

	return Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
}

// Lerp blends every component linearly with t clamped to [0, 1], then
// renormalizes. This is not a spherical interpolation: the angular velocity
// is not constant across t. Use Slerp for that.
func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	t = Clamp(t, 0, 1)
	return Quaternion{
		q.X + (other.X-q.X)*t,
		q.Y + (other.Y-q.Y)*t,
		q.Z + (other.Z-q.Z)*t,
		q.W + (other.W-q.W)*t,
	}.Normalized()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	// Only unit quaternions are valid rotations.
	v0 := q.Normalized()
	v1 := other.Normalized()

	// Compute the cosine of the angle between the two vectors.
	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take
	// the shorter path. Note that v1 and -v1 are equivalent when
	// the negation is applied to all four components. Fix by
	// reversing one quaternion.
	if dot < 0.0 {
		v1.X = -v1.X
		v1.Y = -v1.Y
		v1.Z = -v1.Z
		v1.W = -v1.W
		dot = -dot
	}

	const DOT_THRESHOLD float32 = 0.9995
	if dot > DOT_THRESHOLD {
		// If the inputs are too close for comfort, linearly interpolate
		// and normalize the result.
		qt := Quaternion{
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage),
			v0.W + ((v1.W - v0.W) * percentage)}

		return qt.Normalized()
	}

	// Since dot is in range [0, DOT_THRESHOLD], acos is safe
	theta_0 := Acos(dot)          // theta_0 = angle between input vectors
	theta := theta_0 * percentage // theta = angle between v0 and result
	sin_theta := Sin(theta)       // compute this value only once
	sin_theta_0 := Sin(theta_0)   // compute this value only once

	s0 := Cos(theta) - dot*sin_theta/sin_theta_0 // == sin(theta_0 - theta) / sin(theta_0)
	s1 := sin_theta / sin_theta_0

	return Quaternion{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

/**
 * @brief Creates a 3x3 rotation matrix from the quaternion, normalizing it first.
 */
func (q Quaternion) ToMat3() Mat3 {
	// https://stackoverflow.com/questions/1556260/convert-quaternion-rotation-to-rotation-matrix
	n := q.Normalized()

	return NewMat3(
		1.0-2.0*n.Y*n.Y-2.0*n.Z*n.Z, 2.0*n.X*n.Y-2.0*n.Z*n.W, 2.0*n.X*n.Z+2.0*n.Y*n.W,
		2.0*n.X*n.Y+2.0*n.Z*n.W, 1.0-2.0*n.X*n.X-2.0*n.Z*n.Z, 2.0*n.Y*n.Z-2.0*n.X*n.W,
		2.0*n.X*n.Z-2.0*n.Y*n.W, 2.0*n.Y*n.Z+2.0*n.X*n.W, 1.0-2.0*n.X*n.X-2.0*n.Y*n.Y,
	)
}

/**
 * @brief Creates a 4x4 rotation matrix from the quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	r := q.ToMat3().Data
	return NewMat4(
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Calculates a rotation matrix based on the quaternion and the passed in center point.
 *
 * @param center The center point.
 * @return A rotation matrix that keeps center fixed.
 */
func (q Quaternion) ToRotationMatrix(center Vec3) Mat4 {
	toOrigin := NewMat4Translation(center.Negate())
	back := NewMat4Translation(center)
	return back.Mul(q.ToMat4()).Mul(toOrigin)
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// QuatLerp is the free-function form of Quaternion.Lerp.
func QuatLerp(a, b Quaternion, t float32) Quaternion {
	return a.Lerp(b, t)
}
