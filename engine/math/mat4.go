package math

import (
	"github.com/spaghettifunk/engineutils/engine/core"
)

// NewMat4 creates a matrix from its elements in row-major order.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4 {
	return Mat4{Data: [16]float32{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

func NewMat4Zero() Mat4 {
	return Mat4{}
}

func (mt Mat4) At(row, col int) float32 {
	return mt.Data[componentIndex(row, 4, "Mat4 row")*4+componentIndex(col, 4, "Mat4 column")]
}

func (mt *Mat4) Set(row, col int, value float32) {
	mt.Data[componentIndex(row, 4, "Mat4 row")*4+componentIndex(col, 4, "Mat4 column")] = value
}

func (mt Mat4) Row(row int) Vec4 {
	r := componentIndex(row, 4, "Mat4 row") * 4
	return Vec4{mt.Data[r], mt.Data[r+1], mt.Data[r+2], mt.Data[r+3]}
}

func (mt Mat4) Col(col int) Vec4 {
	c := componentIndex(col, 4, "Mat4 column")
	return Vec4{mt.Data[c], mt.Data[4+c], mt.Data[8+c], mt.Data[12+c]}
}

func (mt Mat4) Add(other Mat4) Mat4 {
	out := Mat4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	out := Mat4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	out := Mat4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * scalar
	}
	return out
}

/**
 * @brief Returns the result of multiplying mt and other (mt · other).
 * Applied to a vector, other acts first.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

// MulVec4 returns mt · v.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := mt.Data
	return Vec4{
		d[0]*v.X + d[1]*v.Y + d[2]*v.Z + d[3]*v.W,
		d[4]*v.X + d[5]*v.Y + d[6]*v.Z + d[7]*v.W,
		d[8]*v.X + d[9]*v.Y + d[10]*v.Z + d[11]*v.W,
		d[12]*v.X + d[13]*v.Y + d[14]*v.Z + d[15]*v.W,
	}
}

// TransformPoint transforms v as a point with an implicit w of 1. The
// result is divided by the computed w only when w is neither 0 nor 1.
func (mt Mat4) TransformPoint(v Vec3) Vec3 {
	p := mt.MulVec4(Vec4{v.X, v.Y, v.Z, 1})
	if p.W != 0 && p.W != 1 {
		return Vec3{p.X / p.W, p.Y / p.W, p.Z / p.W}
	}
	return Vec3{p.X, p.Y, p.Z}
}

// TransformDirection transforms v with w = 0, ignoring translation.
func (mt Mat4) TransformDirection(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		d[0]*v.X + d[1]*v.Y + d[2]*v.Z,
		d[4]*v.X + d[5]*v.Y + d[6]*v.Z,
		d[8]*v.X + d[9]*v.Y + d[10]*v.Z,
	}
}

/**
 * @brief Returns a transposed copy of the matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = mt.Data[0]
	out_matrix.Data[1] = mt.Data[4]
	out_matrix.Data[2] = mt.Data[8]
	out_matrix.Data[3] = mt.Data[12]
	out_matrix.Data[4] = mt.Data[1]
	out_matrix.Data[5] = mt.Data[5]
	out_matrix.Data[6] = mt.Data[9]
	out_matrix.Data[7] = mt.Data[13]
	out_matrix.Data[8] = mt.Data[2]
	out_matrix.Data[9] = mt.Data[6]
	out_matrix.Data[10] = mt.Data[10]
	out_matrix.Data[11] = mt.Data[14]
	out_matrix.Data[12] = mt.Data[3]
	out_matrix.Data[13] = mt.Data[7]
	out_matrix.Data[14] = mt.Data[11]
	out_matrix.Data[15] = mt.Data[15]
	return out_matrix
}

// Determinant returns the determinant by cofactor expansion along the first
// column.
func (mt Mat4) Determinant() float32 {
	m := mt.Data
	return m[0]*(m[5]*(m[10]*m[15]-m[14]*m[11])-m[9]*(m[6]*m[15]-m[14]*m[7])+m[13]*(m[6]*m[11]-m[10]*m[7])) -
		m[4]*(m[1]*(m[10]*m[15]-m[14]*m[11])-m[9]*(m[2]*m[15]-m[14]*m[3])+m[13]*(m[2]*m[11]-m[10]*m[3])) +
		m[8]*(m[1]*(m[6]*m[15]-m[14]*m[7])-m[5]*(m[2]*m[15]-m[14]*m[3])+m[13]*(m[2]*m[7]-m[6]*m[3])) -
		m[12]*(m[1]*(m[6]*m[11]-m[10]*m[7])-m[5]*(m[2]*m[11]-m[10]*m[3])+m[9]*(m[2]*m[7]-m[6]*m[3]))
}

/**
 * @brief Computes the inverse of the matrix through its adjugate. The
 * formula is layout independent: it inverts the 16 elements as stored.
 *
 * @return The inverse, or core.ErrSingularMatrix when the determinant is 0.
 */
func (mt Mat4) TryInverse() (Mat4, error) {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var o [16]float32

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	det := m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3]
	if det == 0 {
		return NewMat4Identity(), core.ErrSingularMatrix
	}
	d := 1.0 / det

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return Mat4{Data: o}, nil
}

// Inverse returns the inverse of mt, resolving a singular matrix through the
// fallback policy.
func (mt Mat4) Inverse() Mat4 {
	inv, err := mt.TryInverse()
	if err != nil {
		return fallback(err, inv, "Mat4 %v", mt)
	}
	return inv
}

func (mt *Mat4) SetIdentity() {
	*mt = NewMat4Identity()
}

// SetScale overwrites mt with a scale matrix.
func (mt *Mat4) SetScale(sx, sy, sz float32) {
	*mt = NewMat4Scale(NewVec3(sx, sy, sz))
}

// SetTranslation overwrites mt with a translation matrix.
func (mt *Mat4) SetTranslation(tx, ty, tz float32) {
	*mt = NewMat4Translation(NewVec3(tx, ty, tz))
}

// SetRotation overwrites mt with a rotation around the Z axis, the 2D
// rotation embedded in 3D space.
func (mt *Mat4) SetRotation(radians float32) {
	*mt = NewMat4RotationZ(radians)
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[3] = position.X
	out_matrix.Data[7] = position.Y
	out_matrix.Data[11] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationX(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := Cos(angle_radians)
	s := Sin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = -s
	out_matrix.Data[9] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := Cos(angle_radians)
	s := Sin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = s
	out_matrix.Data[8] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()

	c := Cos(angle_radians)
	s := Sin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = -s
	out_matrix.Data[4] = s
	out_matrix.Data[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations.
 * The result is Rx · Ry · Rz, so the z rotation is applied first.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	rx := NewMat4RotationX(x_radians)
	ry := NewMat4RotationY(y_radians)
	rz := NewMat4RotationZ(z_radians)
	out_matrix := rx.Mul(ry)
	out_matrix = out_matrix.Mul(rz)
	return out_matrix
}

// NewMat4Rotation returns a right-handed rotation of angle radians around
// axis. The axis is normalized; a zero axis yields identity.
func NewMat4Rotation(axis Vec3, angle float32) Mat4 {
	axis = axis.Normalized()
	if axis == (Vec3{}) {
		return NewMat4Identity()
	}
	c := Cos(angle)
	s := Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return NewMat4(
		t*x*x+c, t*x*y-s*z, t*x*z+s*y, 0,
		t*x*y+s*z, t*y*y+c, t*y*z-s*x, 0,
		t*x*z-s*y, t*y*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix.Data[0] = -2.0 * lr
	out_matrix.Data[5] = -2.0 * bt
	out_matrix.Data[10] = 2.0 * nf

	out_matrix.Data[3] = (left + right) * lr
	out_matrix.Data[7] = (top + bottom) * bt
	out_matrix.Data[11] = (far_clip + near_clip) * nf
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	half_tan_fov := Tan(fov_radians * 0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	out_matrix.Data[14] = -1.0
	return out_matrix
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	z_axis := target.Sub(position).Normalized()
	x_axis := z_axis.Cross(up).Normalized()
	y_axis := x_axis.Cross(z_axis)

	return NewMat4(
		x_axis.X, x_axis.Y, x_axis.Z, -x_axis.Dot(position),
		y_axis.X, y_axis.Y, y_axis.Z, -y_axis.Dot(position),
		-z_axis.X, -z_axis.Y, -z_axis.Z, z_axis.Dot(position),
		0, 0, 0, 1,
	)
}

// Translation returns the translation column.
func (mt Mat4) Translation() Vec3 {
	return Vec3{mt.Data[3], mt.Data[7], mt.Data[11]}
}

/**
 * @brief Returns a forward vector relative to the matrix: the negated,
 * normalized Z basis column.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalized()
}

/**
 * @brief Returns a backward vector relative to the matrix.
 */
func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[2], mt.Data[6], mt.Data[10]}.Normalized()
}

/**
 * @brief Returns an upward vector relative to the matrix.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalized()
}

/**
 * @brief Returns a downward vector relative to the matrix.
 */
func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}.Normalized()
}

/**
 * @brief Returns a left vector relative to the matrix.
 */
func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}.Normalized()
}

/**
 * @brief Returns a right vector relative to the matrix.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalized()
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if !approxEqual(mt.Data[i], other.Data[i], tolerance) {
			return false
		}
	}
	return true
}

func (mt Mat4) String() string {
	return formatRows(mt.Data[:], 4)
}
