package math

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/engineutils/engine/core"
)

// NewMat3 creates a matrix from its elements in row-major order.
func NewMat3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float32,
) Mat3 {
	return Mat3{Data: [9]float32{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}}
}

// NewMat3Diagonal returns a matrix with diag on the main diagonal and zero
// elsewhere.
func NewMat3Diagonal(diag float32) Mat3 {
	return NewMat3(
		diag, 0, 0,
		0, diag, 0,
		0, 0, diag,
	)
}

func NewMat3Identity() Mat3 {
	return NewMat3Diagonal(1)
}

func NewMat3Zero() Mat3 {
	return Mat3{}
}

// NewMat3Translation returns a 2D homogeneous translation.
func NewMat3Translation(tx, ty float32) Mat3 {
	return NewMat3(
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	)
}

// NewMat3Scale returns a 2D homogeneous scale.
func NewMat3Scale(sx, sy float32) Mat3 {
	return NewMat3(
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	)
}

// NewMat3Rotation returns a 2D homogeneous counter-clockwise rotation, which
// is also a 3D rotation around Z.
func NewMat3Rotation(radians float32) Mat3 {
	c := Cos(radians)
	s := Sin(radians)
	return NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

func (mt Mat3) At(row, col int) float32 {
	return mt.Data[componentIndex(row, 3, "Mat3 row")*3+componentIndex(col, 3, "Mat3 column")]
}

func (mt *Mat3) Set(row, col int, value float32) {
	mt.Data[componentIndex(row, 3, "Mat3 row")*3+componentIndex(col, 3, "Mat3 column")] = value
}

func (mt Mat3) Row(row int) Vec3 {
	r := componentIndex(row, 3, "Mat3 row") * 3
	return Vec3{mt.Data[r], mt.Data[r+1], mt.Data[r+2]}
}

func (mt Mat3) Col(col int) Vec3 {
	c := componentIndex(col, 3, "Mat3 column")
	return Vec3{mt.Data[c], mt.Data[3+c], mt.Data[6+c]}
}

func (mt Mat3) Add(other Mat3) Mat3 {
	out := Mat3{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	out := Mat3{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Mat3) MulScalar(scalar float32) Mat3 {
	out := Mat3{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * scalar
	}
	return out
}

// Mul returns mt · other.
func (mt Mat3) Mul(other Mat3) Mat3 {
	out := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := float32(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[row*3+i] * other.Data[i*3+col]
			}
			out.Data[row*3+col] = sum
		}
	}
	return out
}

// MulVec3 returns mt · v.
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		d[0]*v.X + d[1]*v.Y + d[2]*v.Z,
		d[3]*v.X + d[4]*v.Y + d[5]*v.Z,
		d[6]*v.X + d[7]*v.Y + d[8]*v.Z,
	}
}

// MulVec2 transforms v as the homogeneous point (x, y, 1) and divides by the
// resulting w unless it is zero.
func (mt Mat3) MulVec2(v Vec2) Vec2 {
	p := mt.MulVec3(Vec3{v.X, v.Y, 1})
	if p.Z != 0 {
		return Vec2{p.X / p.Z, p.Y / p.Z}
	}
	return Vec2{p.X, p.Y}
}

func (mt Mat3) Determinant() float32 {
	d := mt.Data
	return d[0]*(d[4]*d[8]-d[5]*d[7]) -
		d[1]*(d[3]*d[8]-d[5]*d[6]) +
		d[2]*(d[3]*d[7]-d[4]*d[6])
}

func (mt Mat3) Transpose() Mat3 {
	d := mt.Data
	return NewMat3(
		d[0], d[3], d[6],
		d[1], d[4], d[7],
		d[2], d[5], d[8],
	)
}

// Cofactor returns the signed minor of the element at (row, col).
func (mt Mat3) Cofactor(row, col int) float32 {
	row = componentIndex(row, 3, "Mat3 row")
	col = componentIndex(col, 3, "Mat3 column")

	// Cyclic row/column order keeps the checkerboard sign built into the
	// 2x2 minor, so no extra (-1)^(row+col) factor is applied.
	r1, r2 := (row+1)%3, (row+2)%3
	c1, c2 := (col+1)%3, (col+2)%3
	d := mt.Data
	return d[r1*3+c1]*d[r2*3+c2] - d[r1*3+c2]*d[r2*3+c1]
}

func (mt Mat3) CofactorMatrix() Mat3 {
	out := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.Data[row*3+col] = mt.Cofactor(row, col)
		}
	}
	return out
}

// Adjugate returns the transpose of the cofactor matrix.
func (mt Mat3) Adjugate() Mat3 {
	return mt.CofactorMatrix().Transpose()
}

// TryInverse returns adj(mt)/det(mt), or core.ErrSingularMatrix when the
// determinant is exactly zero.
func (mt Mat3) TryInverse() (Mat3, error) {
	det := mt.Determinant()
	if det == 0 {
		return NewMat3Identity(), core.ErrSingularMatrix
	}
	return mt.Adjugate().MulScalar(1 / det), nil
}

// Inverse returns the inverse of mt, resolving a singular matrix through the
// fallback policy.
func (mt Mat3) Inverse() Mat3 {
	inv, err := mt.TryInverse()
	if err != nil {
		return fallback(err, inv, "Mat3 %v", mt)
	}
	return inv
}

func (mt *Mat3) SetIdentity() {
	*mt = NewMat3Identity()
}

func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := range mt.Data {
		if !approxEqual(mt.Data[i], other.Data[i], tolerance) {
			return false
		}
	}
	return true
}

func (mt Mat3) String() string {
	return formatRows(mt.Data[:], 3)
}

// formatRows renders a row-major matrix as "[a b c; d e f; ...]".
func formatRows(data []float32, n int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for row := 0; row < n; row++ {
		if row > 0 {
			sb.WriteString("; ")
		}
		for col := 0; col < n; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", data[row*n+col])
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
