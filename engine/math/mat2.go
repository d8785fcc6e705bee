package math

import (
	"fmt"

	"github.com/spaghettifunk/engineutils/engine/core"
)

// NewMat2 creates a matrix from its elements in row-major order:
//
//	| a b |
//	| c d |
func NewMat2(a, b, c, d float32) Mat2 {
	return Mat2{Data: [4]float32{a, b, c, d}}
}

func NewMat2Identity() Mat2 {
	return NewMat2(1, 0, 0, 1)
}

func NewMat2Zero() Mat2 {
	return Mat2{}
}

// NewMat2Scale returns a scale matrix.
func NewMat2Scale(sx, sy float32) Mat2 {
	return NewMat2(sx, 0, 0, sy)
}

// NewMat2Rotation returns a counter-clockwise rotation by radians.
func NewMat2Rotation(radians float32) Mat2 {
	c := Cos(radians)
	s := Sin(radians)
	return NewMat2(c, -s, s, c)
}

// At returns the element at (row, col).
func (mt Mat2) At(row, col int) float32 {
	return mt.Data[componentIndex(row, 2, "Mat2 row")*2+componentIndex(col, 2, "Mat2 column")]
}

// Set assigns the element at (row, col).
func (mt *Mat2) Set(row, col int, value float32) {
	mt.Data[componentIndex(row, 2, "Mat2 row")*2+componentIndex(col, 2, "Mat2 column")] = value
}

func (mt Mat2) Row(row int) Vec2 {
	r := componentIndex(row, 2, "Mat2 row") * 2
	return Vec2{mt.Data[r], mt.Data[r+1]}
}

func (mt Mat2) Col(col int) Vec2 {
	c := componentIndex(col, 2, "Mat2 column")
	return Vec2{mt.Data[c], mt.Data[2+c]}
}

func (mt Mat2) Add(other Mat2) Mat2 {
	out := Mat2{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Mat2) Sub(other Mat2) Mat2 {
	out := Mat2{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Mat2) MulScalar(scalar float32) Mat2 {
	out := Mat2{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * scalar
	}
	return out
}

// Mul returns mt · other.
func (mt Mat2) Mul(other Mat2) Mat2 {
	a, b := mt.Data, other.Data
	return NewMat2(
		a[0]*b[0]+a[1]*b[2], a[0]*b[1]+a[1]*b[3],
		a[2]*b[0]+a[3]*b[2], a[2]*b[1]+a[3]*b[3],
	)
}

// MulVec2 returns mt · v.
func (mt Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		mt.Data[0]*v.X + mt.Data[1]*v.Y,
		mt.Data[2]*v.X + mt.Data[3]*v.Y,
	}
}

func (mt Mat2) Determinant() float32 {
	return mt.Data[0]*mt.Data[3] - mt.Data[1]*mt.Data[2]
}

func (mt Mat2) Transpose() Mat2 {
	return NewMat2(
		mt.Data[0], mt.Data[2],
		mt.Data[1], mt.Data[3],
	)
}

// TryInverse returns the inverse of mt, or core.ErrSingularMatrix when the
// determinant is exactly zero.
func (mt Mat2) TryInverse() (Mat2, error) {
	det := mt.Determinant()
	if det == 0 {
		return NewMat2Identity(), core.ErrSingularMatrix
	}
	invDet := 1 / det
	return NewMat2(
		mt.Data[3]*invDet, -mt.Data[1]*invDet,
		-mt.Data[2]*invDet, mt.Data[0]*invDet,
	), nil
}

// Inverse returns the inverse of mt. A singular matrix resolves through the
// fallback policy: identity under FallbackSentinel.
func (mt Mat2) Inverse() Mat2 {
	inv, err := mt.TryInverse()
	if err != nil {
		return fallback(err, inv, "Mat2 %v", mt)
	}
	return inv
}

func (mt *Mat2) SetIdentity() {
	*mt = NewMat2Identity()
}

// SetScale overwrites mt with a scale matrix.
func (mt *Mat2) SetScale(sx, sy float32) {
	*mt = NewMat2Scale(sx, sy)
}

// SetRotation overwrites mt with a rotation by radians.
func (mt *Mat2) SetRotation(radians float32) {
	*mt = NewMat2Rotation(radians)
}

func (mt Mat2) Compare(other Mat2, tolerance float32) bool {
	for i := range mt.Data {
		if !approxEqual(mt.Data[i], other.Data[i], tolerance) {
			return false
		}
	}
	return true
}

func (mt Mat2) String() string {
	return fmt.Sprintf("[%g %g; %g %g]", mt.Data[0], mt.Data[1], mt.Data[2], mt.Data[3])
}
