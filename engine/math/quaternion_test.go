package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func requireQuat(t *testing.T, want, got Quaternion, tolerance float32) {
	t.Helper()
	require.True(t, want.Compare(got, tolerance), "want %s, got %s", want, got)
}

func TestQuatRotateHandedness(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 1, 0), K_HALF_PI, false)
	requireVec3(t, NewVec3(0, 0, -1), q.Rotate(NewVec3(1, 0, 0)), tol)

	qz := NewQuatFromAxisAngle(NewVec3(0, 0, 1), K_HALF_PI, false)
	requireVec3(t, NewVec3(0, 1, 0), qz.Rotate(NewVec3(1, 0, 0)), tol)
}

func TestQuatRotatePreservesLength(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		q := RandomQuaternion(r)
		v := RandomVec3InRange(r, NewVec3(-10, -10, -10), NewVec3(10, 10, 10))
		got := q.Normalized().Rotate(v)
		assert.InDelta(t, v.Length(), got.Length(), 1e-4, "q=%s v=%s", q, v)
	}

	// a true inverse keeps the magnitude even for a non-unit quaternion
	q := NewQuat(0, 3, 0, 3)
	v := NewVec3(1, 2, 3)
	assert.InDelta(t, v.Length(), q.Rotate(v).Length(), 1e-4)
}

func TestQuatMulAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		q1, q2, q3 := RandomQuaternion(r), RandomQuaternion(r), RandomQuaternion(r)
		requireQuat(t, q1.Mul(q2).Mul(q3), q1.Mul(q2.Mul(q3)), tol)
	}
}

func TestQuatMulNotCommutative(t *testing.T) {
	qx := NewQuatFromAxisAngle(NewVec3(1, 0, 0), K_HALF_PI, false)
	qy := NewQuatFromAxisAngle(NewVec3(0, 1, 0), K_HALF_PI, false)
	assert.False(t, qx.Mul(qy).Compare(qy.Mul(qx), tol))

	// Mul applies the right-hand operand first
	v := NewVec3(0, 0, 1)
	requireVec3(t, qx.Rotate(qy.Rotate(v)), qx.Mul(qy).Rotate(v), tol)
}

func TestQuatIdentityAndInverse(t *testing.T) {
	id := NewQuatIdentity()
	q := NewQuat(1, 2, 3, 4)
	assert.Equal(t, q, q.Mul(id))
	assert.Equal(t, q, id.Mul(q))

	requireQuat(t, id, q.Mul(q.Inverse()), tol)
	requireQuat(t, id, q.Inverse().Mul(q), tol)
	assert.Equal(t, NewQuat(-1, -2, -3, 4), q.Conjugate())

	unit := q.Normalized()
	requireQuat(t, unit.Conjugate(), unit.Inverse(), tol)

	assert.Equal(t, id, NewQuat(0, 0, 0, 0).Inverse())
	assert.Equal(t, id, NewQuat(0, 0, 0, 0).Normalized())
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(0, 0, 3, 4)
	assert.Equal(t, float32(5), q.Length())
	assert.Equal(t, float32(25), q.LengthSquared())
	q.Normalize()
	requireQuat(t, NewQuat(0, 0, 0.6, 0.8), q, tol)
	assert.InDelta(t, 1, q.Dot(q), 1e-6)
}

func TestQuatFromAxisAngleNormalization(t *testing.T) {
	axis := NewVec3(0, 2, 0)
	raw := NewQuatFromAxisAngle(axis, K_HALF_PI, false)
	assert.Greater(t, raw.Length(), float32(1.1))

	unit := NewQuatFromAxisAngle(axis, K_HALF_PI, true)
	assert.InDelta(t, 1, unit.Length(), 1e-6)
	requireQuat(t, NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, false), unit, tol)
}

func TestQuatLerp(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3(1, 1, 0), 0.8, true)
	b := NewQuatFromAxisAngle(NewVec3(0, 0, 1), -1.2, true)

	for _, tt := range []float32{-1, 0, 0.25, 0.5, 1, 3} {
		requireQuat(t, a, QuatLerp(a, a, tt), 1e-6)
	}

	requireQuat(t, a, a.Lerp(b, -2), 1e-6)
	requireQuat(t, b, a.Lerp(b, 2), 1e-6)
	assert.InDelta(t, 1, a.Lerp(b, 0.3).Length(), 1e-6)
}

func TestQuatSlerp(t *testing.T) {
	a := NewQuatIdentity()
	b := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, false)

	requireQuat(t, a, a.Slerp(b, 0), tol)
	requireQuat(t, b, a.Slerp(b, 1), tol)
	requireQuat(t, NewQuatFromAxisAngle(NewVec3Up(), K_QUARTER_PI, false), a.Slerp(b, 0.5), tol)

	// the shorter arc is taken when the endpoints are in opposite hemispheres
	neg := NewQuat(-b.X, -b.Y, -b.Z, -b.W)
	mid := a.Slerp(neg, 0.5)
	requireVec3(t,
		NewQuatFromAxisAngle(NewVec3Up(), K_QUARTER_PI, false).Rotate(NewVec3Right()),
		mid.Rotate(NewVec3Right()), tol)

	// nearly identical inputs fall back to a normalized lerp
	c := NewQuatFromAxisAngle(NewVec3Up(), 0.001, false)
	assert.InDelta(t, 1, a.Slerp(c, 0.5).Length(), 1e-6)
}

func TestQuatToMatrix(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		q := RandomQuaternion(r)
		v := RandomVec3InRange(r, NewVec3(-5, -5, -5), NewVec3(5, 5, 5))
		requireVec3(t, q.Rotate(v), q.ToMat4().TransformPoint(v), 1e-4)
		requireVec3(t, q.Rotate(v), q.ToMat3().MulVec3(v), 1e-4)
	}

	axis := NewVec3(1, 2, 3).Normalized()
	q := NewQuatFromAxisAngle(axis, 1.3, false)
	requireMat4(t, NewMat4Rotation(axis, 1.3), q.ToMat4(), tol)
	assert.Equal(t, NewMat4Identity(), NewQuatIdentity().ToMat4())
}

func TestQuatToRotationMatrixAroundCenter(t *testing.T) {
	center := NewVec3(5, 0, 0)
	q := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, false)
	m := q.ToRotationMatrix(center)

	requireVec3(t, center, m.TransformPoint(center), tol)
	requireVec3(t, NewVec3(5, 0, -1), m.TransformPoint(NewVec3(6, 0, 0)), tol)
}

func TestQuatString(t *testing.T) {
	assert.Equal(t, "(0, 0, 0, 1)", NewQuatIdentity().String())
}

func TestQuatExtremeMagnitudes(t *testing.T) {
	tests := map[string]struct {
		q    Quaternion
		want Quaternion
	}{
		"large w":      {NewQuat(0, 0, 0, 1e20), NewQuatIdentity()},
		"tiny w":       {NewQuat(0, 0, 0, 1e-22), NewQuatIdentity()},
		"large x":      {NewQuat(-1e30, 0, 0, 0), NewQuat(-1, 0, 0, 0)},
		"mixed scales": {NewQuat(3e20, 0, 4e20, 0), NewQuat(0.6, 0, 0.8, 0)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			requireQuat(t, tc.want, tc.q.Normalized(), 1e-6)
			assert.InDelta(t, 1, tc.q.Normalized().Length(), 1e-6)
		})
	}

	inv := NewQuat(0, 0, 0, 1e20).Inverse()
	assert.InEpsilon(t, 1e-20, inv.W, 1e-6)
}
