package math

import "testing"

func BenchmarkMat4Mul(b *testing.B) {
	m1 := NewMat4Translation(NewVec3(1, 2, 3))
	m2 := NewMat4RotationY(0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4TransformPoint(b *testing.B) {
	m := NewMat4Translation(NewVec3(1, 2, 3)).Mul(NewMat4RotationY(0.5))
	v := NewVec3(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.TransformPoint(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := NewMat4Translation(NewVec3(1, 2, 3)).Mul(NewMat4RotationY(0.5)).Mul(NewMat4Scale(NewVec3(2, 2, 2)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Inverse()
	}
}

func BenchmarkMat3Inverse(b *testing.B) {
	m := NewMat3Translation(1, 2).Mul(NewMat3Rotation(0.5))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Inverse()
	}
}

func BenchmarkVec3Normalized(b *testing.B) {
	v := NewVec3(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Normalized()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}

func BenchmarkQuatRotate(b *testing.B) {
	q := NewQuatFromAxisAngle(NewVec3(1, 1, 0), 0.7, true)
	v := NewVec3(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Rotate(v)
	}
}

func BenchmarkQuatSlerp(b *testing.B) {
	q1 := NewQuatIdentity()
	q2 := NewQuatFromAxisAngle(NewVec3Up(), 1.2, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q1.Slerp(q2, 0.3)
	}
}

func BenchmarkTransformWorld(b *testing.B) {
	parent := TransformFromPosition(NewVec3(1, 0, 0))
	child := TransformFromRotation(NewQuatFromAxisAngle(NewVec3Up(), 0.3, false))
	child.SetParent(parent)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		child.Translate(NewVec3(0, 0.001, 0))
		_ = child.GetWorld()
	}
}
