package math

import "golang.org/x/exp/rand"

// Random helpers draw from r, or from the package-level source of
// golang.org/x/exp/rand when r is nil. Pass a seeded *rand.Rand for
// reproducible sequences.

func randFloat32(r *rand.Rand) float32 {
	if r == nil {
		return rand.Float32()
	}
	return r.Float32()
}

// RandomIntInRange returns an integer in [min, max]. The bounds are swapped
// when given in the wrong order.
func RandomIntInRange(r *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	if r == nil {
		return rand.Intn(max-min+1) + min
	}
	return r.Intn(max-min+1) + min
}

// RandomInRange returns a float in [min, max).
func RandomInRange(r *rand.Rand, min, max float32) float32 {
	return min + randFloat32(r)*(max-min)
}

// RandomVec3InRange picks every component independently between the matching
// components of min and max.
func RandomVec3InRange(r *rand.Rand, min, max Vec3) Vec3 {
	return Vec3{
		RandomInRange(r, min.X, max.X),
		RandomInRange(r, min.Y, max.Y),
		RandomInRange(r, min.Z, max.Z),
	}
}

// RandomUnitVec3 returns a direction uniformly distributed on the unit sphere.
func RandomUnitVec3(r *rand.Rand) Vec3 {
	z := RandomInRange(r, -1, 1)
	phi := RandomInRange(r, 0, K_PI_2)
	rxy := Sqrt(1 - z*z)
	return Vec3{rxy * Cos(phi), rxy * Sin(phi), z}
}

// RandomQuaternion returns a uniformly distributed unit rotation
// (Shoemake's subgroup algorithm).
func RandomQuaternion(r *rand.Rand) Quaternion {
	u1 := randFloat32(r)
	u2 := randFloat32(r) * K_PI_2
	u3 := randFloat32(r) * K_PI_2

	a := Sqrt(1 - u1)
	b := Sqrt(u1)
	return Quaternion{a * Sin(u2), a * Cos(u2), b * Sin(u3), b * Cos(u3)}.Normalized()
}
