package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. W is the real part. */
type Quaternion Vec4

/**
 * @brief A 2x2 matrix, typically used for 2D rotation and scale.
 * Elements are stored row-major: Data[row*2+col].
 */
type Mat2 struct {
	Data [4]float32
}

/**
 * @brief A 3x3 matrix, typically used for 2D homogeneous transforms or
 * 3D rotation/scale. Elements are stored row-major: Data[row*3+col].
 */
type Mat3 struct {
	Data [9]float32
}

/**
 * @brief A 4x4 matrix, typically used to represent object transformations.
 * Elements are stored row-major: Data[row*4+col]. Vectors are treated as
 * columns, so translation lives in the last column.
 */
type Mat4 struct {
	Data [16]float32
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}
