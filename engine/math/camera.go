package math

// K_CAMERA_PITCH_LIMIT is 89 degrees in radians; pitch is clamped to it to
// avoid gimbal lock.
const K_CAMERA_PITCH_LIMIT float32 = 1.55334306

/**
 * @brief A free-look camera described by a position and Euler angles
 * (pitch, yaw, roll). The view matrix is rebuilt lazily after any change.
 */
type Camera struct {
	position      Vec3
	eulerRotation Vec3
	isDirty       bool
	world         Mat4
	view          Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.eulerRotation = NewVec3Zero()
	c.position = NewVec3Zero()
	c.isDirty = false
	c.world = NewMat4Identity()
	c.view = NewMat4Identity()
}

func (c *Camera) Position() Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) EulerRotation() Vec3 {
	return c.eulerRotation
}

func (c *Camera) SetEulerRotation(rotation Vec3) {
	c.eulerRotation = rotation
	c.isDirty = true
}

func (c *Camera) update() {
	if !c.isDirty {
		return
	}
	rotation := NewMat4EulerXYZ(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
	c.world = NewMat4Translation(c.position).Mul(rotation)
	// a rigid transform always has an inverse
	c.view, _ = c.world.TryInverse()
	c.isDirty = false
}

// World returns the camera-to-world matrix T·R.
func (c *Camera) World() Mat4 {
	c.update()
	return c.world
}

// View returns the world-to-camera matrix, the inverse of World.
func (c *Camera) View() Mat4 {
	c.update()
	return c.view
}

func (c *Camera) Forward() Vec3 {
	return c.World().Forward()
}

func (c *Camera) Backward() Vec3 {
	return c.World().Backward()
}

func (c *Camera) Left() Vec3 {
	return c.World().Left()
}

func (c *Camera) Right() Vec3 {
	return c.World().Right()
}

func (c *Camera) move(direction Vec3, amount float32) {
	c.position = c.position.Add(direction.MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(NewVec3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	c.eulerRotation.Y += amount
	c.isDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.eulerRotation.X = Clamp(c.eulerRotation.X+amount, -K_CAMERA_PITCH_LIMIT, K_CAMERA_PITCH_LIMIT)
	c.isDirty = true
}
