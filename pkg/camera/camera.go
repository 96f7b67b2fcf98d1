// Package camera implements the free-fly camera used to navigate the scene.
// It is pure math and has no dependency on the graphics API.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a yaw/pitch camera with a fixed world-up reference.
type Camera struct {
	position mgl32.Vec3
	up       mgl32.Vec3 // world +Y, never mutated

	// Euler angles in degrees
	yaw   float32
	pitch float32

	movementSpeed float32
}

// New creates a camera with the given pose. Pitch is clamped to [MinPitch, MaxPitch].
func New(position mgl32.Vec3, yaw, pitch, movementSpeed float32) *Camera {
	return &Camera{
		position:      position,
		up:            mgl32.Vec3{0, 1, 0},
		yaw:           yaw,
		pitch:         clampPitch(pitch),
		movementSpeed: movementSpeed,
	}
}

// NewDefault creates a camera at position facing -Z with the default speed.
func NewDefault(position mgl32.Vec3) *Camera {
	return New(position, DefaultYaw, DefaultPitch, DefaultMoveSpeed)
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

// direction returns the unnormalized look direction. With flatten set the
// vertical component is dropped, leaving the heading on the ground plane.
func (c *Camera) direction(flatten bool) mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	d := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	if flatten {
		d[1] = 0
	}
	return d
}

// Forward returns the normalized look direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.direction(false).Normalize()
}

// FlatForward returns the look direction projected onto the horizontal plane.
func (c *Camera) FlatForward() mgl32.Vec3 {
	return c.direction(true).Normalize()
}

// Right returns normalize(up × FlatForward). For a right-handed frame this
// points to the camera's left; MoveAlongAxes is defined in terms of it.
func (c *Camera) Right() mgl32.Vec3 {
	return c.up.Cross(c.FlatForward()).Normalize()
}

// UpdateOrientation adds the deltas to yaw and pitch, then clamps pitch.
// Yaw is left unbounded; the trigonometry wraps it.
func (c *Camera) UpdateOrientation(deltaYaw, deltaPitch float32) {
	c.yaw += deltaYaw
	c.pitch = clampPitch(c.pitch + deltaPitch)
}

// MoveAlongAxes integrates ground-plane movement:
//
//	position += right*strafe*speed*dt - flatForward*forward*speed*dt
func (c *Camera) MoveAlongAxes(strafeUnits, forwardUnits, deltaTime float32) {
	if strafeUnits == 0 && forwardUnits == 0 {
		return
	}

	velocity := c.movementSpeed * deltaTime
	flat := c.FlatForward()
	right := c.up.Cross(flat).Normalize()

	c.position = c.position.
		Add(right.Mul(strafeUnits * velocity)).
		Sub(flat.Mul(forwardUnits * velocity))
}

// Climb moves the camera along world Y regardless of orientation.
func (c *Camera) Climb(units, deltaTime float32) {
	c.position[1] += units * c.movementSpeed * deltaTime
}

// ViewMatrix returns a right-handed look-at transform for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	front := c.direction(false).Normalize()
	right := c.up.Cross(front).Normalize()
	up := front.Cross(right).Normalize()

	return mgl32.LookAtV(c.position, c.position.Add(front), up)
}

// LookAt turns the camera toward target. The resulting pitch is clamped.
func (c *Camera) LookAt(target mgl32.Vec3) {
	offset := target.Sub(c.position)
	if offset.Len() == 0 {
		return
	}
	direction := offset.Normalize()

	c.yaw = mgl32.RadToDeg(math32.Atan2(direction.Z(), direction.X()))
	c.pitch = clampPitch(mgl32.RadToDeg(math32.Asin(direction.Y())))
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch) in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// MovementSpeed returns the speed multiplier fixed at construction.
func (c *Camera) MovementSpeed() float32 {
	return c.movementSpeed
}
