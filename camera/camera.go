package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MoveSpeed    = 3.0   // units per second
	SprintFactor = 2.0   // speed multiplier while sprinting
	Sensitivity  = 0.004 // radians per pixel of mouse travel
	FOV          = 60.0  // vertical field of view, degrees
	PitchLimit   = 89.0  // degrees; looking straight up or down flips the view
	NearPlane    = 0.1
	FarPlane     = 100.0
	defaultYaw   = -90.0
	defaultPitch = 0.0
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera is a free-look camera. Yaw and Pitch are in degrees; yaw -90 looks
// down -Z.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	FOV         float32
}

// New returns a camera at position looking down -Z.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         defaultYaw,
		Pitch:       defaultPitch,
		Speed:       MoveSpeed,
		Sensitivity: Sensitivity,
		FOV:         FOV,
	}
	c.updateVectors()
	return c
}

// Look turns the camera by a cursor offset in pixels. Positive dy looks up.
func (c *Camera) Look(dx, dy float32) {
	scale := mgl32.RadToDeg(c.Sensitivity)
	c.Yaw += dx * scale
	c.Pitch += dy * scale
	c.Pitch = mgl32.Clamp(c.Pitch, -PitchLimit, PitchLimit)
	c.Yaw = float32(math.Mod(float64(c.Yaw), 360))
	c.updateVectors()
}

// Move translates the camera for dt seconds at its current speed. Vertical
// movement follows the world up axis, not the view.
func (c *Camera) Move(dir Direction, dt float32) {
	step := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(step))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(step))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(step))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(step))
	}
}

// SetSprint switches between the normal and doubled movement speed.
func (c *Camera) SetSprint(on bool) {
	if on {
		c.Speed = MoveSpeed * SprintFactor
	} else {
		c.Speed = MoveSpeed
	}
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, NearPlane, FarPlane)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
