// Package camera provides the orbit camera that follows the character and
// defines the frame player input is expressed in.
package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/locomotion"
)

var _ locomotion.InputSpace = (*OrbitCamera)(nil)

// OrbitCamera orbits a focus point that lags behind its target. Yaw and pitch
// are measured in a frame that is smoothly aligned with the local up axis, so
// the view follows the character around planetoids.
type OrbitCamera struct {
	Focus    rl.Vector3
	Distance float32
	Yaw      float32 // degrees about the up axis
	Pitch    float32 // degrees, negative looks down

	MinPitch, MaxPitch       float32
	MinDistance, MaxDistance float32
	LookSpeed                float32 // degrees per pixel
	ZoomSpeed                float32 // distance per wheel step
	FocusRadius              float32 // the focus may trail the target by this much
	FocusCentering           float32 // fraction of the remaining gap closed per second
	UpAlignSpeed             float32 // degrees per second, 0 snaps immediately
	Fovy                     float32

	up        rl.Vector3
	reference rl.Vector3 // forward at zero yaw, perpendicular to up
}

func New(focus rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Focus:          focus,
		Distance:       8,
		Pitch:          -20,
		MinPitch:       -80,
		MaxPitch:       60,
		MinDistance:    2,
		MaxDistance:    25,
		LookSpeed:      0.25,
		ZoomSpeed:      1,
		FocusRadius:    1,
		FocusCentering: 0.75,
		UpAlignSpeed:   360,
		Fovy:           60,
		up:             rl.Vector3{Y: 1},
		reference:      locomotion.WorldForward,
	}
}

// Look orbits by a mouse delta in pixels.
func (c *OrbitCamera) Look(delta rl.Vector2) {
	c.Yaw -= delta.X * c.LookSpeed
	c.Yaw = math32.Mod(c.Yaw, 360)
	c.Pitch = clampf(c.Pitch-delta.Y*c.LookSpeed, c.MinPitch, c.MaxPitch)
}

// Zoom moves the camera in for positive wheel steps.
func (c *OrbitCamera) Zoom(steps float32) {
	c.Distance = clampf(c.Distance-steps*c.ZoomSpeed, c.MinDistance, c.MaxDistance)
}

// Follow moves the focus toward target and turns the frame toward up.
func (c *OrbitCamera) Follow(target, up rl.Vector3, deltaTime float32) {
	c.updateFocus(target, deltaTime)
	if rl.Vector3LengthSqr(up) > 1e-6 {
		c.alignUp(rl.Vector3Normalize(up), deltaTime)
	}
}

func (c *OrbitCamera) updateFocus(target rl.Vector3, deltaTime float32) {
	distance := rl.Vector3Distance(target, c.Focus)
	t := float32(1)
	if distance > 0.01 && c.FocusCentering > 0 {
		t = math32.Pow(1-c.FocusCentering, deltaTime)
	}
	if distance > c.FocusRadius {
		t = math32.Min(t, c.FocusRadius/distance)
	}
	c.Focus = rl.Vector3Lerp(target, c.Focus, t)
}

func (c *OrbitCamera) alignUp(up rl.Vector3, deltaTime float32) {
	dot := clampf(rl.Vector3DotProduct(c.up, up), -1, 1)
	angle := math32.Acos(dot)
	if angle < 1e-4 {
		return
	}

	var axis rl.Vector3
	if dot < -0.9999 {
		// Opposite ups: any axis perpendicular to up works, keep the reference.
		axis = c.Right()
	} else {
		axis = rl.Vector3Normalize(rl.Vector3CrossProduct(c.up, up))
	}
	step := angle
	if c.UpAlignSpeed > 0 {
		step = math32.Min(angle, c.UpAlignSpeed*rl.Deg2rad*deltaTime)
	}
	q := rl.QuaternionFromAxisAngle(axis, step)
	c.up = rl.Vector3Normalize(rl.Vector3RotateByQuaternion(c.up, q))
	reference := rl.Vector3RotateByQuaternion(c.reference, q)
	c.reference = rl.Vector3Normalize(rl.Vector3Subtract(reference, rl.Vector3Scale(c.up, rl.Vector3DotProduct(reference, c.up))))
}

// Up is the camera frame's current up axis.
func (c *OrbitCamera) Up() rl.Vector3 {
	return c.up
}

// Forward is the horizontal view direction in the current frame.
func (c *OrbitCamera) Forward() rl.Vector3 {
	q := rl.QuaternionFromAxisAngle(c.up, c.Yaw*rl.Deg2rad)
	return rl.Vector3Normalize(rl.Vector3RotateByQuaternion(c.reference, q))
}

// Right completes the frame: Forward x Up.
func (c *OrbitCamera) Right() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(c.Forward(), c.up))
}

// LookDirection includes pitch.
func (c *OrbitCamera) LookDirection() rl.Vector3 {
	pitch := c.Pitch * rl.Deg2rad
	return rl.Vector3Add(
		rl.Vector3Scale(c.Forward(), math32.Cos(pitch)),
		rl.Vector3Scale(c.up, math32.Sin(pitch)),
	)
}

func (c *OrbitCamera) Position() rl.Vector3 {
	return rl.Vector3Subtract(c.Focus, rl.Vector3Scale(c.LookDirection(), c.Distance))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Focus,
		Up:         c.up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
