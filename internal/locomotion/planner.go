package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	// Fraction of the climb acceleration pressing the character into a wall.
	climbGrip = 0.9
	// Below this squared speed a grounded character is considered at rest.
	restSpeedSqr = 0.01
)

// adjustVelocity moves the velocity relative to the connected platform toward
// the desired planar velocity, limited by the available acceleration.
func (c *Controller) adjustVelocity(basis Basis, dt float32) {
	var acceleration, speed float32
	var xAxis, zAxis rl.Vector3
	if c.climbing() {
		acceleration = c.cfg.MaxClimbAcceleration
		speed = c.cfg.MaxClimbSpeed
		xAxis = rl.Vector3CrossProduct(c.upAxis, c.contactNormal)
		zAxis = c.upAxis
	} else {
		acceleration = c.cfg.MaxAirAcceleration
		if c.onGround() {
			acceleration = c.cfg.MaxAcceleration
		}
		speed = c.cfg.MaxSpeed
		if c.onGround() && c.desiredClimbing {
			speed = c.cfg.MaxClimbSpeed
		}
		xAxis, zAxis = basis.Right, basis.Forward
	}
	xAxis = projectDirectionOnPlane(xAxis, c.contactNormal)
	zAxis = projectDirectionOnPlane(zAxis, c.contactNormal)

	relative := rl.Vector3Subtract(c.velocity, c.connectionVelocity)
	adjustment := rl.Vector2{
		X: c.input.X*speed - rl.Vector3DotProduct(relative, xAxis),
		Y: c.input.Y*speed - rl.Vector3DotProduct(relative, zAxis),
	}
	adjustment = clampMagnitude2(adjustment, acceleration*dt)

	c.velocity = rl.Vector3Add(c.velocity, rl.Vector3Add(
		rl.Vector3Scale(xAxis, adjustment.X),
		rl.Vector3Scale(zAxis, adjustment.Y),
	))
}

// applyGravity integrates gravity, or its replacement while climbing or resting.
func (c *Controller) applyGravity(gravity rl.Vector3, dt float32) {
	n := c.contactNormal
	switch {
	case c.climbing():
		c.velocity = rl.Vector3Subtract(c.velocity, rl.Vector3Scale(n, c.cfg.MaxClimbAcceleration*climbGrip*dt))
	case c.onGround() && rl.Vector3LengthSqr(c.velocity) < restSpeedSqr:
		c.velocity = rl.Vector3Add(c.velocity, rl.Vector3Scale(n, rl.Vector3DotProduct(gravity, n)*dt))
	case c.desiredClimbing && c.onGround():
		pull := rl.Vector3Subtract(gravity, rl.Vector3Scale(n, c.cfg.MaxClimbAcceleration*climbGrip))
		c.velocity = rl.Vector3Add(c.velocity, rl.Vector3Scale(pull, dt))
	default:
		c.velocity = rl.Vector3Add(c.velocity, rl.Vector3Scale(gravity, dt))
	}
}
