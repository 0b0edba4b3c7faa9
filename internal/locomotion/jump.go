package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// JumpEvent describes a jump that was applied.
type JumpEvent struct {
	Direction rl.Vector3
	Speed     float32 // speed actually added along Direction
	Phase     int     // jump phase after the jump
	Air       bool
}

// LandEvent fires on the first supported step after being airborne.
type LandEvent struct {
	AirborneSteps  int
	Classification Classification
}

// jump applies a requested jump. It reports false when no jump was possible,
// which is not an error.
func (c *Controller) jump(gravity rl.Vector3) bool {
	var direction rl.Vector3
	air := false
	switch {
	case c.onGround():
		direction = c.contactNormal
	case c.onSteep():
		direction = c.steepNormal
		c.jumpPhase = 0
	case c.cfg.MaxAirJumps > 0 && c.jumpPhase <= c.cfg.MaxAirJumps:
		// Walking off a ledge spends the ground jump.
		if c.jumpPhase == 0 {
			c.jumpPhase = 1
		}
		direction = c.contactNormal
		air = true
	default:
		return false
	}

	c.stepsSinceLastJump = 0
	c.jumpPhase++
	jumpSpeed := math32.Sqrt(2 * rl.Vector3Length(gravity) * c.cfg.JumpHeight)
	direction = normalizeOr(rl.Vector3Add(direction, c.upAxis), c.upAxis)
	if aligned := rl.Vector3DotProduct(c.velocity, direction); aligned > 0 {
		jumpSpeed = math32.Max(jumpSpeed-aligned, 0)
	}
	c.velocity = rl.Vector3Add(c.velocity, rl.Vector3Scale(direction, jumpSpeed))

	c.Jumped.Invoke(JumpEvent{Direction: direction, Speed: jumpSpeed, Phase: c.jumpPhase, Air: air})
	return true
}
