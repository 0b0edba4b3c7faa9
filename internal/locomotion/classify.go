package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// Classification is the terrain state a step resolved to.
type Classification int

const (
	Airborne Classification = iota
	Climbing
	Grounded
	Snapped
	SteepGround
)

func (c Classification) String() string {
	switch c {
	case Climbing:
		return "climbing"
	case Grounded:
		return "grounded"
	case Snapped:
		return "snapped"
	case SteepGround:
		return "steep-ground"
	default:
		return "airborne"
	}
}

// Supported reports whether the classification counts as standing on something.
func (c Classification) Supported() bool {
	return c != Airborne
}

const (
	// jumpPhase is only reset once this many steps passed since the jump.
	jumpResetSteps = 1
	// Snapping is suppressed for this many steps after a jump.
	snapJumpGuardSteps = 2
)

// updateState advances the step counters, reads the body velocity and runs
// the classifier.
func (c *Controller) updateState(dt float32) {
	c.stepsSinceLastGrounded++
	c.stepsSinceLastJump++
	c.velocity = c.body.GetVelocity()

	airSteps := c.stepsSinceLastGrounded - 1
	c.classification = c.classify()
	if c.classification.Supported() {
		c.stepsSinceLastGrounded = 0
		if c.stepsSinceLastJump > jumpResetSteps {
			c.jumpPhase = 0
		}
		if airSteps > 0 {
			c.Landed.Invoke(LandEvent{AirborneSteps: airSteps, Classification: c.classification})
		}
	} else {
		c.contactNormal = c.upAxis
	}

	if c.connectedBody != nil && (c.connectedBody.Kinematic() || c.connectedBody.GetMass() >= c.body.GetMass()) {
		c.updateConnectionState(dt)
	}
}

// classify resolves exactly one classification with the priority
// climb, ground contact, ground snap, steep contacts.
func (c *Controller) classify() Classification {
	switch {
	case c.checkClimbing():
		return Climbing
	case c.groundContactCount > 0:
		if c.groundContactCount > 1 {
			c.contactNormal = normalizeOr(c.contactNormal, c.upAxis)
			c.groundContactCount = 1
		}
		return Grounded
	case c.snapToGround():
		return Snapped
	case c.checkSteepContacts():
		return SteepGround
	}
	return Airborne
}

func (c *Controller) climbing() bool {
	return c.climbContactCount > 0 && c.stepsSinceLastJump > c.cfg.ClimbRegrabSteps
}

func (c *Controller) onGround() bool {
	return c.groundContactCount > 0
}

func (c *Controller) onSteep() bool {
	return c.steepContactCount > 0
}

func (c *Controller) checkClimbing() bool {
	if !c.climbing() {
		return false
	}
	if c.climbContactCount > 1 {
		c.climbNormal = normalizeOr(c.climbNormal, c.lastClimbNormal)
		// Opposing walls of a crevasse sum to something floor-like.
		if rl.Vector3DotProduct(c.upAxis, c.climbNormal) >= c.limits.minGroundDot {
			c.climbNormal = c.lastClimbNormal
		}
	}
	c.groundContactCount = 1
	c.contactNormal = c.climbNormal
	return true
}

// snapToGround keeps the character glued to the ground for one step after
// losing contact, e.g. when running over a crest.
func (c *Controller) snapToGround() bool {
	if c.stepsSinceLastGrounded > 1 || c.stepsSinceLastJump <= snapJumpGuardSteps {
		return false
	}
	speed := rl.Vector3Length(c.velocity)
	if speed > c.cfg.MaxSnapSpeed {
		return false
	}
	hit, ok := c.rays.Cast(c.body.GetPosition(), rl.Vector3Negate(c.upAxis), c.cfg.ProbeDistance, c.cfg.ProbeMask, true)
	if !ok || !usableNormal(hit.Normal) {
		return false
	}
	if rl.Vector3DotProduct(c.upAxis, hit.Normal) < c.minDot(hit.Layer) {
		return false
	}

	c.groundContactCount = 1
	c.contactNormal = hit.Normal
	if dot := rl.Vector3DotProduct(c.velocity, hit.Normal); dot > 0 {
		along := rl.Vector3Subtract(c.velocity, rl.Vector3Scale(hit.Normal, dot))
		c.velocity = rl.Vector3Scale(normalizeOr(along, rl.Vector3{}), speed)
	}
	c.connectedBody = hit.Body
	return true
}

// checkSteepContacts treats being wedged between several steep contacts as
// standing on ground when their combined normal is walkable.
func (c *Controller) checkSteepContacts() bool {
	if c.steepContactCount <= 1 {
		return false
	}
	c.steepNormal = normalizeOr(c.steepNormal, rl.Vector3{})
	if rl.Vector3DotProduct(c.upAxis, c.steepNormal) < c.limits.minGroundDot {
		return false
	}
	c.steepContactCount = 0
	c.groundContactCount = 1
	c.contactNormal = c.steepNormal
	return true
}
