// Package locomotion turns planar input into the velocity of a simulated
// character body. Each fixed step it classifies the contacts reported since
// the previous step, snaps to ground, tracks a moving platform, plans the
// new velocity and resolves jumps, for any direction of gravity.
package locomotion

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

// ErrMissingCollaborator is returned by New when a required collaborator is nil.
var ErrMissingCollaborator = errors.New("missing locomotion collaborator")

// Option customizes a Controller at construction.
type Option func(*Controller)

// WithInputSpace interprets input relative to space instead of the world axes.
func WithInputSpace(space InputSpace) Option {
	return func(c *Controller) { c.space = space }
}

// Status is a snapshot of the observable state after the most recent step.
type Status struct {
	Classification     Classification
	Grounded           bool
	OnSteep            bool
	Climbing           bool
	HorizontalSpeed    float32
	Velocity           rl.Vector3
	UpAxis             rl.Vector3
	ContactNormal      rl.Vector3
	SteepNormal        rl.Vector3
	ConnectionVelocity rl.Vector3
	JumpPhase          int
}

// Controller is the locomotion state machine of one character. It is not safe
// for concurrent use; drive it from the simulation thread.
type Controller struct {
	body    Body
	gravity GravityField
	rays    RayCaster
	space   InputSpace

	cfg    Config
	limits thresholds

	// Intent, written at frame rate.
	input           rl.Vector2
	desiredJump     bool
	desiredClimbing bool

	pending []Contact

	velocity       rl.Vector3
	upAxis         rl.Vector3
	basis          Basis
	classification Classification

	contactNormal, steepNormal, climbNormal                  rl.Vector3
	groundContactCount, steepContactCount, climbContactCount int
	lastContactNormal, lastSteepNormal, lastClimbNormal      rl.Vector3

	stepsSinceLastGrounded int
	stepsSinceLastJump     int
	jumpPhase              int

	connectedBody, previousConnectedBody Platform
	connectionWorldPosition              rl.Vector3
	connectionLocalPosition              rl.Vector3
	connectionVelocity                   rl.Vector3
	lastConnectionVelocity               rl.Vector3

	status Status

	Jumped engine.EventWithArg[JumpEvent]
	Landed engine.EventWithArg[LandEvent]
}

// New builds a controller for body. Every collaborator is required.
func New(body Body, gravity GravityField, rays RayCaster, cfg Config, opts ...Option) (*Controller, error) {
	switch {
	case body == nil:
		return nil, fmt.Errorf("%w: body", ErrMissingCollaborator)
	case gravity == nil:
		return nil, fmt.Errorf("%w: gravity field", ErrMissingCollaborator)
	case rays == nil:
		return nil, fmt.Errorf("%w: ray caster", ErrMissingCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		body:    body,
		gravity: gravity,
		rays:    rays,
		cfg:     cfg,
		limits:  cfg.thresholds(),
		upAxis:  rl.Vector3{Y: 1},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.status = Status{UpAxis: c.upAxis, ContactNormal: c.upAxis}
	return c, nil
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning and recomputes the derived thresholds. The
// current tuning is kept when cfg is invalid.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.limits = cfg.thresholds()
	return nil
}

// SetInputSpace changes the frame input is interpreted in. Nil selects the world axes.
func (c *Controller) SetInputSpace(space InputSpace) {
	c.space = space
}

// Reset forgets everything learned from previous steps while keeping the
// tuning, collaborators and event listeners. Use it after teleporting the body.
func (c *Controller) Reset() {
	c.pending = c.pending[:0]
	c.input = rl.Vector2{}
	c.desiredJump, c.desiredClimbing = false, false
	c.velocity = rl.Vector3{}
	c.classification = Airborne
	c.clearState()
	c.lastContactNormal, c.lastSteepNormal, c.lastClimbNormal = rl.Vector3{}, rl.Vector3{}, rl.Vector3{}
	c.stepsSinceLastGrounded, c.stepsSinceLastJump, c.jumpPhase = 0, 0, 0
	c.previousConnectedBody = nil
	c.connectionWorldPosition, c.connectionLocalPosition = rl.Vector3{}, rl.Vector3{}
	c.lastConnectionVelocity = rl.Vector3{}
	c.status = Status{UpAxis: c.upAxis, ContactNormal: c.upAxis}
}

// ApplyInput records the player's intent. Move is clamped to unit length,
// Jump is latched until the next step consumes it, Climb is held.
func (c *Controller) ApplyInput(in Input) {
	c.input = clampMagnitude2(in.Move, 1)
	c.desiredJump = c.desiredJump || in.Jump
	c.desiredClimbing = in.Climb
}

// PreventGroundSnap suppresses snapping for the next steps, e.g. when leaving
// the top of a ladder. It behaves like a jump without changing velocity.
func (c *Controller) PreventGroundSnap() {
	c.stepsSinceLastJump = -1
}

// Step advances the controller by one fixed step of dt seconds. Non-positive
// or non-finite dt is ignored.
func (c *Controller) Step(dt float32) {
	if dt <= 0 || !finite(dt) {
		return
	}
	gravity, up := c.gravity.Gravity(c.body.GetPosition())
	if usableNormal(up) {
		c.upAxis = normalizeOr(up, c.upAxis)
	}
	if !finiteVector(gravity) {
		gravity = rl.Vector3{}
	}
	c.basis = InputBasis(c.upAxis, c.space)

	c.reduceContacts()
	c.updateState(dt)
	c.adjustVelocity(c.basis, dt)
	if c.desiredJump {
		c.desiredJump = false
		c.jump(gravity)
	}
	c.applyGravity(gravity, dt)
	c.body.SetVelocity(c.velocity)

	c.captureStatus()
	c.clearState()
	c.status.HorizontalSpeed = c.horizontalSpeed()
}

func (c *Controller) captureStatus() {
	c.status = Status{
		Classification:     c.classification,
		Grounded:           c.onGround(),
		OnSteep:            c.onSteep(),
		Climbing:           c.climbing(),
		Velocity:           c.velocity,
		UpAxis:             c.upAxis,
		ContactNormal:      c.contactNormal,
		SteepNormal:        c.steepNormal,
		ConnectionVelocity: c.connectionVelocity,
		JumpPhase:          c.jumpPhase,
	}
}

// horizontalSpeed is the speed relative to the last connected body within the
// plane of the last contact. A character resting only against a steep surface
// measures in that surface's plane.
func (c *Controller) horizontalSpeed() float32 {
	plane := c.lastContactNormal
	if c.status.OnSteep && !c.status.Grounded {
		plane = c.lastSteepNormal
	}
	plane = normalizeOr(plane, c.upAxis)
	relative := rl.Vector3Subtract(c.velocity, c.lastConnectionVelocity)
	planar := rl.Vector3Subtract(relative, rl.Vector3Scale(plane, rl.Vector3DotProduct(relative, plane)))
	return rl.Vector3Length(planar)
}

// clearState resets the per-step accumulators after the velocity is committed.
func (c *Controller) clearState() {
	c.lastContactNormal = c.contactNormal
	c.lastSteepNormal = c.steepNormal
	c.lastConnectionVelocity = c.connectionVelocity
	c.groundContactCount, c.steepContactCount, c.climbContactCount = 0, 0, 0
	c.contactNormal, c.steepNormal, c.climbNormal = rl.Vector3{}, rl.Vector3{}, rl.Vector3{}
	c.connectionVelocity = rl.Vector3{}
	c.previousConnectedBody = c.connectedBody
	c.connectedBody = nil
}

func (c *Controller) Status() Status                     { return c.status }
func (c *Controller) Classification() Classification     { return c.status.Classification }
func (c *Controller) IsGrounded() bool                   { return c.status.Grounded }
func (c *Controller) IsOnSteep() bool                    { return c.status.OnSteep }
func (c *Controller) IsClimbing() bool                   { return c.status.Climbing }
func (c *Controller) HorizontalSpeed() float32           { return c.status.HorizontalSpeed }
func (c *Controller) Velocity() rl.Vector3               { return c.status.Velocity }
func (c *Controller) UpAxis() rl.Vector3                 { return c.status.UpAxis }
func (c *Controller) ContactNormal() rl.Vector3          { return c.status.ContactNormal }
func (c *Controller) ConnectionVelocity() rl.Vector3     { return c.status.ConnectionVelocity }
func (c *Controller) JumpPhase() int                     { return c.status.JumpPhase }
func (c *Controller) LastContactNormal() rl.Vector3      { return c.lastContactNormal }
func (c *Controller) LastSteepNormal() rl.Vector3        { return c.lastSteepNormal }
func (c *Controller) LastClimbNormal() rl.Vector3        { return c.lastClimbNormal }
func (c *Controller) LastConnectionVelocity() rl.Vector3 { return c.lastConnectionVelocity }
