package locomotion

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

// Body is the simulated rigid body the controller drives. Velocity is read
// once and written once per step.
type Body interface {
	GetPosition() rl.Vector3
	GetVelocity() rl.Vector3
	SetVelocity(v rl.Vector3)
	GetMass() float32
}

// Platform is another simulated body the character may stand on. The
// controller never owns it.
type Platform interface {
	GetMass() float32
	Kinematic() bool
	TransformPoint(local rl.Vector3) rl.Vector3
	InverseTransformPoint(world rl.Vector3) rl.Vector3
}

// Contact is one contact point of a collision manifold. Body is nil for static geometry.
type Contact struct {
	Normal rl.Vector3
	Layer  int
	Body   Platform
}

// RayHit is the result of a successful ground probe.
type RayHit struct {
	Normal   rl.Vector3
	Distance float32
	Body     Platform
	Layer    int
}

// RayCaster answers the ground-snap probe.
type RayCaster interface {
	Cast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (RayHit, bool)
}

// GravityField gives the gravity vector and the up axis at a position. Up is
// the negated, normalized gravity.
type GravityField interface {
	Gravity(position rl.Vector3) (gravity, up rl.Vector3)
}

// InputSpace is the reference frame 2-D input is expressed in, usually the camera.
type InputSpace interface {
	Right() rl.Vector3
	Forward() rl.Vector3
}

// Input is the intent sampled from the player since the last step.
type Input struct {
	Move  rl.Vector2 // X right, Y forward
	Jump  bool
	Climb bool
}
