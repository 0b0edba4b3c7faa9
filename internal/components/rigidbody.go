package components

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
	"charmotion/internal/locomotion"
)

func init() {
	engine.RegisterComponent("Rigidbody", rigidbodyFactory, rigidbodySerializer)
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepAngularThreshold  = 1.0 // deg/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

var (
	_ locomotion.Body     = (*Rigidbody)(nil)
	_ locomotion.Platform = (*Rigidbody)(nil)
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // 0 = ice, 1 = stops immediately
	UseGravity      bool
	IsKinematic     bool // moved by its own velocity, never pushed by physics

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		Bounciness: 0.2,
		Friction:   0.1,
		UseGravity: true,
		CanSleep:   true,
	}
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to sleep after it stayed slow for SleepTimeThreshold.
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping || r.IsKinematic {
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	angSpeed := rl.Vector3Length(r.AngularVelocity)
	if speed >= SleepVelocityThreshold || angSpeed >= SleepAngularThreshold {
		r.sleepTimer = 0
		return
	}

	r.sleepTimer += deltaTime
	if r.sleepTimer >= SleepTimeThreshold {
		r.IsSleeping = true
		r.Velocity = rl.Vector3{}
		r.AngularVelocity = rl.Vector3{}
	}
}

func (r *Rigidbody) GetPosition() rl.Vector3 {
	g := r.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}

func (r *Rigidbody) GetVelocity() rl.Vector3 {
	return r.Velocity
}

// SetVelocity replaces the linear velocity and wakes the body when it moves.
func (r *Rigidbody) SetVelocity(v rl.Vector3) {
	r.Velocity = v
	if rl.Vector3LengthSqr(v) > 0 {
		r.Wake()
	}
}

func (r *Rigidbody) GetMass() float32 {
	return r.Mass
}

func (r *Rigidbody) Kinematic() bool {
	return r.IsKinematic
}

func (r *Rigidbody) TransformPoint(local rl.Vector3) rl.Vector3 {
	g := r.GetGameObject()
	if g == nil {
		return local
	}
	return g.TransformPoint(local)
}

func (r *Rigidbody) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	g := r.GetGameObject()
	if g == nil {
		return world
	}
	return g.InverseTransformPoint(world)
}

// PointVelocity is the velocity of the body's material at a world point,
// including the contribution of its spin.
func (r *Rigidbody) PointVelocity(point rl.Vector3) rl.Vector3 {
	omega := rl.Vector3Scale(r.AngularVelocity, rl.Deg2rad)
	arm := rl.Vector3Subtract(point, r.GetPosition())
	return rl.Vector3Add(r.Velocity, rl.Vector3CrossProduct(omega, arm))
}

func rigidbodyFactory(props map[string]any) (engine.Component, error) {
	rb := NewRigidbody()
	rb.Mass = engine.Float32Prop(props, "mass", rb.Mass)
	rb.Bounciness = engine.Float32Prop(props, "bounciness", rb.Bounciness)
	rb.Friction = engine.Float32Prop(props, "friction", rb.Friction)
	rb.UseGravity = engine.BoolProp(props, "useGravity", rb.UseGravity)
	rb.IsKinematic = engine.BoolProp(props, "isKinematic", rb.IsKinematic)
	rb.CanSleep = engine.BoolProp(props, "canSleep", rb.CanSleep)
	if rb.Mass <= 0 {
		return nil, fmt.Errorf("rigidbody mass must be positive, got %v", rb.Mass)
	}
	return rb, nil
}

func rigidbodySerializer(c engine.Component) map[string]any {
	rb, ok := c.(*Rigidbody)
	if !ok {
		return nil
	}
	return map[string]any{
		"mass":        rb.Mass,
		"bounciness":  rb.Bounciness,
		"friction":    rb.Friction,
		"useGravity":  rb.UseGravity,
		"isKinematic": rb.IsKinematic,
		"canSleep":    rb.CanSleep,
	}
}
