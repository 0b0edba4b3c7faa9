package physics

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"charmotion/internal/components"
	"charmotion/internal/engine"
)

// DefaultGravity is used when the world is created without a gravity source.
var DefaultGravity = rl.Vector3{Y: -9.81}

// GravitySource samples the acceleration at a world position.
type GravitySource interface {
	Gravity(position rl.Vector3) (gravity, up rl.Vector3)
}

type uniformGravity rl.Vector3

func (u uniformGravity) Gravity(rl.Vector3) (rl.Vector3, rl.Vector3) {
	g := rl.Vector3(u)
	return g, rl.Vector3Normalize(rl.Vector3Negate(g))
}

// collisionEvent is one side of a touching pair, delivered after resolution.
type collisionEvent struct {
	object    *engine.GameObject
	collision engine.Collision
}

type triggerEvent struct {
	a, b *engine.GameObject
}

type PhysicsWorld struct {
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (moving platforms)
	Statics    []*engine.GameObject // no rigidbody (walls, floor, stairs, triggers)

	gravity GravitySource
	log     logrus.FieldLogger

	collisions []collisionEvent
	triggers   []triggerEvent
}

func NewPhysicsWorld(gravity GravitySource, log logrus.FieldLogger) *PhysicsWorld {
	if gravity == nil {
		gravity = uniformGravity(DefaultGravity)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PhysicsWorld{
		Objects:    make([]*engine.GameObject, 0),
		Kinematics: make([]*engine.GameObject, 0),
		Statics:    make([]*engine.GameObject, 0),
		gravity:    gravity,
		log:        log.WithField("system", "physics"),
	}
}

// AddObject registers g and every descendant that carries a collider or a rigidbody.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	_, hasShape := shapeOf(g)
	kind := ""
	switch {
	case rb == nil && !hasShape:
	case rb == nil:
		p.Statics = append(p.Statics, g)
		kind = "static"
	case rb.IsKinematic:
		p.Kinematics = append(p.Kinematics, g)
		kind = "kinematic"
	default:
		p.Objects = append(p.Objects, g)
		kind = "dynamic"
	}
	if kind != "" {
		p.log.WithFields(logrus.Fields{"object": g.Name, "kind": kind}).Debug("object registered")
	}
	for _, child := range g.Children {
		p.AddObject(child)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Objects = slices.DeleteFunc(p.Objects, func(o *engine.GameObject) bool { return o == g })
	p.Kinematics = slices.DeleteFunc(p.Kinematics, func(o *engine.GameObject) bool { return o == g })
	p.Statics = slices.DeleteFunc(p.Statics, func(o *engine.GameObject) bool { return o == g })
}

// Clear forgets every registered object.
func (p *PhysicsWorld) Clear() {
	p.Objects = p.Objects[:0]
	p.Kinematics = p.Kinematics[:0]
	p.Statics = p.Statics[:0]
}

// DynamicObjectCount returns the number of dynamic physics objects
func (p *PhysicsWorld) DynamicObjectCount() int {
	return len(p.Objects)
}

// Step advances the simulation by one fixed step: integrate kinematic then
// dynamic bodies, resolve overlaps, then deliver contact and trigger callbacks.
func (p *PhysicsWorld) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	p.collisions = p.collisions[:0]
	p.triggers = p.triggers[:0]
	p.reclassify()

	for _, obj := range p.Kinematics {
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil && obj.Active {
			integrate(obj, rb, deltaTime)
		}
	}

	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !obj.Active || rb.IsSleeping {
			continue
		}
		if rb.UseGravity {
			g, _ := p.gravity.Gravity(obj.WorldPosition())
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(g, deltaTime))
		}
		integrate(obj, rb, deltaTime)
	}

	p.detect()

	for _, obj := range p.Objects {
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
			rb.TrySleep(deltaTime)
		}
	}

	p.dispatch()
}

// reclassify moves bodies whose kinematic flag changed since registration.
func (p *PhysicsWorld) reclassify() {
	var moved []*engine.GameObject
	p.Objects = slices.DeleteFunc(p.Objects, func(o *engine.GameObject) bool {
		rb := engine.GetComponent[*components.Rigidbody](o)
		if rb != nil && rb.IsKinematic {
			moved = append(moved, o)
			return true
		}
		return false
	})
	var freed []*engine.GameObject
	p.Kinematics = slices.DeleteFunc(p.Kinematics, func(o *engine.GameObject) bool {
		rb := engine.GetComponent[*components.Rigidbody](o)
		if rb != nil && !rb.IsKinematic {
			freed = append(freed, o)
			return true
		}
		return false
	})
	p.Kinematics = append(p.Kinematics, moved...)
	p.Objects = append(p.Objects, freed...)
}

func integrate(obj *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
	obj.Transform.Rotation = rl.Vector3Add(obj.Transform.Rotation, rl.Vector3Scale(rb.AngularVelocity, deltaTime))
}

// detect tests every dynamic body against everything registered after it in
// the dynamic list, every kinematic body and every static.
func (p *PhysicsWorld) detect() {
	for i, a := range p.Objects {
		for _, b := range p.Objects[i+1:] {
			p.testPair(a, b)
		}
		for _, b := range p.Kinematics {
			p.testPair(a, b)
		}
		for _, b := range p.Statics {
			p.testPair(a, b)
		}
	}
	// Kinematic bodies only interact with triggers.
	for i, a := range p.Kinematics {
		for _, b := range p.Kinematics[i+1:] {
			p.testTrigger(a, b)
		}
		for _, b := range p.Statics {
			p.testTrigger(a, b)
		}
	}
}

func (p *PhysicsWorld) testTrigger(a, b *engine.GameObject) {
	if !a.Active || !b.Active {
		return
	}
	sa, okA := shapeOf(a)
	sb, okB := shapeOf(b)
	if !okA || !okB || (!sa.trigger && !sb.trigger) {
		return
	}
	if _, hit := collide(sa, sb); hit {
		p.triggers = append(p.triggers, triggerEvent{a: a, b: b})
	}
}

// testPair handles a pair whose first object is a dynamic body.
func (p *PhysicsWorld) testPair(a, b *engine.GameObject) {
	if !a.Active || !b.Active {
		return
	}
	sa, okA := shapeOf(a)
	sb, okB := shapeOf(b)
	if !okA || !okB {
		return
	}
	if sa.trigger || sb.trigger {
		if _, hit := collide(sa, sb); hit {
			p.triggers = append(p.triggers, triggerEvent{a: a, b: b})
		}
		return
	}

	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	dynB := rbB != nil && !rbB.IsKinematic

	// Keep the awake body first so a sleeping one can act as a support.
	if rbA.IsSleeping {
		if !dynB || rbB.IsSleeping {
			return
		}
		a, b, sa, sb, rbA, rbB = b, a, sb, sa, rbB, rbA
	}

	m, hit := collide(sa, sb)
	if !hit {
		return
	}
	p.resolve(a, b, rbA, rbB, m)
}

// resolve pushes a (and b when it is a movable dynamic body) apart and
// removes the approaching part of their relative velocity at the contact.
func (p *PhysicsWorld) resolve(a, b *engine.GameObject, rbA, rbB *components.Rigidbody, m manifold) {
	p.wakeOnImpact(rbA, rbB)

	invA := 1 / rbA.Mass
	var invB float32
	movableB := rbB != nil && !rbB.IsKinematic && !rbB.IsSleeping
	if movableB {
		invB = 1 / rbB.Mass
	}
	invTotal := invA + invB

	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(m.normal, m.depth*invA/invTotal))
	if movableB {
		b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(m.normal, m.depth*invB/invTotal))
	}

	var otherVel rl.Vector3
	bounciness := rbA.Bounciness
	friction := rbA.Friction
	if rbB != nil {
		otherVel = rbB.PointVelocity(m.point)
		bounciness = (rbA.Bounciness + rbB.Bounciness) / 2
		friction = (rbA.Friction + rbB.Friction) / 2
	}

	relVel := rl.Vector3Subtract(rbA.Velocity, otherVel)
	velAlongNormal := rl.Vector3DotProduct(relVel, m.normal)
	if velAlongNormal < 0 {
		j := -(1 + bounciness) * velAlongNormal / invTotal
		impulse := rl.Vector3Scale(m.normal, j)
		tangent := rl.Vector3Subtract(relVel, rl.Vector3Scale(m.normal, velAlongNormal))
		drag := rl.Vector3Scale(tangent, friction/invTotal)

		rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(rl.Vector3Subtract(impulse, drag), invA))
		if movableB {
			rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(rl.Vector3Subtract(impulse, drag), invB))
		}
	}

	p.collisions = append(p.collisions,
		collisionEvent{object: a, collision: engine.Collision{
			Other:    b,
			Contacts: []engine.ContactPoint{{Point: m.point, Normal: m.normal}},
		}},
		collisionEvent{object: b, collision: engine.Collision{
			Other:    a,
			Contacts: []engine.ContactPoint{{Point: m.point, Normal: rl.Vector3Negate(m.normal)}},
		}},
	)
}

// wakeOnImpact wakes a sleeping partner only for significant relative
// velocity, so settled stacks are not disturbed by micro-contacts.
func (p *PhysicsWorld) wakeOnImpact(rbA, rbB *components.Rigidbody) {
	if rbB == nil || !rbB.IsSleeping {
		return
	}
	relSpeed := rl.Vector3Length(rl.Vector3Subtract(rbA.Velocity, rbB.Velocity))
	if relSpeed > components.SleepVelocityThreshold*2 {
		rbB.Wake()
	}
}

// dispatch delivers the step's contacts and trigger overlaps to the handlers
// of both objects of each pair.
func (p *PhysicsWorld) dispatch() {
	for _, e := range p.collisions {
		for _, comp := range e.object.Components() {
			if handler, ok := comp.(engine.ContactHandler); ok {
				handler.OnCollisionStay(e.collision)
			}
		}
	}
	for _, t := range p.triggers {
		notifyTrigger(t.a, t.b)
		notifyTrigger(t.b, t.a)
	}
}

func notifyTrigger(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerStay(other)
		}
	}
}
