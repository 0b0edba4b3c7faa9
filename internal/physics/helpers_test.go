package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"charmotion/internal/components"
	"charmotion/internal/engine"
)

// recorder captures every callback delivered to its object.
type recorder struct {
	engine.BaseComponent
	collisions []engine.Collision
	triggers   []*engine.GameObject
}

func (r *recorder) OnCollisionStay(c engine.Collision) {
	r.collisions = append(r.collisions, c)
}

func (r *recorder) OnTriggerStay(other *engine.GameObject) {
	r.triggers = append(r.triggers, other)
}

func attachRecorder(g *engine.GameObject) *recorder {
	r := &recorder{}
	g.AddComponent(r)
	return r
}

func newTestWorld() *PhysicsWorld {
	logger, _ := test.NewNullLogger()
	return NewPhysicsWorld(nil, logger)
}

func newBox(name string, pos, size rl.Vector3) (*engine.GameObject, *components.BoxCollider) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	box := components.NewBoxCollider(size)
	g.AddComponent(box)
	return g, box
}

func newFloor() *engine.GameObject {
	floor, _ := newBox("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20})
	return floor
}

// newBall builds a dynamic sphere with no bounce or friction.
func newBall(name string, pos rl.Vector3, radius float32) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	rb := components.NewRigidbody()
	rb.Bounciness = 0
	rb.Friction = 0
	g.AddComponent(rb)
	g.AddComponent(components.NewSphereCollider(radius))
	return g, rb
}

func vectorInDelta(t *testing.T, expected, actual rl.Vector3, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}
