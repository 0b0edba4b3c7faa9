package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"charmotion/internal/engine"
)

const testDT = float32(0.02)

type fakeWorld struct {
	gravity   rl.Vector3
	hit       engine.RaycastResult
	ok        bool
	rayCalls  int
	lifecycle engine.Lifecycle
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (engine.RaycastResult, bool) {
	w.rayCalls++
	return w.hit, w.ok
}

func (w *fakeWorld) Gravity(rl.Vector3) (rl.Vector3, rl.Vector3) {
	return w.gravity, rl.Vector3{Y: 1}
}

func (w *fakeWorld) Lifecycle() *engine.Lifecycle {
	return &w.lifecycle
}

func newTestScene() (*engine.Scene, *fakeWorld) {
	world := &fakeWorld{gravity: rl.Vector3{Y: -9.81}}
	scene := engine.NewScene("test")
	scene.World = world
	return scene, world
}

func newTestCharacter(t *testing.T, scene *engine.Scene) (*engine.GameObject, *CharacterController, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	g := engine.NewGameObject("Player")
	g.Layer = engine.LayerAgent
	g.Transform.Position = rl.Vector3{Y: 1}
	cc := NewCharacterController()
	cc.Logger = logger
	g.AddComponent(NewRigidbody())
	g.AddComponent(NewSphereCollider(0.5))
	g.AddComponent(cc)
	scene.AddGameObject(g)
	require.NoError(t, g.Start())
	return g, cc, hook
}

func floorCollision(floor *engine.GameObject) engine.Collision {
	return engine.Collision{
		Other:    floor,
		Contacts: []engine.ContactPoint{{Normal: rl.Vector3{Y: 1}}},
	}
}

func vectorInDelta(t *testing.T, expected, actual rl.Vector3, delta float64) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta)
	require.InDelta(t, expected.Y, actual.Y, delta)
	require.InDelta(t, expected.Z, actual.Z, delta)
}
