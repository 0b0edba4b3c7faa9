package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"charmotion/internal/engine"
	"charmotion/internal/locomotion"
)

func TestLaunchPadThrowsCharacters(t *testing.T) {
	tests := []struct {
		name     string
		rotation rl.Vector3
		start    rl.Vector3
		want     rl.Vector3
	}{
		{"upright pad", rl.Vector3{}, rl.Vector3{X: 1, Y: -2}, rl.Vector3{X: 1, Y: 12}},
		{"already faster", rl.Vector3{}, rl.Vector3{Y: 20}, rl.Vector3{Y: 20}},
		{"pad on a wall", rl.Vector3{Z: 90}, rl.Vector3{X: 1, Y: -2}, rl.Vector3{X: -12, Y: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, _ := newTestScene()
			g, _, _ := newTestCharacter(t, scene)
			rb := engine.GetComponent[*Rigidbody](g)
			rb.Velocity = tt.start

			pad := engine.NewGameObject("Pad")
			pad.Transform.Rotation = tt.rotation
			launch := &LaunchPad{Speed: 12}
			pad.AddComponent(launch)

			launch.OnTriggerStay(g)
			vectorInDelta(t, tt.want, rb.Velocity, 1e-4)
		})
	}
}

func TestLaunchPadSuppressesGroundSnap(t *testing.T) {
	scene, world := newTestScene()
	g, cc, _ := newTestCharacter(t, scene)
	floor := engine.NewGameObject("Floor")
	world.hit = engine.RaycastResult{GameObject: floor, Normal: rl.Vector3{Y: 1}, Distance: 0.5}
	world.ok = true

	for i := 0; i < 4; i++ {
		cc.OnCollisionStay(floorCollision(floor))
		g.FixedUpdate(testDT)
	}
	pad := engine.NewGameObject("Pad")
	launch := &LaunchPad{Speed: 12}
	pad.AddComponent(launch)
	launch.OnTriggerStay(g)

	g.FixedUpdate(testDT)
	assert.Equal(t, locomotion.Airborne, cc.Controller().Classification())
	assert.Zero(t, world.rayCalls)
}

func TestLaunchPadIgnoresOtherObjects(t *testing.T) {
	crate := engine.NewGameObject("Crate")
	rb := NewRigidbody()
	crate.AddComponent(rb)

	pad := engine.NewGameObject("Pad")
	launch := &LaunchPad{Speed: 12}
	pad.AddComponent(launch)
	launch.OnTriggerStay(crate)

	assert.Equal(t, rl.Vector3{}, rb.Velocity)
}
