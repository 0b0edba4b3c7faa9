package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

func init() {
	engine.RegisterComponent("LaunchPad", launchPadFactory, launchPadSerializer)
}

// LaunchPad is a trigger volume that throws characters along its local up
// axis. Ground snapping is suppressed so the launch is not pulled back down.
type LaunchPad struct {
	engine.BaseComponent
	Speed float32
}

func (l *LaunchPad) OnTriggerStay(other *engine.GameObject) {
	cc := engine.GetComponent[*CharacterController](other)
	if cc == nil || cc.Body() == nil {
		return
	}
	rot := engine.Transform{Rotation: l.GetGameObject().WorldRotation()}.RotationMatrix()
	up := rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Y: 1}, rot))

	body := cc.Body()
	along := rl.Vector3DotProduct(body.Velocity, up)
	if along >= l.Speed {
		return
	}
	body.SetVelocity(rl.Vector3Add(body.Velocity, rl.Vector3Scale(up, l.Speed-along)))
	cc.PreventGroundSnap()
}

func launchPadFactory(props map[string]any) (engine.Component, error) {
	return &LaunchPad{Speed: engine.Float32Prop(props, "speed", 12)}, nil
}

func launchPadSerializer(c engine.Component) map[string]any {
	l, ok := c.(*LaunchPad)
	if !ok {
		return nil
	}
	return map[string]any{"speed": l.Speed}
}
