package components

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

func init() {
	engine.RegisterComponent("MovingPlatform", movingPlatformFactory, movingPlatformSerializer)
}

// MovingPlatform drives a kinematic Rigidbody back and forth between its start
// position and Start+Travel, optionally spinning about its local up axis. It
// only writes velocities; the physics world moves the body.
type MovingPlatform struct {
	engine.BaseComponent
	Travel    rl.Vector3 // offset of the far end from the start position
	Period    float32    // seconds for a full round trip, 0 holds still
	Phase     float32    // radians
	SpinSpeed float32    // degrees per second

	body   *Rigidbody
	origin rl.Vector3
	time   float32
}

func (m *MovingPlatform) Awake() error {
	g := m.GetGameObject()
	m.body = engine.GetComponent[*Rigidbody](g)
	if m.body == nil {
		return fmt.Errorf("moving platform %s needs a Rigidbody", g.Name)
	}
	m.body.IsKinematic = true
	m.body.UseGravity = false
	m.body.CanSleep = false
	return nil
}

func (m *MovingPlatform) Start() {
	m.origin = m.GetGameObject().Transform.Position
	m.time = 0
}

// PositionAt is where the platform should be after t seconds.
func (m *MovingPlatform) PositionAt(t float32) rl.Vector3 {
	if m.Period <= 0 {
		return m.origin
	}
	s := (1 - math32.Cos(2*math32.Pi*t/m.Period+m.Phase)) / 2
	return rl.Vector3Add(m.origin, rl.Vector3Scale(m.Travel, s))
}

// Rewind restarts the cycle and stops the body until the next step.
func (m *MovingPlatform) Rewind() {
	m.time = 0
	if m.body != nil {
		m.body.Velocity = rl.Vector3{}
		m.body.AngularVelocity = rl.Vector3{}
	}
}

func (m *MovingPlatform) FixedUpdate(deltaTime float32) {
	if m.body == nil || deltaTime <= 0 {
		return
	}
	m.time += deltaTime
	target := m.PositionAt(m.time)
	current := m.GetGameObject().Transform.Position
	m.body.Velocity = rl.Vector3Scale(rl.Vector3Subtract(target, current), 1/deltaTime)
	m.body.AngularVelocity = rl.Vector3{Y: m.SpinSpeed}
}

func movingPlatformFactory(props map[string]any) (engine.Component, error) {
	travel := engine.Vector3Prop(props, "travel", [3]float32{})
	return &MovingPlatform{
		Travel:    rl.NewVector3(travel[0], travel[1], travel[2]),
		Period:    engine.Float32Prop(props, "period", 4),
		Phase:     engine.Float32Prop(props, "phase", 0),
		SpinSpeed: engine.Float32Prop(props, "spinSpeed", 0),
	}, nil
}

func movingPlatformSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MovingPlatform)
	if !ok {
		return nil
	}
	return map[string]any{
		"travel":    []float32{m.Travel.X, m.Travel.Y, m.Travel.Z},
		"period":    m.Period,
		"phase":     m.Phase,
		"spinSpeed": m.SpinSpeed,
	}
}
