package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

func init() {
	engine.RegisterComponent("SphereCollider", sphereColliderFactory, sphereColliderSerializer)
}

type SphereCollider struct {
	engine.BaseComponent
	Radius    float32
	Offset    rl.Vector3
	IsTrigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	return s.GetGameObject().TransformPoint(s.Offset)
}

// GetWorldRadius scales the radius by the largest axis of the world scale.
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	return s.Radius * math32.Max(absf(scale.X), math32.Max(absf(scale.Y), absf(scale.Z)))
}

func sphereColliderFactory(props map[string]any) (engine.Component, error) {
	offset := engine.Vector3Prop(props, "offset", [3]float32{})
	return &SphereCollider{
		Radius:    engine.Float32Prop(props, "radius", 0.5),
		Offset:    rl.NewVector3(offset[0], offset[1], offset[2]),
		IsTrigger: engine.BoolProp(props, "isTrigger", false),
	}, nil
}

func sphereColliderSerializer(c engine.Component) map[string]any {
	s, ok := c.(*SphereCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":    s.Radius,
		"offset":    []float32{s.Offset.X, s.Offset.Y, s.Offset.Z},
		"isTrigger": s.IsTrigger,
	}
}
