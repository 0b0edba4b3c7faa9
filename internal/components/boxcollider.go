package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

func init() {
	engine.RegisterComponent("BoxCollider", boxColliderFactory, boxColliderSerializer)
}

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3 // local space
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return b.GetGameObject().TransformPoint(b.Offset)
}

// GetWorldSize returns the size scaled by the object's world scale, always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X * scale.X),
		Y: absf(b.Size.Y * scale.Y),
		Z: absf(b.Size.Z * scale.Z),
	}
}

// Axes returns the box's local X, Y and Z axes in world space.
func (b *BoxCollider) Axes() [3]rl.Vector3 {
	rot := engine.Transform{Rotation: b.GetGameObject().WorldRotation()}.RotationMatrix()
	return [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
	}
}

func boxColliderFactory(props map[string]any) (engine.Component, error) {
	size := engine.Vector3Prop(props, "size", [3]float32{1, 1, 1})
	offset := engine.Vector3Prop(props, "offset", [3]float32{})
	return &BoxCollider{
		Size:      rl.NewVector3(size[0], size[1], size[2]),
		Offset:    rl.NewVector3(offset[0], offset[1], offset[2]),
		IsTrigger: engine.BoolProp(props, "isTrigger", false),
	}, nil
}

func boxColliderSerializer(c engine.Component) map[string]any {
	b, ok := c.(*BoxCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"size":      []float32{b.Size.X, b.Size.Y, b.Size.Z},
		"offset":    []float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
		"isTrigger": b.IsTrigger,
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
