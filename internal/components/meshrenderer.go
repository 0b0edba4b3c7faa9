package components

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

func init() {
	engine.RegisterComponent("MeshRenderer", meshRendererFactory, meshRendererSerializer)
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[string]MeshType{"cube": MeshCube, "sphere": MeshSphere, "plane": MeshPlane}

func (m MeshType) String() string {
	for name, t := range meshNames {
		if t == m {
			return name
		}
	}
	return "unknown"
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3 // sphere uses X as radius
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh with the object's full world transform. Must be
// called between BeginMode3D and EndMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3{}, m.Size, m.Color)
		rl.DrawCubeWiresV(rl.Vector3{}, m.Size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
	rl.PopMatrix()
}

// Bounds is the radius of a sphere around the object's origin enclosing the
// unscaled mesh.
func (m *MeshRenderer) Bounds() float32 {
	switch m.MeshType {
	case MeshSphere:
		return m.Size.X
	case MeshPlane:
		return rl.Vector2Length(rl.Vector2{X: m.Size.X, Y: m.Size.Z}) / 2
	default:
		return rl.Vector3Length(m.Size) / 2
	}
}

func meshRendererFactory(props map[string]any) (engine.Component, error) {
	mesh := MeshCube
	if name, ok := props["mesh"].(string); ok {
		t, known := meshNames[name]
		if !known {
			return nil, fmt.Errorf("unknown mesh %q", name)
		}
		mesh = t
	}
	size := engine.Vector3Prop(props, "size", [3]float32{1, 1, 1})
	return &MeshRenderer{
		MeshType: mesh,
		Color:    colorProp(props, "color", rl.LightGray),
		Size:     rl.NewVector3(size[0], size[1], size[2]),
	}, nil
}

func meshRendererSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MeshRenderer)
	if !ok {
		return nil
	}
	return map[string]any{
		"mesh":  m.MeshType.String(),
		"color": []int{int(m.Color.R), int(m.Color.G), int(m.Color.B), int(m.Color.A)},
		"size":  []float32{m.Size.X, m.Size.Y, m.Size.Z},
	}
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// colorProp reads a color name or an [r, g, b] / [r, g, b, a] prop.
func colorProp(props map[string]any, key string, fallback rl.Color) rl.Color {
	if name, ok := props[key].(string); ok {
		if c, known := colorByName[name]; known {
			return c
		}
		return fallback
	}
	raw, ok := props[key].([]any)
	if !ok || (len(raw) != 3 && len(raw) != 4) {
		return fallback
	}
	channels := [4]uint8{0, 0, 0, 255}
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok || f < 0 || f > 255 {
			return fallback
		}
		channels[i] = uint8(f)
	}
	return rl.NewColor(channels[0], channels[1], channels[2], channels[3])
}
