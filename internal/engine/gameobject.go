package engine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Matrix returns the local transform, applied as scale, then rotation (X, Y, Z), then translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, t.RotationMatrix()), rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z))
}

// RotationMatrix returns the rotation part only, same convention as the renderer: X then Y then Z.
func (t Transform) RotationMatrix() rl.Matrix {
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

type GameObject struct {
	Name       string
	Tags       []string
	Layer      int
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// Start awakes every component, then starts them, then starts the children.
// The first Awake error aborts the start and leaves the object un-started.
func (g *GameObject) Start() error {
	if !g.started {
		for _, c := range g.components {
			if a, ok := c.(Awaker); ok {
				if err := a.Awake(); err != nil {
					return fmt.Errorf("failed to awake %s: %w", g.Name, err)
				}
			}
		}
		for _, c := range g.components {
			c.Start()
		}
		g.started = true
	}
	for _, child := range g.Children {
		if err := child.Start(); err != nil {
			return err
		}
	}
	return nil
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) FixedUpdate(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.FixedUpdate(deltaTime)
	}
	for _, child := range g.Children {
		child.FixedUpdate(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	child.setScene(g.Scene)
	g.Children = append(g.Children, child)
}

func (g *GameObject) setScene(s *Scene) {
	g.Scene = s
	for _, child := range g.Children {
		child.setScene(s)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix composes the local transform with every parent's.
func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return rl.Vector3Transform(g.Transform.Position, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// TransformPoint maps a point from this object's local space to world space.
func (g *GameObject) TransformPoint(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(local, g.WorldMatrix())
}

// InverseTransformPoint maps a world-space point into this object's local space.
func (g *GameObject) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(world, rl.MatrixInvert(g.WorldMatrix()))
}
