package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
	"charmotion/internal/gravity"
)

var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrInvalidScene     = errors.New("invalid scene")
)

// --- JSON types ---

type SceneFile struct {
	Name    string       `json:"name"`
	Gravity []GravityDef `json:"gravity,omitempty"`
	Objects []ObjectDef  `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Layer      int              `json:"layer,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components,omitempty"`
	Children   []ObjectDef      `json:"children,omitempty"`
}

// GravityDef describes one gravity source. Type is "uniform" or "sphere".
type GravityDef struct {
	Type         string     `json:"type"`
	Vector       [3]float32 `json:"vector,omitempty"`
	Center       [3]float32 `json:"center,omitempty"`
	Strength     float32    `json:"strength,omitempty"`
	Radius       float32    `json:"radius,omitempty"`
	Falloff      float32    `json:"falloff,omitempty"`
	InnerRadius  float32    `json:"innerRadius,omitempty"`
	InnerFalloff float32    `json:"innerFalloff,omitempty"`
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// ReadScene loads and parses a scene file from fsys.
func ReadScene(fsys fs.FS, name string) (*SceneFile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", name, err)
	}
	return sf, nil
}

func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// Build instantiates every object of the file through the component registry.
func (sf *SceneFile) Build() ([]*engine.GameObject, error) {
	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := def.build()
		if err != nil {
			return nil, err
		}
		objects = append(objects, g)
	}
	return objects, nil
}

func (def ObjectDef) build() (*engine.GameObject, error) {
	if def.Layer < 0 || def.Layer >= engine.MaxLayers {
		return nil, fmt.Errorf("%w: object %s has layer %d", ErrInvalidScene, def.Name, def.Layer)
	}
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Layer = def.Layer
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec(def.Scale)
	}

	for _, raw := range def.Components {
		typeName, _ := raw["type"].(string)
		props := maps.Clone(raw)
		delete(props, "type")

		comp, found, err := engine.CreateComponent(typeName, props)
		if !found {
			return nil, fmt.Errorf("%w %q on %s", ErrUnknownComponent, typeName, def.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create %s on %s: %w", typeName, def.Name, err)
		}
		g.AddComponent(comp)
	}

	for _, childDef := range def.Children {
		child, err := childDef.build()
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

// GravityField builds the field described by the file. A file without
// sources gets the default uniform pull.
func (sf *SceneFile) GravityField() (*gravity.Field, error) {
	if len(sf.Gravity) == 0 {
		return gravity.NewUniformField(gravity.DefaultStrength), nil
	}
	field := gravity.NewField()
	for i, def := range sf.Gravity {
		switch def.Type {
		case "uniform":
			field.Add(gravity.Uniform{Vector: vec(def.Vector)})
		case "sphere":
			s := &gravity.Sphere{
				Center:             vec(def.Center),
				Strength:           def.Strength,
				OuterRadius:        def.Radius,
				OuterFalloffRadius: def.Radius + def.Falloff,
				InnerRadius:        def.InnerRadius,
				InnerFalloffRadius: def.InnerFalloff,
			}
			s.Sanitize()
			field.Add(s)
		default:
			return nil, fmt.Errorf("%w: gravity source %d has type %q", ErrInvalidScene, i, def.Type)
		}
	}
	return field, nil
}

// --- Saving ---

// Snapshot describes the current state of objects as a scene file.
func Snapshot(name string, objects []*engine.GameObject, field *gravity.Field) *SceneFile {
	sf := &SceneFile{Name: name}
	for _, g := range objects {
		sf.Objects = append(sf.Objects, snapshotObject(g))
	}
	if field != nil {
		for _, src := range field.Sources() {
			switch s := src.(type) {
			case gravity.Uniform:
				sf.Gravity = append(sf.Gravity, GravityDef{Type: "uniform", Vector: arr(s.Vector)})
			case *gravity.Sphere:
				sf.Gravity = append(sf.Gravity, GravityDef{
					Type:         "sphere",
					Center:       arr(s.Center),
					Strength:     s.Strength,
					Radius:       s.OuterRadius,
					Falloff:      s.OuterFalloffRadius - s.OuterRadius,
					InnerRadius:  s.InnerRadius,
					InnerFalloff: s.InnerFalloffRadius,
				})
			}
		}
	}
	return sf
}

func snapshotObject(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Layer:    g.Layer,
		Position: arr(g.Transform.Position),
		Rotation: arr(g.Transform.Rotation),
		Scale:    arr(g.Transform.Scale),
	}
	for _, c := range g.Components() {
		name, props, ok := engine.SerializeComponent(c)
		if !ok {
			continue
		}
		raw := maps.Clone(props)
		if raw == nil {
			raw = make(map[string]any)
		}
		raw["type"] = name
		def.Components = append(def.Components, raw)
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, snapshotObject(child))
	}
	return def
}

func (sf *SceneFile) Save(path string) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
