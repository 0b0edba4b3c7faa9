// Package world ties a loaded scene to its physics world and gravity field and
// serves the world-level queries components ask for.
package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"charmotion/internal/components"
	"charmotion/internal/engine"
	"charmotion/internal/gravity"
	"charmotion/internal/locomotion"
	"charmotion/internal/physics"
)

var _ engine.WorldAccess = (*World)(nil)

// rewinder is implemented by components that keep their own clock and must
// restart it when the scene is reloaded.
type rewinder interface {
	Rewind()
}

type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
	Field   *gravity.Field

	log       logrus.FieldLogger
	base      locomotion.Config
	lifecycle engine.Lifecycle
	initial   map[*engine.GameObject]engine.Transform
}

// New creates an empty world. base is the locomotion configuration every
// character starts from before its own overrides.
func New(base locomotion.Config, log logrus.FieldLogger) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	w := &World{
		base:    base,
		log:     log,
		initial: make(map[*engine.GameObject]engine.Transform),
	}
	w.Scene = engine.NewScene("Empty")
	w.Scene.World = w
	w.Field = gravity.NewUniformField(gravity.DefaultStrength)
	w.Physics = physics.NewPhysicsWorld(w.Field, log)
	return w
}

// Load replaces the current scene with the one described by sf.
func (w *World) Load(sf *SceneFile) error {
	field, err := sf.GravityField()
	if err != nil {
		return fmt.Errorf("failed to load scene %s: %w", sf.Name, err)
	}
	objects, err := sf.Build()
	if err != nil {
		return fmt.Errorf("failed to load scene %s: %w", sf.Name, err)
	}

	prevScene, prevPhysics, prevField := w.Scene, w.Physics, w.Field

	// The new scene starts against this world before the old one is released,
	// so a failed start can put the old one back untouched.
	scene := engine.NewScene(sf.Name)
	scene.World = w
	for _, g := range objects {
		scene.AddGameObject(g)
	}
	w.Scene, w.Physics, w.Field = scene, physics.NewPhysicsWorld(field, w.log), field
	if err := w.configureCharacters(); err != nil {
		w.rollback(prevScene, prevPhysics, prevField)
		return fmt.Errorf("failed to load scene %s: %w", sf.Name, err)
	}
	if err := w.Scene.Start(); err != nil {
		w.rollback(prevScene, prevPhysics, prevField)
		return fmt.Errorf("failed to start scene %s: %w", sf.Name, err)
	}

	release(prevScene, prevPhysics, &w.lifecycle)
	w.initial = make(map[*engine.GameObject]engine.Transform)
	for _, g := range objects {
		w.Physics.AddObject(g)
		w.remember(g)
	}

	w.log.WithFields(logrus.Fields{
		"scene":     sf.Name,
		"objects":   len(objects),
		"dynamic":   w.Physics.DynamicObjectCount(),
		"gravities": len(field.Sources()),
	}).Info("scene loaded")
	w.lifecycle.Loaded()
	return nil
}

// SetBaseConfig changes the configuration new and reloaded characters start from.
func (w *World) SetBaseConfig(base locomotion.Config) {
	w.base = base
}

func (w *World) BaseConfig() locomotion.Config {
	return w.base
}

// Tune validates base and applies it to the characters of the loaded scene
// as well. On error nothing changes.
func (w *World) Tune(base locomotion.Config) error {
	if err := base.Validate(); err != nil {
		return err
	}
	previous := w.base
	w.base = base
	if err := w.configureCharacters(); err != nil {
		w.base = previous
		_ = w.configureCharacters()
		return err
	}
	return nil
}

func (w *World) configureCharacters() error {
	var err error
	w.walk(func(g *engine.GameObject) {
		cc := engine.GetComponent[*components.CharacterController](g)
		if cc == nil || err != nil {
			return
		}
		cc.Logger = w.log
		if cfgErr := cc.Configure(w.base); cfgErr != nil {
			err = fmt.Errorf("character %s: %w", g.Name, cfgErr)
		}
	})
	return err
}

func (w *World) remember(g *engine.GameObject) {
	w.initial[g] = g.Transform
	for _, child := range g.Children {
		w.remember(child)
	}
}

// walk visits every object of the scene, parents before children.
func (w *World) walk(visit func(g *engine.GameObject)) {
	w.Scene.Walk(func(g *engine.GameObject) bool {
		visit(g)
		return true
	})
}

// rollback drops a scene that failed to start and reinstates the previous one.
func (w *World) rollback(scene *engine.Scene, physicsWorld *physics.PhysicsWorld, field *gravity.Field) {
	detachCharacters(w.Scene)
	w.Scene, w.Physics, w.Field = scene, physicsWorld, field
}

// release announces the previous scene is going away and drops its lifecycle
// subscriptions and bodies.
func release(scene *engine.Scene, physicsWorld *physics.PhysicsWorld, lifecycle *engine.Lifecycle) {
	if scene == nil || len(scene.GameObjects) == 0 {
		return
	}
	lifecycle.Unload()
	detachCharacters(scene)
	physicsWorld.Clear()
}

func detachCharacters(scene *engine.Scene) {
	scene.Walk(func(g *engine.GameObject) bool {
		if cc := engine.GetComponent[*components.CharacterController](g); cc != nil {
			cc.Detach()
		}
		return true
	})
}

// Reload puts every object back to its loaded transform, at rest, and lets
// listeners such as characters restore their own state.
func (w *World) Reload() {
	w.lifecycle.Unload()
	w.walk(func(g *engine.GameObject) {
		if t, ok := w.initial[g]; ok {
			g.Transform = t
		}
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
			rb.Velocity = rl.Vector3{}
			rb.AngularVelocity = rl.Vector3{}
			rb.Wake()
		}
		for _, c := range g.Components() {
			if r, ok := c.(rewinder); ok {
				r.Rewind()
			}
		}
	})
	w.log.WithField("scene", w.Scene.Name).Info("scene reloaded")
	w.lifecycle.Loaded()
}

// Character returns the first character controller of the scene, or nil.
func (w *World) Character() *components.CharacterController {
	var found *components.CharacterController
	w.walk(func(g *engine.GameObject) {
		if found == nil {
			found = engine.GetComponent[*components.CharacterController](g)
		}
	})
	return found
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// FixedUpdate runs one simulation step: components first, so controllers and
// platforms write their velocities, then physics integrates and reports contacts.
func (w *World) FixedUpdate(deltaTime float32) {
	w.Scene.FixedUpdate(deltaTime)
	w.Physics.Step(deltaTime)
}

// Snapshot describes the current scene as a file.
func (w *World) Snapshot() *SceneFile {
	return Snapshot(w.Scene.Name, w.Scene.GameObjects, w.Field)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (engine.RaycastResult, bool) {
	return w.Physics.RaycastMasked(origin, direction, maxDistance, mask, ignoreTriggers)
}

func (w *World) Gravity(position rl.Vector3) (rl.Vector3, rl.Vector3) {
	return w.Field.Gravity(position)
}

func (w *World) Lifecycle() *engine.Lifecycle {
	return &w.lifecycle
}
