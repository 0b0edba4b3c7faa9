package components

import (
	"encoding/json"
	"fmt"
	"maps"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"charmotion/internal/engine"
	"charmotion/internal/locomotion"
)

func init() {
	engine.RegisterComponent("CharacterController", characterControllerFactory, characterControllerSerializer)
}

// CharacterController drives its object's Rigidbody with a locomotion
// controller. Contacts arrive through OnCollisionStay, input through SetInput,
// and each fixed update commits one locomotion step.
type CharacterController struct {
	engine.BaseComponent

	// Config is the tuning used at Awake. Overrides are the scene's per-object
	// changes, re-applied on top of any base passed to Configure.
	Config    locomotion.Config
	Overrides map[string]any
	Logger    logrus.FieldLogger

	body         *Rigidbody
	controller   *locomotion.Controller
	space        locomotion.InputSpace
	spawn        rl.Vector3
	lifecycle    *engine.Lifecycle
	subscription engine.Subscription
}

func NewCharacterController() *CharacterController {
	return &CharacterController{Config: locomotion.DefaultConfig()}
}

// Configure replaces the base tuning, keeping the scene overrides.
func (c *CharacterController) Configure(base locomotion.Config) error {
	cfg, err := overlayConfig(base, c.Overrides)
	if err != nil {
		return err
	}
	if c.controller != nil {
		if err := c.controller.SetConfig(cfg); err != nil {
			return err
		}
	}
	c.Config = cfg
	return nil
}

func (c *CharacterController) Awake() error {
	g := c.GetGameObject()
	c.body = engine.GetComponent[*Rigidbody](g)
	if c.body == nil {
		return fmt.Errorf("%w: %s has no Rigidbody", locomotion.ErrMissingCollaborator, g.Name)
	}
	if g.Scene == nil || g.Scene.World == nil {
		return fmt.Errorf("%w: %s is not part of a world", locomotion.ErrMissingCollaborator, g.Name)
	}
	world := g.Scene.World

	// Gravity and contact friction are owned by the controller, never by the physics world.
	c.body.UseGravity = false
	c.body.IsKinematic = false
	c.body.CanSleep = false
	c.body.Friction = 0
	c.body.Bounciness = 0

	var opts []locomotion.Option
	if c.space != nil {
		opts = append(opts, locomotion.WithInputSpace(c.space))
	}
	controller, err := locomotion.New(c.body, world, worldRayCaster{world: world}, c.Config, opts...)
	if err != nil {
		return fmt.Errorf("failed to create locomotion for %s: %w", g.Name, err)
	}
	c.controller = controller
	c.spawn = g.Transform.Position

	log := c.logger().WithField("object", g.Name)
	controller.Jumped.AddListener(func(e locomotion.JumpEvent) {
		log.WithFields(logrus.Fields{"phase": e.Phase, "air": e.Air, "speed": e.Speed}).Debug("jump")
	})
	controller.Landed.AddListener(func(e locomotion.LandEvent) {
		log.WithFields(logrus.Fields{"airSteps": e.AirborneSteps, "state": e.Classification}).Debug("landed")
	})

	if c.lifecycle = world.Lifecycle(); c.lifecycle != nil {
		c.subscription = c.lifecycle.AfterLoad.AddListener(c.Respawn)
	}
	log.WithField("component", "CharacterController").Info("character bound to locomotion")
	return nil
}

// Detach stops listening to scene reloads.
func (c *CharacterController) Detach() {
	if c.lifecycle != nil {
		c.lifecycle.AfterLoad.RemoveListener(c.subscription)
		c.lifecycle = nil
	}
}

// Respawn puts the character back where it started, at rest.
func (c *CharacterController) Respawn() {
	if c.controller == nil {
		return
	}
	c.GetGameObject().Transform.Position = c.spawn
	c.body.Velocity = rl.Vector3{}
	c.controller.Reset()
}

func (c *CharacterController) FixedUpdate(deltaTime float32) {
	if c.controller != nil {
		c.controller.Step(deltaTime)
	}
}

func (c *CharacterController) OnCollisionStay(col engine.Collision) {
	if c.controller == nil || col.Other == nil {
		return
	}
	body := platformOf(col.Other)
	for _, p := range col.Contacts {
		c.controller.AddContact(locomotion.Contact{Normal: p.Normal, Layer: col.Other.Layer, Body: body})
	}
}

// SetInput forwards the frame's player intent.
func (c *CharacterController) SetInput(in locomotion.Input) {
	if c.controller != nil {
		c.controller.ApplyInput(in)
	}
}

// SetInputSpace selects the frame input is read in, usually the camera.
func (c *CharacterController) SetInputSpace(space locomotion.InputSpace) {
	c.space = space
	if c.controller != nil {
		c.controller.SetInputSpace(space)
	}
}

func (c *CharacterController) PreventGroundSnap() {
	if c.controller != nil {
		c.controller.PreventGroundSnap()
	}
}

// Controller is nil until the component is awake.
func (c *CharacterController) Controller() *locomotion.Controller {
	return c.controller
}

func (c *CharacterController) Body() *Rigidbody {
	return c.body
}

func (c *CharacterController) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

// overlayConfig applies JSON-shaped overrides on top of base. Unknown keys are ignored.
func overlayConfig(base locomotion.Config, overrides map[string]any) (locomotion.Config, error) {
	if len(overrides) == 0 {
		return base, nil
	}
	raw, err := json.Marshal(overrides)
	if err != nil {
		return base, fmt.Errorf("failed to encode locomotion overrides: %w", err)
	}
	cfg := base
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("failed to apply locomotion overrides: %w", err)
	}
	return cfg, nil
}

func characterControllerFactory(props map[string]any) (engine.Component, error) {
	c := NewCharacterController()
	c.Overrides = maps.Clone(props)
	cfg, err := overlayConfig(c.Config, c.Overrides)
	if err != nil {
		return nil, err
	}
	c.Config = cfg
	return c, nil
}

func characterControllerSerializer(c engine.Component) map[string]any {
	cc, ok := c.(*CharacterController)
	if !ok {
		return nil
	}
	props := maps.Clone(cc.Overrides)
	if props == nil {
		props = map[string]any{}
	}
	return props
}
