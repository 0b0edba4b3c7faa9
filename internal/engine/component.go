package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	FixedUpdate(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Awaker is implemented by components that must bind their collaborators
// before the first Start. An error aborts GameObject.Start.
type Awaker interface {
	Awake() error
}

// ContactPoint is a single point of a contact manifold. Normal points from the
// other surface toward the object receiving the callback.
type ContactPoint struct {
	Point  rl.Vector3
	Normal rl.Vector3
}

// Collision is delivered to ContactHandlers once per touching pair and physics step.
type Collision struct {
	Other    *GameObject
	Contacts []ContactPoint
}

// ContactHandler is implemented by components that want the contact manifolds
// of every step in which their object touches something.
type ContactHandler interface {
	OnCollisionStay(c Collision)
}

// TriggerHandler is implemented by components that react to overlapping
// trigger volumes. It is called on both objects of the pair.
type TriggerHandler interface {
	OnTriggerStay(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) FixedUpdate(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
