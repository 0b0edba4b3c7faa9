package engine

import "slices"

// Scene owns the root objects of a level. Children are reached through
// their parents.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.setScene(s)
	s.GameObjects = append(s.GameObjects, g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	n := len(s.GameObjects)
	s.GameObjects = slices.DeleteFunc(s.GameObjects, func(obj *GameObject) bool { return obj == g })
	if len(s.GameObjects) != n {
		g.setScene(nil)
	}
}

// Walk visits every object, parents before their children, in insertion order.
// Returning false from visit stops the walk.
func (s *Scene) Walk(visit func(g *GameObject) bool) {
	var rec func(g *GameObject) bool
	rec = func(g *GameObject) bool {
		if !visit(g) {
			return false
		}
		for _, child := range g.Children {
			if !rec(child) {
				return false
			}
		}
		return true
	}
	for _, g := range s.GameObjects {
		if !rec(g) {
			return
		}
	}
}

// FindByName returns the first object with that name, children included.
func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Walk(func(g *GameObject) bool {
		if g.Name == name {
			found = g
		}
		return found == nil
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Walk(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

// Start starts every object, children included, in insertion order and stops
// at the first failure.
func (s *Scene) Start() error {
	for _, g := range s.GameObjects {
		if err := g.Start(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

func (s *Scene) FixedUpdate(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.FixedUpdate(deltaTime)
	}
}
