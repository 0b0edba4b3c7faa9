package engine

import (
	"fmt"
	"sort"
)

// ComponentFactory creates a Component from JSON props.
type ComponentFactory func(props map[string]any) (Component, error)

// ComponentSerializer converts a Component back to props for JSON saving.
// It returns nil for components of other types.
type ComponentSerializer func(c Component) map[string]any

type componentEntry struct {
	factory    ComponentFactory
	serializer ComponentSerializer
}

var componentRegistry = map[string]componentEntry{}

// RegisterComponent registers a named component type with a factory and optional serializer.
// The serializer is used when saving the scene back to JSON.
func RegisterComponent(name string, factory ComponentFactory, serializer ComponentSerializer) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = componentEntry{factory: factory, serializer: serializer}
}

// CreateComponent looks up a registered component by name and creates it with the given props.
func CreateComponent(name string, props map[string]any) (Component, bool, error) {
	entry, ok := componentRegistry[name]
	if !ok {
		return nil, false, nil
	}
	c, err := entry.factory(props)
	return c, true, err
}

// SerializeComponent tries every registered serializer.
// Returns (name, props, true) if found, ("", nil, false) otherwise.
func SerializeComponent(c Component) (string, map[string]any, bool) {
	for _, name := range RegisteredComponents() {
		entry := componentRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredComponents returns a sorted list of all registered component names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float32Prop reads a numeric prop decoded from JSON.
func Float32Prop(props map[string]any, key string, fallback float32) float32 {
	if v, ok := props[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

// BoolProp reads a boolean prop decoded from JSON.
func BoolProp(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}

// Vector3Prop reads a [x, y, z] prop decoded from JSON.
func Vector3Prop(props map[string]any, key string, fallback [3]float32) [3]float32 {
	raw, ok := props[key].([]any)
	if !ok || len(raw) != 3 {
		return fallback
	}
	var out [3]float32
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return fallback
		}
		out[i] = float32(f)
	}
	return out
}
