package gravity

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "z")
}

func TestUniformField(t *testing.T) {
	f := NewUniformField(9.81)

	g, up := f.Gravity(rl.Vector3{X: 100, Y: -3, Z: 7})

	assertVec(t, rl.Vector3{Y: -9.81}, g)
	assertVec(t, rl.Vector3{Y: 1}, up)
}

func TestEmptyFieldFallsBackToUp(t *testing.T) {
	f := NewField()
	f.Up = rl.Vector3{}

	g, up := f.Gravity(rl.Vector3{})

	assertVec(t, rl.Vector3{}, g)
	assertVec(t, DefaultUp, up)
}

func TestSidewaysGravity(t *testing.T) {
	f := NewField(Uniform{Vector: rl.Vector3{X: 5}})

	_, up := f.Gravity(rl.Vector3{})

	assertVec(t, rl.Vector3{X: -1}, up)
}

func TestSphereGravity(t *testing.T) {
	s := NewSphere(rl.Vector3{}, 10, 20, 10)
	f := NewField(s)

	tests := []struct {
		name     string
		position rl.Vector3
		want     rl.Vector3
	}{
		{"on surface", rl.Vector3{Y: 15}, rl.Vector3{Y: -10}},
		{"side", rl.Vector3{X: -5}, rl.Vector3{X: 10}},
		{"half falloff", rl.Vector3{Y: 25}, rl.Vector3{Y: -5}},
		{"beyond falloff", rl.Vector3{Y: 31}, rl.Vector3{}},
		{"center", rl.Vector3{}, rl.Vector3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, s.Acceleration(tt.position))
		})
	}

	_, up := f.Gravity(rl.Vector3{Z: 12})
	assertVec(t, rl.Vector3{Z: 1}, up)
}

func TestSphereInnerFalloff(t *testing.T) {
	s := &Sphere{Strength: 10, InnerFalloffRadius: 2, InnerRadius: 4, OuterRadius: 10, OuterFalloffRadius: 12}

	assertVec(t, rl.Vector3{}, s.Acceleration(rl.Vector3{X: 1}))
	assertVec(t, rl.Vector3{X: -5}, s.Acceleration(rl.Vector3{X: 3}))
	assertVec(t, rl.Vector3{X: -10}, s.Acceleration(rl.Vector3{X: 6}))
}

func TestSanitizeOrdersRadii(t *testing.T) {
	s := &Sphere{InnerFalloffRadius: -1, InnerRadius: 5, OuterRadius: 3, OuterFalloffRadius: 1}
	s.Sanitize()

	assert.Equal(t, float32(0), s.InnerFalloffRadius)
	assert.Equal(t, float32(5), s.InnerRadius)
	assert.Equal(t, float32(5), s.OuterRadius)
	assert.Equal(t, float32(5), s.OuterFalloffRadius)
}

func TestFieldAddRemove(t *testing.T) {
	f := NewField()
	planet := NewSphere(rl.Vector3{}, 10, 5, 5)
	f.Add(planet)
	f.Add(Uniform{Vector: rl.Vector3{Y: -1}})

	assert.Len(t, f.Sources(), 2)
	assert.True(t, f.Remove(planet))
	assert.False(t, f.Remove(planet))
	assert.Len(t, f.Sources(), 1)
}
