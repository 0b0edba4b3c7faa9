// Package gravity provides spatially varying gravity fields. A field sums the
// contribution of every source at a position and derives the local up axis
// from the result, so characters can walk around planetoids or along walls.
package gravity

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultUp is used as the up axis wherever the summed gravity is zero.
var DefaultUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// DefaultStrength is the magnitude of plain downward gravity in m/s².
const DefaultStrength = 9.81

// Source contributes an acceleration at a world position.
type Source interface {
	Acceleration(position rl.Vector3) rl.Vector3
}

// Field is an ordered set of gravity sources.
type Field struct {
	sources []Source
	// Up is returned when no source pulls at a position.
	Up rl.Vector3
}

// NewField creates a field from sources. A field with no sources is weightless.
func NewField(sources ...Source) *Field {
	return &Field{sources: sources, Up: DefaultUp}
}

// NewUniformField is the common case: plane gravity along -Y.
func NewUniformField(strength float32) *Field {
	return NewField(Uniform{Vector: rl.Vector3{Y: -strength}})
}

// Add appends a source.
func (f *Field) Add(s Source) {
	f.sources = append(f.sources, s)
}

// Remove drops a source by identity. It reports whether the source was present.
func (f *Field) Remove(s Source) bool {
	for i, src := range f.sources {
		if src == s {
			f.sources = append(f.sources[:i], f.sources[i+1:]...)
			return true
		}
	}
	return false
}

// Sources returns the sources in evaluation order.
func (f *Field) Sources() []Source {
	return f.sources
}

// Gravity returns the summed acceleration at position and the up axis it implies.
func (f *Field) Gravity(position rl.Vector3) (gravity, up rl.Vector3) {
	for _, s := range f.sources {
		gravity = rl.Vector3Add(gravity, s.Acceleration(position))
	}
	length := rl.Vector3Length(gravity)
	if length < 1e-6 || math32.IsNaN(length) || math32.IsInf(length, 0) {
		up = f.Up
		if rl.Vector3LengthSqr(up) < 1e-12 {
			up = DefaultUp
		}
		return gravity, up
	}
	return gravity, rl.Vector3Scale(gravity, -1/length)
}

// Uniform gravity, identical everywhere.
type Uniform struct {
	Vector rl.Vector3
}

func (u Uniform) Acceleration(rl.Vector3) rl.Vector3 {
	return u.Vector
}
