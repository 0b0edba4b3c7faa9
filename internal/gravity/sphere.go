package gravity

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere pulls toward Center with full strength between InnerRadius and
// OuterRadius, fading linearly to zero across the falloff bands on either side.
// A negative Strength pushes outward (walking on the inside of a shell).
type Sphere struct {
	Center             rl.Vector3
	Strength           float32
	OuterRadius        float32
	OuterFalloffRadius float32
	InnerRadius        float32
	InnerFalloffRadius float32
}

// NewSphere builds a planetoid source with full strength up to radius and a
// falloff band of width falloff beyond it.
func NewSphere(center rl.Vector3, strength, radius, falloff float32) *Sphere {
	s := &Sphere{
		Center:             center,
		Strength:           strength,
		OuterRadius:        radius,
		OuterFalloffRadius: radius + falloff,
	}
	s.Sanitize()
	return s
}

// Sanitize orders the radii so that innerFalloff <= inner <= outer <= outerFalloff.
func (s *Sphere) Sanitize() {
	if s.InnerFalloffRadius < 0 {
		s.InnerFalloffRadius = 0
	}
	if s.InnerRadius < s.InnerFalloffRadius {
		s.InnerRadius = s.InnerFalloffRadius
	}
	if s.OuterRadius < s.InnerRadius {
		s.OuterRadius = s.InnerRadius
	}
	if s.OuterFalloffRadius < s.OuterRadius {
		s.OuterFalloffRadius = s.OuterRadius
	}
}

func (s *Sphere) Acceleration(position rl.Vector3) rl.Vector3 {
	toCenter := rl.Vector3Subtract(s.Center, position)
	distance := rl.Vector3Length(toCenter)
	if distance > s.OuterFalloffRadius || distance < s.InnerFalloffRadius || distance == 0 {
		return rl.Vector3{}
	}

	g := s.Strength / distance
	switch {
	case distance > s.OuterRadius:
		g *= 1 - (distance-s.OuterRadius)/bandWidth(s.OuterFalloffRadius, s.OuterRadius)
	case distance < s.InnerRadius:
		g *= 1 - (s.InnerRadius-distance)/bandWidth(s.InnerRadius, s.InnerFalloffRadius)
	}
	return rl.Vector3Scale(toCenter, g)
}

func bandWidth(outer, inner float32) float32 {
	if w := outer - inner; w > 0 {
		return w
	}
	return 1
}
