package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/components"
	"charmotion/internal/engine"
)

// shape is the world-space collision volume of an object, either a sphere or an OBB.
type shape struct {
	sphere  bool
	trigger bool
	center  rl.Vector3
	radius  float32
	box     OBB
}

// shapeOf reads the first collider of g. Box colliders win over spheres.
func shapeOf(g *engine.GameObject) (shape, bool) {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		center := box.GetCenter()
		return shape{
			trigger: box.IsTrigger,
			center:  center,
			box:     NewOBB(center, box.GetWorldSize(), box.Axes()),
		}, true
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		return shape{
			sphere:  true,
			trigger: sphere.IsTrigger,
			center:  sphere.GetCenter(),
			radius:  sphere.GetWorldRadius(),
		}, true
	}
	return shape{}, false
}

func (s shape) boundingRadius() float32 {
	if s.sphere {
		return s.radius
	}
	return s.box.BoundingRadius()
}

// manifold is a single-point contact. Normal points from b toward a and
// depth is how far a must move along it to separate.
type manifold struct {
	normal rl.Vector3
	depth  float32
	point  rl.Vector3
}

var fallbackNormal = rl.Vector3{Y: 1}

func collide(a, b shape) (manifold, bool) {
	reach := a.boundingRadius() + b.boundingRadius()
	if rl.Vector3DistanceSqr(a.center, b.center) > reach*reach {
		return manifold{}, false
	}
	switch {
	case a.sphere && b.sphere:
		return sphereVsSphere(a, b)
	case a.sphere:
		return sphereVsBox(a, b.box)
	case b.sphere:
		m, ok := sphereVsBox(b, a.box)
		m.normal = rl.Vector3Negate(m.normal)
		return m, ok
	default:
		return boxVsBox(a.box, b.box)
	}
}

func sphereVsSphere(a, b shape) (manifold, bool) {
	diff := rl.Vector3Subtract(a.center, b.center)
	dist := rl.Vector3Length(diff)
	minDist := a.radius + b.radius
	if dist >= minDist {
		return manifold{}, false
	}
	normal := fallbackNormal
	if dist > 0.0001 {
		normal = rl.Vector3Scale(diff, 1/dist)
	}
	return manifold{
		normal: normal,
		depth:  minDist - dist,
		point:  rl.Vector3Add(b.center, rl.Vector3Scale(normal, b.radius)),
	}, true
}

func sphereVsBox(s shape, box OBB) (manifold, bool) {
	closest := box.ClosestPoint(s.center)
	diff := rl.Vector3Subtract(s.center, closest)
	distSq := rl.Vector3LengthSqr(diff)
	if distSq > s.radius*s.radius {
		return manifold{}, false
	}
	if distSq > 1e-8 {
		dist := rl.Vector3Length(diff)
		return manifold{
			normal: rl.Vector3Scale(diff, 1/dist),
			depth:  s.radius - dist,
			point:  closest,
		}, true
	}
	// Center inside the box: leave through the nearest face.
	normal, exit := box.faceExit(s.center)
	return manifold{
		normal: normal,
		depth:  exit + s.radius,
		point:  rl.Vector3Add(s.center, rl.Vector3Scale(normal, exit)),
	}, true
}

func boxVsBox(a, b OBB) (manifold, bool) {
	mtv, ok := a.ResolveOBB(b)
	if !ok {
		return manifold{}, false
	}
	depth := rl.Vector3Length(mtv)
	normal := fallbackNormal
	if depth > 0.0001 {
		normal = rl.Vector3Scale(mtv, 1/depth)
	}
	return manifold{
		normal: normal,
		depth:  depth,
		point:  b.ClosestPoint(a.Center),
	}, true
}
