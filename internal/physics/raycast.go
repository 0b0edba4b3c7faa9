package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
)

// Raycast checks for intersection with all collidable objects and returns the closest hit
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return p.RaycastMasked(origin, direction, maxDistance, engine.EverythingMask, false)
}

// RaycastMasked returns the closest hit against objects whose layer is in mask.
// Shapes containing the origin are not hit, so a body never blocks its own probe.
func (p *PhysicsWorld) RaycastMasked(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (engine.RaycastResult, bool) {
	if maxDistance <= 0 || rl.Vector3LengthSqr(direction) < 1e-12 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	closestHit := engine.RaycastResult{Distance: maxDistance}
	hit := false

	for _, list := range [][]*engine.GameObject{p.Objects, p.Kinematics, p.Statics} {
		for _, obj := range list {
			if !obj.Active || !mask.Contains(obj.Layer) {
				continue
			}
			s, ok := shapeOf(obj)
			if !ok || (s.trigger && ignoreTriggers) {
				continue
			}
			var hitInfo engine.RaycastResult
			if s.sphere {
				hitInfo, ok = raycastSphere(origin, direction, s.center, s.radius, closestHit.Distance)
			} else {
				hitInfo, ok = raycastBox(origin, direction, s.box, closestHit.Distance)
			}
			if ok && (!hit || hitInfo.Distance < closestHit.Distance) {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}
	return closestHit, hit
}

// raycastBox runs the slab test in the box's local frame.
func raycastBox(origin, direction rl.Vector3, box OBB, maxDistance float32) (engine.RaycastResult, bool) {
	localOrigin := box.toLocal(origin)
	localDir := [3]float32{
		rl.Vector3DotProduct(direction, box.Axes[0]),
		rl.Vector3DotProduct(direction, box.Axes[1]),
		rl.Vector3DotProduct(direction, box.Axes[2]),
	}

	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	entryAxis := -1
	var entrySign float32

	for i := 0; i < 3; i++ {
		h := box.halfSize(i)
		if math32.Abs(localDir[i]) < 1e-8 {
			// Parallel to this slab: must already be inside it.
			if localOrigin[i] < -h || localOrigin[i] > h {
				return engine.RaycastResult{}, false
			}
			continue
		}
		inv := 1 / localDir[i]
		t1 := (-h - localOrigin[i]) * inv
		t2 := (h - localOrigin[i]) * inv
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = i
			entrySign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	// Starting inside the box, or the box is behind the ray.
	if entryAxis < 0 || tmin < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}

	return engine.RaycastResult{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin)),
		Normal:   rl.Vector3Scale(box.Axes[entryAxis], entrySign),
		Distance: tmin,
	}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	if c <= 0 {
		return engine.RaycastResult{}, false
	}
	b := rl.Vector3DotProduct(oc, direction)
	discriminant := b*b - c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	t := -b - math32.Sqrt(discriminant)
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
