package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from a center, full size and unit axes.
func NewOBB(center, size rl.Vector3, axes [3]rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes:     axes,
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return NewOBB(center, size, [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
}

func (o OBB) halfSize(i int) float32 {
	switch i {
	case 0:
		return o.HalfSize.X
	case 1:
		return o.HalfSize.Y
	default:
		return o.HalfSize.Z
	}
}

// toLocal expresses a world point in the box's frame, relative to its center.
func (o OBB) toLocal(point rl.Vector3) [3]float32 {
	d := rl.Vector3Subtract(point, o.Center)
	return [3]float32{
		rl.Vector3DotProduct(d, o.Axes[0]),
		rl.Vector3DotProduct(d, o.Axes[1]),
		rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

func (o OBB) fromLocal(local [3]float32) rl.Vector3 {
	result := o.Center
	for i := 0; i < 3; i++ {
		result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[i], local[i]))
	}
	return result
}

// BoundingRadius is the radius of the sphere enclosing the box.
func (o OBB) BoundingRadius() float32 {
	return rl.Vector3Length(o.HalfSize)
}

// ClosestPoint returns the point of the box closest to point. Points inside
// the box are returned unchanged.
func (o OBB) ClosestPoint(point rl.Vector3) rl.Vector3 {
	local := o.toLocal(point)
	for i := 0; i < 3; i++ {
		h := o.halfSize(i)
		local[i] = clampf(local[i], -h, h)
	}
	return o.fromLocal(local)
}

// Contains reports whether point lies inside or on the box.
func (o OBB) Contains(point rl.Vector3) bool {
	local := o.toLocal(point)
	for i := 0; i < 3; i++ {
		if math32.Abs(local[i]) > o.halfSize(i) {
			return false
		}
	}
	return true
}

// faceExit returns the outward normal of the face nearest to an interior
// point and the distance needed to leave through it.
func (o OBB) faceExit(point rl.Vector3) (rl.Vector3, float32) {
	local := o.toLocal(point)
	best := float32(math32.MaxFloat32)
	var normal rl.Vector3
	for i := 0; i < 3; i++ {
		depth := o.halfSize(i) - math32.Abs(local[i])
		if depth < best {
			best = depth
			normal = o.Axes[i]
			if local[i] < 0 {
				normal = rl.Vector3Negate(normal)
			}
		}
	}
	return normal, best
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	return rl.Vector3DistanceSqr(o.ClosestPoint(center), center) <= radius*radius
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	_, ok := a.ResolveOBB(b)
	return ok
}

// ResolveOBB returns the minimum translation vector pushing a out of b, and
// false when the boxes do not overlap.
func (a OBB) ResolveOBB(b OBB) (rl.Vector3, bool) {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math32.MaxFloat32)
	var mtv rl.Vector3
	separated := false

	// 3 face normals of each box plus the 9 edge cross products.
	testAxis := func(axis rl.Vector3) {
		if separated || rl.Vector3Length(axis) < 0.0001 {
			return
		}
		axis = rl.Vector3Normalize(axis)
		penetration := a.projectedRadius(axis) + b.projectedRadius(axis) - math32.Abs(rl.Vector3DotProduct(t, axis))
		if penetration < 0 {
			separated = true
			return
		}
		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from b
			if rl.Vector3DotProduct(t, axis) < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}
	for i := 0; i < 3; i++ {
		testAxis(a.Axes[i])
		testAxis(b.Axes[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			testAxis(rl.Vector3CrossProduct(a.Axes[i], b.Axes[j]))
		}
	}
	if separated {
		return rl.Vector3{}, false
	}
	return mtv, true
}

func (o OBB) projectedRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*math32.Abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*math32.Abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*math32.Abs(rl.Vector3DotProduct(o.Axes[2], axis))
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
