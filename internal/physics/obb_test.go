package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOBBClosestPoint(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	vectorInDelta(t, rl.Vector3{X: 1, Y: 0.5}, box.ClosestPoint(rl.Vector3{X: 3, Y: 0.5}), 1e-6)
	vectorInDelta(t, rl.Vector3{X: 0.2, Y: -0.3}, box.ClosestPoint(rl.Vector3{X: 0.2, Y: -0.3}), 1e-6)
	assert.True(t, box.Contains(rl.Vector3{X: 0.9, Y: -0.9, Z: 0.9}))
	assert.False(t, box.Contains(rl.Vector3{X: 1.1}))
}

func TestOBBFaceExit(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 4, Y: 2, Z: 4})

	normal, depth := box.faceExit(rl.Vector3{Y: 0.75})
	vectorInDelta(t, rl.Vector3{Y: 1}, normal, 1e-6)
	assert.InDelta(t, 0.25, depth, 1e-6)

	normal, depth = box.faceExit(rl.Vector3{X: -1.9})
	vectorInDelta(t, rl.Vector3{X: -1}, normal, 1e-6)
	assert.InDelta(t, 0.1, depth, 1e-5)
}

func TestOBBResolve(t *testing.T) {
	floor := NewAABBasOBB(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})

	t.Run("separated", func(t *testing.T) {
		crate := NewAABBasOBB(rl.Vector3{Y: 1}, rl.Vector3{X: 1, Y: 1, Z: 1})
		_, ok := crate.ResolveOBB(floor)
		assert.False(t, ok)
		assert.False(t, crate.IntersectsOBB(floor))
	})

	t.Run("resting crate pushed up", func(t *testing.T) {
		crate := NewAABBasOBB(rl.Vector3{Y: 0.4}, rl.Vector3{X: 1, Y: 1, Z: 1})
		mtv, ok := crate.ResolveOBB(floor)
		assert.True(t, ok)
		vectorInDelta(t, rl.Vector3{Y: 0.1}, mtv, 1e-5)
	})

	t.Run("rotated box", func(t *testing.T) {
		// A unit cube rotated 45 degrees about Y still rests on its bottom face.
		s := float32(0.70710677)
		crate := NewOBB(rl.Vector3{Y: 0.45}, rl.Vector3{X: 1, Y: 1, Z: 1}, [3]rl.Vector3{
			{X: s, Z: -s}, {Y: 1}, {X: s, Z: s},
		})
		mtv, ok := crate.ResolveOBB(floor)
		assert.True(t, ok)
		vectorInDelta(t, rl.Vector3{Y: 0.05}, mtv, 1e-5)
	})
}

func TestCollideNormalPointsTowardFirstShape(t *testing.T) {
	ball := shape{sphere: true, center: rl.Vector3{Y: 0.4}, radius: 0.5}
	floor := shape{box: NewAABBasOBB(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})}
	floor.center = floor.box.Center

	m, ok := collide(ball, floor)
	assert.True(t, ok)
	vectorInDelta(t, rl.Vector3{Y: 1}, m.normal, 1e-6)
	assert.InDelta(t, 0.1, m.depth, 1e-5)
	vectorInDelta(t, rl.Vector3{}, m.point, 1e-6)

	m, ok = collide(floor, ball)
	assert.True(t, ok)
	vectorInDelta(t, rl.Vector3{Y: -1}, m.normal, 1e-6)

	other := shape{sphere: true, center: rl.Vector3{X: 0.8, Y: 0.4}, radius: 0.5}
	m, ok = collide(ball, other)
	assert.True(t, ok)
	vectorInDelta(t, rl.Vector3{X: -1}, m.normal, 1e-6)
	assert.InDelta(t, 0.2, m.depth, 1e-5)

	far := shape{sphere: true, center: rl.Vector3{X: 5}, radius: 0.5}
	_, ok = collide(ball, far)
	assert.False(t, ok)
}

func TestSphereInsideBoxLeavesThroughNearestFace(t *testing.T) {
	ball := shape{sphere: true, center: rl.Vector3{Y: -0.1}, radius: 0.5}
	box := NewAABBasOBB(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})

	m, ok := sphereVsBox(ball, box)
	assert.True(t, ok)
	vectorInDelta(t, rl.Vector3{Y: 1}, m.normal, 1e-6)
	assert.InDelta(t, 0.6, m.depth, 1e-5)
}
