package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Normals shorter than this are treated as degenerate geometry.
const minNormalLengthSqr = 1e-6

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func finiteVector(v rl.Vector3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// usableNormal rejects NaN and near-zero normals coming out of degenerate manifolds.
func usableNormal(n rl.Vector3) bool {
	return finiteVector(n) && rl.Vector3LengthSqr(n) >= minNormalLengthSqr
}

// normalizeOr normalizes v, or returns fallback when v has no usable direction.
func normalizeOr(v, fallback rl.Vector3) rl.Vector3 {
	length := rl.Vector3Length(v)
	if length*length < minNormalLengthSqr || !finite(length) {
		return fallback
	}
	return rl.Vector3Scale(v, 1/length)
}

// projectDirectionOnPlane removes the component of direction along normal and
// renormalizes. A direction parallel to normal collapses to zero.
func projectDirectionOnPlane(direction, normal rl.Vector3) rl.Vector3 {
	projected := rl.Vector3Subtract(direction, rl.Vector3Scale(normal, rl.Vector3DotProduct(direction, normal)))
	return normalizeOr(projected, rl.Vector3{})
}

func clampMagnitude2(v rl.Vector2, maxLength float32) rl.Vector2 {
	if !finite(v.X) || !finite(v.Y) {
		return rl.Vector2{}
	}
	length := rl.Vector2Length(v)
	if length <= maxLength || length == 0 {
		return v
	}
	return rl.Vector2Scale(v, maxLength/length)
}
