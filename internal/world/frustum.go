package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear float32 = 0.05
	cullFar  float32 = 1000
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of camera for a viewport of the given
// aspect ratio, using the Gribb/Hartmann plane extraction.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, cullNear, cullFar)
	}

	// Combine view and projection: VP = P * V
	vp := rl.MatrixMultiply(view, proj)

	w := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}
	rows := [3][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
	}

	var f Frustum
	for i, row := range rows {
		f.planes[2*i] = planeFrom(w, row, 1)
		f.planes[2*i+1] = planeFrom(w, row, -1)
	}
	return f
}

// planeFrom combines the w row with a clip row and normalizes the result.
func planeFrom(w, row [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*row[0],
			Y: w[1] + sign*row[1],
			Z: w[2] + sign*row[2],
		},
		distance: w[3] + sign*row[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		// If sphere is completely behind any plane, it's outside
		if rl.Vector3DotProduct(f.planes[i].normal, center)+f.planes[i].distance < -radius {
			return false
		}
	}
	return true
}
