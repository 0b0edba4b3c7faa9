package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// World fallback axes used when no input space is attached.
var (
	WorldRight   = rl.Vector3{X: 1}
	WorldForward = rl.Vector3{Z: -1}
)

// Basis is the pair of unit axes planar input is mapped onto.
type Basis struct {
	Right   rl.Vector3
	Forward rl.Vector3
}

// InputBasis projects the right/forward axes of space (or the world axes when
// space is nil) onto the plane orthogonal to up.
func InputBasis(up rl.Vector3, space InputSpace) Basis {
	right, forward := WorldRight, WorldForward
	if space != nil {
		right, forward = space.Right(), space.Forward()
	}
	basis := Basis{
		Right:   projectDirectionOnPlane(right, up),
		Forward: projectDirectionOnPlane(forward, up),
	}
	// Looking straight along up collapses one axis; rebuild it from the other.
	switch {
	case rl.Vector3LengthSqr(basis.Forward) == 0 && rl.Vector3LengthSqr(basis.Right) != 0:
		basis.Forward = rl.Vector3CrossProduct(up, basis.Right)
	case rl.Vector3LengthSqr(basis.Right) == 0 && rl.Vector3LengthSqr(basis.Forward) != 0:
		basis.Right = rl.Vector3CrossProduct(basis.Forward, up)
	}
	return basis
}
