package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/engine"
	"charmotion/internal/locomotion"
)

// worldRayCaster answers locomotion ground probes with the world's ray cast.
type worldRayCaster struct {
	world engine.WorldAccess
}

func (r worldRayCaster) Cast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (locomotion.RayHit, bool) {
	hit, ok := r.world.Raycast(origin, direction, maxDistance, mask, ignoreTriggers)
	if !ok || hit.GameObject == nil {
		return locomotion.RayHit{}, false
	}
	return locomotion.RayHit{
		Normal:   hit.Normal,
		Distance: hit.Distance,
		Body:     platformOf(hit.GameObject),
		Layer:    hit.GameObject.Layer,
	}, true
}

// platformOf returns the object's Rigidbody as a platform, or a nil interface
// for static geometry.
func platformOf(g *engine.GameObject) locomotion.Platform {
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		return rb
	}
	return nil
}
