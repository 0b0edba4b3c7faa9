package world

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/components"
	"charmotion/internal/engine"
	"charmotion/internal/gravity"
)

// debugArrowLength scales the unit vectors drawn by the debug overlay.
const debugArrowLength = 1.5

// Renderer draws the scene's MeshRenderers and, optionally, the state of the
// character and of the gravity field. Calls must happen inside BeginMode3D.
type Renderer struct {
	ShowDebug bool
	Culled    int // objects skipped by the last Draw
}

func NewRenderer() *Renderer {
	return &Renderer{ShowDebug: true}
}

// Draw renders every visible object of the world as seen from camera.
func (r *Renderer) Draw(w *World, camera rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(camera, aspect)
	r.Culled = 0
	w.walk(func(g *engine.GameObject) {
		mesh := engine.GetComponent[*components.MeshRenderer](g)
		if mesh == nil || !g.Active {
			return
		}
		if !frustum.ContainsSphere(g.WorldPosition(), mesh.Bounds()*maxAbs(g.WorldScale())) {
			r.Culled++
			return
		}
		mesh.Draw()
	})

	if !r.ShowDebug {
		return
	}
	r.drawGravity(w.Field)
	if cc := w.Character(); cc != nil {
		r.drawCharacter(cc)
	}
}

func (r *Renderer) drawGravity(field *gravity.Field) {
	for _, src := range field.Sources() {
		if s, ok := src.(*gravity.Sphere); ok {
			rl.DrawSphereWires(s.Center, s.OuterRadius, 12, 12, rl.Fade(rl.SkyBlue, 0.25))
			if s.OuterFalloffRadius > s.OuterRadius {
				rl.DrawSphereWires(s.Center, s.OuterFalloffRadius, 12, 12, rl.Fade(rl.SkyBlue, 0.1))
			}
		}
	}
}

// drawCharacter shows the up axis (green), the contact normal (red) and the
// velocity (blue) of the character's last step.
func (r *Renderer) drawCharacter(cc *components.CharacterController) {
	controller := cc.Controller()
	body := cc.Body()
	if controller == nil || body == nil {
		return
	}
	status := controller.Status()
	origin := body.GetPosition()

	rl.DrawLine3D(origin, rl.Vector3Add(origin, rl.Vector3Scale(status.UpAxis, debugArrowLength)), rl.Green)
	if status.Classification.Supported() {
		rl.DrawLine3D(origin, rl.Vector3Add(origin, rl.Vector3Scale(status.ContactNormal, debugArrowLength)), rl.Red)
	}
	rl.DrawLine3D(origin, rl.Vector3Add(origin, status.Velocity), rl.Blue)
	if status.Climbing {
		rl.DrawSphere(origin, 0.1, rl.Orange)
	}
}

func maxAbs(v rl.Vector3) float32 {
	return math32.Max(math32.Abs(v.X), math32.Max(math32.Abs(v.Y), math32.Abs(v.Z)))
}
