package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// updateConnectionState derives the platform velocity at the character's
// position from where the remembered local anchor has moved to.
func (c *Controller) updateConnectionState(dt float32) {
	if c.connectedBody == c.previousConnectedBody {
		movement := rl.Vector3Subtract(
			c.connectedBody.TransformPoint(c.connectionLocalPosition),
			c.connectionWorldPosition,
		)
		c.connectionVelocity = rl.Vector3Scale(movement, 1/dt)
	}
	c.connectionWorldPosition = c.body.GetPosition()
	c.connectionLocalPosition = c.connectedBody.InverseTransformPoint(c.connectionWorldPosition)
}
