package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contacts whose up-dot is above this are steep; below they face downward.
const steepUpDotFloor = -0.01

// AddContact queues one contact point for the next Step. It can be called any
// number of times between steps and in any order.
func (c *Controller) AddContact(contact Contact) {
	c.pending = append(c.pending, contact)
}

// AddContacts queues a whole manifold.
func (c *Controller) AddContacts(contacts ...Contact) {
	c.pending = append(c.pending, contacts...)
}

// platformPick keeps the best scoring platform of one contact category.
type platformPick struct {
	body  Platform
	score float32
	set   bool
}

// offer reports whether the candidate replaced the current pick. Equal
// scores keep the earlier pick.
func (p *platformPick) offer(body Platform, score float32) bool {
	if p.set && score <= p.score {
		return false
	}
	p.body, p.score, p.set = body, score, true
	return true
}

func (c *Controller) minDot(layer int) float32 {
	if c.cfg.StairsMask.Contains(layer) {
		return c.limits.minStairsDot
	}
	return c.limits.minGroundDot
}

// reduceContacts folds the queued contacts into the per-step accumulators.
// The counts and normal sums do not depend on queue order. Ground and steep
// picks prefer the contact most aligned with up; on an exact score tie the
// contact queued first wins.
func (c *Controller) reduceContacts() {
	var ground, steep, climb platformPick
	for _, contact := range c.pending {
		normal := contact.Normal
		if !usableNormal(normal) {
			continue
		}
		upDot := rl.Vector3DotProduct(c.upAxis, normal)
		if upDot >= c.minDot(contact.Layer) {
			c.groundContactCount++
			c.contactNormal = rl.Vector3Add(c.contactNormal, normal)
			ground.offer(contact.Body, upDot)
			continue
		}
		if upDot > steepUpDotFloor {
			c.steepContactCount++
			c.steepNormal = rl.Vector3Add(c.steepNormal, normal)
			steep.offer(contact.Body, upDot)
		}
		if c.desiredClimbing && upDot >= c.limits.minClimbDot && c.cfg.ClimbMask.Contains(contact.Layer) {
			c.climbContactCount++
			c.climbNormal = rl.Vector3Add(c.climbNormal, normal)
			// The most wall-like climb contact owns the platform and is the
			// fallback normal when the sum reads as floor.
			if climb.offer(contact.Body, -math32.Abs(upDot)) {
				c.lastClimbNormal = normal
			}
		}
	}
	c.pending = c.pending[:0]

	switch {
	case climb.set:
		c.connectedBody = climb.body
	case ground.set:
		c.connectedBody = ground.body
	case steep.set:
		c.connectedBody = steep.body
	}
}
