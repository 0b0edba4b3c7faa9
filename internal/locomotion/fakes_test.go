package locomotion

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"charmotion/internal/engine"
)

const testDT = float32(0.02)

type fakeBody struct {
	position rl.Vector3
	velocity rl.Vector3
	mass     float32
	writes   int
}

func (b *fakeBody) GetPosition() rl.Vector3  { return b.position }
func (b *fakeBody) GetVelocity() rl.Vector3  { return b.velocity }
func (b *fakeBody) GetMass() float32         { return b.mass }
func (b *fakeBody) SetVelocity(v rl.Vector3) { b.velocity = v; b.writes++ }

// fakePlatform only translates, which is all the tracking needs.
type fakePlatform struct {
	position  rl.Vector3
	mass      float32
	kinematic bool
}

func (p *fakePlatform) GetMass() float32 { return p.mass }
func (p *fakePlatform) Kinematic() bool  { return p.kinematic }
func (p *fakePlatform) TransformPoint(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(local, p.position)
}
func (p *fakePlatform) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(world, p.position)
}

type rayCall struct {
	origin, direction rl.Vector3
	maxDistance       float32
	mask              engine.LayerMask
	ignoreTriggers    bool
}

type fakeRays struct {
	hit   RayHit
	ok    bool
	calls []rayCall
}

func (r *fakeRays) Cast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (RayHit, bool) {
	r.calls = append(r.calls, rayCall{origin, direction, maxDistance, mask, ignoreTriggers})
	return r.hit, r.ok
}

type fakeGravity struct {
	gravity, up rl.Vector3
}

func (g fakeGravity) Gravity(rl.Vector3) (rl.Vector3, rl.Vector3) { return g.gravity, g.up }

type fakeSpace struct {
	right, forward rl.Vector3
}

func (s fakeSpace) Right() rl.Vector3   { return s.right }
func (s fakeSpace) Forward() rl.Vector3 { return s.forward }

type harness struct {
	t    *testing.T
	c    *Controller
	body *fakeBody
	rays *fakeRays
	up   rl.Vector3
}

func newHarness(t *testing.T, cfg Config, gravity rl.Vector3) *harness {
	t.Helper()
	up := rl.Vector3{Y: 1}
	if rl.Vector3LengthSqr(gravity) > 0 {
		up = rl.Vector3Negate(rl.Vector3Normalize(gravity))
	}
	body := &fakeBody{mass: 1}
	rays := &fakeRays{}
	c, err := New(body, fakeGravity{gravity: gravity, up: up}, rays, cfg)
	require.NoError(t, err)
	return &harness{t: t, c: c, body: body, rays: rays, up: up}
}

func (h *harness) floor() Contact {
	return Contact{Normal: h.up}
}

func (h *harness) step(contacts ...Contact) {
	h.c.AddContacts(contacts...)
	h.c.Step(testDT)
}

// settle stands the character on flat ground for n steps, cancelling the
// velocity the way a solver resolving the floor contact would.
func (h *harness) settle(n int) {
	for i := 0; i < n; i++ {
		h.step(h.floor())
		h.body.velocity = rl.Vector3{}
	}
}

func earthGravity() rl.Vector3 {
	return rl.Vector3{Y: -9.81}
}

func vectorInDelta(t *testing.T, expected, actual rl.Vector3, delta float64, msgAndArgs ...any) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	require.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	require.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}
