package locomotion

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

// ride moves platform and character together by velocity for n steps while
// the character stands on the platform.
func ride(h *harness, platform *fakePlatform, velocity rl.Vector3, n int) {
	for i := 0; i < n; i++ {
		offset := rl.Vector3Scale(velocity, testDT)
		platform.position = rl.Vector3Add(platform.position, offset)
		h.body.position = rl.Vector3Add(h.body.position, offset)
		h.step(Contact{Normal: h.up, Body: platform})
	}
}

func TestConnectionVelocityConvergesToPlatformVelocity(t *testing.T) {
	h := newHarness(t, DefaultConfig(), earthGravity())
	platform := &fakePlatform{position: rl.Vector3{Y: -1}, kinematic: true}
	velocity := rl.Vector3{X: 2, Z: 1}

	ride(h, platform, velocity, 1)
	assert.Equal(t, rl.Vector3{}, h.c.ConnectionVelocity(), "first contact only anchors")

	for i := 0; i < 40; i++ {
		ride(h, platform, velocity, 1)
		vectorInDelta(t, velocity, h.c.ConnectionVelocity(), 1e-3)
	}
	// With no input the character matches the platform's planar velocity.
	assert.InDelta(t, velocity.X, h.body.velocity.X, 1e-3)
	assert.InDelta(t, velocity.Z, h.body.velocity.Z, 1e-3)
	assert.InDelta(t, 0, h.c.HorizontalSpeed(), 1e-3)
	vectorInDelta(t, velocity, h.c.LastConnectionVelocity(), 1e-3)
}

func TestConnectionTrackingByMass(t *testing.T) {
	tests := []struct {
		name    string
		mass    float32
		tracked bool
	}{
		{"lighter dynamic body", 0.5, false},
		{"equal mass dynamic body", 1, true},
		{"heavier dynamic body", 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, DefaultConfig(), earthGravity())
			platform := &fakePlatform{mass: tt.mass}
			velocity := rl.Vector3{X: 1}
			ride(h, platform, velocity, 3)

			if tt.tracked {
				vectorInDelta(t, velocity, h.c.ConnectionVelocity(), 1e-3)
			} else {
				assert.Equal(t, rl.Vector3{}, h.c.ConnectionVelocity())
			}
		})
	}
}

func TestSwitchingPlatformsReanchors(t *testing.T) {
	h := newHarness(t, DefaultConfig(), earthGravity())
	first := &fakePlatform{kinematic: true}
	second := &fakePlatform{kinematic: true}

	ride(h, first, rl.Vector3{X: 1}, 3)
	vectorInDelta(t, rl.Vector3{X: 1}, h.c.ConnectionVelocity(), 1e-3)

	ride(h, second, rl.Vector3{Z: 2}, 1)
	assert.Equal(t, rl.Vector3{}, h.c.ConnectionVelocity())
	ride(h, second, rl.Vector3{Z: 2}, 1)
	vectorInDelta(t, rl.Vector3{Z: 2}, h.c.ConnectionVelocity(), 1e-3)
}

func TestLeavingPlatformClearsConnection(t *testing.T) {
	h := newHarness(t, DefaultConfig(), earthGravity())
	platform := &fakePlatform{kinematic: true}
	ride(h, platform, rl.Vector3{X: 1}, 3)

	h.step(h.floor())
	assert.Equal(t, rl.Vector3{}, h.c.ConnectionVelocity())
}
