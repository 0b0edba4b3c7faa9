package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charmotion/internal/locomotion"
)

func TestTunablesBindConfigFields(t *testing.T) {
	cfg := locomotion.DefaultConfig()
	sliders := tunables(&cfg)
	require.NotEmpty(t, sliders)

	for _, s := range sliders {
		assert.LessOrEqual(t, s.Min, *s.Value, s.Label)
		assert.GreaterOrEqual(t, s.Max, *s.Value, s.Label)
	}

	*sliders[0].Value = 12
	assert.Equal(t, float32(12), cfg.MaxSpeed)

	for _, s := range sliders {
		*s.Value = s.Max
	}
	assert.NoError(t, cfg.Validate(), "every slider stays inside the valid range")
}

func TestStatusLines(t *testing.T) {
	lines := statusLines(locomotion.Status{
		Classification:  locomotion.Grounded,
		HorizontalSpeed: 3.25,
		UpAxis:          rl.Vector3{Y: 1},
		JumpPhase:       1,
	})
	require.Len(t, lines, 6)
	assert.Equal(t, "State:  grounded", lines[0])
	assert.Equal(t, "Speed:  3.25 m/s", lines[1])
	assert.Equal(t, "Up:     (0.00, 1.00, 0.00)", lines[3])
	assert.Equal(t, "Jumps:  1", lines[5])
}

func TestHUDReset(t *testing.T) {
	h := NewHUD(locomotion.DefaultConfig())
	assert.True(t, h.Visible)
	assert.False(t, h.Dirty())

	cfg := locomotion.DefaultConfig()
	cfg.JumpHeight = 5
	h.Reset(cfg)
	assert.Equal(t, cfg, h.Tuning())
}

func TestSnapshotPath(t *testing.T) {
	assert.Equal(t, "assets/scenes/sandbox.saved.json", snapshotPath("assets/scenes/sandbox.json"))
	assert.Equal(t, "level.saved.json", snapshotPath("level"))
}
