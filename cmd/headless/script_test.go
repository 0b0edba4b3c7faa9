package main

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := parseScript("w2, j, d0.5, c1, .")
	require.NoError(t, err)
	require.Len(t, s, 5)

	assert.Equal(t, rl.Vector2{Y: 1}, s[0].Input.Move)
	assert.Equal(t, float32(2), s[0].Seconds)
	assert.True(t, s[1].Input.Jump)
	assert.Zero(t, s[1].Seconds)
	assert.Equal(t, rl.Vector2{X: 1}, s[2].Input.Move)
	assert.True(t, s[3].Input.Climb)
	assert.Equal(t, rl.Vector2{}, s[4].Input.Move)
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"", "x1", "w-1", "wfast", "w2x", "w1.5s", "wNaN", "wInf"} {
		_, err := parseScript(src)
		assert.Error(t, err, src)
	}
}

func TestScriptAtLoops(t *testing.T) {
	s, err := parseScript("w1,j,s1")
	require.NoError(t, err)
	const dt = 0.25

	assert.Equal(t, float32(1), s.At(0, dt).Move.Y)
	assert.Equal(t, float32(1), s.At(0.75, dt).Move.Y)
	assert.True(t, s.At(1, dt).Jump, "an instant phase lasts one step")
	assert.False(t, s.At(1.25, dt).Jump)
	assert.Equal(t, float32(-1), s.At(1.25, dt).Move.Y)
	assert.Equal(t, float32(1), s.At(2.25, dt).Move.Y, "the script repeats")
}
