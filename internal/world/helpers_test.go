package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charmotion/internal/locomotion"
)

const testDT = 0.02

const courseJSON = `{
  "name": "course",
  "objects": [
    {
      "name": "Floor",
      "position": [0, -0.5, 0],
      "components": [
        {"type": "BoxCollider", "size": [20, 1, 20]},
        {"type": "MeshRenderer", "mesh": "cube", "size": [20, 1, 20], "color": "LightGray"}
      ]
    },
    {
      "name": "Player",
      "tags": ["player"],
      "layer": 4,
      "position": [0, 2, 0],
      "components": [
        {"type": "Rigidbody", "mass": 1},
        {"type": "SphereCollider", "radius": 0.5},
        {"type": "CharacterController", "maxSpeed": 6}
      ]
    }
  ]
}`

func newTestWorld(t *testing.T) *World {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return New(locomotion.DefaultConfig(), logger)
}

func loadCourse(t *testing.T) *World {
	t.Helper()
	w := newTestWorld(t)
	sf, err := ParseScene([]byte(courseJSON))
	require.NoError(t, err)
	require.NoError(t, w.Load(sf))
	return w
}

func vectorInDelta(t *testing.T, expected, actual rl.Vector3, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}
