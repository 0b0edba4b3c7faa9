package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func vectorInDelta(t *testing.T, expected, actual rl.Vector3, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

func assertOrthonormalFrame(t *testing.T, c *OrbitCamera) {
	t.Helper()
	assert.InDelta(t, 1, rl.Vector3Length(c.Forward()), 1e-5)
	assert.InDelta(t, 1, rl.Vector3Length(c.Right()), 1e-5)
	assert.InDelta(t, 0, rl.Vector3DotProduct(c.Forward(), c.Up()), 1e-5)
	assert.InDelta(t, 0, rl.Vector3DotProduct(c.Right(), c.Up()), 1e-5)
	assert.InDelta(t, 0, rl.Vector3DotProduct(c.Right(), c.Forward()), 1e-5)
}

func TestDefaultFrameMatchesWorldAxes(t *testing.T) {
	c := New(rl.Vector3{})
	vectorInDelta(t, rl.Vector3{Z: -1}, c.Forward(), 1e-6)
	vectorInDelta(t, rl.Vector3{X: 1}, c.Right(), 1e-6)
	assertOrthonormalFrame(t, c)
}

func TestLookTurnsAndClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.LookSpeed = 1

	// Moving the mouse right turns the view right.
	c.Look(rl.Vector2{X: 90})
	vectorInDelta(t, rl.Vector3{X: 1}, c.Forward(), 1e-5)
	vectorInDelta(t, rl.Vector3{Z: 1}, c.Right(), 1e-5)

	c.Look(rl.Vector2{Y: 500})
	assert.Equal(t, c.MinPitch, c.Pitch)
	c.Look(rl.Vector2{Y: -500})
	assert.Equal(t, c.MaxPitch, c.Pitch)
}

func TestPositionOrbitsFocus(t *testing.T) {
	c := New(rl.Vector3{Y: 1})
	c.Pitch = 0
	c.Distance = 5

	vectorInDelta(t, rl.Vector3{Y: 1, Z: 5}, c.Position(), 1e-5)

	c.Pitch = -90
	vectorInDelta(t, rl.Vector3{Y: 6}, c.Position(), 1e-4)

	cam := c.GetRaylibCamera()
	assert.Equal(t, c.Focus, cam.Target)
	assert.Equal(t, rl.CameraPerspective, cam.Projection)
}

func TestZoomIsClamped(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)
	c.Zoom(-100)
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFocusTrailsWithinRadius(t *testing.T) {
	c := New(rl.Vector3{})
	c.FocusCentering = 0
	c.FocusRadius = 1

	c.Follow(rl.Vector3{X: 0.5}, rl.Vector3{Y: 1}, 0.02)
	vectorInDelta(t, rl.Vector3{}, c.Focus, 1e-6, "inside the radius nothing moves")

	c.Follow(rl.Vector3{X: 3}, rl.Vector3{Y: 1}, 0.02)
	vectorInDelta(t, rl.Vector3{X: 2}, c.Focus, 1e-5, "pulled to the edge of the radius")
}

func TestFocusCentersOverTime(t *testing.T) {
	c := New(rl.Vector3{})
	c.FocusCentering = 0.75
	c.FocusRadius = 10

	c.Follow(rl.Vector3{X: 1}, rl.Vector3{Y: 1}, 1)
	vectorInDelta(t, rl.Vector3{X: 0.75}, c.Focus, 1e-5)
}

func TestUpAlignment(t *testing.T) {
	t.Run("limited by speed", func(t *testing.T) {
		c := New(rl.Vector3{})
		c.UpAlignSpeed = 90
		c.Follow(c.Focus, rl.Vector3{X: 1}, 0.5)
		vectorInDelta(t, rl.Vector3{X: 0.70710677, Y: 0.70710677}, c.Up(), 1e-5)
		assertOrthonormalFrame(t, c)
	})

	t.Run("snaps without speed", func(t *testing.T) {
		c := New(rl.Vector3{})
		c.UpAlignSpeed = 0
		c.Follow(c.Focus, rl.Vector3{X: 1}, 0.02)
		vectorInDelta(t, rl.Vector3{X: 1}, c.Up(), 1e-5)
		assertOrthonormalFrame(t, c)
	})

	t.Run("opposite up", func(t *testing.T) {
		c := New(rl.Vector3{})
		c.UpAlignSpeed = 0
		c.Follow(c.Focus, rl.Vector3{Y: -1}, 0.02)
		vectorInDelta(t, rl.Vector3{Y: -1}, c.Up(), 1e-5)
		assertOrthonormalFrame(t, c)
	})

	t.Run("zero up is ignored", func(t *testing.T) {
		c := New(rl.Vector3{})
		c.Follow(c.Focus, rl.Vector3{}, 0.02)
		vectorInDelta(t, rl.Vector3{Y: 1}, c.Up(), 1e-6)
	})
}
