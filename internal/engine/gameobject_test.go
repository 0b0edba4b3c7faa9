package engine

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	BaseComponent
	calls    []string
	awakeErr error
}

func (r *recorder) Awake() error {
	r.calls = append(r.calls, "awake")
	return r.awakeErr
}

func (r *recorder) Start() {
	r.calls = append(r.calls, "start")
}

func (r *recorder) FixedUpdate(deltaTime float32) {
	r.calls = append(r.calls, "fixed")
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	assert.Equal(t, "TestObject", obj.Name)
	assert.True(t, obj.Active)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, obj.Transform.Scale)
	assert.NotNil(t, obj.components)
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"ladder", "climbable"}

	assert.True(t, obj.HasTag("ladder"))
	assert.True(t, obj.HasTag("climbable"))
	assert.False(t, obj.HasTag("player"))
	assert.False(t, NewGameObject("Empty").HasTag("anything"))
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)
	require.Len(t, parent.Children, 1)
	assert.Same(t, parent, child.Parent)

	parent.RemoveChild(child)
	assert.Empty(t, parent.Children)
	assert.Nil(t, child.Parent)
}

func TestGameObjectStartAwakesBeforeStarting(t *testing.T) {
	obj := NewGameObject("Agent")
	a, b := &recorder{}, &recorder{}
	obj.AddComponent(a)
	obj.AddComponent(b)

	require.NoError(t, obj.Start())
	assert.Equal(t, []string{"awake", "start"}, a.calls)
	assert.Equal(t, []string{"awake", "start"}, b.calls)

	// A second start is a no-op.
	require.NoError(t, obj.Start())
	assert.Len(t, a.calls, 2)
}

func TestGameObjectStartFailsOnAwakeError(t *testing.T) {
	boom := errors.New("no body")
	obj := NewGameObject("Agent")
	bad := &recorder{awakeErr: boom}
	obj.AddComponent(bad)

	err := obj.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"awake"}, bad.calls)
	assert.False(t, obj.started)
}

func TestGameObjectFixedUpdateSkipsInactive(t *testing.T) {
	obj := NewGameObject("Agent")
	r := &recorder{}
	obj.AddComponent(r)

	obj.FixedUpdate(0.02)
	obj.Active = false
	obj.FixedUpdate(0.02)

	assert.Equal(t, []string{"fixed"}, r.calls)
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Agent")
	r := &recorder{}
	obj.AddComponent(r)

	assert.Same(t, r, GetComponent[*recorder](obj))
	assert.Same(t, obj, r.GetGameObject())
	assert.Nil(t, GetComponent[*recorder](nil))
}

func TestTransformPointRoundTrip(t *testing.T) {
	obj := NewGameObject("Platform")
	obj.Transform.Position = rl.Vector3{X: 3, Y: 1, Z: -2}
	obj.Transform.Rotation = rl.Vector3{Y: 90}

	local := rl.Vector3{X: 1, Y: 0, Z: 0}
	world := obj.TransformPoint(local)

	// +X rotated 90 degrees about Y lands on -Z.
	assert.InDelta(t, 3, world.X, 1e-4)
	assert.InDelta(t, 1, world.Y, 1e-4)
	assert.InDelta(t, -3, world.Z, 1e-4)

	back := obj.InverseTransformPoint(world)
	assert.InDelta(t, local.X, back.X, 1e-4)
	assert.InDelta(t, local.Y, back.Y, 1e-4)
	assert.InDelta(t, local.Z, back.Z, 1e-4)
}

func TestWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{Y: 1}
	parent.AddChild(child)

	pos := child.WorldPosition()
	assert.InDelta(t, 10, pos.X, 1e-4)
	assert.InDelta(t, 2, pos.Y, 1e-4)
	assert.InDelta(t, 0, pos.Z, 1e-4)
	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, child.WorldScale())
}

func TestGameObjectChildrenFollowParent(t *testing.T) {
	scene := NewScene("Main")
	parent := NewGameObject("Rig")
	child := NewGameObject("Hand")
	r := &recorder{}
	child.AddComponent(r)
	parent.AddChild(child)
	scene.AddGameObject(parent)

	assert.Same(t, scene, child.Scene)
	require.NoError(t, scene.Start())
	parent.FixedUpdate(0.02)
	assert.Equal(t, []string{"awake", "start", "fixed"}, r.calls)

	parent.Active = false
	parent.FixedUpdate(0.02)
	assert.Len(t, r.calls, 3)

	scene.RemoveGameObject(parent)
	assert.Nil(t, child.Scene)
}
