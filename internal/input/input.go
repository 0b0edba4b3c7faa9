// Package input samples the keyboard, mouse and gamepad and turns a sample
// into locomotion intent.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/locomotion"
)

// gamepadDeadZone ignores stick noise around the center.
const gamepadDeadZone = 0.15

// Bindings lists the keys for each action; any of them triggers it.
type Bindings struct {
	Forward, Back, Left, Right []int32
	Jump, Climb                []int32
	Gamepad                    int32
	GamepadJump, GamepadClimb  int32
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:      []int32{rl.KeyW, rl.KeyUp},
		Back:         []int32{rl.KeyS, rl.KeyDown},
		Left:         []int32{rl.KeyA, rl.KeyLeft},
		Right:        []int32{rl.KeyD, rl.KeyRight},
		Jump:         []int32{rl.KeySpace},
		Climb:        []int32{rl.KeyLeftShift, rl.KeyRightShift},
		Gamepad:      0,
		GamepadJump:  rl.GamepadButtonRightFaceDown,
		GamepadClimb: rl.GamepadButtonRightTrigger1,
	}
}

// State is one raw sample of the devices.
type State struct {
	Forward, Back, Left, Right bool
	Jump                       bool // pressed since the last frame
	Climb                      bool // held
	Stick                      rl.Vector2
	MouseDelta                 rl.Vector2
	Wheel                      float32
}

// Compose turns a sample into the intent handed to the controller. Keys and
// stick add up and the result never exceeds unit length.
func Compose(s State) locomotion.Input {
	move := rl.Vector2{
		X: axis(s.Right, s.Left),
		Y: axis(s.Forward, s.Back),
	}
	if rl.Vector2Length(s.Stick) > gamepadDeadZone {
		// Stick up is negative in raylib.
		move = rl.Vector2Add(move, rl.Vector2{X: s.Stick.X, Y: -s.Stick.Y})
	}
	if l := rl.Vector2Length(move); l > 1 {
		move = rl.Vector2Scale(move, 1/l)
	}
	return locomotion.Input{Move: move, Jump: s.Jump, Climb: s.Climb}
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// Sampler reads the devices through raylib. It must run on the window thread.
type Sampler struct {
	Bindings Bindings
}

func NewSampler() *Sampler {
	return &Sampler{Bindings: DefaultBindings()}
}

func (s *Sampler) Sample() State {
	b := s.Bindings
	state := State{
		Forward:    anyKey(b.Forward, rl.IsKeyDown),
		Back:       anyKey(b.Back, rl.IsKeyDown),
		Left:       anyKey(b.Left, rl.IsKeyDown),
		Right:      anyKey(b.Right, rl.IsKeyDown),
		Jump:       anyKey(b.Jump, rl.IsKeyPressed),
		Climb:      anyKey(b.Climb, rl.IsKeyDown),
		MouseDelta: rl.GetMouseDelta(),
		Wheel:      rl.GetMouseWheelMove(),
	}
	if rl.IsGamepadAvailable(b.Gamepad) {
		state.Stick = rl.Vector2{
			X: rl.GetGamepadAxisMovement(b.Gamepad, rl.GamepadAxisLeftX),
			Y: rl.GetGamepadAxisMovement(b.Gamepad, rl.GamepadAxisLeftY),
		}
		state.Jump = state.Jump || rl.IsGamepadButtonPressed(b.Gamepad, b.GamepadJump)
		state.Climb = state.Climb || rl.IsGamepadButtonDown(b.Gamepad, b.GamepadClimb)
	}
	return state
}

func anyKey(keys []int32, check func(int32) bool) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}
