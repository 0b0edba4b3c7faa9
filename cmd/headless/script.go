package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/locomotion"
)

// script is a repeating input pattern: each phase holds an input for a number
// of seconds.
type script []phase

type phase struct {
	Seconds float32
	Input   locomotion.Input
}

// parseScript reads phases of the form "w2,j,d1.5,c3" where the letter is the
// move or action (w forward, s back, a left, d right, j jump, c climb forward,
// . idle) and the number is the duration in seconds (one step when omitted).
func parseScript(src string) (script, error) {
	var s script
	for _, field := range strings.Split(src, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var p phase
		switch field[0] {
		case 'w':
			p.Input.Move = rl.Vector2{Y: 1}
		case 's':
			p.Input.Move = rl.Vector2{Y: -1}
		case 'a':
			p.Input.Move = rl.Vector2{X: -1}
		case 'd':
			p.Input.Move = rl.Vector2{X: 1}
		case 'j':
			p.Input.Jump = true
		case 'c':
			p.Input.Move = rl.Vector2{Y: 1}
			p.Input.Climb = true
		case '.':
		default:
			return nil, fmt.Errorf("unknown action %q in %q", field[0], field)
		}
		if rest := field[1:]; rest != "" {
			seconds, err := strconv.ParseFloat(rest, 32)
			if err != nil || !(seconds >= 0) || math.IsInf(seconds, 0) {
				return nil, fmt.Errorf("bad duration in %q", field)
			}
			p.Seconds = float32(seconds)
		}
		s = append(s, p)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return s, nil
}

// At returns the input at time t, looping over the script. A phase shorter
// than dt lasts exactly one step.
func (s script) At(t, dt float32) locomotion.Input {
	var total float32
	for _, p := range s {
		total += max(p.Seconds, dt)
	}
	for t >= total {
		t -= total
	}
	for _, p := range s {
		d := max(p.Seconds, dt)
		if t < d {
			return p.Input
		}
		t -= d
	}
	return locomotion.Input{}
}
