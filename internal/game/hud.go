package game

import (
	"fmt"

	"github.com/chewxy/math32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"charmotion/internal/locomotion"
)

// HUD theme, dark with an indigo accent.
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

const (
	hudWidth      = 300
	hudMargin     = 10
	hudRowHeight  = 22
	hudLabelWidth = 130
)

type hudAction int

const (
	hudNone hudAction = iota
	hudReload
	hudSaveTuning
	hudSaveScene
)

// tunable is one slider of the tuning panel, bound to a field of a Config.
type tunable struct {
	Label    string
	Value    *float32
	Min, Max float32
}

func tunables(cfg *locomotion.Config) []tunable {
	return []tunable{
		{"Max speed", &cfg.MaxSpeed, 0, 30},
		{"Max climb speed", &cfg.MaxClimbSpeed, 0, 10},
		{"Acceleration", &cfg.MaxAcceleration, 0, 100},
		{"Air acceleration", &cfg.MaxAirAcceleration, 0, 100},
		{"Climb acceleration", &cfg.MaxClimbAcceleration, 0, 100},
		{"Jump height", &cfg.JumpHeight, 0, 10},
		{"Ground angle", &cfg.MaxGroundAngle, 0, 90},
		{"Stairs angle", &cfg.MaxStairsAngle, 0, 90},
		{"Climb angle", &cfg.MaxClimbAngle, 90, 180},
		{"Snap speed", &cfg.MaxSnapSpeed, 0, 100},
		{"Probe distance", &cfg.ProbeDistance, 0, 5},
	}
}

// statusLines renders the observables of a controller.
func statusLines(s locomotion.Status) []string {
	return []string{
		fmt.Sprintf("State:  %s", s.Classification),
		fmt.Sprintf("Speed:  %.2f m/s", s.HorizontalSpeed),
		fmt.Sprintf("Vel:    %s", formatVector(s.Velocity)),
		fmt.Sprintf("Up:     %s", formatVector(s.UpAxis)),
		fmt.Sprintf("Normal: %s", formatVector(s.ContactNormal)),
		fmt.Sprintf("Jumps:  %d", s.JumpPhase),
	}
}

func formatVector(v rl.Vector3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// HUD is the debug overlay: controller observables, live tuning sliders and
// scene actions. Tuning edits a copy; Dirty reports whether it changed this frame.
type HUD struct {
	Visible bool
	Message string

	tuning locomotion.Config
	dirty  bool
}

func NewHUD(cfg locomotion.Config) *HUD {
	return &HUD{Visible: true, tuning: cfg}
}

// Tuning returns the configuration being edited.
func (h *HUD) Tuning() locomotion.Config {
	return h.tuning
}

// Reset discards edits that were rejected.
func (h *HUD) Reset(cfg locomotion.Config) {
	h.tuning = cfg
	h.dirty = false
}

func (h *HUD) Dirty() bool {
	return h.dirty
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

// Draw renders the overlay for status and returns the button pressed, if any.
func (h *HUD) Draw(status locomotion.Status, debug *bool) hudAction {
	h.dirty = false
	if !h.Visible {
		return hudNone
	}

	x := float32(rl.GetScreenWidth() - hudWidth - hudMargin)
	y := float32(hudMargin)
	sliders := tunables(&h.tuning)
	height := float32((len(sliders)+len(statusLines(status))+7)*hudRowHeight + 2*hudMargin)
	rl.DrawRectangle(int32(x), int32(y), hudWidth, int32(height), colorBgPanel)

	x += hudMargin
	y += hudMargin
	width := float32(hudWidth - 2*hudMargin)
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: width, Height: hudRowHeight - 4}
		y += hudRowHeight
		return r
	}

	gui.Label(row(), "Character")
	for _, line := range statusLines(status) {
		rl.DrawText(line, int32(x), int32(y), 14, colorTextSecondary)
		y += hudRowHeight
	}

	gui.Label(row(), "Tuning")
	for _, s := range sliders {
		r := row()
		rl.DrawText(s.Label, int32(r.X), int32(r.Y)+3, 12, colorTextMuted)
		r.X += hudLabelWidth
		r.Width -= hudLabelWidth + 40
		value := gui.Slider(r, "", fmt.Sprintf("%.1f", *s.Value), *s.Value, s.Min, s.Max)
		if math32.Abs(value-*s.Value) > 1e-4 {
			*s.Value = value
			h.dirty = true
		}
	}

	r := row()
	rl.DrawText("Air jumps", int32(r.X), int32(r.Y)+3, 12, colorTextMuted)
	r.X += hudLabelWidth
	r.Width -= hudLabelWidth + 40
	jumps := gui.Slider(r, "", fmt.Sprintf("%d", h.tuning.MaxAirJumps), float32(h.tuning.MaxAirJumps), 0, 5)
	if n := int(jumps + 0.5); n != h.tuning.MaxAirJumps {
		h.tuning.MaxAirJumps = n
		h.dirty = true
	}

	*debug = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Debug draw", *debug)
	y += hudRowHeight

	action := hudNone
	third := (width - 2*hudMargin) / 3
	buttons := []struct {
		label  string
		action hudAction
	}{
		{"Reload", hudReload},
		{"Save tuning", hudSaveTuning},
		{"Save scene", hudSaveScene},
	}
	for i, b := range buttons {
		bounds := rl.Rectangle{X: x + float32(i)*(third+hudMargin), Y: y, Width: third, Height: hudRowHeight}
		if gui.Button(bounds, b.label) {
			action = b.action
		}
	}
	y += hudRowHeight + 4

	if h.Message != "" {
		rl.DrawText(h.Message, int32(x), int32(y), 12, colorTextMuted)
	}
	return action
}
