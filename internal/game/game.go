package game

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"charmotion/internal/camera"
	"charmotion/internal/config"
	"charmotion/internal/input"
	"charmotion/internal/locomotion"
	"charmotion/internal/world"
)

// Options wire a Game to its collaborators.
type Options struct {
	Settings config.Settings
	World    *world.World
	Loader   *config.Loader
	Log      logrus.FieldLogger
}

type Game struct {
	World    *world.World
	Camera   *camera.OrbitCamera
	Renderer *world.Renderer
	HUD      *HUD

	settings config.Settings
	loader   *config.Loader
	sampler  *input.Sampler
	clock    *fixedClock
	log      logrus.FieldLogger
}

func New(opts Options) *Game {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Game{
		World:    opts.World,
		Renderer: world.NewRenderer(),
		HUD:      NewHUD(opts.World.BaseConfig()),
		settings: opts.Settings,
		loader:   opts.Loader,
		sampler:  input.NewSampler(),
		clock:    newFixedClock(opts.Settings.FixedDelta()),
		log:      log.WithField("system", "game"),
	}
	g.Camera = camera.New(g.focus())
	g.bindCamera()
	return g
}

// Run opens the window and drives the loop until it is closed.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(g.settings.Width, g.settings.Height, "charmotion sandbox")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open a %dx%d window", g.settings.Width, g.settings.Height)
	}

	rl.SetTargetFPS(g.settings.TargetFPS)
	initHUDStyle()
	g.setCursor()

	g.log.WithFields(logrus.Fields{
		"tick_rate": g.settings.TickRate,
		"scene":     g.settings.Scene,
	}).Info("sandbox started")

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Update samples input at frame rate and runs the fixed steps that are due.
func (g *Game) Update(deltaTime float32) {
	g.handleKeys()

	state := g.sampler.Sample()
	if !g.HUD.Visible {
		g.Camera.Look(state.MouseDelta)
	}
	g.Camera.Zoom(state.Wheel)

	if cc := g.World.Character(); cc != nil {
		cc.SetInput(input.Compose(state))
	}

	for range g.clock.Advance(deltaTime) {
		g.World.FixedUpdate(g.clock.Step)
	}
	g.World.Update(deltaTime)

	if cc := g.World.Character(); cc != nil {
		up := rl.Vector3{Y: 1}
		if ctrl := cc.Controller(); ctrl != nil {
			up = ctrl.UpAxis()
		}
		g.Camera.Follow(cc.GetGameObject().WorldPosition(), up, deltaTime)
	}
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.HUD.Visible = !g.HUD.Visible
		g.setCursor()
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.Renderer.ShowDebug = !g.Renderer.ShowDebug
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.reload()
	}
}

// setCursor frees the mouse while the HUD is up so its widgets can be used.
func (g *Game) setCursor() {
	if g.HUD.Visible {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	g.Renderer.Draw(g.World, cam, aspect)
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Shift to climb", 10, 10, 20, rl.LightGray)
	rl.DrawText("R to reload, F1 HUD, F2 debug draw", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)
	if g.Renderer.ShowDebug {
		rl.DrawText(fmt.Sprintf("Culled: %d", g.Renderer.Culled), 10, 85, 16, rl.Green)
	}

	var status locomotion.Status
	if cc := g.World.Character(); cc != nil && cc.Controller() != nil {
		status = cc.Controller().Status()
	}
	action := g.HUD.Draw(status, &g.Renderer.ShowDebug)
	if g.HUD.Dirty() {
		g.applyTuning()
	}

	switch action {
	case hudReload:
		g.reload()
	case hudSaveTuning:
		g.saveTuning()
	case hudSaveScene:
		g.saveScene()
	}
}

func (g *Game) applyTuning() {
	if err := g.World.Tune(g.HUD.Tuning()); err != nil {
		g.log.WithError(err).Warn("tuning rejected")
		g.HUD.Message = "rejected: " + err.Error()
		g.HUD.Reset(g.World.BaseConfig())
		return
	}
	g.HUD.Message = ""
}

func (g *Game) reload() {
	g.World.Reload()
	g.clock.Reset()
	g.Camera.Focus = g.focus()
	g.bindCamera()
	g.HUD.Message = "scene reloaded"
}

func (g *Game) saveTuning() {
	if g.loader == nil {
		return
	}
	if err := g.loader.SaveLocomotion(g.World.BaseConfig()); err != nil {
		g.log.WithError(err).Error("failed to save tuning")
		g.HUD.Message = "save failed"
		return
	}
	g.log.Info("tuning saved")
	g.HUD.Message = "tuning saved"
}

func (g *Game) saveScene() {
	path := snapshotPath(g.settings.Scene)
	if err := g.World.Snapshot().Save(path); err != nil {
		g.log.WithError(err).Error("failed to save scene")
		g.HUD.Message = "save failed"
		return
	}
	g.log.WithField("path", path).Info("scene saved")
	g.HUD.Message = "saved " + path
}

// bindCamera makes the camera the frame the character reads input in.
func (g *Game) bindCamera() {
	if cc := g.World.Character(); cc != nil {
		cc.SetInputSpace(g.Camera)
	}
}

func (g *Game) focus() rl.Vector3 {
	if cc := g.World.Character(); cc != nil {
		return cc.GetGameObject().WorldPosition()
	}
	return rl.Vector3{}
}

// snapshotPath places a saved scene next to the one it was loaded from.
func snapshotPath(scene string) string {
	return strings.TrimSuffix(scene, ".json") + ".saved.json"
}
