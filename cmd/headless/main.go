// Command headless runs a scene without a window, drives the character with a
// scripted input pattern and reports its state and the cost of each step.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"charmotion/internal/config"
	"charmotion/internal/logging"
	"charmotion/internal/world"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scenePath := flag.String("scene", settings.Scene, "scene file to load")
	configDir := flag.String("config", settings.ConfigDir, "directory holding locomotion.json")
	steps := flag.Int("steps", 500, "number of fixed steps to simulate")
	every := flag.Int("every", 50, "report every n steps")
	pattern := flag.String("script", "w2,j,w1,d1,.1", "input script, see parseScript")
	flag.Parse()

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	input, err := parseScript(*pattern)
	if err != nil {
		logger.WithError(err).Fatal("invalid script")
	}
	base, err := config.NewLoader(*configDir).LoadLocomotion()
	if err != nil {
		logger.WithError(err).Fatal("failed to load tuning")
	}
	sf, err := world.ReadScene(os.DirFS(filepath.Dir(*scenePath)), filepath.Base(*scenePath))
	if err != nil {
		logger.WithError(err).Fatal("failed to read scene")
	}
	w := world.New(base, logger)
	if err := w.Load(sf); err != nil {
		logger.WithError(err).Fatal("failed to load scene")
	}
	cc := w.Character()
	if cc == nil {
		logger.Fatal("scene has no character")
	}

	dt := settings.FixedDelta()
	var total time.Duration
	for i := range *steps {
		cc.SetInput(input.At(float32(i)*dt, dt))

		start := time.Now()
		w.FixedUpdate(dt)
		total += time.Since(start)

		if (i+1)%*every == 0 {
			status := cc.Controller().Status()
			pos := cc.GetGameObject().Transform.Position
			logger.WithFields(logrus.Fields{
				"step":  i + 1,
				"state": status.Classification.String(),
				"speed": fmt.Sprintf("%.2f", status.HorizontalSpeed),
				"pos":   fmt.Sprintf("(%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z),
				"jumps": status.JumpPhase,
			}).Info("character")
		}
	}

	bodies := w.Physics.DynamicObjectCount()
	fmt.Printf("%d steps, %d dynamic bodies: %v per step\n",
		*steps, bodies, (total / time.Duration(max(*steps, 1))).Round(time.Microsecond))
}
