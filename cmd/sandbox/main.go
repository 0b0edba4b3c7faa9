package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charmotion/internal/config"
	"charmotion/internal/game"
	"charmotion/internal/logging"
	"charmotion/internal/world"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	loader := config.NewLoader(settings.ConfigDir)
	base, err := loader.LoadLocomotion()
	if err != nil {
		logger.WithError(err).Fatal("failed to load tuning")
	}

	sf, err := world.ReadScene(os.DirFS(filepath.Dir(settings.Scene)), filepath.Base(settings.Scene))
	if err != nil {
		logger.WithError(err).Fatal("failed to read scene")
	}
	w := world.New(base, logger)
	if err := w.Load(sf); err != nil {
		logger.WithError(err).Fatal("failed to load scene")
	}

	g := game.New(game.Options{
		Settings: settings,
		World:    w,
		Loader:   loader,
		Log:      logger,
	})
	if err := g.Run(); err != nil {
		logger.WithError(err).Fatal("sandbox stopped")
	}
}
