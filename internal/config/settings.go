// Package config holds the sandbox process settings and the controller
// tuning files.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every setting in the environment.
const EnvPrefix = "SANDBOX_"

// Settings configure the sandbox process.
type Settings struct {
	Width     int32  `env:"WIDTH" envDefault:"1280"`
	Height    int32  `env:"HEIGHT" envDefault:"720"`
	TargetFPS int32  `env:"TARGET_FPS" envDefault:"60"`
	TickRate  int    `env:"TICK_RATE" envDefault:"50"`
	Scene     string `env:"SCENE" envDefault:"assets/scenes/sandbox.json"`
	ConfigDir string `env:"CONFIG_DIR" envDefault:"assets/config"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	return ParseSettings(env.Options{Prefix: EnvPrefix})
}

// ParseSettings reads Settings with explicit options, e.g. a fixed Environment in tests.
func ParseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.TickRate <= 0 {
		return s, fmt.Errorf("tick rate must be positive, got %d", s.TickRate)
	}
	return s, nil
}

// FixedDelta is the simulation step in seconds.
func (s Settings) FixedDelta() float32 {
	return 1 / float32(s.TickRate)
}
