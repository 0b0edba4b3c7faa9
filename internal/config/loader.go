package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"charmotion/internal/locomotion"
)

// LocomotionFile is the tuning file read from the config directory.
const LocomotionFile = "locomotion.json"

// Loader loads tuning files from JSON using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadLocomotion overlays locomotion.json on the defaults and validates the
// result. A missing file yields the defaults.
func (l *Loader) LoadLocomotion() (locomotion.Config, error) {
	cfg := locomotion.DefaultConfig()
	data, err := fs.ReadFile(l.fsys, LocomotionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", LocomotionFile, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", LocomotionFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", LocomotionFile, err)
	}
	return cfg, nil
}

// SaveLocomotion writes cfg to the loader's directory on disk.
func (l *Loader) SaveLocomotion(cfg locomotion.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save %s: %w", LocomotionFile, err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", LocomotionFile, err)
	}
	if err := os.MkdirAll(l.basePath, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", l.basePath, err)
	}
	if err := os.WriteFile(l.path(LocomotionFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", LocomotionFile, err)
	}
	return nil
}

func (l *Loader) path(name string) string {
	return l.basePath + string(os.PathSeparator) + name
}
