// Package config persists user preferences between sessions.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config stores persistent application settings
type Config struct {
	DarkMode  bool   `yaml:"dark_mode"`
	ShowGrid  bool   `yaml:"show_grid"`
	LastScene string `yaml:"last_scene,omitempty"`

	Panels Panels `yaml:"panels"`
	Window Window `yaml:"window"`
	Keys   Keys   `yaml:"keys"`
}

// Panels records which side docks are visible.
type Panels struct {
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
}

// Window is the initial window size in dp.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Keys are the canvas shortcuts.
type Keys struct {
	Rotate string `yaml:"rotate"`
	Lock   string `yaml:"lock"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		ShowGrid: true,
		Panels:   Panels{Left: true, Right: true},
		Window:   Window{Width: 1280, Height: 800},
		Keys:     Keys{Rotate: "R", Lock: "L"},
	}
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	// Windows: %APPDATA%\CirKit
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "CirKit", "config.yaml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, "cirkit", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields Default.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	def := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = def.Window
	}
	if c.Keys.Rotate == "" {
		c.Keys.Rotate = def.Keys.Rotate
	}
	if c.Keys.Lock == "" {
		c.Keys.Lock = def.Keys.Lock
	}
}
