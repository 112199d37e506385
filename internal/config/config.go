// Package config provides the TOML settings file for the viewer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds viewer settings loaded from config.toml. Every field has a
// default so a missing or partial file is fine.
type Config struct {
	Window WindowConfig `toml:"window"`
	Plot   PlotConfig   `toml:"plot"`
}

// WindowConfig maps window-related settings.
type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PlotConfig maps plot-related settings.
type PlotConfig struct {
	LineWidth float64 `toml:"line-width"`
	ShowGrid  bool    `toml:"show-grid"`
	Crosshair bool    `toml:"crosshair"`
}

// Default returns the built-in settings: a 720x640 window and 3px lines,
// matching the plot style the simulation group is used to.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 720, Height: 640},
		Plot:   PlotConfig{LineWidth: 3, ShowGrid: true, Crosshair: false},
	}
}

// DefaultPath returns ~/.config/flux-viewer/config.toml.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "flux-viewer", "config.toml")
}

// Load reads a TOML config from the given path. A missing file is not an
// error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) sanitize() {
	if c.Window.Width <= 0 {
		c.Window.Width = 720
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 640
	}
	if c.Plot.LineWidth <= 0 {
		c.Plot.LineWidth = 3
	}
}
