package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed for missing file: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadEmptyPathErrors(t *testing.T) {
	cfg, err := Load("")
	if err == nil {
		t.Fatalf("Load(\"\") did not fail")
	}
	if cfg != Default() {
		t.Fatalf("error path did not fall back to defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[window]
width = 1024
height = 768

[plot]
line-width = 1.5
show-grid = false
crosshair = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Fatalf("window config not applied: %+v", cfg.Window)
	}
	if cfg.Plot.LineWidth != 1.5 || cfg.Plot.ShowGrid || !cfg.Plot.Crosshair {
		t.Fatalf("plot config not applied: %+v", cfg.Plot)
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[window]
width = -10

[plot]
line-width = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 720 {
		t.Fatalf("negative width not reset: %v", cfg.Window.Width)
	}
	if cfg.Plot.LineWidth != 3 {
		t.Fatalf("zero line width not reset: %v", cfg.Plot.LineWidth)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth=="), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("malformed TOML did not fail")
	}
	if cfg != Default() {
		t.Fatalf("malformed TOML did not fall back to defaults")
	}
}
