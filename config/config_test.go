package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Width != 1000 {
		t.Errorf("Window.Width = %d, want %d", cfg.Window.Width, 1000)
	}
	if cfg.Window.Height != 700 {
		t.Errorf("Window.Height = %d, want %d", cfg.Window.Height, 700)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.File == "" {
		t.Error("Log.File should have a default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Window.Width = 800
	cfg.Files.LastDir = "/data/csv"
	cfg.Log.Level = "debug"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Window.Width != 800 {
		t.Errorf("Window.Width = %d, want %d", got.Window.Width, 800)
	}
	if got.Files.LastDir != "/data/csv" {
		t.Errorf("Files.LastDir = %q, want %q", got.Files.LastDir, "/data/csv")
	}
	if got.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", got.Log.Level, "debug")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[files]\nlast_dir = \"/tmp\"\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Files.LastDir != "/tmp" {
		t.Errorf("Files.LastDir = %q, want %q", cfg.Files.LastDir, "/tmp")
	}
	if cfg.Window.Width != 1000 {
		t.Errorf("Window.Width = %d, want default %d", cfg.Window.Width, 1000)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default %q", cfg.Log.Level, "info")
	}
}
