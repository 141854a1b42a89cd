// Package config holds user preferences for the csvb application,
// stored as TOML in the platform's user configuration directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the persisted application preferences.
type Config struct {
	Window WindowConfig `toml:"window"`
	Files  FilesConfig  `toml:"files"`
	Log    LogConfig    `toml:"log"`
}

// WindowConfig contains main window geometry.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// FilesConfig contains file-picker settings.
type FilesConfig struct {
	LastDir string `toml:"last_dir"`
}

// LogConfig contains diagnostics log settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 700,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(configDir(), "csvb.log"),
		},
	}
}

// configDir returns the directory holding the config file and log file.
// Follows XDG Base Directory spec on Linux, platform conventions elsewhere.
func configDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "csvb")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "csvb")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "csvb")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "csvb")
	}
}

// Path returns the default path of the config file.
func Path() string {
	return filepath.Join(configDir(), "config.toml")
}

// Load reads the config at path, merging it over defaults. A missing file
// is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Re-apply defaults for any values the file left unset.
	defaults := Default()
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = defaults.Window.Width
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = defaults.Window.Height
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
