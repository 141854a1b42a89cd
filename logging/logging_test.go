package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetupWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "app.log")

	log, closeFn := Setup("info", file)
	log.Info("file loaded", "file", "data.csv", "rows", 3, "columns", 2)
	closeFn()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(content), "file loaded") {
		t.Errorf("log file missing record, got %q", content)
	}
	if !strings.Contains(string(content), `"file":"data.csv"`) {
		t.Errorf("log file should be JSON with attributes, got %q", content)
	}
}

func TestSetupLevelFilter(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")

	log, closeFn := Setup("warn", file)
	log.Info("suppressed")
	log.Warn("kept")
	closeFn()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if strings.Contains(string(content), "suppressed") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(string(content), "kept") {
		t.Error("warn record should be logged")
	}
}

func TestSetupUnwritableFileFallsBack(t *testing.T) {
	// A path that cannot be created: parent is a file, not a directory.
	parent := filepath.Join(t.TempDir(), "notadir")
	if err := os.WriteFile(parent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	log, closeFn := Setup("info", filepath.Join(parent, "app.log"))
	defer closeFn()
	if log == nil {
		t.Fatal("Setup should always return a usable logger")
	}
	log.Info("console only")
}
