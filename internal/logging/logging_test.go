package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomz197/skyshooter/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(config.LoggingConfig{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("level raised")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "level raised") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(config.LoggingConfig{Level: "loud", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Error("Expected debug disabled at fallback info level")
	}
	if !log.Core().Enabled(0) {
		t.Error("Expected info enabled")
	}
}
