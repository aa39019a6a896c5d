package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewEmptyPathIsNop(t *testing.T) {
	log, err := New("", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pageboard.log")

	log, err := New(path, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("panel toggled")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "panel toggled") {
		t.Errorf("expected debug entry in log, got %q", data)
	}
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageboard.log")

	log, err := New(path, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry should be dropped at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("expected info entry")
	}
}
