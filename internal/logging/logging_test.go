package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "walk.log")

	logger, closer, err := New(Options{Path: path, Level: "info", Prefix: "walk"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Debug("hidden detail")
	logger.Info("run over", "distance", 120)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "run over") || !strings.Contains(out, "distance=120") {
		t.Errorf("log file = %q, expected the info entry", out)
	}
	if !strings.Contains(out, "walk") {
		t.Errorf("log file = %q, expected the prefix", out)
	}
	if strings.Contains(out, "hidden detail") {
		t.Errorf("log file = %q, debug entry should be filtered", out)
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("New() accepted an unknown level")
	}
}
