package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	expected := DefaultConfig()
	expected.Source = "embedded"
	if cfg != expected {
		t.Errorf("embedded config = %+v, expected %+v", cfg, expected)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "world:\n  seed: 42\ndebug:\n  show_frame_rate: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Seed != 42 {
		t.Errorf("World.Seed = %d, expected 42", cfg.World.Seed)
	}
	if !cfg.Debug.ShowFrameRate {
		t.Error("Debug.ShowFrameRate = false, expected true")
	}
	if cfg.World.TimelineMinimum != 1000 || cfg.Input.HoldMS != DefaultHoldMS {
		t.Errorf("missing values not defaulted: %+v", cfg)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file succeeded")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "loop: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of invalid YAML succeeded")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	local := filepath.Join(wd, "configs", FileName)
	writeFile(t, local, "loop:\n  fps: 20\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Loop.FPS != 20 {
		t.Errorf("Loop.FPS = %d from local config, expected 20", cfg.Loop.FPS)
	}

	user := filepath.Join(home, ".walk", FileName)
	writeFile(t, user, "loop:\n  fps: 50\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Loop.FPS != 50 {
		t.Errorf("Loop.FPS = %d, expected user config (50) to win", cfg.Loop.FPS)
	}
	if cfg.Source != user {
		t.Errorf("Source = %q, expected %q", cfg.Source, user)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".walk", FileName), "loop:\n  fps: fast\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Loop:  LoopConfig{FPS: -1},
		Input: InputConfig{HoldMS: 0, QueueSize: -5},
		World: WorldConfig{TimelineMinimum: 0, ObstacleBuffer: -1},
	}
	cfg.normalize()

	d := DefaultConfig()
	if cfg.Loop.FPS != d.Loop.FPS || cfg.Input.HoldMS != d.Input.HoldMS || cfg.Input.QueueSize != d.Input.QueueSize {
		t.Errorf("normalize() = %+v, expected defaults", cfg)
	}
	if cfg.World.TimelineMinimum != 1000 || cfg.World.ObstacleBuffer != 20 {
		t.Errorf("World = %+v, expected defaults", cfg.World)
	}
	if cfg.Log.Level != "info" || cfg.Storage.Path == "" {
		t.Errorf("Log/Storage = %+v %+v, expected defaults", cfg.Log, cfg.Storage)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loop.FPS = 20
	if cfg.FrameInterval() != 50*time.Millisecond {
		t.Errorf("FrameInterval() = %v, expected 50ms", cfg.FrameInterval())
	}
	if cfg.HoldDuration() != 150*time.Millisecond {
		t.Errorf("HoldDuration() = %v, expected 150ms", cfg.HoldDuration())
	}

	cfg.Loop.FPS = 0
	if cfg.FrameInterval() != time.Second/DefaultFPS {
		t.Errorf("FrameInterval() = %v, expected default", cfg.FrameInterval())
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, expected string
	}{
		{"~/.walk/runs.db", filepath.Join(home, ".walk", "runs.db")},
		{"~", home},
		{"/tmp/runs.db", "/tmp/runs.db"},
		{"relative/runs.db", "relative/runs.db"},
		{"~other/x", "~other/x"},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
