// Package config provides YAML-based configuration for the runner and its
// terminal host.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the full configuration.
type Config struct {
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`

	// Source is the file the configuration was read from ("embedded" or
	// "defaults" when no file was found).
	Source string `yaml:"-"`
}

// LoopConfig controls how often the host calls the engine loop.
type LoopConfig struct {
	FPS int `yaml:"fps"` // Host frames per second; updates always run at 60 Hz
}

// InputConfig controls keyboard handling.
type InputConfig struct {
	HoldMS    int `yaml:"hold_ms"`    // How long a key counts as held after a press
	QueueSize int `yaml:"queue_size"` // Pending key events before new ones are dropped
}

// WorldConfig controls world generation.
type WorldConfig struct {
	Seed            int64 `yaml:"seed"` // 0 = seed from the clock
	TimelineMinimum int   `yaml:"timeline_minimum"`
	ObstacleBuffer  int   `yaml:"obstacle_buffer"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// DebugConfig toggles diagnostic overlays.
type DebugConfig struct {
	ShowFrameRate bool `yaml:"show_frame_rate"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig controls run history.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// FrameInterval is the time between host frames.
func (c Config) FrameInterval() time.Duration {
	fps := c.Loop.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// HoldDuration is how long a key press is held before the host releases it.
func (c Config) HoldDuration() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Loop.FPS <= 0 {
		c.Loop.FPS = d.Loop.FPS
	}
	if c.Input.HoldMS <= 0 {
		c.Input.HoldMS = d.Input.HoldMS
	}
	if c.Input.QueueSize <= 0 {
		c.Input.QueueSize = d.Input.QueueSize
	}
	if c.World.TimelineMinimum <= 0 {
		c.World.TimelineMinimum = d.World.TimelineMinimum
	}
	if c.World.ObstacleBuffer < 0 {
		c.World.ObstacleBuffer = d.World.ObstacleBuffer
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = d.Audio.SampleRate
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Path == "" {
		c.Log.Path = d.Log.Path
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
