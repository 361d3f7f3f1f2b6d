package config

import (
	_ "embed"
)

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// Defaults for values a config file leaves out.
const (
	DefaultFPS        = 30
	DefaultHoldMS     = 150
	DefaultQueueSize  = 64
	DefaultSampleRate = 44100
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Loop: LoopConfig{
			FPS: DefaultFPS,
		},
		Input: InputConfig{
			HoldMS:    DefaultHoldMS,
			QueueSize: DefaultQueueSize,
		},
		World: WorldConfig{
			Seed:            0,
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: DefaultSampleRate,
		},
		Debug: DebugConfig{
			ShowFrameRate: false,
		},
		Log: LogConfig{
			Path:  "~/.walk/walk.log",
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.walk/runs.db",
		},
		Source: "defaults",
	}
}
