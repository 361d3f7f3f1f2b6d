package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/audio"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/game"
	"github.com/vovakirdan/tui-walk/internal/platform/tui"
	"github.com/vovakirdan/tui-walk/internal/storage"
)

var (
	flagFPS  int
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start walking the dog.

Controls:
  Right/L    - Start running
  Space/Up   - Jump
  Down/J     - Slide
  Enter/N    - New game (after a knock-out)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  walk play
  walk play --seed 7
  walk play --mute --fps 20`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Host frames per second (updates always run at 60 Hz)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}

	width, height := tui.DefaultWidth, tui.DefaultHeight
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	loader, err := assets.New()
	if err != nil {
		return fmt.Errorf("could not load assets: %w", err)
	}

	var sound engine.Audio = audio.Silent{}
	if cfg.Audio.Enabled && !flagMute {
		speaker := audio.NewSpeaker(cfg.Audio.SampleRate)
		if err := speaker.Start(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer speaker.Close()
			sound = speaker
		}
	}

	opts := []game.Option{
		game.WithSeed(cfg.World.Seed),
		game.WithLogger(logger),
		game.WithTuning(game.Tuning{
			TimelineMinimum: cfg.World.TimelineMinimum,
			ObstacleBuffer:  cfg.World.ObstacleBuffer,
		}),
	}

	// The game still works without run history.
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run history", "path", cfg.Storage.Path, "error", err)
	} else {
		defer store.Close()
		opts = append(opts, game.WithRecorder(store))
	}

	err = tui.Run(cmd.Context(), tui.Options{
		NewGame: func(ui engine.UI) engine.Game {
			return game.New(loader, sound, ui, opts...)
		},
		FrameInterval: cfg.FrameInterval(),
		Hold:          cfg.HoldDuration(),
		QueueSize:     cfg.Input.QueueSize,
		ShowFrameRate: cfg.Debug.ShowFrameRate,
		Width:         width,
		Height:        height,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
