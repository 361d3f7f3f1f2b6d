// walk is a side-scrolling runner played in the terminal: a red-hatted boy
// walks the dog, jumping onto platforms and sliding under them.
//
// Usage:
//
//	walk play              - Start a game
//	walk scores            - Show the best runs
//	walk cells <sheet>     - List the cells of a sprite sheet
//	walk segments          - Describe the obstacle segments
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.walk/walk.yaml)
//	--seed <value>   - RNG seed for reproducible worlds
//	--db <path>      - Run history database (default: ~/.walk/runs.db)
//	--log <path>     - Log file (default: ~/.walk/walk.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/logging"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
	flagLog    string

	cfg       config.Config
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk the Dog - a runner in your terminal",
	Long: `Walk the Dog is a side-scrolling runner played in the terminal.
Run right, jump onto platforms, slide under them and keep clear of stones.

Available commands:
  play      - Start a game
  scores    - Show the best and most recent runs
  cells     - List the cells of a sprite sheet
  segments  - Describe the obstacle segments

Examples:
  walk play
  walk play --seed 42
  walk scores --interactive
  walk cells rhb.json`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(cellsCmd)
	rootCmd.AddCommand(segmentsCmd)
}

// setup loads the configuration, applies flag overrides and opens the log.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.World.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log") {
		cfg.Log.Path = flagLog
	}

	logPath, err := config.ExpandHome(cfg.Log.Path)
	if err != nil {
		return err
	}
	logger, logCloser, err = logging.New(logging.Options{
		Path:   logPath,
		Level:  cfg.Log.Level,
		Prefix: "walk",
	})
	if err != nil {
		return err
	}
	log.SetDefault(logger)
	logger.Debug("configuration loaded", "source", cfg.Source)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}
