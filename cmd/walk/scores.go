package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-walk/internal/platform/tui"
	"github.com/vovakirdan/tui-walk/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the longest recorded runs.

Examples:
  walk scores
  walk scores --limit 20
  walk scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := tui.DefaultWidth, tui.DefaultHeight
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Best runs - Walk the Dog")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'walk play' to record the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Distance", "Segments", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "--------", "--------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8d  %-6s  %s\n",
			i+1, r.Distance, r.Segments, fmt.Sprintf("%.1fs", float64(r.Ticks)/60), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d over %d runs\n", stats.BestDistance, stats.Runs)
	}
	return nil
}
