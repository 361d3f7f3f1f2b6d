package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/game"
	"github.com/vovakirdan/tui-walk/internal/game/obstacle"
	"github.com/vovakirdan/tui-walk/internal/game/segments"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Describe the obstacle segments",
	Long: `Lays out every obstacle segment at offset 0 and shows its obstacle count
and right edge. New segments are drawn from this list at random.`,
	Args: cobra.NoArgs,
	RunE: runSegments,
}

func runSegments(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	loader, err := assets.New()
	if err != nil {
		return err
	}

	sheet, err := assets.LoadSheet(ctx, loader, game.TilesSheet, game.TilesImage)
	if err != nil {
		return err
	}
	stone, err := loader.LoadImage(ctx, game.StoneName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-5s  %-20s  %-9s  %s\n", "Index", "Name", "Obstacles", "Right edge")
	fmt.Fprintf(out, "  %-5s  %-20s  %-9s  %s\n", "-----", "----", "---------", "----------")
	for i, seg := range segments.Catalogue() {
		obstacles := seg.Build(stone, sheet, 0)
		fmt.Fprintf(out, "  %-5d  %-20s  %-9d  %d\n", i, seg.Name, len(obstacles), obstacle.Rightmost(obstacles))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d segments, each drawn with probability 1/%d\n", segments.Len(), segments.Len())
	return nil
}
