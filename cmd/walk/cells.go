package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

var cellsCmd = &cobra.Command{
	Use:   "cells <sheet>",
	Short: "List the cells of a sprite sheet",
	Long: `Shows every cell of a bundled sprite sheet with its frame rectangle.

Examples:
  walk cells rhb.json
  walk cells tiles.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCells,
}

func runCells(cmd *cobra.Command, args []string) error {
	loader, err := assets.New()
	if err != nil {
		return err
	}

	// Sheets share their base name with the image they cut.
	name := args[0]
	image := strings.TrimSuffix(name, ".json") + ".png"
	sheet, err := assets.LoadSheet(cmd.Context(), loader, name, image)
	if err != nil {
		return err
	}

	printCells(cmd, sheet)
	return nil
}

func printCells(cmd *cobra.Command, sheet *engine.SpriteSheet) {
	out := cmd.OutOrStdout()
	names := sheet.Names()

	maxNameLen := 4 // "Name" header
	for _, n := range names {
		maxNameLen = max(maxNameLen, len(n))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Frame (x, y, w, h)")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "------------------")
	for _, n := range names {
		cell, _ := sheet.Cell(n)
		f := cell.Frame
		fmt.Fprintf(out, "  %-*s  %d, %d, %d, %d\n", maxNameLen, n, f.X, f.Y, f.W, f.H)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d cells on %s\n", len(names), sheet.Image().Name)
}
