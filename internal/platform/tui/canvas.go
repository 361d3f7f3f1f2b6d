package tui

import (
	"errors"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/game/rhb"
)

// World size in pixels; the whole world is squeezed onto the screen grid.
const (
	WorldWidth  = 600
	WorldHeight = rhb.Height
)

// ErrOffscreen is returned for text drawn outside the screen.
var ErrOffscreen = errors.New("tui: text outside the screen")

// fallbackGlyph paints images that carry no glyph.
var fallbackGlyph = assets.Glyph{Rune: '#', Color: core.ColorWhite}

// Canvas implements engine.Renderer on a character screen. Every image is a
// block of its glyph; the source frame only matters to pixel renderers.
type Canvas struct {
	screen *core.Screen
}

var _ engine.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas drawing into screen.
func NewCanvas(screen *core.Screen) *Canvas {
	return &Canvas{screen: screen}
}

// col maps a world x-coordinate to a screen column.
func (c *Canvas) col(x int) int {
	return floorDiv(x*c.screen.Width(), WorldWidth)
}

// row maps a world y-coordinate to a screen row.
func (c *Canvas) row(y int) int {
	return floorDiv(y*c.screen.Height(), WorldHeight)
}

// cells maps a world rectangle to the screen cells it covers. Non-empty
// rectangles cover at least one cell.
func (c *Canvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.col(r.X()), c.row(r.Y())
	x1, y1 := c.col(r.Right()), c.row(r.Bottom())
	if r.Width > 0 && x1 == x0 {
		x1++
	}
	if r.Height > 0 && y1 == y0 {
		y1++
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear blanks the cells under r.
func (c *Canvas) Clear(r core.Rect) {
	c.screen.ClearRect(c.cells(r))
}

// DrawImage paints destination with the image's glyph.
func (c *Canvas) DrawImage(img engine.ImageHandle, _ core.Rect, destination core.Rect) {
	glyph, ok := img.Data.(assets.Glyph)
	if !ok {
		glyph = fallbackGlyph
	}

	area := c.cells(destination)
	cell := core.Cell{Rune: glyph.Rune, Color: glyph.Color}
	if glyph.Stride <= 0 {
		c.screen.FillRect(area, cell.Rune, cell.Color)
		return
	}

	// Sparse images only mark cells that contain a point of their stride
	// grid, anchored at the image origin so the pattern scrolls with it.
	for row := area.Y(); row < area.Bottom(); row++ {
		if !containsGridPoint(row, c.screen.Height(), WorldHeight, destination.Y(), glyph.Stride) {
			continue
		}
		for col := area.X(); col < area.Right(); col++ {
			if containsGridPoint(col, c.screen.Width(), WorldWidth, destination.X(), glyph.Stride) {
				c.screen.SetCell(col, row, cell)
			}
		}
	}
}

// containsGridPoint reports whether screen cell i (of n across world pixels)
// contains a pixel origin+k*stride.
func containsGridPoint(i, n, world, origin, stride int) bool {
	if n <= 0 {
		return false
	}
	start := ceilDiv(i*world, n)
	end := ceilDiv((i+1)*world, n) // exclusive
	last := origin + floorDiv(end-1-origin, stride)*stride
	return last >= start
}

// DrawEntireImage paints the whole image with its top-left corner at position.
func (c *Canvas) DrawEntireImage(img engine.ImageHandle, position core.Point) {
	c.DrawImage(img,
		core.NewRect(0, 0, img.Width, img.Height),
		core.NewRect(position.X, position.Y, img.Width, img.Height),
	)
}

// DrawText writes text starting at the cell containing location.
func (c *Canvas) DrawText(text string, location core.Point) error {
	row := c.row(location.Y)
	if row < 0 || row >= c.screen.Height() {
		return ErrOffscreen
	}
	c.screen.DrawColoredText(c.col(location.X), row, text, core.ColorBrightWhite)
	return nil
}

// Screen returns the underlying screen.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
