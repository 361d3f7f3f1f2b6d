package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-walk/internal/core"
)

// ErrEmptySheet is returned when sprite-sheet JSON has no frames object.
var ErrEmptySheet = errors.New("engine: sprite sheet has no frames")

// SheetRect is a rectangle as written in sprite-sheet JSON.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Rect converts the sheet rectangle into a core.Rect.
func (r SheetRect) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell is one named sprite inside a sheet.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet maps cell names to cells.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// DecodeSheet parses sprite-sheet JSON of the form
// {"frames": {"name": {"frame": {...}, "spriteSourceSize": {...}}}}.
func DecodeSheet(raw []byte) (Sheet, error) {
	var sheet Sheet
	if err := json.Unmarshal(raw, &sheet); err != nil {
		return Sheet{}, fmt.Errorf("engine: could not deserialize json into a sheet: %w", err)
	}
	if sheet.Frames == nil {
		return Sheet{}, ErrEmptySheet
	}
	return sheet, nil
}

// SpriteSheet pairs a sheet with the image its cells are cut from.
// It is read-only after construction and shared by pointer.
type SpriteSheet struct {
	sheet Sheet
	image ImageHandle
}

// NewSpriteSheet creates a sprite sheet.
func NewSpriteSheet(sheet Sheet, image ImageHandle) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, image: image}
}

// Cell looks up a cell by name.
func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	c, ok := s.sheet.Frames[name]
	return c, ok
}

// Names returns all cell names in sorted order.
func (s *SpriteSheet) Names() []string {
	names := make([]string, 0, len(s.sheet.Frames))
	for name := range s.sheet.Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Image returns the sheet's backing image.
func (s *SpriteSheet) Image() ImageHandle {
	return s.image
}

// Draw copies the source region of the sheet image to destination.
func (s *SpriteSheet) Draw(r Renderer, source, destination core.Rect) {
	r.DrawImage(s.image, source, destination)
}
