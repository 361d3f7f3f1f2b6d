// Package segments holds the catalogue of obstacle layouts the world is
// built from. Each segment is a fixed arrangement placed at an x offset.
package segments

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/game/obstacle"
)

// Vertical placement in world pixels.
const (
	StoneOnGround = 546
	LowPlatform   = 420
	HighPlatform  = 375
)

// Horizontal placement relative to the segment offset.
const (
	firstStoneX     = 150
	firstPlatformX  = 370
	secondStoneX    = 400
	secondPlatformX = 200
)

// ErrUnknownSegment is returned by Build for an index outside the catalogue.
var ErrUnknownSegment = errors.New("segments: unknown segment")

// FloatingPlatformSprites are the tile cells of a floating platform.
var FloatingPlatformSprites = []string{"13.png", "14.png", "15.png"}

// FloatingPlatformBoxes are the platform's collision boxes relative to its
// position: two narrow end caps around a deeper middle.
var FloatingPlatformBoxes = []core.Rect{
	core.NewRect(0, 0, 60, 54),
	core.NewRect(60, 0, 384-(60*2), 93),
	core.NewRect(384-60, 0, 60, 54),
}

// Builder lays out a segment starting at offset.
type Builder func(stone engine.ImageHandle, sheet *engine.SpriteSheet, offset int) []obstacle.Obstacle

// Segment is a named catalogue entry.
type Segment struct {
	Name  string
	Build Builder
}

var catalogue = []Segment{
	{Name: "stone_and_platform", Build: StoneAndPlatform},
	{Name: "platform_and_stone", Build: PlatformAndStone},
}

// Catalogue returns the segments in their fixed order.
func Catalogue() []Segment {
	out := make([]Segment, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns the segment names in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, s := range catalogue {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of segments.
func Len() int {
	return len(catalogue)
}

// Build lays out the segment at index.
func Build(index int, stone engine.ImageHandle, sheet *engine.SpriteSheet, offset int) ([]obstacle.Obstacle, error) {
	if index < 0 || index >= len(catalogue) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSegment, index)
	}
	return catalogue[index].Build(stone, sheet, offset), nil
}

// Random picks a segment uniformly and lays it out at offset. It returns the
// chosen index with the obstacles.
func Random(rng *rand.Rand, stone engine.ImageHandle, sheet *engine.SpriteSheet, offset int) (int, []obstacle.Obstacle) {
	index := rng.Intn(len(catalogue))
	return index, catalogue[index].Build(stone, sheet, offset)
}

// StoneAndPlatform is a stone on the ground followed by a low platform.
func StoneAndPlatform(stone engine.ImageHandle, sheet *engine.SpriteSheet, offset int) []obstacle.Obstacle {
	return []obstacle.Obstacle{
		obstacle.NewBarrier(engine.NewImage(stone, core.Point{X: offset + firstStoneX, Y: StoneOnGround})),
		floatingPlatform(sheet, core.Point{X: offset + firstPlatformX, Y: LowPlatform}),
	}
}

// PlatformAndStone is a high platform with a stone to slide or jump past.
func PlatformAndStone(stone engine.ImageHandle, sheet *engine.SpriteSheet, offset int) []obstacle.Obstacle {
	return []obstacle.Obstacle{
		obstacle.NewBarrier(engine.NewImage(stone, core.Point{X: offset + secondStoneX, Y: StoneOnGround})),
		floatingPlatform(sheet, core.Point{X: offset + secondPlatformX, Y: HighPlatform}),
	}
}

func floatingPlatform(sheet *engine.SpriteSheet, position core.Point) *obstacle.Platform {
	return obstacle.NewPlatform(sheet, position, FloatingPlatformSprites, FloatingPlatformBoxes)
}
