package rhb

import (
	"fmt"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Bounding box insets applied to the drawn frame; the sprite cells include
// transparent padding around the character.
const (
	boxOffsetX     = 18
	boxOffsetY     = 14
	boxWidthInset  = 28
	boxHeightInset = 14
)

// RedHatBoy is the character: the current state plus what is needed to draw
// it. The sprite sheet is shared and never modified.
type RedHatBoy struct {
	state     State
	sheet     *engine.SpriteSheet
	audio     engine.Audio
	jumpSound engine.Sound
}

// New creates an idle character at the start line.
func New(sheet *engine.SpriteSheet, audio engine.Audio, jumpSound engine.Sound) *RedHatBoy {
	return &RedHatBoy{
		state:     NewIdle(audio, jumpSound),
		sheet:     sheet,
		audio:     audio,
		jumpSound: jumpSound,
	}
}

// Reset returns a fresh idle character sharing this one's sheet and sound.
func (b *RedHatBoy) Reset() *RedHatBoy {
	return New(b.sheet, b.audio, b.jumpSound)
}

// State returns the current state.
func (b *RedHatBoy) State() State {
	return b.state
}

func (b *RedHatBoy) apply(e Event) {
	b.state = Transition(b.state, e)
}

func (b *RedHatBoy) RunRight()    { b.apply(Run) }
func (b *RedHatBoy) Slide()       { b.apply(Slide) }
func (b *RedHatBoy) Jump()        { b.apply(Jump) }
func (b *RedHatBoy) KnockOut()    { b.apply(KnockOut) }
func (b *RedHatBoy) Update()      { b.apply(Update) }
func (b *RedHatBoy) LandOn(y int) { b.apply(Land(y)) }

// KnockedOut reports whether the character has finished falling.
func (b *RedHatBoy) KnockedOut() bool {
	_, ok := b.state.(KnockedOut)
	return ok
}

// WalkingSpeed is the horizontal velocity; the world scrolls by its negation.
func (b *RedHatBoy) WalkingSpeed() int {
	return b.state.Context().Velocity.X
}

func (b *RedHatBoy) PosY() int {
	return b.state.Context().Position.Y
}

func (b *RedHatBoy) VelocityY() int {
	return b.state.Context().Velocity.Y
}

// FrameName is the sheet cell for the current animation frame. Each cell is
// held for three ticks.
func (b *RedHatBoy) FrameName() string {
	return fmt.Sprintf("%s (%d).png", b.state.Clip(), b.state.Context().Frame/3+1)
}

func (b *RedHatBoy) currentCell() (engine.Cell, bool) {
	if b.sheet == nil {
		return engine.Cell{}, false
	}
	return b.sheet.Cell(b.FrameName())
}

// DestinationBox is where the current frame is drawn in the world.
func (b *RedHatBoy) DestinationBox() core.Rect {
	pos := b.state.Context().Position
	cell, ok := b.currentCell()
	if !ok {
		return core.NewRect(pos.X, pos.Y, 0, 0)
	}
	return core.NewRect(
		pos.X+cell.SpriteSourceSize.X,
		pos.Y+cell.SpriteSourceSize.Y,
		cell.Frame.W,
		cell.Frame.H,
	)
}

// BoundingBox is the collision box: the destination box shrunk to the
// visible character.
func (b *RedHatBoy) BoundingBox() core.Rect {
	if _, ok := b.currentCell(); !ok {
		pos := b.state.Context().Position
		return core.NewRect(pos.X, pos.Y, 0, 0)
	}
	box := b.DestinationBox()
	return core.NewRect(
		box.X()+boxOffsetX,
		box.Y()+boxOffsetY,
		box.Width-boxWidthInset,
		box.Height-boxHeightInset,
	)
}

// Draw renders the current frame. Missing cells draw nothing.
func (b *RedHatBoy) Draw(r engine.Renderer) {
	cell, ok := b.currentCell()
	if !ok {
		return
	}
	b.sheet.Draw(r, cell.Frame.Rect(), b.DestinationBox())
}
