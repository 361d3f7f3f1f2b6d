// Package rhb implements the runner's character ("red hat boy") as a
// typestate machine: every lifecycle phase is its own type and transitions
// consume one value and return the next.
package rhb

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// World height in pixels; the character stands with its top at Floor.
const (
	Height       = 600
	Floor        = 479
	PlayerHeight = Height - Floor
)

// Physics constants, in pixels per tick.
const (
	StartingPoint    = -20
	RunningSpeed     = 4
	JumpSpeed        = -25
	Gravity          = 1
	TerminalVelocity = 20
)

// Clip lengths: the frame counter runs 0..N before wrapping.
const (
	IdleFrames    = 29
	RunningFrames = 23
	SlidingFrames = 14
	JumpingFrames = 35
	FallingFrames = 29
)

// Clip names as they appear in the character sprite sheet.
const (
	IdleFrameName    = "Idle"
	RunFrameName     = "Run"
	SlidingFrameName = "Slide"
	JumpingFrameName = "Jump"
	FallingFrameName = "Dead"
)

// Context is the physics record every state carries.
type Context struct {
	Frame     int
	Position  core.Point
	Velocity  core.Point
	audio     engine.Audio
	jumpSound engine.Sound
}

func newContext(audio engine.Audio, jumpSound engine.Sound) Context {
	return Context{
		Position:  core.Point{X: StartingPoint, Y: Floor},
		audio:     audio,
		jumpSound: jumpSound,
	}
}

// Update integrates one tick: gravity (capped at TerminalVelocity), the
// animation counter modulo frameCount+1, and vertical position clamped to
// the floor.
func (c Context) Update(frameCount int) Context {
	c.Velocity.Y += Gravity
	if c.Velocity.Y > TerminalVelocity {
		c.Velocity.Y = TerminalVelocity
	}

	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}

	c.Position.Y += c.Velocity.Y
	if c.Position.Y > Floor {
		c.Position.Y = Floor
	}

	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X += RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	c.Velocity.Y = 0
	return c
}

// setOn stands the character on a surface whose top is at y.
func (c Context) setOn(y int) Context {
	c.Position.Y = y - PlayerHeight
	return c
}

func (c Context) playJumpSound() Context {
	if c.audio == nil {
		return c
	}
	if err := c.audio.PlaySound(c.jumpSound); err != nil {
		log.Warn("could not play jump sound", "error", err)
	}
	return c
}
