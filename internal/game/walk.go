// Package game is the runner itself: the scrolling world, the
// Ready/Walking/GameOver machine on top of the character machine, and
// WalkTheDog, which plugs both into the engine loop.
package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/game/obstacle"
	"github.com/vovakirdan/tui-walk/internal/game/rhb"
	"github.com/vovakirdan/tui-walk/internal/game/segments"
)

// Defaults for Tuning.
const (
	TimelineMinimum = 1000
	ObstacleBuffer  = 20
)

// Tuning controls how far ahead the world is generated.
type Tuning struct {
	// TimelineMinimum is the look-ahead below which a new segment is added.
	TimelineMinimum int
	// ObstacleBuffer is the gap between the timeline and a new segment.
	ObstacleBuffer int
}

// DefaultTuning returns the standard world tuning.
func DefaultTuning() Tuning {
	return Tuning{TimelineMinimum: TimelineMinimum, ObstacleBuffer: ObstacleBuffer}
}

func (t Tuning) withDefaults() Tuning {
	if t.TimelineMinimum <= 0 {
		t.TimelineMinimum = TimelineMinimum
	}
	if t.ObstacleBuffer < 0 {
		t.ObstacleBuffer = ObstacleBuffer
	}
	return t
}

// Walk is the world: the character, two background tiles, the obstacles
// ahead and the timeline cursor marking where the generated world ends.
type Walk struct {
	boy           *rhb.RedHatBoy
	backgrounds   [2]engine.Image
	obstacles     []obstacle.Obstacle
	obstacleSheet *engine.SpriteSheet
	stone         engine.ImageHandle
	timeline      int

	rng    *rand.Rand
	tuning Tuning
	ui     engine.UI
	logger *log.Logger

	// Run statistics
	distance int
	ticks    int
	segments int
}

// worldAssets are the shared, read-only inputs to a Walk.
type worldAssets struct {
	boy           *rhb.RedHatBoy
	background    engine.ImageHandle
	stone         engine.ImageHandle
	obstacleSheet *engine.SpriteSheet
}

func newWalk(a worldAssets, rng *rand.Rand, tuning Tuning, ui engine.UI, logger *log.Logger) *Walk {
	w := &Walk{
		boy: a.boy,
		backgrounds: [2]engine.Image{
			engine.NewImage(a.background, core.Point{X: 0, Y: 0}),
			engine.NewImage(a.background, core.Point{X: a.background.Width, Y: 0}),
		},
		obstacleSheet: a.obstacleSheet,
		stone:         a.stone,
		rng:           rng,
		tuning:        tuning.withDefaults(),
		ui:            ui,
		logger:        logger,
	}
	w.startingObstacles()
	return w
}

func (w *Walk) startingObstacles() {
	w.obstacles = segments.StoneAndPlatform(w.stone, w.obstacleSheet, 0)
	w.timeline = obstacle.Rightmost(w.obstacles)
	w.segments = 1
}

// Reset returns a fresh world for a new run. The character starts over,
// the backgrounds stay where they are, and the obstacles and timeline are
// rebuilt exactly as at creation.
func (w *Walk) Reset() *Walk {
	next := &Walk{
		boy:           w.boy.Reset(),
		backgrounds:   w.backgrounds,
		obstacleSheet: w.obstacleSheet,
		stone:         w.stone,
		rng:           w.rng,
		tuning:        w.tuning,
		ui:            w.ui,
		logger:        w.logger,
	}
	next.startingObstacles()
	return next
}

// Boy returns the character.
func (w *Walk) Boy() *rhb.RedHatBoy {
	return w.boy
}

// Obstacles returns the obstacles currently in the world.
func (w *Walk) Obstacles() []obstacle.Obstacle {
	return w.obstacles
}

// Timeline returns the x-coordinate up to which the world is generated.
func (w *Walk) Timeline() int {
	return w.timeline
}

// Backgrounds returns both background tiles.
func (w *Walk) Backgrounds() [2]engine.Image {
	return w.backgrounds
}

// Stats returns the distance run, ticks walked and segments generated.
func (w *Walk) Stats() (distance, ticks, segments int) {
	return w.distance, w.ticks, w.segments
}

func (w *Walk) knockedOut() bool {
	return w.boy.KnockedOut()
}

// velocity is how far the world scrolls per tick.
func (w *Walk) velocity() int {
	return -w.boy.WalkingSpeed()
}

func (w *Walk) generateNextSegment() {
	index, next := segments.Random(w.rng, w.stone, w.obstacleSheet, w.timeline+w.tuning.ObstacleBuffer)
	w.timeline = obstacle.Rightmost(next)
	w.obstacles = append(w.obstacles, next...)
	w.segments++
	w.logger.Debug("generated segment", "name", segments.Names()[index], "timeline", w.timeline)
}

// scroll advances the world one tick at the current velocity.
func (w *Walk) scroll() {
	velocity := w.velocity()

	first, second := &w.backgrounds[0], &w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	// Clear the tail so dropped obstacles can be collected.
	for i := len(kept); i < len(w.obstacles); i++ {
		w.obstacles[i] = nil
	}
	w.obstacles = kept

	for _, o := range w.obstacles {
		o.MoveHorizontally(velocity)
		o.CheckIntersection(w.boy)
	}

	if w.timeline < w.tuning.TimelineMinimum {
		w.generateNextSegment()
	} else {
		w.timeline += velocity
	}

	w.distance -= velocity
	w.ticks++
}

func (w *Walk) draw(r engine.Renderer) {
	for _, bg := range w.backgrounds {
		bg.Draw(r)
	}
	w.boy.Draw(r)
	for _, o := range w.obstacles {
		o.Draw(r)
	}
}
