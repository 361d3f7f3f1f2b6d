// Package obstacle implements the things the character can run into:
// platforms it may land on and barriers that always knock it out.
package obstacle

import (
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Character is what an obstacle needs from the runner.
type Character interface {
	BoundingBox() core.Rect
	PosY() int
	VelocityY() int
	LandOn(y int)
	KnockOut()
}

// Obstacle is anything placed in the scrolling world.
type Obstacle interface {
	// CheckIntersection resolves a collision with the character, if any.
	CheckIntersection(c Character)
	Draw(r engine.Renderer)
	MoveHorizontally(distance int)
	// Right is the world x-coordinate of the obstacle's right edge.
	Right() int
}

// Rightmost returns the largest right edge among obstacles, or 0.
func Rightmost(obstacles []Obstacle) int {
	rightmost := 0
	for _, o := range obstacles {
		rightmost = core.Max(rightmost, o.Right())
	}
	return rightmost
}

// Barrier is an image that knocks the character out on any overlap.
type Barrier struct {
	image engine.Image
}

var _ Obstacle = (*Barrier)(nil)

// NewBarrier creates a barrier from a positioned image.
func NewBarrier(image engine.Image) *Barrier {
	return &Barrier{image: image}
}

func (b *Barrier) CheckIntersection(c Character) {
	if c.BoundingBox().Intersects(b.image.BoundingBox()) {
		c.KnockOut()
	}
}

func (b *Barrier) Draw(r engine.Renderer) {
	b.image.Draw(r)
}

func (b *Barrier) MoveHorizontally(distance int) {
	b.image.MoveHorizontally(distance)
}

func (b *Barrier) Right() int {
	return b.image.Right()
}

// BoundingBox returns the barrier's world-space box.
func (b *Barrier) BoundingBox() core.Rect {
	return b.image.BoundingBox()
}
