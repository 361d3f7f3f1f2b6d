package obstacle

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Platform is a row of sprites drawn side by side with one or more
// collision boxes. The top of a box is a surface the character can land on
// when coming down from above.
type Platform struct {
	sheet         *engine.SpriteSheet
	sprites       []engine.Cell
	boundingBoxes []core.Rect
	position      core.Point
}

var _ Obstacle = (*Platform)(nil)

// NewPlatform builds a platform from named sheet cells. boxes are relative to
// position. Names missing from the sheet are skipped with a warning.
func NewPlatform(sheet *engine.SpriteSheet, position core.Point, names []string, boxes []core.Rect) *Platform {
	sprites := make([]engine.Cell, 0, len(names))
	for _, name := range names {
		cell, ok := sheet.Cell(name)
		if !ok {
			log.Warn("platform sprite missing from sheet", "name", name)
			continue
		}
		sprites = append(sprites, cell)
	}

	world := make([]core.Rect, len(boxes))
	for i, box := range boxes {
		world[i] = core.NewRect(box.X()+position.X, box.Y()+position.Y, box.Width, box.Height)
	}

	return &Platform{
		sheet:         sheet,
		sprites:       sprites,
		boundingBoxes: world,
		position:      position,
	}
}

// BoundingBoxes returns the platform's world-space collision boxes.
func (p *Platform) BoundingBoxes() []core.Rect {
	return p.boundingBoxes
}

// Position returns the platform's top-left corner.
func (p *Platform) Position() core.Point {
	return p.position
}

// CheckIntersection lands a falling character that is above the platform and
// knocks out any other character touching it.
func (p *Platform) CheckIntersection(c Character) {
	box, ok := p.firstIntersection(c.BoundingBox())
	if !ok {
		return
	}
	if c.VelocityY() > 0 && c.PosY() < p.position.Y {
		c.LandOn(box.Y())
	} else {
		c.KnockOut()
	}
}

func (p *Platform) firstIntersection(target core.Rect) (core.Rect, bool) {
	for _, box := range p.boundingBoxes {
		if target.Intersects(box) {
			return box, true
		}
	}
	return core.Rect{}, false
}

// Draw renders the sprites left to right starting at the platform position.
func (p *Platform) Draw(r engine.Renderer) {
	x := 0
	for _, sprite := range p.sprites {
		p.sheet.Draw(r,
			sprite.Frame.Rect(),
			core.NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H),
		)
		x += sprite.Frame.W
	}
}

func (p *Platform) MoveHorizontally(distance int) {
	p.position.X += distance
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].SetX(p.boundingBoxes[i].X() + distance)
	}
}

// Right is the right edge of the last collision box, or 0 without boxes.
func (p *Platform) Right() int {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}
