package obstacle

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// fakeCharacter records how an obstacle resolved a collision.
type fakeCharacter struct {
	box       core.Rect
	posY      int
	velocityY int

	landedOn  []int
	knockOuts int
}

func (c *fakeCharacter) BoundingBox() core.Rect { return c.box }
func (c *fakeCharacter) PosY() int              { return c.posY }
func (c *fakeCharacter) VelocityY() int         { return c.velocityY }
func (c *fakeCharacter) LandOn(y int)           { c.landedOn = append(c.landedOn, y) }
func (c *fakeCharacter) KnockOut()              { c.knockOuts++ }

type drawCall struct {
	image       string
	source      core.Rect
	destination core.Rect
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) Clear(core.Rect)                   {}
func (r *recordingRenderer) DrawText(string, core.Point) error { return nil }

func (r *recordingRenderer) DrawImage(img engine.ImageHandle, source, destination core.Rect) {
	r.calls = append(r.calls, drawCall{image: img.Name, source: source, destination: destination})
}

func (r *recordingRenderer) DrawEntireImage(img engine.ImageHandle, position core.Point) {
	r.calls = append(r.calls, drawCall{
		image:       img.Name,
		destination: core.NewRect(position.X, position.Y, img.Width, img.Height),
	})
}

var platformSprites = []string{"13.png", "14.png", "15.png"}

var platformBoxes = []core.Rect{
	core.NewRect(0, 0, 60, 54),
	core.NewRect(60, 0, 264, 93),
	core.NewRect(324, 0, 60, 54),
}

func loadTiles(t *testing.T) *engine.SpriteSheet {
	t.Helper()
	loader, err := assets.New()
	if err != nil {
		t.Fatalf("assets.New() error: %v", err)
	}
	sheet, err := assets.LoadSheet(context.Background(), loader, "tiles.json", "tiles.png")
	if err != nil {
		t.Fatalf("LoadSheet() error: %v", err)
	}
	return sheet
}

func TestPlatformCheckIntersection(t *testing.T) {
	tests := []struct {
		name      string
		character fakeCharacter
		landedOn  []int
		knockOuts int
	}{
		{
			name: "falling from above lands on the box top",
			character: fakeCharacter{
				box:       core.NewRect(220, 380, 80, 60),
				posY:      300,
				velocityY: 5,
			},
			landedOn: []int{420},
		},
		{
			name: "rising into the platform knocks out",
			character: fakeCharacter{
				box:       core.NewRect(220, 480, 80, 60),
				posY:      300,
				velocityY: -5,
			},
			knockOuts: 1,
		},
		{
			name: "below the platform top knocks out",
			character: fakeCharacter{
				box:       core.NewRect(220, 430, 80, 60),
				posY:      430,
				velocityY: 5,
			},
			knockOuts: 1,
		},
		{
			name: "standing exactly at the platform top knocks out",
			character: fakeCharacter{
				box:       core.NewRect(220, 420, 80, 60),
				posY:      420,
				velocityY: 1,
			},
			knockOuts: 1,
		},
		{
			name: "no overlap does nothing",
			character: fakeCharacter{
				box:       core.NewRect(0, 0, 50, 50),
				posY:      0,
				velocityY: 5,
			},
		},
	}

	sheet := loadTiles(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlatform(sheet, core.Point{X: 200, Y: 420}, platformSprites, platformBoxes)
			c := tc.character
			p.CheckIntersection(&c)

			if len(c.landedOn) != len(tc.landedOn) {
				t.Fatalf("landedOn = %v, expected %v", c.landedOn, tc.landedOn)
			}
			for i := range tc.landedOn {
				if c.landedOn[i] != tc.landedOn[i] {
					t.Errorf("landedOn = %v, expected %v", c.landedOn, tc.landedOn)
				}
			}
			if c.knockOuts != tc.knockOuts {
				t.Errorf("knockOuts = %d, expected %d", c.knockOuts, tc.knockOuts)
			}
		})
	}
}

func TestPlatformMoveAndRight(t *testing.T) {
	p := NewPlatform(loadTiles(t), core.Point{X: 370, Y: 420}, platformSprites, platformBoxes)

	if p.Right() != 370+384 {
		t.Errorf("Right() = %d, expected %d", p.Right(), 370+384)
	}

	p.MoveHorizontally(-100)
	if p.Right() != 270+384 {
		t.Errorf("Right() after move = %d, expected %d", p.Right(), 270+384)
	}
	if p.Position().X != 270 {
		t.Errorf("Position().X = %d, expected 270", p.Position().X)
	}
	if first := p.BoundingBoxes()[0]; first.X() != 270 || first.Y() != 420 {
		t.Errorf("first box = %+v, expected at (270, 420)", first)
	}
}

func TestPlatformWithoutBoxes(t *testing.T) {
	p := NewPlatform(loadTiles(t), core.Point{X: 10, Y: 10}, platformSprites, nil)
	if p.Right() != 0 {
		t.Errorf("Right() = %d, expected 0", p.Right())
	}

	c := &fakeCharacter{box: core.NewRect(0, 0, 1000, 1000), velocityY: 3}
	p.CheckIntersection(c)
	if c.knockOuts != 0 || len(c.landedOn) != 0 {
		t.Errorf("collision resolved without boxes: %+v", c)
	}
}

func TestPlatformDrawsSpritesSideBySide(t *testing.T) {
	p := NewPlatform(loadTiles(t), core.Point{X: 200, Y: 375}, platformSprites, platformBoxes)
	r := &recordingRenderer{}
	p.Draw(r)

	if len(r.calls) != 3 {
		t.Fatalf("Draw() made %d calls, expected 3", len(r.calls))
	}
	x := 200
	for i, call := range r.calls {
		if call.destination.X() != x || call.destination.Y() != 375 {
			t.Errorf("sprite %d drawn at (%d, %d), expected (%d, 375)", i, call.destination.X(), call.destination.Y(), x)
		}
		if call.destination.Width != call.source.Width {
			t.Errorf("sprite %d width = %d, expected %d", i, call.destination.Width, call.source.Width)
		}
		x += call.source.Width
	}
}

func TestPlatformSkipsMissingSprites(t *testing.T) {
	p := NewPlatform(loadTiles(t), core.Point{}, []string{"13.png", "nope.png"}, platformBoxes)
	r := &recordingRenderer{}
	p.Draw(r)
	if len(r.calls) != 1 {
		t.Errorf("Draw() made %d calls, expected 1", len(r.calls))
	}
}

func TestBarrier(t *testing.T) {
	stone := engine.ImageHandle{Name: "Stone.png", Width: 90, Height: 54}
	b := NewBarrier(engine.NewImage(stone, core.Point{X: 150, Y: 546}))

	hit := &fakeCharacter{box: core.NewRect(140, 500, 80, 106), velocityY: 5}
	b.CheckIntersection(hit)
	if hit.knockOuts != 1 {
		t.Errorf("knockOuts = %d, expected 1", hit.knockOuts)
	}
	if len(hit.landedOn) != 0 {
		t.Errorf("barrier landed the character on %v", hit.landedOn)
	}

	miss := &fakeCharacter{box: core.NewRect(14, 494, 80, 106)}
	b.CheckIntersection(miss)
	if miss.knockOuts != 0 {
		t.Errorf("knockOuts = %d, expected 0", miss.knockOuts)
	}

	// A character without a sprite has an empty box and never collides.
	spriteless := &fakeCharacter{box: core.NewRect(170, 560, 0, 0)}
	b.CheckIntersection(spriteless)
	if spriteless.knockOuts != 0 {
		t.Errorf("empty box knockOuts = %d, expected 0", spriteless.knockOuts)
	}

	b.MoveHorizontally(-50)
	if b.Right() != 190 {
		t.Errorf("Right() = %d, expected 190", b.Right())
	}
	if b.BoundingBox().X() != 100 {
		t.Errorf("BoundingBox().X() = %d, expected 100", b.BoundingBox().X())
	}

	r := &recordingRenderer{}
	b.Draw(r)
	if len(r.calls) != 1 || r.calls[0].destination.X() != 100 {
		t.Errorf("Draw() calls = %+v, expected one at x=100", r.calls)
	}
}

func TestRightmost(t *testing.T) {
	if Rightmost(nil) != 0 {
		t.Errorf("Rightmost(nil) = %d, expected 0", Rightmost(nil))
	}

	stone := engine.ImageHandle{Name: "Stone.png", Width: 90, Height: 54}
	obstacles := []Obstacle{
		NewBarrier(engine.NewImage(stone, core.Point{X: 150, Y: 546})),
		NewPlatform(loadTiles(t), core.Point{X: 370, Y: 420}, platformSprites, platformBoxes),
	}
	if got := Rightmost(obstacles); got != 754 {
		t.Errorf("Rightmost() = %d, expected 754", got)
	}

	offscreen := []Obstacle{NewBarrier(engine.NewImage(stone, core.Point{X: -500, Y: 546}))}
	if got := Rightmost(offscreen); got != 0 {
		t.Errorf("Rightmost() of offscreen obstacles = %d, expected 0", got)
	}
}
