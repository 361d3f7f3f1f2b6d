package engine

import "github.com/vovakirdan/tui-walk/internal/core"

// ImageHandle identifies a loaded image. Data is renderer-specific payload
// produced by the asset loader and is never inspected by the game.
type ImageHandle struct {
	Name   string
	Width  int
	Height int
	Data   any
}

// Image is an ImageHandle placed in the world.
type Image struct {
	element     ImageHandle
	boundingBox core.Rect
}

// NewImage places element with its top-left corner at position.
func NewImage(element ImageHandle, position core.Point) Image {
	return Image{
		element:     element,
		boundingBox: core.NewRect(position.X, position.Y, element.Width, element.Height),
	}
}

// BoundingBox returns the world-space box covered by the image.
func (i Image) BoundingBox() core.Rect {
	return i.boundingBox
}

// Element returns the underlying image handle.
func (i Image) Element() ImageHandle {
	return i.element
}

// MoveHorizontally shifts the image by distance.
func (i *Image) MoveHorizontally(distance int) {
	i.SetX(i.boundingBox.X() + distance)
}

// SetX moves the image's left edge to x.
func (i *Image) SetX(x int) {
	i.boundingBox.SetX(x)
}

// Right returns the x-coordinate of the image's right edge.
func (i Image) Right() int {
	return i.boundingBox.Right()
}

// Draw renders the whole image at its position.
func (i Image) Draw(r Renderer) {
	r.DrawEntireImage(i.element, i.boundingBox.Position)
}
