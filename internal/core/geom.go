// Package core provides fundamental types shared by the runner and its host.
// It has no external dependencies (especially no Bubble Tea) so game logic
// stays pure and testable.
package core

// Point is an integer 2D coordinate in world pixels.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	Position Point // Top-left corner
	Width    int
	Height   int
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative dimensions are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Position: Point{X: x, Y: y},
		Width:    Max(w, 0),
		Height:   Max(h, 0),
	}
}

// X returns the x-coordinate of the left edge.
func (r Rect) X() int {
	return r.Position.X
}

// Y returns the y-coordinate of the top edge.
func (r Rect) Y() int {
	return r.Position.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.Position.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Position.Y + r.Height
}

// SetX moves the rectangle horizontally to x.
func (r *Rect) SetX(x int) {
	r.Position.X = x
}

// SetY moves the rectangle vertically to y.
func (r *Rect) SetY(y int) {
	r.Position.Y = y
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are exclusive: rectangles that only touch do not intersect, and an
// empty rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X() < other.Right() &&
		r.Right() > other.X() &&
		r.Y() < other.Bottom() &&
		r.Bottom() > other.Y()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X() && x < r.Right() && y >= r.Y() && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
