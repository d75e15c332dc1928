// Package core provides fundamental types and utilities shared by the
// simulation and the presentation platforms. It has no external dependencies
// so game logic stays pure and testable.
package core

// Vec is a signed 2D integer vector in logical pixels.
type Vec struct {
	X, Y int
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a 2D extent in logical pixels. Width and height are never negative.
type Size struct {
	W, H int
}

// Rect represents an axis-aligned bounding box used for rendering and collision.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative dimensions are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// RectAt builds the bounding rectangle of an entity at pos with extent size.
func RectAt(pos Vec, size Size) Rect {
	return NewRect(pos.X, pos.Y, size.W, size.H)
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Overlap is strict: rectangles that only share an edge do not intersect,
// and empty rectangles intersect nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}
