// Package core provides the primitives shared by the game and the platform
// layer: geometry, the cell screen buffer, the logical drawing surface and
// the per-tick input snapshot. It has no Bubble Tea dependency so game logic
// stays pure and testable.
package core

// Rect is an axis-aligned box in play-area units.
// Entities that need sub-unit precision keep their own float position and
// derive the rect from it every tick.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is strictly inside the rectangle.
// Points on any edge are outside, which is how menu buttons are hit-tested.
func (r Rect) Contains(x, y int) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// CenterX returns the horizontal center as a float so odd widths are not
// rounded away.
func (r Rect) CenterX() float64 {
	return float64(r.X) + float64(r.W)/2
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
