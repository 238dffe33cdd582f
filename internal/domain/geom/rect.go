package geom

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Width and height are expected to be non-negative.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// TopLeft returns the origin corner
func (r Rect) TopLeft() Vector2 { return Vector2{X: r.X, Y: r.Y} }

// Center returns the center point
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not intersect, and empty
// rectangles never intersect anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether p lies inside r (right and bottom edges exclusive)
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Expand grows the rectangle by margin on every side
func (r Rect) Expand(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// Offset returns the rectangle moved by (dx, dy)
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
