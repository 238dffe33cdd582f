// Package geom provides the 2D point and axis-aligned rectangle math shared
// by entities, cameras and triggers.
package geom

import "math"

// Vector2 is a point or direction in scene-local units
type Vector2 struct {
	X, Y float64
}

// Vec is shorthand for Vector2{X: x, Y: y}
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vector2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
