package entity

import (
	"image/color"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
)

// Body is the positioned rectangle every entity is built around.
// Bounds and Center are derived on each call, so they always reflect
// the latest position and size.
type Body struct {
	X, Y          float64
	Width, Height float64

	Layer  int   // draw layer, lower layers draw first
	Remove bool  // purged by the owning scene after the update pass
	Group  Group // collision group of this entity
}

// Draw layers
const (
	LayerDefault = 0
	LayerOverlay = 10
)

// GetBody returns the body itself so embedding types satisfy Entity
func (b *Body) GetBody() *Body { return b }

// SetLocation moves the body's top-left corner
func (b *Body) SetLocation(x, y float64) {
	b.X = x
	b.Y = y
}

// SetWidth resizes the body horizontally
func (b *Body) SetWidth(w float64) { b.Width = w }

// SetHeight resizes the body vertically
func (b *Body) SetHeight(h float64) { b.Height = h }

// Bounds returns the body rectangle
func (b *Body) Bounds() geom.Rect {
	return geom.R(b.X, b.Y, b.Width, b.Height)
}

// Center returns the centre of the body rectangle
func (b *Body) Center() geom.Vector2 {
	return geom.Vec(b.X+b.Width/2, b.Y+b.Height/2)
}

func (b *Body) drawBounds(s draw.Surface, c color.Color) {
	s.StrokeRect(b.Bounds(), draw.Dynamic, c)
}

// Group is a collision-group bitmask
type Group uint32

const (
	GroupPlayer Group = 1 << iota
	GroupNPC
	GroupBuilding
	GroupFurniture
	GroupWall
	GroupTree
	GroupItem
	GroupOverlay
	GroupBoat
	GroupEnemy
	GroupProjectile
	GroupHazard
	GroupHook
	GroupFish
)

// Has reports whether g shares any bit with o
func (g Group) Has(o Group) bool { return g&o != 0 }

// Direction is a cardinal facing
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDirection converts a layout-file name to a Direction
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirectionUp
	case "down":
		return DirectionDown
	case "left":
		return DirectionLeft
	case "right":
		return DirectionRight
	default:
		return DirectionNone
	}
}
