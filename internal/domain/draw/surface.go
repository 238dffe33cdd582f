// Package draw defines the rendering boundary consumed by entities, scenes
// and transitions. The ebiten-backed implementation lives in
// infrastructure/render.
package draw

import (
	"image/color"

	"github.com/younwookim/village/internal/domain/geom"
	"golang.org/x/image/colornames"
)

// CameraType selects the coordinate space a primitive is drawn in
type CameraType int

const (
	// Dynamic draws in world space through the scene camera
	Dynamic CameraType = iota
	// Static draws in logical screen space (UI, transitions)
	Static
)

// String returns the string representation of the camera type
func (c CameraType) String() string {
	switch c {
	case Dynamic:
		return "Dynamic"
	case Static:
		return "Static"
	default:
		return "Unknown"
	}
}

// Palette used across the game
var (
	ColorBackground color.Color = color.RGBA{41, 173, 255, 255}
	ColorBlack      color.Color = colornames.Black
	ColorWhite      color.Color = colornames.White
	ColorBounds     color.Color = colornames.Red
	ColorWall       color.Color = colornames.Blue
	ColorProbe      color.Color = colornames.Orangered
	ColorTrigger    color.Color = colornames.Yellow
	ColorViewport   color.Color = colornames.Lime
	ColorWater      color.Color = colornames.Steelblue
	ColorFloor      color.Color = colornames.Burlywood
)

// Surface is the set of primitives the core draws with.
// Coordinates are logical units; the implementation applies the camera
// selected by ct and the display scale.
type Surface interface {
	FillRect(r geom.Rect, ct CameraType, c color.Color)
	StrokeRect(r geom.Rect, ct CameraType, c color.Color)
	DrawLine(a, b geom.Vector2, ct CameraType, c color.Color)
	StrokeCircle(center geom.Vector2, radius, thickness float64, ct CameraType, c color.Color)
	DrawSprite(s Sprite, ct CameraType)
	Text(msg string, x, y float64)

	// Debug reports whether debug rendering (bounds, probes, triggers) is on
	Debug() bool
}
