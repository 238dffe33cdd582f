// Package drawtest provides a draw.Surface that records calls, for tests.
package drawtest

import (
	"image/color"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
)

// Call is one recorded primitive
type Call struct {
	Op     string
	Rect   geom.Rect
	Sprite draw.Sprite
	Camera draw.CameraType
	Color  color.Color
	Text   string
}

// Recorder implements draw.Surface by appending every call
type Recorder struct {
	Calls     []Call
	DebugMode bool
}

func (r *Recorder) FillRect(rect geom.Rect, ct draw.CameraType, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill", Rect: rect, Camera: ct, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, ct draw.CameraType, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "stroke", Rect: rect, Camera: ct, Color: c})
}

func (r *Recorder) DrawLine(a, b geom.Vector2, ct draw.CameraType, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "line", Rect: geom.R(a.X, a.Y, b.X-a.X, b.Y-a.Y), Camera: ct, Color: c})
}

func (r *Recorder) StrokeCircle(center geom.Vector2, radius, thickness float64, ct draw.CameraType, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "circle", Rect: geom.R(center.X, center.Y, radius, thickness), Camera: ct, Color: c})
}

func (r *Recorder) DrawSprite(s draw.Sprite, ct draw.CameraType) {
	r.Calls = append(r.Calls, Call{Op: "sprite", Sprite: s, Camera: ct})
}

func (r *Recorder) Text(msg string, x, y float64) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: msg, Rect: geom.R(x, y, 0, 0), Camera: draw.Static})
}

func (r *Recorder) Debug() bool {
	return r.DebugMode
}

// Sprites returns the ids of all drawn sprites in call order
func (r *Recorder) Sprites() []draw.SpriteID {
	var out []draw.SpriteID
	for _, c := range r.Calls {
		if c.Op == "sprite" {
			out = append(out, c.Sprite.ID)
		}
	}
	return out
}

// Count returns how many calls used op
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
