// Package render draws the core's primitives onto an ebiten image.
//
// Coordinates arrive in logical units. Dynamic primitives go through the
// scene camera, Static ones through the viewport; both end up in window
// pixels with the display scale and letterbox applied.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/village/internal/application/camera"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
)

// Screen implements draw.Surface over an ebiten image
type Screen struct {
	target   *ebiten.Image
	viewport *camera.Viewport
	camera   *camera.Camera
	atlas    Atlas
	debug    bool
}

// NewScreen creates a screen projecting through vp
func NewScreen(vp *camera.Viewport, atlas Atlas) *Screen {
	if atlas == nil {
		atlas = DefaultAtlas
	}
	return &Screen{viewport: vp, camera: camera.New(vp), atlas: atlas}
}

// Begin points the screen at this frame's target and world camera
func (s *Screen) Begin(target *ebiten.Image, cam *camera.Camera) {
	s.target = target
	if cam != nil {
		s.camera = cam
	}
}

// SetDebug turns debug rendering on or off
func (s *Screen) SetDebug(on bool) { s.debug = on }

// Debug implements draw.Surface
func (s *Screen) Debug() bool { return s.debug }

// project maps a logical point to window pixels
func (s *Screen) project(p geom.Vector2, ct draw.CameraType) geom.Vector2 {
	if ct == draw.Static {
		return s.viewport.ToScreen(p)
	}
	return s.camera.ToScreen(p)
}

// projectRect maps a logical rectangle to window pixels
func (s *Screen) projectRect(r geom.Rect, ct draw.CameraType) geom.Rect {
	p := s.project(r.TopLeft(), ct)
	return geom.R(p.X, p.Y, r.W*s.viewport.Scale, r.H*s.viewport.Scale)
}

func (s *Screen) FillRect(r geom.Rect, ct draw.CameraType, c color.Color) {
	p := s.projectRect(r, ct)
	vector.DrawFilledRect(s.target, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), c, false)
}

func (s *Screen) StrokeRect(r geom.Rect, ct draw.CameraType, c color.Color) {
	p := s.projectRect(r, ct)
	vector.StrokeRect(s.target, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, c, false)
}

func (s *Screen) DrawLine(a, b geom.Vector2, ct draw.CameraType, c color.Color) {
	pa, pb := s.project(a, ct), s.project(b, ct)
	vector.StrokeLine(s.target, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), 1, c, false)
}

func (s *Screen) StrokeCircle(center geom.Vector2, radius, thickness float64, ct draw.CameraType, c color.Color) {
	p := s.project(center, ct)
	scale := s.viewport.Scale
	vector.StrokeCircle(s.target, float32(p.X), float32(p.Y), float32(radius*scale), float32(thickness*scale), c, true)
}

// DrawSprite draws the sprite's placeholder region. Unknown ids are drawn
// as a magenta marker in debug mode only.
func (s *Screen) DrawSprite(sp draw.Sprite, ct draw.CameraType) {
	r, ok := s.atlas.Region(sp.ID)
	if !ok {
		if s.debug {
			s.StrokeRect(geom.R(sp.X, sp.Y, 8, 8), ct, color.RGBA{255, 0, 255, 255})
		}
		return
	}
	s.FillRect(geom.R(sp.X, sp.Y, r.W, r.H), ct, r.Color)
}

// Text prints msg at a logical UI position with ebiten's debug font
func (s *Screen) Text(msg string, x, y float64) {
	p := s.viewport.ToScreen(geom.Vec(x, y))
	ebitenutil.DebugPrintAt(s.target, msg, int(p.X), int(p.Y))
}

// Letterbox paints the bars around the scaled view
func (s *Screen) Letterbox(c color.Color) {
	for _, bar := range s.viewport.Letterboxes() {
		vector.DrawFilledRect(s.target, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), c, false)
	}
}
