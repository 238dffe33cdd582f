// Package camera keeps the world view inside a scene's bounds and maps
// world and UI coordinates onto the window.
package camera

import "github.com/younwookim/village/internal/domain/geom"

// Camera is the scrolling world camera of one scene
type Camera struct {
	viewport *Viewport
	topLeft  geom.Vector2 // world units, always clamped
}

// New creates a camera looking at the world origin through vp
func New(vp *Viewport) *Camera {
	return &Camera{viewport: vp}
}

// Viewport returns the static camera this camera projects through
func (c *Camera) Viewport() *Viewport { return c.viewport }

// Update moves the view so its top-left corner is as close to target as
// world allows. Each axis is clamped independently; the far-edge check runs
// last, so a world narrower than the view ends up right/bottom aligned.
// A world with no area is treated as exactly one view at the origin.
func (c *Camera) Update(target geom.Vector2, world geom.Rect) {
	vw, vh := c.viewport.Width, c.viewport.Height
	if world.W == 0 || world.H == 0 {
		world = geom.R(0, 0, vw, vh)
	}

	if target.X < world.Left() {
		target.X = world.Left()
	}
	if target.X+vw > world.Right() {
		target.X = world.Right() - vw
	}
	if target.Y < world.Top() {
		target.Y = world.Top()
	}
	if target.Y+vh > world.Bottom() {
		target.Y = world.Bottom() - vh
	}

	c.topLeft = target
}

// Follow centres the view on p, clamped to world
func (c *Camera) Follow(p geom.Vector2, world geom.Rect) {
	c.Update(geom.Vec(p.X-c.viewport.Width/2, p.Y-c.viewport.Height/2), world)
}

// TopLeft returns the clamped world-space top-left of the view
func (c *Camera) TopLeft() geom.Vector2 { return c.topLeft }

// ScreenTopLeft returns the view origin in window pixels, letterbox included
func (c *Camera) ScreenTopLeft() geom.Vector2 {
	return geom.Vec(
		c.topLeft.X*c.viewport.Scale-c.viewport.LetterboxX,
		c.topLeft.Y*c.viewport.Scale-c.viewport.LetterboxY,
	)
}

// ToScreen projects a world point to window pixels
func (c *Camera) ToScreen(p geom.Vector2) geom.Vector2 {
	o := c.ScreenTopLeft()
	return geom.Vec(p.X*c.viewport.Scale-o.X, p.Y*c.viewport.Scale-o.Y)
}

// View returns the world rectangle currently on screen
func (c *Camera) View() geom.Rect {
	return geom.R(c.topLeft.X, c.topLeft.Y, c.viewport.Width, c.viewport.Height)
}

// Expanded returns the view grown by margin on every side, used for culling
func (c *Camera) Expanded(margin float64) geom.Rect {
	return c.View().Expand(margin)
}
