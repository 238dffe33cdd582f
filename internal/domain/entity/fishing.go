package entity

import (
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
)

// Fishing minigame tuning
const (
	HookSpeed     = 60
	SwimmerMin    = 15
	SwimmerSpread = 21
)

// Hook is the fishing minigame avatar. It stays inside the water and
// catches a fish when Confirm is pressed while overlapping one.
type Hook struct {
	Kinetic

	Water  geom.Rect
	Caught int
}

// NewHook creates a hook at (x, y) confined to water
func NewHook(x, y float64, water geom.Rect) *Hook {
	return &Hook{
		Kinetic: newKinetic(x, y, 8, 8, HookSpeed, GroupHook, 0),
		Water:   water,
	}
}

func (h *Hook) Update(f *Frame) {
	h.ScaleSpeed(f.DT)
	h.UpdateInput(f)
	h.ClampTo(h.Water)
	if f.Input.Pressing(input.ActionConfirm) {
		h.catch(f.Entities)
	}
}

// UpdateInput moves the hook from the held directions
func (h *Hook) UpdateInput(f *Frame) {
	h.Velocity.X, h.Velocity.Y = 0, 0
	in := f.Input
	if in.Pressing(input.ActionUp) && !in.Pressing(input.ActionDown) {
		h.Move(DirectionUp)
	}
	if in.Pressing(input.ActionDown) && !in.Pressing(input.ActionUp) {
		h.Move(DirectionDown)
	}
	if in.Pressing(input.ActionLeft) && !in.Pressing(input.ActionRight) {
		h.Move(DirectionLeft)
	}
	if in.Pressing(input.ActionRight) && !in.Pressing(input.ActionLeft) {
		h.Move(DirectionRight)
	}
}

func (h *Hook) catch(entities []Entity) {
	for _, e := range entities {
		b := e.GetBody()
		if b.Remove || !b.Group.Has(GroupFish) || !b.Bounds().Intersects(h.Bounds()) {
			continue
		}
		b.Remove = true
		h.Caught++
		return
	}
}

func (h *Hook) Draw(s draw.Surface) {
	if s.Debug() {
		h.drawBounds(s, draw.ColorBounds)
		return
	}
	top := geom.Vec(h.Center().X, h.Water.Top())
	s.DrawLine(top, h.Center(), draw.Dynamic, draw.ColorWhite)
	draw.At(draw.SpriteHook, h.X-4, h.Y-4).Draw(s, draw.Dynamic)
}

// Swimmer is a fish patrolling the water horizontally
type Swimmer struct {
	Kinetic

	Water geom.Rect
	dir   float64
}

// NewSwimmer creates a fish at (x, y) with a random speed, heading left
// or right at random
func NewSwimmer(x, y float64, water geom.Rect, rng Rand) *Swimmer {
	s := &Swimmer{
		Kinetic: newKinetic(x, y, 16, 8, float64(SwimmerMin+rng.Intn(SwimmerSpread)), GroupFish, 0),
		Water:   water,
		dir:     1,
	}
	if rng.Intn(2) == 0 {
		s.dir = -1
	}
	return s
}

func (s *Swimmer) Update(f *Frame) {
	s.ScaleSpeed(f.DT)
	s.SetLocation(s.X+s.MoveSpeed*s.dir, s.Y)
	switch {
	case s.X <= s.Water.Left():
		s.dir = 1
	case s.X+s.Width >= s.Water.Right():
		s.dir = -1
	}
	s.ClampTo(s.Water)
}

// Heading returns +1 when swimming right and -1 when swimming left
func (s *Swimmer) Heading() float64 { return s.dir }

func (s *Swimmer) Draw(surface draw.Surface) {
	if surface.Debug() {
		s.drawBounds(surface, draw.ColorBounds)
		return
	}
	frame := 0
	if s.dir < 0 {
		frame = 1
	}
	draw.Sprite{ID: draw.SpriteFishSwimming, X: s.X, Y: s.Y - 4, Frame: frame}.Draw(surface, draw.Dynamic)
}
