package entity

import (
	"math"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
)

// Probe indices into Kinetic.Probes
const (
	ProbeTop = iota
	ProbeBottom
	ProbeLeft
	ProbeRight
)

// Kinetic is a body that moves and resolves collisions against solids.
//
// Velocity only carries the sign of this frame's movement per axis; it is
// cleared at the start of every update and used to pick which probe may
// push the body back out of a solid.
type Kinetic struct {
	Base

	Velocity  geom.Vector2
	BaseSpeed float64 // units per second
	MoveSpeed float64 // units this frame
	Facing    Direction
	Probes    [4]geom.Rect
	Solids    Group
}

func newKinetic(x, y, w, h, speed float64, group, solids Group) Kinetic {
	return Kinetic{
		Base:      Base{Body: Body{X: x, Y: y, Width: w, Height: h, Group: group}},
		BaseSpeed: speed,
		Solids:    solids,
	}
}

// ScaleSpeed converts BaseSpeed to this frame's displacement
func (k *Kinetic) ScaleSpeed(dt float64) {
	k.MoveSpeed = k.BaseSpeed * dt
}

// UpdateProbes rebuilds the four thin probe rectangles just outside each
// edge. Probe depth is MoveSpeed+1; the inset along the edge is clamped so
// every probe keeps a positive span on small bodies.
func (k *Kinetic) UpdateProbes() {
	d := k.MoveSpeed + 1
	ix := math.Min(d, (k.Width-1)/2)
	iy := math.Min(d, (k.Height-1)/2)
	x, y, w, h := k.X, k.Y, k.Width, k.Height

	k.Probes[ProbeTop] = geom.R(x+ix, y-d, w-2*ix, d)
	k.Probes[ProbeBottom] = geom.R(x+ix, y+h, w-2*ix, d)
	k.Probes[ProbeLeft] = geom.R(x-d, y+iy, d, h-2*iy)
	k.Probes[ProbeRight] = geom.R(x+w, y+iy, d, h-2*iy)
}

// Resolve pushes the body out of other along at most one axis, picking
// the first probe that touches other while moving toward it.
func (k *Kinetic) Resolve(other *Body) {
	ob := other.Bounds()
	switch {
	case k.Probes[ProbeTop].Intersects(ob) && k.Velocity.Y < 0:
		k.SetLocation(k.X, ob.Bottom())
	case k.Probes[ProbeBottom].Intersects(ob) && k.Velocity.Y > 0:
		k.SetLocation(k.X, ob.Top()-k.Height)
	case k.Probes[ProbeLeft].Intersects(ob) && k.Velocity.X < 0:
		k.SetLocation(ob.Right(), k.Y)
	case k.Probes[ProbeRight].Intersects(ob) && k.Velocity.X > 0:
		k.SetLocation(ob.Left()-k.Width, k.Y)
	}
}

// Collide resolves against every entity in a solid group
func (k *Kinetic) Collide(entities []Entity) {
	for _, e := range entities {
		b := e.GetBody()
		if b == &k.Body || !b.Group.Has(k.Solids) {
			continue
		}
		k.Resolve(b)
	}
}

// Move steps MoveSpeed units toward dir and records facing and velocity
func (k *Kinetic) Move(dir Direction) {
	k.Facing = dir
	switch dir {
	case DirectionUp:
		k.SetLocation(k.X, k.Y-k.MoveSpeed)
		k.Velocity.Y = -1
	case DirectionDown:
		k.SetLocation(k.X, k.Y+k.MoveSpeed)
		k.Velocity.Y = 1
	case DirectionLeft:
		k.SetLocation(k.X-k.MoveSpeed, k.Y)
		k.Velocity.X = -1
	case DirectionRight:
		k.SetLocation(k.X+k.MoveSpeed, k.Y)
		k.Velocity.X = 1
	}
}

// ClampTo keeps the body inside area
func (k *Kinetic) ClampTo(area geom.Rect) {
	if k.X < area.Left() {
		k.X = area.Left()
	} else if k.X+k.Width > area.Right() {
		k.X = area.Right() - k.Width
	}
	if k.Y < area.Top() {
		k.Y = area.Top()
	} else if k.Y+k.Height > area.Bottom() {
		k.Y = area.Bottom() - k.Height
	}
}

func (k *Kinetic) drawProbes(s draw.Surface) {
	for _, p := range k.Probes {
		s.StrokeRect(p, draw.Dynamic, draw.ColorProbe)
	}
}

func distance(a, b *Body) float64 {
	return geom.Distance(a.Center(), b.Center())
}

// offscreenLeft reports whether b has scrolled fully past the left edge x
func offscreenLeft(b *Body, x float64) bool {
	return b.X+b.Width < x
}
