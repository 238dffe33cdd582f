// Package trigger moves entities between scenes when they enter a region,
// press a button in front of a door, or step up to a minigame.
package trigger

import (
	"fmt"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
)

// SceneID names a scene
type SceneID string

// Router is what a trigger needs from the scene manager
type Router interface {
	IsPlayer(e entity.Entity) bool
	// Relay moves e into scene to at location at. The player's move is
	// animated; other entities move at once.
	Relay(e entity.Entity, to SceneID, at geom.Vector2)
	// SetReturn sets the end location of trigger triggerID in scene to
	SetReturn(to SceneID, triggerID string, at geom.Vector2)
	// StartMinigame starts the round of scene to
	StartMinigame(to SceneID)
}

// Trigger is a region that sends entities to another scene
type Trigger interface {
	ID() string
	Bounds() geom.Rect
	Target() SceneID
	End() geom.Vector2
	SetEnd(at geom.Vector2)
	Update(f *entity.Frame, r Router)
	Draw(s draw.Surface)
}

// base holds the data every trigger shares
type base struct {
	id     string
	bounds geom.Rect
	target SceneID
	end    geom.Vector2
}

func (b *base) ID() string { return b.id }

func (b *base) Bounds() geom.Rect { return b.bounds }

func (b *base) Target() SceneID { return b.target }

func (b *base) End() geom.Vector2 { return b.end }

func (b *base) SetEnd(at geom.Vector2) { b.end = at }

func (b *base) Draw(s draw.Surface) {
	s.StrokeRect(b.bounds, draw.Dynamic, draw.ColorTrigger)
}

// CollisionTrigger relays every matching entity that overlaps it
type CollisionTrigger struct {
	base
	Groups entity.Group // groups that are relayed
}

// NewCollision creates a trigger relaying only the player
func NewCollision(id string, bounds geom.Rect, target SceneID, end geom.Vector2) *CollisionTrigger {
	return &CollisionTrigger{
		base:   base{id: id, bounds: bounds, target: target, end: end},
		Groups: entity.GroupPlayer,
	}
}

func (t *CollisionTrigger) Update(f *entity.Frame, r Router) {
	var hits []entity.Entity
	for _, e := range f.Entities {
		b := e.GetBody()
		if b.Remove || !b.Group.Has(t.Groups) || !b.Bounds().Intersects(t.bounds) {
			continue
		}
		hits = append(hits, e)
	}
	for _, e := range hits {
		r.Relay(e, t.target, t.end)
	}
}

// ButtonTrigger relays the player when Confirm is pressed inside it while
// facing Facing. When ReturnID is set, the trigger of that id in the
// target scene is pointed back at the spot the player left from.
type ButtonTrigger struct {
	base
	Facing   entity.Direction // DirectionNone accepts any facing
	ReturnID string
}

// NewButton creates a button trigger
func NewButton(id string, bounds geom.Rect, target SceneID, end geom.Vector2, facing entity.Direction) *ButtonTrigger {
	return &ButtonTrigger{
		base:   base{id: id, bounds: bounds, target: target, end: end},
		Facing: facing,
	}
}

func (t *ButtonTrigger) Update(f *entity.Frame, r Router) {
	if !f.Input.Pressing(input.ActionConfirm) {
		return
	}
	for _, e := range f.Entities {
		if !r.IsPlayer(e) {
			continue
		}
		b := e.GetBody()
		if !b.Bounds().Intersects(t.bounds) || !t.facing(e) {
			continue
		}
		if t.ReturnID != "" {
			r.SetReturn(t.target, t.ReturnID, geom.Vec(b.X, b.Y))
		}
		r.Relay(e, t.target, t.end)
		return
	}
}

func (t *ButtonTrigger) facing(e entity.Entity) bool {
	if t.Facing == entity.DirectionNone {
		return true
	}
	p, ok := e.(*entity.Player)
	return ok && p.Facing == t.Facing
}

// MinigameTrigger sends the player into a minigame scene when Confirm is
// pressed inside it
type MinigameTrigger struct {
	base
}

// NewMinigame creates a minigame trigger
func NewMinigame(id string, bounds geom.Rect, target SceneID, end geom.Vector2) *MinigameTrigger {
	return &MinigameTrigger{base: base{id: id, bounds: bounds, target: target, end: end}}
}

func (t *MinigameTrigger) Update(f *entity.Frame, r Router) {
	if !f.Input.Pressing(input.ActionConfirm) {
		return
	}
	for _, e := range f.Entities {
		if !r.IsPlayer(e) || !e.GetBody().Bounds().Intersects(t.bounds) {
			continue
		}
		if _, ok := e.(entity.Actor); !ok {
			panic(fmt.Sprintf("trigger %q: minigame player %T is not an actor", t.id, e))
		}
		r.Relay(e, t.target, t.end)
		r.StartMinigame(t.target)
		return
	}
}
