package entity

import (
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/input"
)

// Entity is anything a scene updates and draws
type Entity interface {
	GetBody() *Body
	Update(f *Frame)
	Draw(s draw.Surface)
}

// Actor is an entity driven by player input
type Actor interface {
	Entity
	UpdateInput(f *Frame)
}

// Base supplies the body and panicking defaults for Update and Draw.
// Concrete entities embed it and override both.
type Base struct {
	Body
}

// Update must be overridden
func (b *Base) Update(*Frame) {
	panic("entity: Update not implemented")
}

// Draw must be overridden
func (b *Base) Draw(draw.Surface) {
	panic("entity: Draw not implemented")
}

// Rand is the randomness an update pass may draw from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Frame carries everything an entity may read during one update pass
type Frame struct {
	DT       float64 // seconds
	Entities []Entity
	Input    input.Source
	Rand     Rand

	spawned []Entity
}

// NewFrame builds the context for one update pass
func NewFrame(dt float64, entities []Entity, in input.Source, rng Rand) *Frame {
	if in == nil {
		in = input.Nothing
	}
	return &Frame{DT: dt, Entities: entities, Input: in, Rand: rng}
}

// Spawn queues an entity to be added to the scene after the pass
func (f *Frame) Spawn(e Entity) {
	f.spawned = append(f.spawned, e)
}

// Spawned drains the spawn queue
func (f *Frame) Spawned() []Entity {
	out := f.spawned
	f.spawned = nil
	return out
}

// NearestPlayer returns the player closest to from, or nil
func (f *Frame) NearestPlayer(from *Body) *Player {
	var (
		best     *Player
		bestDist float64
	)
	for _, e := range f.Entities {
		if !e.GetBody().Group.Has(GroupPlayer) {
			continue
		}
		p, ok := e.(*Player)
		if !ok {
			continue
		}
		d := distance(from, &p.Body)
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
