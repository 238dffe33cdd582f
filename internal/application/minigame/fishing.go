package minigame

import (
	"fmt"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/timer"
)

// FishingConfig tunes the fishing round
type FishingConfig struct {
	Water   geom.Rect
	RoundMs float64
	SpawnMs float64 // restock interval
	MaxFish int
}

// DefaultFishingConfig returns the tuning used by the shipped scenes
func DefaultFishingConfig(viewW, viewH float64) FishingConfig {
	return FishingConfig{
		Water:   geom.R(16, 48, viewW-32, viewH-64),
		RoundMs: 45000,
		SpawnMs: 1500,
		MaxFish: 5,
	}
}

// Fishing lowers a hook into a pond of swimming fish. Each catch becomes
// a fish in the wallet.
type Fishing struct {
	round
	cfg FishingConfig

	Hook    *entity.Hook
	restock *timer.Timer
	host    Host
}

// NewFishing creates an idle fishing round
func NewFishing(cfg FishingConfig) *Fishing {
	return &Fishing{
		round:   newRound(cfg.RoundMs),
		cfg:     cfg,
		restock: timer.New(cfg.SpawnMs, false),
	}
}

func (g *Fishing) Start(h Host, rng entity.Rand) {
	h.RemoveWhere(notPlayer)
	g.host = h

	w := g.cfg.Water
	g.Hook = entity.NewHook(w.Center().X-4, w.Y+8, w)
	h.Add(g.Hook)
	for i := 0; i < g.cfg.MaxFish; i++ {
		h.Add(g.newFish(rng))
	}

	g.restock.Restart()
	g.start()
}

func (g *Fishing) newFish(rng entity.Rand) *entity.Swimmer {
	w := g.cfg.Water
	x := w.X + offset(rng, w.W-16)
	y := w.Y + 16 + offset(rng, w.H-24)
	return entity.NewSwimmer(x, y, w, rng)
}

func (g *Fishing) Update(f *entity.Frame) {
	if !g.running {
		return
	}
	g.tick(f)

	g.restock.Update(f.DT)
	if g.restock.Done() {
		if g.fishLeft(f.Entities) < g.cfg.MaxFish {
			f.Spawn(g.newFish(f.Rand))
		}
		g.restock.Restart()
	}
}

func (g *Fishing) fishLeft(entities []entity.Entity) int {
	n := 0
	for _, e := range entities {
		b := e.GetBody()
		if !b.Remove && b.Group.Has(entity.GroupFish) {
			n++
		}
	}
	return n
}

func (g *Fishing) Over() bool {
	return g.running && (g.quit || g.clock.Done())
}

func (g *Fishing) Finish(w *entity.Wallet) {
	if !g.running {
		return
	}
	g.running = false
	if w != nil {
		w.Add(entity.ItemFish, g.Hook.Caught)
	}
	if g.host != nil {
		g.host.RemoveWhere(notPlayer)
	}
}

func (g *Fishing) Draw(s draw.Surface) {
	if g.Hook == nil {
		return
	}
	s.Text(fmt.Sprintf("fish %d  time %d", g.Hook.Caught, g.secondsLeft()), 4, 4)
}
