// Package minigame runs the arcade rounds played inside minigame scenes.
// A round is started by a minigame trigger, ticks with the scene, and
// pays its result into the player's wallet when it ends.
package minigame

import (
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/input"
	"github.com/younwookim/village/internal/domain/timer"
)

// Host is the scene a minigame runs in
type Host interface {
	Add(e entity.Entity)
	// RemoveWhere drops every entity for which match returns true
	RemoveWhere(match func(entity.Entity) bool)
}

// Minigame is one arcade round
type Minigame interface {
	// Start clears the previous round and sets up a new one
	Start(h Host, rng entity.Rand)
	Update(f *entity.Frame)
	// Running reports whether a round is in progress
	Running() bool
	// Over reports whether the running round has ended
	Over() bool
	// Finish pays the round out into w and stops it
	Finish(w *entity.Wallet)
	// Draw paints the HUD on the static camera
	Draw(s draw.Surface)
}

// round tracks the clock shared by every minigame
type round struct {
	clock   *timer.Timer
	running bool
	quit    bool
}

func newRound(lengthMs float64) round {
	return round{clock: timer.New(lengthMs, false)}
}

func (r *round) start() {
	r.clock.Restart()
	r.running = true
	r.quit = false
}

func (r *round) tick(f *entity.Frame) {
	r.clock.Update(f.DT)
	if f.Input.Pressing(input.ActionCancel) {
		r.quit = true
	}
}

func (r *round) Running() bool { return r.running }

// secondsLeft is the remaining round time rounded up
func (r *round) secondsLeft() int {
	ms := r.clock.Remaining()
	return int((ms + 999) / 1000)
}

// notPlayer matches everything except the player, who stays parked
func notPlayer(e entity.Entity) bool {
	return !e.GetBody().Group.Has(entity.GroupPlayer)
}

// offset returns a random offset in [0, span), or 0 when nothing fits
func offset(rng entity.Rand, span float64) float64 {
	if int(span) <= 0 {
		return 0
	}
	return float64(rng.Intn(int(span)))
}
