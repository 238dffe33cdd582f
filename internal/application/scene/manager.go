package scene

import (
	"fmt"
	"log"

	"github.com/younwookim/village/internal/application/camera"
	"github.com/younwookim/village/internal/application/state"
	"github.com/younwookim/village/internal/application/transition"
	"github.com/younwookim/village/internal/application/trigger"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
)

// ManagerOptions tunes scene transitions
type ManagerOptions struct {
	Reentry            state.ReentryPolicy
	TransitionDuration float32 // seconds per pinhole; 0 uses the default
}

// request is a scene change waiting for the running transition to end
type request struct {
	to  trigger.SceneID
	end geom.Vector2
}

// Manager owns every scene, updates the current one and animates the
// player's moves between them. It is the Router handed to triggers.
type Manager struct {
	scenes   map[trigger.SceneID]*Scene
	order    []trigger.SceneID
	viewport *camera.Viewport
	rng      entity.Rand
	reentry  state.ReentryPolicy

	current  *Scene
	previous *Scene
	next     *Scene
	end      geom.Vector2
	state    state.TransitionState
	pending  *request

	opening *transition.Pinhole
	closing *transition.Pinhole

	player  entity.Entity
	startID trigger.SceneID
}

// NewManager creates a manager drawing transitions over vp
func NewManager(vp *camera.Viewport, rng entity.Rand, opts ManagerOptions) *Manager {
	view := vp.Bounds()
	return &Manager{
		scenes:   make(map[trigger.SceneID]*Scene),
		viewport: vp,
		rng:      rng,
		reentry:  opts.Reentry,
		opening:  transition.NewPinhole(transition.Open, view, opts.TransitionDuration),
		closing:  transition.NewPinhole(transition.Close, view, opts.TransitionDuration),
	}
}

// Add registers a scene. Scene ids must be unique.
func (m *Manager) Add(s *Scene) {
	if _, ok := m.scenes[s.ID]; ok {
		panic(fmt.Sprintf("scene manager: duplicate scene %q", s.ID))
	}
	m.scenes[s.ID] = s
	m.order = append(m.order, s.ID)
}

// Scene returns the scene with the given id and panics if there is none
func (m *Manager) Scene(id trigger.SceneID) *Scene {
	s, ok := m.scenes[id]
	if !ok {
		panic(fmt.Sprintf("scene manager: unknown scene %q", id))
	}
	return s
}

// Scenes returns every scene in registration order
func (m *Manager) Scenes() []*Scene {
	out := make([]*Scene, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.scenes[id])
	}
	return out
}

// Current returns the scene being played
func (m *Manager) Current() *Scene { return m.current }

// State returns the transition state
func (m *Manager) State() state.TransitionState { return m.state }

// Player returns the player entity
func (m *Manager) Player() entity.Entity { return m.player }

// Viewport returns the static camera shared by all scenes
func (m *Manager) Viewport() *camera.Viewport { return m.viewport }

// Start places the player in scene id at its current location
func (m *Manager) Start(id trigger.SceneID, player entity.Entity) {
	s := m.Scene(id)
	b := player.GetBody()
	s.AddPlayer(player, geom.Vec(b.X, b.Y))
	s.UpdateCamera()

	m.player = player
	m.startID = id
	m.current = s
	m.previous, m.next = nil, nil
	m.state = state.Idle
	m.pending = nil
	log.Printf("scene manager: start in %s", id)
}

// Reset rebuilds every scene and restarts with a fresh player
func (m *Manager) Reset(player entity.Entity) {
	for _, s := range m.Scenes() {
		s.RemovePlayer()
		s.Reset()
	}
	m.Start(m.startID, player)
}

// ReloadScene rebuilds a single scene in place. A non-nil populate
// replaces the scene's content for good.
func (m *Manager) ReloadScene(id trigger.SceneID, populate Populate) {
	s := m.Scene(id)
	if populate != nil {
		s.Rebuild(populate)
	} else {
		s.Reset()
	}
	log.Printf("scene manager: reloaded %s", id)
}

// IsPlayer reports whether e is the player
func (m *Manager) IsPlayer(e entity.Entity) bool {
	return m.player != nil && e == m.player
}

// Relay moves e into scene to at location at. The player's move is queued
// behind a transition; anything else moves at once.
func (m *Manager) Relay(e entity.Entity, to trigger.SceneID, at geom.Vector2) {
	if m.IsPlayer(e) {
		m.QueueNextScene(to, at)
		return
	}
	target := m.Scene(to)
	if m.current != nil {
		m.current.Remove(e)
	}
	e.GetBody().SetLocation(at.X, at.Y)
	target.Add(e)
}

// SetReturn points trigger triggerID of scene to at at
func (m *Manager) SetReturn(to trigger.SceneID, triggerID string, at geom.Vector2) {
	t := m.Scene(to).Trigger(triggerID)
	if t == nil {
		panic(fmt.Sprintf("scene manager: scene %q has no trigger %q", to, triggerID))
	}
	t.SetEnd(at)
}

// StartMinigame starts the round of scene to
func (m *Manager) StartMinigame(to trigger.SceneID) {
	s := m.Scene(to)
	if s.Minigame == nil {
		panic(fmt.Sprintf("scene manager: scene %q has no minigame", to))
	}
	s.Minigame.Start(s, m.rng)
}

// QueueNextScene starts the transition to scene to. The player arrives at
// end once the closing iris is done. While a transition is running the
// request is dropped or, with ReentryQueue, held until it ends; a later
// request replaces an earlier held one.
func (m *Manager) QueueNextScene(to trigger.SceneID, end geom.Vector2) {
	next := m.Scene(to)
	if m.state.InFlight() {
		if m.reentry == state.ReentryQueue {
			m.pending = &request{to: to, end: end}
		}
		return
	}
	m.previous = m.current
	m.next = next
	m.end = end
	m.closing.Reset()
	m.state = state.LeavingOld
}

// Update advances the current scene or the running transition by dt
// seconds
func (m *Manager) Update(dt float64, in input.Source) {
	switch m.state {
	case state.Idle:
		m.current.Update(Context{DT: dt, Input: in, Rand: m.rng, Router: m})
	case state.LeavingOld:
		m.closing.Update(dt)
		m.current.UpdateCamera()
		if m.closing.Done() {
			m.swap()
		}
	case state.EnteringNew:
		m.opening.Update(dt)
		m.current.UpdateCamera()
		if m.opening.Done() {
			m.settle()
		}
	}
}

// settle ends the transition and starts any held request
func (m *Manager) settle() {
	m.state = state.Idle
	m.previous, m.next = nil, nil
	if p := m.pending; p != nil {
		m.pending = nil
		m.QueueNextScene(p.to, p.end)
	}
}

// swap moves the player from the old scene into the new one. Time the
// closing iris ran past its end is spent on the opening one.
func (m *Manager) swap() {
	m.previous.RemovePlayer()
	m.next.AddPlayer(m.player, m.end)
	m.current = m.next
	m.current.UpdateCamera()
	m.opening.Reset()
	m.state = state.EnteringNew
	log.Printf("scene manager: %s -> %s at (%.0f, %.0f)", m.previous.ID, m.next.ID, m.end.X, m.end.Y)

	if over := m.closing.Overflow(); over > 0 {
		m.opening.Update(over)
		if m.opening.Done() {
			m.settle()
		}
	}
}

// Draw paints the current scene, the HUD and any running transition
func (m *Manager) Draw(s draw.Surface) {
	m.current.Draw(s)

	if p, ok := m.player.(*entity.Player); ok && !m.current.HidePlayer {
		w := p.Wallet
		s.Text(fmt.Sprintf("coins %d  coffee %d  fish %d",
			w.Coins, w.Count(entity.ItemCoffee), w.Count(entity.ItemFish)), 4, 4)
	}

	switch m.state {
	case state.LeavingOld:
		m.closing.Draw(s)
	case state.EnteringNew:
		m.opening.Draw(s)
	}
}
