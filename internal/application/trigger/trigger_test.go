package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/village/internal/domain/draw/drawtest"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
)

type relay struct {
	e  entity.Entity
	to SceneID
	at geom.Vector2
}

type returnCall struct {
	to        SceneID
	triggerID string
	at        geom.Vector2
}

// mockRouter records every routing call
type mockRouter struct {
	player    entity.Entity
	relays    []relay
	returns   []returnCall
	minigames []SceneID
}

func (m *mockRouter) IsPlayer(e entity.Entity) bool { return e == m.player }

func (m *mockRouter) Relay(e entity.Entity, to SceneID, at geom.Vector2) {
	m.relays = append(m.relays, relay{e, to, at})
}

func (m *mockRouter) SetReturn(to SceneID, triggerID string, at geom.Vector2) {
	m.returns = append(m.returns, returnCall{to, triggerID, at})
}

func (m *mockRouter) StartMinigame(to SceneID) {
	m.minigames = append(m.minigames, to)
}

func frame(in input.Source, entities ...entity.Entity) *entity.Frame {
	return entity.NewFrame(1.0/60, entities, in, nil)
}

func TestCollisionTrigger(t *testing.T) {
	p := entity.NewPlayer(5, 50)
	npc := entity.NewNPC(2, 20, entity.NPCOptions{})
	outside := entity.NewNPC(100, 100, entity.NPCOptions{})
	r := &mockRouter{player: p}

	trig := NewCollision("west", geom.R(0, 0, 8, 180), "forest", geom.Vec(288, 90))
	trig.Update(frame(nil, p, npc, outside), r)

	require.Len(t, r.relays, 1)
	assert.Equal(t, relay{p, "forest", geom.Vec(288, 90)}, r.relays[0])

	r.relays = nil
	trig.Groups = entity.GroupPlayer | entity.GroupNPC
	trig.Update(frame(nil, p, npc, outside), r)
	assert.Len(t, r.relays, 2)
}

func TestButtonTrigger(t *testing.T) {
	door := geom.R(96, 80, 16, 8)

	tests := []struct {
		name    string
		held    []input.Action
		facing  entity.Direction
		x, y    float64
		relayed bool
	}{
		{"confirm facing door", []input.Action{input.ActionConfirm, input.ActionUp}, entity.DirectionUp, 100, 82, true},
		{"no confirm", []input.Action{input.ActionUp}, entity.DirectionUp, 100, 82, false},
		{"facing away", []input.Action{input.ActionConfirm}, entity.DirectionDown, 100, 82, false},
		{"outside", []input.Action{input.ActionConfirm}, entity.DirectionUp, 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewPlayer(tt.x, tt.y)
			p.Facing = tt.facing
			r := &mockRouter{player: p}

			trig := NewButton("house", door, "room", geom.Vec(66, 144), entity.DirectionUp)
			trig.Update(frame(input.Held(tt.held...), p), r)

			if !tt.relayed {
				assert.Empty(t, r.relays)
				return
			}
			require.Len(t, r.relays, 1)
			assert.Equal(t, relay{p, "room", geom.Vec(66, 144)}, r.relays[0])
			assert.Empty(t, r.returns)
		})
	}
}

func TestButtonTrigger_SetsReturn(t *testing.T) {
	p := entity.NewPlayer(100, 82)
	r := &mockRouter{player: p}

	trig := NewButton("house", geom.R(96, 80, 16, 8), "room", geom.Vec(66, 144), entity.DirectionNone)
	trig.ReturnID = "room-exit"
	trig.Update(frame(input.Held(input.ActionConfirm), p), r)

	require.Len(t, r.returns, 1)
	assert.Equal(t, returnCall{"room", "room-exit", geom.Vec(100, 82)}, r.returns[0])
	assert.Len(t, r.relays, 1)
}

func TestButtonTrigger_IgnoresNonPlayers(t *testing.T) {
	npc := entity.NewNPC(100, 82, entity.NPCOptions{})
	r := &mockRouter{}

	trig := NewButton("house", geom.R(96, 80, 16, 8), "room", geom.Vec(0, 0), entity.DirectionNone)
	trig.Update(frame(input.Held(input.ActionConfirm), npc), r)

	assert.Empty(t, r.relays)
}

func TestMinigameTrigger(t *testing.T) {
	p := entity.NewPlayer(10, 10)
	r := &mockRouter{player: p}

	trig := NewMinigame("pier", geom.R(0, 0, 32, 32), "fishing", geom.Vec(0, 0))
	trig.Update(frame(input.Nothing, p), r)
	assert.Empty(t, r.minigames)

	trig.Update(frame(input.Held(input.ActionConfirm), p), r)
	assert.Len(t, r.relays, 1)
	assert.Equal(t, []SceneID{"fishing"}, r.minigames)
}

func TestMinigameTrigger_PanicsOnNonActor(t *testing.T) {
	tree := entity.NewTree(10, 10)
	r := &mockRouter{player: tree}

	trig := NewMinigame("pier", geom.R(0, 0, 32, 32), "fishing", geom.Vec(0, 0))

	assert.Panics(t, func() {
		trig.Update(frame(input.Held(input.ActionConfirm), tree), r)
	})
}

func TestTrigger_Accessors(t *testing.T) {
	var trig Trigger = NewCollision("a", geom.R(1, 2, 3, 4), "b", geom.Vec(5, 6))

	assert.Equal(t, "a", trig.ID())
	assert.Equal(t, geom.R(1, 2, 3, 4), trig.Bounds())
	assert.Equal(t, SceneID("b"), trig.Target())

	trig.SetEnd(geom.Vec(7, 8))
	assert.Equal(t, geom.Vec(7, 8), trig.End())

	rec := &drawtest.Recorder{}
	trig.Draw(rec)
	assert.Equal(t, 1, rec.Count("stroke"))
}
