package game

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/village/internal/application/replay"
	"github.com/younwookim/village/internal/application/state"
	"github.com/younwookim/village/internal/application/system"
	"github.com/younwookim/village/internal/application/trigger"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
	"github.com/younwookim/village/internal/infrastructure/config"
)

const configDir = "../../../cmd/game/configs"

// script feeds a fixed list of inputs, then nothing
type script struct {
	frames []input.State
	next   int
}

func (s *script) GetInput() input.State {
	if s.next >= len(s.frames) {
		return input.State{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

type changes struct {
	paths []string
	err   error
}

func (c *changes) Poll() ([]string, error) {
	p, err := c.paths, c.err
	c.paths, c.err = nil, nil
	return p, err
}

func newGame(t *testing.T, seed int64, opts Options) *Game {
	t.Helper()
	l := config.NewLoader(configDir)
	cfg, err := l.LoadAll()
	require.NoError(t, err)
	b := system.NewBuilder(l, cfg)
	m, err := b.BuildWorld(rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return New(m, b, opts)
}

func repeat(n int, in input.State) []input.State {
	out := make([]input.State, n)
	for i := range out {
		out[i] = in
	}
	return out
}

func TestGame_UpdateMovesPlayer(t *testing.T) {
	g := newGame(t, 1, Options{Input: &script{frames: repeat(30, input.Held(input.ActionRight))}})
	start := g.PlayerAt()

	for i := 0; i < 30; i++ {
		require.NoError(t, g.Update())
	}

	assert.Greater(t, g.PlayerAt().X, start.X)
	assert.Equal(t, start.Y, g.PlayerAt().Y)
}

func TestGame_Toggles(t *testing.T) {
	var fullscreen []bool
	g := newGame(t, 1, Options{Input: &script{frames: []input.State{
		input.Held(input.ActionToggleDebug),
		input.Held(input.ActionToggleFullscreen),
		input.Held(input.ActionToggleDebug, input.ActionToggleFullscreen),
	}}})
	g.setFullscreen = func(on bool) { fullscreen = append(fullscreen, on) }

	require.NoError(t, g.Update())
	assert.True(t, g.screen.Debug())
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.False(t, g.screen.Debug())
	assert.Equal(t, []bool{true, false}, fullscreen)
}

func TestGame_QuitSavesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	rec := replay.NewRecorder(1, "village")
	g := newGame(t, 1, Options{
		Input:    &script{frames: []input.State{input.Held(input.ActionUp), input.Held(input.ActionQuit)}},
		Recorder: rec,
		Record:   path,
	})

	require.NoError(t, g.Update())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
}

func TestGame_Reset(t *testing.T) {
	frames := repeat(20, input.Held(input.ActionDown))
	frames = append(frames, input.Held(input.ActionReset))
	g := newGame(t, 1, Options{Input: &script{frames: frames}})
	old := g.Manager().Player()

	for range frames {
		require.NoError(t, g.Update())
	}

	assert.NotSame(t, old, g.Manager().Player())
	assert.Equal(t, trigger.SceneID("village"), g.Manager().Current().ID)
	assert.Equal(t, state.Idle, g.Manager().State())
}

func TestGame_ReplayReproducesSession(t *testing.T) {
	var frames []input.State
	frames = append(frames, repeat(40, input.Held(input.ActionLeft))...)
	frames = append(frames, repeat(25, input.Held(input.ActionUp))...)
	frames = append(frames, repeat(10, input.Held(input.ActionUp, input.ActionConfirm))...)
	frames = append(frames, repeat(60, input.Held(input.ActionDown, input.ActionRight))...)

	rec := replay.NewRecorder(7, "village")
	live := newGame(t, 7, Options{Input: &script{frames: frames}, Recorder: rec})
	for range frames {
		require.NoError(t, live.Update())
	}

	p := replay.NewReplayer(rec.Data())
	replayed := newGame(t, p.Seed(), Options{Replayer: p})
	for range frames {
		require.NoError(t, replayed.Update())
	}
	assert.ErrorIs(t, replayed.Update(), ebiten.Termination, "replay ran out")

	assert.Equal(t, live.PlayerAt(), replayed.PlayerAt())
	assert.Equal(t, live.Manager().Current().ID, replayed.Manager().Current().ID)
	assert.Equal(t, live.Manager().State(), replayed.Manager().State())
}

func TestGame_HotReloadIgnoresUnknownFiles(t *testing.T) {
	ch := &changes{paths: []string{"configs/game.json", "configs/scenes/room.yaml"}}
	g := newGame(t, 1, Options{Input: &script{}, Changes: ch})
	room := g.Manager().Scene("room")
	before := len(room.Entities())

	require.NoError(t, g.Update())

	assert.Len(t, room.Entities(), before)
	assert.Nil(t, ch.paths, "drained")
}

func TestGame_WatchErrorsDoNotStopTheGame(t *testing.T) {
	ch := &changes{err: errors.New("queue overflow")}
	g := newGame(t, 1, Options{Input: &script{}, Changes: ch})

	require.NoError(t, g.Update())
	assert.Nil(t, ch.err, "drained")
}

func TestGame_Layout(t *testing.T) {
	g := newGame(t, 1, Options{Input: &script{}})

	w, h := g.Layout(1280, 800)

	assert.Equal(t, 1280, w)
	assert.Equal(t, 800, h)
	vp := g.Manager().Viewport()
	assert.Equal(t, 4.0, vp.Scale)
	assert.Equal(t, geom.Vec(0, 40), vp.ToScreen(geom.Vec(0, 0)))
}
