// Package game runs the scene manager inside ebiten's game loop and
// handles the actions that sit above the scenes: quit, reset, debug and
// fullscreen toggles, recording, replay and content hot reload.
package game

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/village/internal/application/replay"
	"github.com/younwookim/village/internal/application/scene"
	"github.com/younwookim/village/internal/application/system"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
	"github.com/younwookim/village/internal/infrastructure/config"
	"github.com/younwookim/village/internal/infrastructure/render"
)

// InputSource produces this tick's logical input
type InputSource interface {
	GetInput() input.State
}

// ChangeSource reports content files changed since the last poll and any
// error hit while watching for them
type ChangeSource interface {
	Poll() ([]string, error)
}

// Options configures a Game
type Options struct {
	TPS   int
	Debug bool

	Input    InputSource
	Replayer *replay.Replayer // replaces Input when set
	Recorder *replay.Recorder
	Record   string // file the recording is saved to on quit
	Changes  ChangeSource
}

// Game implements ebiten.Game
type Game struct {
	manager *scene.Manager
	builder *system.Builder
	screen  *render.Screen
	dt      float64

	input    InputSource
	replayer *replay.Replayer
	recorder *replay.Recorder
	record   string
	changes  ChangeSource

	fullscreen    bool
	setFullscreen func(bool)
}

// New creates a game driving m. The builder provides fresh players on
// reset and rebuilds scenes on hot reload.
func New(m *scene.Manager, b *system.Builder, opts Options) *Game {
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	in := opts.Input
	if in == nil {
		in = system.NewInputSystem()
	}
	g := &Game{
		manager:       m,
		builder:       b,
		screen:        render.NewScreen(m.Viewport(), nil),
		dt:            1.0 / float64(tps),
		input:         in,
		replayer:      opts.Replayer,
		recorder:      opts.Recorder,
		record:        opts.Record,
		changes:       opts.Changes,
		setFullscreen: ebiten.SetFullscreen,
	}
	g.screen.SetDebug(opts.Debug)
	return g
}

// Manager returns the scene manager
func (g *Game) Manager() *scene.Manager { return g.manager }

// Update advances the game by one tick. It returns ebiten.Termination
// when the player quits or a replay runs out.
func (g *Game) Update() error {
	in, ok := g.nextInput()
	if !ok {
		played, _ := g.replayer.Progress()
		log.Printf("replay finished after %d frames", played)
		return ebiten.Termination
	}
	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	if in.Pressing(input.ActionQuit) {
		g.saveRecording()
		return ebiten.Termination
	}
	if in.Pressing(input.ActionToggleDebug) {
		g.screen.SetDebug(!g.screen.Debug())
	}
	if in.Pressing(input.ActionToggleFullscreen) {
		g.fullscreen = !g.fullscreen
		g.setFullscreen(g.fullscreen)
	}
	if in.Pressing(input.ActionReset) {
		g.manager.Reset(g.builder.NewPlayer())
		log.Printf("game reset")
	}
	g.reloadChanged()

	g.manager.Update(g.dt, in)
	return nil
}

func (g *Game) nextInput() (input.State, bool) {
	if g.replayer != nil {
		return g.replayer.GetInput()
	}
	return g.input.GetInput(), true
}

// reloadChanged rebuilds scenes whose files changed on disk. A grid file
// may be shared, so a grid change rebuilds every scene.
func (g *Game) reloadChanged() {
	if g.changes == nil {
		return
	}
	paths, err := g.changes.Poll()
	if err != nil {
		log.Printf("content watcher: %v", err)
	}
	for _, path := range paths {
		ids := []string{config.SceneID(path)}
		if strings.HasSuffix(path, ".csv") {
			ids = ids[:0]
			for _, s := range g.manager.Scenes() {
				ids = append(ids, string(s.ID))
			}
		}
		for _, id := range ids {
			if id == "" {
				continue
			}
			if err := g.builder.Reload(g.manager, id); err != nil {
				log.Printf("hot reload of %s failed: %v", id, err)
			}
		}
	}
}

func (g *Game) saveRecording() {
	if g.recorder == nil {
		return
	}
	filename := g.record
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := g.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, g.recorder.FrameCount())
}

// Draw renders the current scene into the window
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(draw.ColorBlack)
	g.screen.Begin(screen, g.manager.Current().Camera())
	g.screen.FillRect(g.manager.Viewport().Bounds(), draw.Static, draw.ColorBackground)
	g.manager.Draw(g.screen)
	g.screen.Letterbox(draw.ColorBlack)
}

// Layout fits the logical view into the window and renders at window
// resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.manager.Viewport().Fit(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// PlayerAt reports the player's location, for logs and replays
func (g *Game) PlayerAt() geom.Vector2 {
	b := g.manager.Player().GetBody()
	return geom.Vec(b.X, b.Y)
}
