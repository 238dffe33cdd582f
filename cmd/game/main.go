package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/village/internal/application/game"
	"github.com/younwookim/village/internal/application/replay"
	"github.com/younwookim/village/internal/application/system"
	"github.com/younwookim/village/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("configs", "", "Load content from this directory and reload it on change (default: embedded)")
	debug := flag.Bool("debug", false, "Start with debug rendering on (toggle with F12)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	seedFlag := flag.Int64("seed", 0, "Random seed (default: current time)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := game.Options{TPS: cfg.Game.Display.TPS, Debug: *debug}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Scene != cfg.Game.Player.Scene {
			log.Fatalf("Replay starts in %s but the game starts in %s", data.Scene, cfg.Game.Player.Scene)
		}
		opts.Replayer = replay.NewReplayer(*data)
		seed = data.Seed
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, len(data.Frames), seed)
	}
	if *recordFlag != "" {
		opts.Recorder = replay.NewRecorder(seed, cfg.Game.Player.Scene)
		opts.Record = *recordFlag
		log.Printf("Recording enabled: %s (seed: %d)", *recordFlag, seed)
	}
	if *configDir != "" {
		w, err := config.NewWatcher(filepath.Join(*configDir, "scenes"), filepath.Join(*configDir, "grids"))
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configDir, err)
		}
		defer func() { _ = w.Close() }()
		opts.Changes = w
	}

	builder := system.NewBuilder(loader, cfg)
	manager, err := builder.BuildWorld(rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}
	g := game.New(manager, builder, opts)

	d := cfg.Game.Display
	ebiten.SetWindowSize(d.Width*d.Scale, d.Height*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads content from dir, or from the embedded copy when dir
// is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
