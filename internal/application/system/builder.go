package system

import (
	"fmt"
	"log"

	"github.com/younwookim/village/internal/application/camera"
	"github.com/younwookim/village/internal/application/minigame"
	"github.com/younwookim/village/internal/application/scene"
	"github.com/younwookim/village/internal/application/state"
	"github.com/younwookim/village/internal/application/trigger"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/infrastructure/config"
)

// staticSprites are the sprite names usable in sprite lists and grids
var staticSprites = map[string]draw.SpriteID{
	"grass":        draw.SpriteGrass,
	"water":        draw.SpriteWater,
	"tree_cluster": draw.SpriteTreeCluster,
}

var groupNames = map[string]entity.Group{
	"player": entity.GroupPlayer,
	"npc":    entity.GroupNPC,
}

// Builder turns scene layouts into scenes
type Builder struct {
	loader   *config.Loader
	cfg      *config.Config
	viewport *camera.Viewport
}

// NewBuilder creates a builder for the loaded configuration
func NewBuilder(l *config.Loader, cfg *config.Config) *Builder {
	d := cfg.Game.Display
	vp := camera.NewViewport(float64(d.Width), float64(d.Height), camera.ParseOrientation(d.Orientation))
	return &Builder{loader: l, cfg: cfg, viewport: vp}
}

// Viewport returns the logical screen every scene is drawn on
func (b *Builder) Viewport() *camera.Viewport { return b.viewport }

// NewPlayer creates the player at its configured start
func (b *Builder) NewPlayer() *entity.Player {
	pc := b.cfg.Game.Player
	p := entity.NewPlayer(pc.X, pc.Y)
	if pc.Speed > 0 {
		p.BaseSpeed = pc.Speed
	}
	return p
}

// BuildWorld builds every configured scene into a manager and places the
// player in the start scene
func (b *Builder) BuildWorld(rng entity.Rand) (*scene.Manager, error) {
	reentry, err := state.ParseReentryPolicy(b.cfg.Game.Transition.Reentry)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}
	m := scene.NewManager(b.viewport, rng, scene.ManagerOptions{
		Reentry:            reentry,
		TransitionDuration: float32(b.cfg.Game.Transition.Duration),
	})

	for _, layout := range b.cfg.Scenes {
		s, err := b.Build(layout)
		if err != nil {
			return nil, err
		}
		m.Add(s)
	}

	m.Start(trigger.SceneID(b.cfg.Game.Player.Scene), b.NewPlayer())
	log.Printf("built %d scenes", len(b.cfg.Scenes))
	return m, nil
}

// Build creates the scene described by layout
func (b *Builder) Build(layout *config.SceneLayout) (*scene.Scene, error) {
	populate, err := b.Populate(layout)
	if err != nil {
		return nil, err
	}
	kind, _ := scene.ParseKind(layout.Kind)
	return scene.New(trigger.SceneID(layout.ID), kind, rectOf(layout.World), b.viewport, populate), nil
}

// Reload reads scenes/<id>.yaml again and swaps the result into m.
// The layout is checked against the other scenes first; on error the
// running scene is left untouched.
func (b *Builder) Reload(m *scene.Manager, id string) error {
	layout, err := b.loader.LoadScene(id)
	if err != nil {
		return err
	}

	next := &config.Config{Game: b.cfg.Game}
	found := false
	for _, s := range b.cfg.Scenes {
		if s.ID == id {
			s = layout
			found = true
		}
		next.Scenes = append(next.Scenes, s)
	}
	if !found {
		return fmt.Errorf("failed to reload scene %s: not part of the game", id)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("failed to reload scene %s: %w", id, err)
	}

	populate, err := b.Populate(layout)
	if err != nil {
		return err
	}
	b.cfg = next
	m.ReloadScene(trigger.SceneID(id), populate)
	return nil
}

// blueprint is a layout with every name resolved
type blueprint struct {
	kind       scene.Kind
	world      geom.Rect
	hidePlayer bool
	cullMargin float64
	exit       *scene.Exit
	minigame   string

	shapes   []scene.Shape
	statics  []draw.Sprite
	entities []func() entity.Entity
	triggers []func() trigger.Trigger
}

// Populate compiles layout into a function that fills a scene with fresh
// entities, triggers and minigame on every call. All names and grid files
// are resolved here so a bad layout fails before any scene changes.
func (b *Builder) Populate(layout *config.SceneLayout) (scene.Populate, error) {
	bp, err := b.compile(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", layout.ID, err)
	}

	return func(s *scene.Scene) {
		s.Kind = bp.kind
		s.World = bp.world
		s.HidePlayer = bp.hidePlayer
		s.CullMargin = bp.cullMargin
		s.Exit = bp.exit
		s.Minigame = b.newMinigame(bp.minigame)

		for _, sh := range bp.shapes {
			s.AddShape(sh.Rect, sh.Color)
		}
		for _, sp := range bp.statics {
			s.AddStatic(sp)
		}
		for _, mk := range bp.entities {
			s.Add(mk())
		}
		for _, mk := range bp.triggers {
			s.AddTrigger(mk())
		}
	}, nil
}

func (b *Builder) compile(layout *config.SceneLayout) (*blueprint, error) {
	kind, err := scene.ParseKind(layout.Kind)
	if err != nil {
		return nil, err
	}
	bp := &blueprint{
		kind:       kind,
		world:      rectOf(layout.World),
		hidePlayer: layout.HidePlayer,
		cullMargin: layout.CullMargin,
	}
	if bp.world.W <= 0 || bp.world.H <= 0 {
		return nil, fmt.Errorf("world must have a positive size")
	}
	if bp.cullMargin <= 0 {
		bp.cullMargin = scene.DefaultCullMargin
	}
	if layout.Exit != nil {
		bp.exit = &scene.Exit{Scene: trigger.SceneID(layout.Exit.Scene), At: geom.Vec(layout.Exit.X, layout.Exit.Y)}
	}
	switch layout.Minigame {
	case "", "coffee", "fishing":
		bp.minigame = layout.Minigame
	default:
		return nil, fmt.Errorf("unknown minigame %q", layout.Minigame)
	}
	if bp.minigame != "" && bp.exit == nil {
		return nil, fmt.Errorf("minigame %s needs an exit", bp.minigame)
	}

	for _, sh := range layout.Shapes {
		c, err := config.ParseColor(sh.Color)
		if err != nil {
			return nil, err
		}
		bp.shapes = append(bp.shapes, scene.Shape{Rect: rectOf(sh.Rect), Color: c})
	}
	for _, sp := range layout.Sprites {
		id, ok := staticSprites[sp.Sprite]
		if !ok {
			return nil, fmt.Errorf("unknown sprite %q", sp.Sprite)
		}
		bp.statics = append(bp.statics, draw.At(id, sp.X, sp.Y))
	}
	for _, g := range layout.Grids {
		if err := b.compileGrid(bp, g); err != nil {
			return nil, err
		}
	}
	if err := compileEntities(bp, layout); err != nil {
		return nil, err
	}
	for _, t := range layout.Triggers {
		mk, err := compileTrigger(t)
		if err != nil {
			return nil, err
		}
		bp.triggers = append(bp.triggers, mk)
	}
	return bp, nil
}

func (b *Builder) compileGrid(bp *blueprint, g config.GridSpec) error {
	grid, err := b.loader.LoadGrid(g.File)
	if err != nil {
		return err
	}
	if g.Cell <= 0 {
		return fmt.Errorf("grid %s: cell size must be positive", g.File)
	}

	for _, c := range grid.Cells() {
		x := float64(c.Col)*g.Cell + g.Offset.X
		y := float64(c.Row)*g.Cell + g.Offset.Y
		switch g.Entity {
		case "tree":
			bp.entities = append(bp.entities, func() entity.Entity { return entity.NewTree(x, y) })
		case "wall":
			cx, cy := float64(c.Col)*g.Cell/entity.WallCell, float64(c.Row)*g.Cell/entity.WallCell
			size := g.Cell / entity.WallCell
			off := g.Offset
			bp.entities = append(bp.entities, func() entity.Entity {
				w := entity.NewWall(cx, cy, size, size)
				w.ApplyOffset(off.X, off.Y)
				return w
			})
		default:
			id, ok := staticSprites[g.Entity]
			if !ok {
				return fmt.Errorf("grid %s: unknown entity %q", g.File, g.Entity)
			}
			bp.statics = append(bp.statics, draw.At(id, x, y))
		}
	}
	return nil
}

func compileEntities(bp *blueprint, layout *config.SceneLayout) error {
	for _, s := range layout.Buildings {
		kind, ok := entity.ParseBuildingKind(s.Kind)
		if !ok {
			return fmt.Errorf("unknown building %q", s.Kind)
		}
		x, y := s.X, s.Y
		bp.entities = append(bp.entities, func() entity.Entity { return entity.NewBuilding(kind, x, y) })
	}
	for _, s := range layout.Trees {
		x, y := s.X, s.Y
		bp.entities = append(bp.entities, func() entity.Entity { return entity.NewTree(x, y) })
	}
	for _, s := range layout.NPCs {
		opts := entity.NPCOptions{
			CanMove:      s.CanMove,
			Vertical:     s.Vertical,
			StartReverse: s.Reverse,
			WalkDuration: s.WalkMs,
		}
		switch s.Kind {
		case "", "male":
			opts.Kind = entity.NPCMale
		case "female":
			opts.Kind = entity.NPCFemale
		default:
			return fmt.Errorf("unknown npc kind %q", s.Kind)
		}
		x, y := s.X, s.Y
		bp.entities = append(bp.entities, func() entity.Entity { return entity.NewNPC(x, y, opts) })
	}
	off := layout.WallShift
	for _, s := range layout.Walls {
		ws := s
		bp.entities = append(bp.entities, func() entity.Entity {
			w := entity.NewWall(ws.X, ws.Y, ws.W, ws.H)
			w.ApplyOffset(off.X, off.Y)
			return w
		})
	}
	for _, s := range layout.Furniture {
		kind, ok := entity.ParseFurnitureKind(s.Kind)
		if !ok {
			return fmt.Errorf("unknown furniture %q", s.Kind)
		}
		x, y := s.X, s.Y
		bp.entities = append(bp.entities, func() entity.Entity { return entity.NewFurniture(kind, x, y) })
	}
	for _, s := range layout.Items {
		kind, ok := entity.ParseItemKind(s.Kind)
		if !ok {
			return fmt.Errorf("unknown item %q", s.Kind)
		}
		x, y := s.X, s.Y
		bp.entities = append(bp.entities, func() entity.Entity { return entity.NewItem(kind, x, y) })
	}
	return nil
}

func compileTrigger(t config.TriggerSpec) (func() trigger.Trigger, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("trigger without id")
	}
	bounds := rectOf(t.Rect)
	target := trigger.SceneID(t.Target)
	end := geom.Vec(t.End.X, t.End.Y)

	switch t.Type {
	case "", "collision":
		groups := entity.GroupPlayer
		if len(t.Groups) > 0 {
			groups = 0
			for _, name := range t.Groups {
				g, ok := groupNames[name]
				if !ok {
					return nil, fmt.Errorf("trigger %s: unknown group %q", t.ID, name)
				}
				groups |= g
			}
		}
		return func() trigger.Trigger {
			c := trigger.NewCollision(t.ID, bounds, target, end)
			c.Groups = groups
			return c
		}, nil
	case "button":
		facing := entity.ParseDirection(t.Facing)
		if t.Facing != "" && facing == entity.DirectionNone {
			return nil, fmt.Errorf("trigger %s: unknown facing %q", t.ID, t.Facing)
		}
		return func() trigger.Trigger {
			bt := trigger.NewButton(t.ID, bounds, target, end, facing)
			bt.ReturnID = t.Return
			return bt
		}, nil
	case "minigame":
		return func() trigger.Trigger { return trigger.NewMinigame(t.ID, bounds, target, end) }, nil
	default:
		return nil, fmt.Errorf("trigger %s: unknown type %q", t.ID, t.Type)
	}
}

// newMinigame creates the named round, tuned by game.json where it sets a
// value and by the defaults elsewhere
func (b *Builder) newMinigame(name string) minigame.Minigame {
	w, h := b.viewport.Width, b.viewport.Height
	switch name {
	case "coffee":
		cfg := minigame.DefaultCoffeeConfig(w)
		cc := b.cfg.Game.Coffee
		setMs(&cfg.RoundMs, cc.RoundMs)
		setMs(&cfg.OctopusMs, cc.OctopusMs)
		setMs(&cfg.RockMs, cc.RockMs)
		if cc.Beans > 0 {
			cfg.StartBeans = cc.Beans
		}
		return minigame.NewCoffee(cfg)
	case "fishing":
		cfg := minigame.DefaultFishingConfig(w, h)
		fc := b.cfg.Game.Fishing
		setMs(&cfg.RoundMs, fc.RoundMs)
		setMs(&cfg.SpawnMs, fc.SpawnMs)
		if fc.MaxFish > 0 {
			cfg.MaxFish = fc.MaxFish
		}
		return minigame.NewFishing(cfg)
	default:
		return nil
	}
}

func setMs(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func rectOf(r config.RectSpec) geom.Rect {
	return geom.R(r.X, r.Y, r.W, r.H)
}
