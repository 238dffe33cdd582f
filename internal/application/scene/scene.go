// Package scene holds the game's scenes and the manager that moves the
// player between them.
//
// A Scene owns an ordered list of entities, static background shapes and
// sprites, its triggers, a camera and, for minigame scenes, a running round.
// Only the manager's current scene is updated; the rest are frozen until
// the player enters them.
package scene

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/younwookim/village/internal/application/camera"
	"github.com/younwookim/village/internal/application/minigame"
	"github.com/younwookim/village/internal/application/trigger"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
)

// DefaultCullMargin is how far past the view entities keep updating
const DefaultCullMargin = 64

// staticSpriteMargin widens the cull rect for background sprites, whose
// size is only known to the atlas
const staticSpriteMargin = 64

// Kind classifies a scene
type Kind int

const (
	KindOutdoor Kind = iota
	KindIndoor
	KindMinigame
)

func (k Kind) String() string {
	switch k {
	case KindOutdoor:
		return "outdoor"
	case KindIndoor:
		return "indoor"
	case KindMinigame:
		return "minigame"
	default:
		return "unknown"
	}
}

// ParseKind converts a layout file kind name
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "outdoor":
		return KindOutdoor, nil
	case "indoor":
		return KindIndoor, nil
	case "minigame":
		return KindMinigame, nil
	}
	return 0, fmt.Errorf("unknown scene kind %q", s)
}

// Shape is a filled background rectangle
type Shape struct {
	Rect  geom.Rect
	Color color.Color
}

// Exit is where a finished minigame sends the player
type Exit struct {
	Scene trigger.SceneID
	At    geom.Vector2
}

// Populate fills a freshly cleared scene with its content
type Populate func(s *Scene)

// Context is what one scene update needs from the manager
type Context struct {
	DT     float64
	Input  input.Source
	Rand   entity.Rand
	Router trigger.Router
}

// Scene is one place in the game world
type Scene struct {
	ID    trigger.SceneID
	Kind  Kind
	World geom.Rect

	// HidePlayer parks the player: it is neither updated nor drawn
	HidePlayer bool
	CullMargin float64
	Minigame   minigame.Minigame
	Exit       *Exit

	entities []entity.Entity
	shapes   []Shape
	statics  []draw.Sprite
	triggers []trigger.Trigger
	camera   *camera.Camera
	player   entity.Entity
	populate Populate
}

// New creates a scene and fills it from populate, if given
func New(id trigger.SceneID, kind Kind, world geom.Rect, vp *camera.Viewport, populate Populate) *Scene {
	s := &Scene{
		ID:         id,
		Kind:       kind,
		World:      world,
		CullMargin: DefaultCullMargin,
		camera:     camera.New(vp),
		populate:   populate,
	}
	if populate != nil {
		populate(s)
	}
	s.UpdateCamera()
	return s
}

// Add appends an entity; it is sorted into place on the next update
func (s *Scene) Add(e entity.Entity) {
	s.entities = append(s.entities, e)
}

// Remove takes e out of the entity list
func (s *Scene) Remove(e entity.Entity) {
	s.RemoveWhere(func(o entity.Entity) bool { return o == e })
}

// RemoveWhere drops every entity for which match returns true. The list
// is rebuilt so that passes iterating the old list are unaffected.
func (s *Scene) RemoveWhere(match func(entity.Entity) bool) {
	kept := make([]entity.Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if match(e) {
			if e == s.player {
				s.player = nil
			}
			continue
		}
		kept = append(kept, e)
	}
	s.entities = kept
}

// AddShape adds a filled background rectangle
func (s *Scene) AddShape(r geom.Rect, c color.Color) {
	s.shapes = append(s.shapes, Shape{Rect: r, Color: c})
}

// AddStatic adds a background sprite
func (s *Scene) AddStatic(sp draw.Sprite) {
	s.statics = append(s.statics, sp)
}

// AddTrigger adds a trigger
func (s *Scene) AddTrigger(t trigger.Trigger) {
	s.triggers = append(s.triggers, t)
}

// AddPlayer puts the player into this scene at at
func (s *Scene) AddPlayer(p entity.Entity, at geom.Vector2) {
	p.GetBody().SetLocation(at.X, at.Y)
	s.player = p
	s.Add(p)
}

// RemovePlayer takes the player out of this scene
func (s *Scene) RemovePlayer() {
	if s.player != nil {
		s.Remove(s.player)
	}
}

// Player returns the player if it is in this scene
func (s *Scene) Player() entity.Entity { return s.player }

// Entities returns the entity list in draw order
func (s *Scene) Entities() []entity.Entity { return s.entities }

// Triggers returns the scene's triggers
func (s *Scene) Triggers() []trigger.Trigger { return s.triggers }

// Trigger returns the trigger with the given id, or nil
func (s *Scene) Trigger(id string) trigger.Trigger {
	for _, t := range s.triggers {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// Camera returns the scene's camera
func (s *Scene) Camera() *camera.Camera { return s.camera }

// CullRect is the region in which entities and triggers are active
func (s *Scene) CullRect() geom.Rect {
	return s.camera.Expanded(s.CullMargin)
}

// Update runs one simulation step of the scene
func (s *Scene) Update(ctx Context) {
	cull := s.CullRect()
	f := entity.NewFrame(ctx.DT, s.entities, ctx.Input, ctx.Rand)

	// Entities, back to front
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		if !s.active(e, cull) {
			continue
		}
		e.Update(f)
	}
	s.entities = append(s.purge(), f.Spawned()...)
	s.sort()

	// Triggers
	f.Entities = s.entities
	for _, t := range s.triggers {
		if t.Bounds().Intersects(cull) {
			t.Update(f, ctx.Router)
		}
	}

	// Minigame round
	if s.Minigame != nil && s.Minigame.Running() {
		f.Entities = s.entities
		s.Minigame.Update(f)
		if spawned := f.Spawned(); len(spawned) > 0 {
			s.entities = append(s.entities, spawned...)
			s.sort()
		}
		if s.Minigame.Over() {
			s.finishMinigame(ctx.Router)
		}
	}

	s.UpdateCamera()
}

func (s *Scene) active(e entity.Entity, cull geom.Rect) bool {
	if e == s.player {
		return !s.HidePlayer
	}
	return e.GetBody().Bounds().Intersects(cull)
}

// purge returns the entity list without removed entities
func (s *Scene) purge() []entity.Entity {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if !e.GetBody().Remove {
			kept = append(kept, e)
		}
	}
	clear(s.entities[len(kept):])
	return kept
}

// sort orders entities by layer, then bottom edge, then right to left
func (s *Scene) sort() {
	slices.SortStableFunc(s.entities, func(a, b entity.Entity) int {
		ab, bb := a.GetBody(), b.GetBody()
		if c := cmp.Compare(ab.Layer, bb.Layer); c != 0 {
			return c
		}
		if c := cmp.Compare(ab.Y+ab.Height, bb.Y+bb.Height); c != 0 {
			return c
		}
		return cmp.Compare(bb.X, ab.X)
	})
}

func (s *Scene) finishMinigame(r trigger.Router) {
	var wallet *entity.Wallet
	if p, ok := s.player.(*entity.Player); ok {
		wallet = p.Wallet
	}
	s.Minigame.Finish(wallet)
	if s.Exit != nil && s.player != nil {
		r.Relay(s.player, s.Exit.Scene, s.Exit.At)
	}
}

// UpdateCamera points the camera at the player, or at the world origin
// when the player is absent or hidden
func (s *Scene) UpdateCamera() {
	if s.player == nil || s.HidePlayer {
		s.camera.Update(s.World.TopLeft(), s.World)
		return
	}
	s.camera.Follow(s.player.GetBody().Center(), s.World)
}

// Draw paints the scene back to front
func (s *Scene) Draw(surface draw.Surface) {
	cull := s.CullRect()

	for _, sh := range s.shapes {
		surface.FillRect(sh.Rect, draw.Dynamic, sh.Color)
	}
	spriteCull := cull.Expand(staticSpriteMargin)
	for _, sp := range s.statics {
		if spriteCull.Contains(geom.Vec(sp.X, sp.Y)) {
			sp.Draw(surface, draw.Dynamic)
		}
	}
	for _, e := range s.entities {
		if !s.active(e, cull) {
			continue
		}
		e.Draw(surface)
	}

	if surface.Debug() {
		for _, t := range s.triggers {
			t.Draw(surface)
		}
		surface.StrokeRect(cull, draw.Dynamic, draw.ColorViewport)
	}

	if s.Minigame != nil && s.Minigame.Running() {
		s.Minigame.Draw(surface)
	}
}

// Rebuild swaps in a new populate function and resets the scene with it
func (s *Scene) Rebuild(populate Populate) {
	s.populate = populate
	s.Reset()
}

// Reset rebuilds the scene from its populate function, keeping the
// player if it was here
func (s *Scene) Reset() {
	if s.populate == nil {
		panic(fmt.Sprintf("scene %q: Reset not implemented", s.ID))
	}
	if s.Minigame != nil && s.Minigame.Running() {
		s.Minigame.Finish(nil)
	}

	player := s.player
	s.entities = nil
	s.shapes = nil
	s.statics = nil
	s.triggers = nil
	s.player = nil
	s.populate(s)
	if player != nil {
		b := player.GetBody()
		s.AddPlayer(player, geom.Vec(b.X, b.Y))
	}
	s.UpdateCamera()
}
