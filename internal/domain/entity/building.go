package entity

import "github.com/younwookim/village/internal/domain/draw"

// footprint places a solid rectangle relative to a layout position and a
// sprite relative to that rectangle.
type footprint struct {
	dx, dy   float64 // body offset from the layout position
	w, h     float64
	sdx, sdy float64 // sprite offset from the body
	sprite   draw.SpriteID
	shadow   draw.SpriteID
}

func (fp footprint) body(x, y float64, g Group) Body {
	return Body{X: x + fp.dx, Y: y + fp.dy, Width: fp.w, Height: fp.h, Group: g}
}

// static is a solid entity that never moves on its own
type static struct {
	Base
	fp footprint
}

func (s *static) Update(*Frame) {}

func (s *static) Draw(surface draw.Surface) {
	if surface.Debug() {
		s.drawBounds(surface, draw.ColorBounds)
		return
	}
	sx, sy := s.X+s.fp.sdx, s.Y+s.fp.sdy
	if s.fp.shadow != draw.SpriteNone {
		draw.At(s.fp.shadow, sx-16, sy).Draw(surface, draw.Dynamic)
	}
	draw.At(s.fp.sprite, sx, sy).Draw(surface, draw.Dynamic)
}

// BuildingKind selects a building footprint
type BuildingKind int

const (
	SimpleHouse BuildingKind = iota
	SpecialHouse
	Shop
	Diner
)

var buildingFootprints = map[BuildingKind]footprint{
	SimpleHouse:  {dx: 4, dy: 24, w: 40, h: 40, sdx: -4, sdy: -24, sprite: draw.SpriteSimpleHouse, shadow: draw.SpriteSimpleHouseShadow},
	SpecialHouse: {dx: 4, dy: 24, w: 72, h: 40, sdx: -4, sdy: -24, sprite: draw.SpriteSpecialHouse, shadow: draw.SpriteSpecialHouseShadow},
	Shop:         {dy: 64, w: 80, h: 32, sdy: -64, sprite: draw.SpriteShop, shadow: draw.SpriteShopShadow},
	Diner:        {dy: 32, w: 128, h: 32, sdy: -32, sprite: draw.SpriteDiner, shadow: draw.SpriteDinerShadow},
}

// ParseBuildingKind converts a layout-file name to a BuildingKind
func ParseBuildingKind(s string) (BuildingKind, bool) {
	switch s {
	case "simple_house":
		return SimpleHouse, true
	case "special_house":
		return SpecialHouse, true
	case "shop":
		return Shop, true
	case "diner":
		return Diner, true
	default:
		return 0, false
	}
}

// Building is a solid house-sized structure. Only the ground-level
// footprint collides; the sprite extends above it.
type Building struct {
	static
	Kind BuildingKind
}

// NewBuilding places a building with its sprite's top-left at (x, y)
func NewBuilding(kind BuildingKind, x, y float64) *Building {
	fp := buildingFootprints[kind]
	return &Building{
		static: static{Base: Base{Body: fp.body(x, y, GroupBuilding)}, fp: fp},
		Kind:   kind,
	}
}

// Tree is a small solid trunk under a tree-cluster sprite
type Tree struct {
	static
}

// NewTree places a tree trunk at (x, y)
func NewTree(x, y float64) *Tree {
	fp := footprint{w: 10, h: 10, sdx: -27, sdy: -21, sprite: draw.SpriteTreeCluster}
	return &Tree{static: static{Base: Base{Body: fp.body(x, y, GroupTree)}, fp: fp}}
}

// WallCell is the edge length of a wall grid cell
const WallCell = 16

// Wall is an invisible solid given in grid cells
type Wall struct {
	Base
}

// NewWall creates a wall from cell coordinates; the rectangle is shifted
// 10 units down so walls line up with furniture feet.
func NewWall(cx, cy, cw, ch float64) *Wall {
	return &Wall{Base: Base{Body: Body{
		X:      cx * WallCell,
		Y:      cy*WallCell + 10,
		Width:  cw * WallCell,
		Height: ch * WallCell,
		Group:  GroupWall,
	}}}
}

// ApplyOffset shifts the wall in world units
func (w *Wall) ApplyOffset(dx, dy float64) {
	w.SetLocation(w.X+dx, w.Y+dy)
}

func (w *Wall) Update(*Frame) {}

func (w *Wall) Draw(s draw.Surface) {
	if s.Debug() {
		s.FillRect(w.Bounds(), draw.Dynamic, draw.ColorWall)
	}
}

// FurnitureKind selects a furniture footprint
type FurnitureKind int

const (
	FlowerPot FurnitureKind = iota
	Sofa
	Bed
	ShelfEmpty
	ShelfFull
	CounterShop
	CounterDiner
	StoolTall
	StoolShort
	Table
)

var furnitureFootprints = map[FurnitureKind]footprint{
	FlowerPot:    {dy: 10, w: 16, h: 16, sdy: -32, sprite: draw.SpriteFlowerPot},
	Sofa:         {dx: 4, dy: 10, w: 56, h: 16, sdx: -4, sdy: -16, sprite: draw.SpriteSofa},
	Bed:          {dy: 10, w: 32, h: 48, sdy: -16, sprite: draw.SpriteBed},
	ShelfEmpty:   {dy: 10, w: 32, h: 16, sdy: -48, sprite: draw.SpriteShelfEmpty},
	ShelfFull:    {dy: 10, w: 32, h: 16, sdy: -48, sprite: draw.SpriteShelfFull},
	CounterShop:  {dy: 10, w: 112, h: 16, sdy: -32, sprite: draw.SpriteShopCounter},
	CounterDiner: {dy: 14, w: 240, h: 12, sdy: -68, sprite: draw.SpriteDinerCounter},
	StoolTall:    {dy: 10, w: 16, h: 6, sdy: -22, sprite: draw.SpriteStoolTall},
	StoolShort:   {dy: 14, w: 16, h: 6, sdy: -20, sprite: draw.SpriteStoolShort},
	Table:        {dy: 10, w: 32, h: 12, sdy: -16, sprite: draw.SpriteTable},
}

var furnitureNames = map[string]FurnitureKind{
	"flower_pot":    FlowerPot,
	"sofa":          Sofa,
	"bed":           Bed,
	"shelf_empty":   ShelfEmpty,
	"shelf_full":    ShelfFull,
	"counter_shop":  CounterShop,
	"counter_diner": CounterDiner,
	"stool_tall":    StoolTall,
	"stool_short":   StoolShort,
	"table":         Table,
}

// ParseFurnitureKind converts a layout-file name to a FurnitureKind
func ParseFurnitureKind(s string) (FurnitureKind, bool) {
	k, ok := furnitureNames[s]
	return k, ok
}

// Furniture is an indoor solid prop
type Furniture struct {
	static
	Kind FurnitureKind
}

// NewFurniture places furniture at the layout position (x, y)
func NewFurniture(kind FurnitureKind, x, y float64) *Furniture {
	fp := furnitureFootprints[kind]
	return &Furniture{
		static: static{Base: Base{Body: fp.body(x, y, GroupFurniture)}, fp: fp},
		Kind:   kind,
	}
}
