package entity

import (
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/input"
	"github.com/younwookim/village/internal/domain/timer"
)

// Player defaults
const (
	PlayerWidth  = 10
	PlayerHeight = 10
	PlayerSpeed  = 50

	PlayerSolids = GroupBuilding | GroupFurniture | GroupWall | GroupTree

	// sprite origin relative to the body
	playerSpriteDX = -3
	playerSpriteDY = -22
	walkFrames     = 6
	walkFrameMs    = 100
)

// Wallet holds the player's money and collected goods
type Wallet struct {
	Coins int
	Items map[ItemKind]int
}

// NewWallet creates an empty wallet
func NewWallet() *Wallet {
	return &Wallet{Items: make(map[ItemKind]int)}
}

// Add adds n of kind
func (w *Wallet) Add(kind ItemKind, n int) {
	if n <= 0 {
		return
	}
	w.Items[kind] += n
}

// Count returns how many of kind the wallet holds
func (w *Wallet) Count(kind ItemKind) int {
	return w.Items[kind]
}

// Player is the user-controlled character
type Player struct {
	Kinetic

	Wallet   *Wallet
	Carrying *Item
	Walking  bool

	walk *timer.Animation
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y float64) *Player {
	p := &Player{
		Kinetic: newKinetic(x, y, PlayerWidth, PlayerHeight, PlayerSpeed, GroupPlayer, PlayerSolids),
		Wallet:  NewWallet(),
		walk:    timer.NewAnimation(walkFrames, walkFrames, walkFrameMs),
	}
	p.Facing = DirectionDown
	return p
}

func (p *Player) Update(f *Frame) {
	p.ScaleSpeed(f.DT)
	p.UpdateInput(f)
	p.UpdateProbes()
	p.Collide(f.Entities)
	p.updateAnimation(f.DT)
	p.updateItem(f)
}

// UpdateInput moves the player from the held directions. Opposite
// directions cancel each other out.
func (p *Player) UpdateInput(f *Frame) {
	in := f.Input
	p.Velocity.X, p.Velocity.Y = 0, 0
	p.Walking = false

	step := func(dir Direction, a, opposite input.Action) {
		if in.Pressing(a) && !in.Pressing(opposite) {
			p.Move(dir)
			p.Walking = true
		}
	}
	step(DirectionUp, input.ActionUp, input.ActionDown)
	step(DirectionDown, input.ActionDown, input.ActionUp)
	step(DirectionLeft, input.ActionLeft, input.ActionRight)
	step(DirectionRight, input.ActionRight, input.ActionLeft)
}

func (p *Player) updateAnimation(dt float64) {
	if p.Walking {
		p.walk.Update(dt)
		return
	}
	p.walk.Rewind()
}

// updateItem handles pick up (Confirm over an item), put down (Cancel)
// and keeps a carried item above the player's head.
func (p *Player) updateItem(f *Frame) {
	switch {
	case p.Carrying == nil && f.Input.Pressing(input.ActionConfirm):
		for _, e := range f.Entities {
			it, ok := e.(*Item)
			if !ok || it.Remove || !it.Bounds().Intersects(p.Bounds()) {
				continue
			}
			it.Remove = true
			it.Layer = LayerOverlay
			p.Carrying = it
			break
		}
	case p.Carrying != nil && f.Input.Pressing(input.ActionCancel):
		it := p.Carrying
		p.Carrying = nil
		it.Remove = false
		it.Layer = LayerDefault
		it.SetLocation(p.X+p.Width/2-it.Width/2, p.Y+p.Height-it.Height)
		f.Spawn(it)
		return
	}

	if p.Carrying != nil {
		p.Carrying.SetLocation(p.X+playerSpriteDX, p.Y+playerSpriteDY-8)
	}
}

func (p *Player) sprites() (body, arms draw.SpriteID) {
	switch p.Facing {
	case DirectionUp:
		return draw.SpritePlayerBack, draw.SpritePlayerArmBack
	case DirectionLeft:
		return draw.SpritePlayerLeft, draw.SpritePlayerArmLeft
	case DirectionRight:
		return draw.SpritePlayerRight, draw.SpritePlayerArmRight
	default:
		return draw.SpritePlayerFront, draw.SpritePlayerArmFront
	}
}

// WalkFrame returns the current walk animation frame
func (p *Player) WalkFrame() int { return p.walk.Frame() }

func (p *Player) Draw(s draw.Surface) {
	if s.Debug() {
		p.drawBounds(s, draw.ColorBounds)
		p.drawProbes(s)
		return
	}

	sx, sy := p.X+playerSpriteDX, p.Y+playerSpriteDY
	bodyID, armsID := p.sprites()
	frame := p.walk.Frame()

	armsFrame := frame
	if p.Carrying != nil {
		armsFrame += walkFrames
	}

	draw.At(draw.SpritePlayerShadow, sx, sy+1).Draw(s, draw.Dynamic)
	draw.Sprite{ID: bodyID, X: sx, Y: sy, Frame: frame}.Draw(s, draw.Dynamic)
	draw.Sprite{ID: armsID, X: sx, Y: sy, Frame: armsFrame}.Draw(s, draw.Dynamic)
	if p.Carrying != nil {
		p.Carrying.Draw(s)
	}
}
