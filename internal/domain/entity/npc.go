package entity

import (
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/timer"
)

// NPC defaults
const (
	NPCSpeed        = 25
	NPCRadius       = 32
	NPCWalkDuration = 5000 // ms

	NPCSolids = GroupBuilding | GroupTree

	// ToggleChance is the chance per walk cycle to switch idle/walking
	ToggleChance = 0.25
	// VarietyChance is the chance per walk cycle to reverse a second time
	VarietyChance = 0.10
)

// NPCKind selects the NPC sprite set
type NPCKind int

const (
	NPCMale NPCKind = iota
	NPCFemale
)

// NPCState is the walk state of an NPC
type NPCState int

const (
	NPCIdle NPCState = iota
	NPCWalkingPositive
	NPCWalkingNegative
)

// String returns the string representation of the NPC state
func (s NPCState) String() string {
	switch s {
	case NPCIdle:
		return "Idle"
	case NPCWalkingPositive:
		return "WalkingPositive"
	case NPCWalkingNegative:
		return "WalkingNegative"
	default:
		return "Unknown"
	}
}

// NPCOptions configures an NPC at construction
type NPCOptions struct {
	Kind         NPCKind
	CanMove      bool
	Vertical     bool    // walk along y instead of x
	StartReverse bool    // start walking in the negative direction
	WalkDuration float64 // ms, 0 means NPCWalkDuration
}

// NPC is a villager that wanders along one axis and shows a speech
// bubble while the player is close.
type NPC struct {
	Kinetic

	Kind       NPCKind
	CanMove    bool
	Vertical   bool
	Radius     float64
	ShowPrompt bool

	walking   bool
	direction float64 // +1 or -1
	walkTimer *timer.Timer
	walk      *timer.Animation
	bubble    *SpeechBubble
}

// NewNPC creates an NPC at (x, y)
func NewNPC(x, y float64, opts NPCOptions) *NPC {
	duration := opts.WalkDuration
	if duration <= 0 {
		duration = NPCWalkDuration
	}
	dir := 1.0
	if opts.StartReverse {
		dir = -1
	}
	return &NPC{
		Kinetic:   newKinetic(x, y, PlayerWidth, PlayerHeight, NPCSpeed, GroupNPC, NPCSolids),
		Kind:      opts.Kind,
		CanMove:   opts.CanMove,
		Vertical:  opts.Vertical,
		Radius:    NPCRadius,
		walking:   true,
		direction: dir,
		walkTimer: timer.New(duration, true),
		walk:      timer.NewAnimation(walkFrames, walkFrames, walkFrameMs),
	}
}

// State returns the current walk state
func (n *NPC) State() NPCState {
	switch {
	case !n.walking:
		return NPCIdle
	case n.direction > 0:
		return NPCWalkingPositive
	default:
		return NPCWalkingNegative
	}
}

func (n *NPC) Update(f *Frame) {
	n.updateConversation(f)

	n.ScaleSpeed(f.DT)
	n.Velocity.X, n.Velocity.Y = 0, 0
	if n.CanMove {
		n.updateWalk(f)
	}
	n.UpdateProbes()
	n.Collide(f.Entities)
	if n.CanMove {
		n.updateAnimation(f.DT)
	}
}

func (n *NPC) updateWalk(f *Frame) {
	n.walkTimer.Update(f.DT)
	if n.walkTimer.Done() {
		if f.Rand.Float64() < ToggleChance {
			n.walking = !n.walking
		}
		if n.walking {
			n.direction = -n.direction
			if f.Rand.Float64() < VarietyChance {
				n.direction = -n.direction
			}
		}
		n.walkTimer.Restart()
	}
	if !n.walking {
		return
	}

	switch {
	case n.Vertical && n.direction > 0:
		n.Move(DirectionDown)
	case n.Vertical:
		n.Move(DirectionUp)
	case n.direction > 0:
		n.Move(DirectionRight)
	default:
		n.Move(DirectionLeft)
	}
}

func (n *NPC) updateAnimation(dt float64) {
	if n.walking {
		n.walk.Update(dt)
		return
	}
	n.walk.Rewind()
}

func (n *NPC) updateConversation(f *Frame) {
	p := f.NearestPlayer(&n.Body)
	n.ShowPrompt = p != nil && distance(&n.Body, &p.Body) <= n.Radius

	switch {
	case n.ShowPrompt && n.bubble == nil:
		n.bubble = newSpeechBubble(n)
		f.Spawn(n.bubble)
	case !n.ShowPrompt && n.bubble != nil:
		n.bubble.Remove = true
		n.bubble = nil
	}
}

func (n *NPC) sprite() draw.SpriteID {
	base := draw.SpriteNPCMaleFront
	if n.Kind == NPCFemale {
		base = draw.SpriteNPCFemaleFront
	}
	// front, right, back, left follow each other in the atlas enum
	if !n.CanMove || !n.walking {
		return base
	}
	switch {
	case n.Vertical && n.direction > 0:
		return base
	case n.Vertical:
		return base + 2
	case n.direction > 0:
		return base + 1
	default:
		return base + 3
	}
}

func (n *NPC) Draw(s draw.Surface) {
	if s.Debug() {
		n.drawBounds(s, draw.ColorBounds)
		return
	}
	sx, sy := n.X+playerSpriteDX, n.Y+playerSpriteDY
	draw.At(draw.SpritePlayerShadow, sx, sy+1).Draw(s, draw.Dynamic)
	draw.Sprite{ID: n.sprite(), X: sx, Y: sy, Frame: n.walk.Frame()}.Draw(s, draw.Dynamic)
}

// SpeechBubble floats above an NPC while the player is nearby
type SpeechBubble struct {
	Base
	owner *NPC
}

func newSpeechBubble(owner *NPC) *SpeechBubble {
	b := &SpeechBubble{
		Base:  Base{Body: Body{Width: 16, Height: 16, Layer: LayerOverlay, Group: GroupOverlay}},
		owner: owner,
	}
	b.follow()
	return b
}

func (b *SpeechBubble) follow() {
	b.SetLocation(b.owner.X+8, b.owner.Y-28)
}

// Update tracks the owner and retires the bubble once the owner has left
// the scene.
func (b *SpeechBubble) Update(f *Frame) {
	for _, e := range f.Entities {
		if e == Entity(b.owner) {
			b.follow()
			return
		}
	}
	b.Remove = true
	if b.owner.bubble == b {
		b.owner.bubble = nil
	}
}

func (b *SpeechBubble) Draw(s draw.Surface) {
	draw.At(draw.SpriteSpeechBubble, b.X, b.Y).Draw(s, draw.Dynamic)
}
