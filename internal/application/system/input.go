package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/village/internal/domain/input"
)

// Keyboard reports key state for the current tick
type Keyboard interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

// ebitenKeyboard reads ebiten's global key state
type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

func (ebitenKeyboard) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Binding maps an action to keys. Held actions are active every tick the
// key is down; the rest fire only on the tick the key goes down.
type Binding struct {
	Keys []ebiten.Key
	Held bool
}

// DefaultBindings is the keyboard layout
var DefaultBindings = map[input.Action]Binding{
	input.ActionUp:               {Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, Held: true},
	input.ActionLeft:             {Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, Held: true},
	input.ActionDown:             {Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, Held: true},
	input.ActionRight:            {Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, Held: true},
	input.ActionConfirm:          {Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ}},
	input.ActionCancel:           {Keys: []ebiten.Key{ebiten.KeyK, ebiten.KeyX}},
	input.ActionX:                {Keys: []ebiten.Key{ebiten.KeyU}},
	input.ActionY:                {Keys: []ebiten.Key{ebiten.KeyI}},
	input.ActionStart:            {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	input.ActionSelect:           {Keys: []ebiten.Key{ebiten.KeySpace}},
	input.ActionReset:            {Keys: []ebiten.Key{ebiten.KeyR}},
	input.ActionToggleFullscreen: {Keys: []ebiten.Key{ebiten.KeyF10}},
	input.ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF12}},
	input.ActionQuit:             {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}},
}

// InputSystem turns the keyboard into logical actions
type InputSystem struct {
	keyboard Keyboard
	bindings map[input.Action]Binding
}

// NewInputSystem creates an input system reading ebiten's keyboard with
// the default bindings
func NewInputSystem() *InputSystem {
	return NewInputSystemWith(ebitenKeyboard{}, DefaultBindings)
}

// NewInputSystemWith creates an input system over any keyboard
func NewInputSystemWith(kb Keyboard, bindings map[input.Action]Binding) *InputSystem {
	return &InputSystem{keyboard: kb, bindings: bindings}
}

// GetInput reads the actions active this tick
func (s *InputSystem) GetInput() input.State {
	state := make(input.State)
	for _, a := range input.Actions() {
		b, ok := s.bindings[a]
		if !ok {
			continue
		}
		for _, k := range b.Keys {
			if s.active(k, b.Held) {
				state[a] = true
				break
			}
		}
	}
	return state
}

func (s *InputSystem) active(k ebiten.Key, held bool) bool {
	if held {
		return s.keyboard.IsKeyPressed(k)
	}
	return s.keyboard.IsKeyJustPressed(k)
}
