package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/village/internal/domain/input"
)

// fakeKeyboard separates keys held down from keys pressed this tick
type fakeKeyboard struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func (k fakeKeyboard) IsKeyPressed(key ebiten.Key) bool { return k.down[key] || k.just[key] }

func (k fakeKeyboard) IsKeyJustPressed(key ebiten.Key) bool { return k.just[key] }

func TestInputSystem_GetInput(t *testing.T) {
	tests := []struct {
		name string
		down []ebiten.Key
		just []ebiten.Key
		want input.State
	}{
		{
			name: "nothing",
			want: input.State{},
		},
		{
			name: "held movement",
			down: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowLeft},
			want: input.Held(input.ActionUp, input.ActionLeft),
		},
		{
			name: "held confirm does not repeat",
			down: []ebiten.Key{ebiten.KeyJ, ebiten.KeyF12},
			want: input.State{},
		},
		{
			name: "just pressed buttons",
			just: []ebiten.Key{ebiten.KeyZ, ebiten.KeyF12, ebiten.KeyEscape},
			want: input.Held(input.ActionConfirm, input.ActionToggleDebug, input.ActionQuit),
		},
		{
			name: "just pressed movement counts as held",
			just: []ebiten.Key{ebiten.KeyD},
			want: input.Held(input.ActionRight),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := fakeKeyboard{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
			for _, k := range tt.down {
				kb.down[k] = true
			}
			for _, k := range tt.just {
				kb.just[k] = true
			}

			got := NewInputSystemWith(kb, DefaultBindings).GetInput()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultBindings_CoverEveryAction(t *testing.T) {
	for _, a := range input.Actions() {
		b, ok := DefaultBindings[a]
		if assert.True(t, ok, a.String()) {
			assert.NotEmpty(t, b.Keys, a.String())
		}
	}
}
