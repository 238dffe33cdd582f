package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/draw/drawtest"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
)

func TestPlayer_StopsAtBuildingEdge(t *testing.T) {
	p := NewPlayer(100, 100)
	p.BaseSpeed = 40 // 5 units per 0.125s frame
	shop := NewBuilding(Shop, 110, 16)
	require.Equal(t, 110.0, shop.Bounds().Left())

	p.Update(frame(0.125, input.Held(input.ActionRight), p, shop))

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 110.0, p.Bounds().Right())
	assert.Equal(t, DirectionRight, p.Facing)
}

func TestPlayer_Input(t *testing.T) {
	tests := []struct {
		name    string
		held    []input.Action
		wantX   float64
		wantY   float64
		walking bool
	}{
		{"idle", nil, 0, 0, false},
		{"up", []input.Action{input.ActionUp}, 0, -5, true},
		{"diagonal", []input.Action{input.ActionDown, input.ActionRight}, 5, 5, true},
		{"opposites cancel", []input.Action{input.ActionLeft, input.ActionRight}, 0, 0, false},
		{"cancel one axis only", []input.Action{input.ActionLeft, input.ActionRight, input.ActionDown}, 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0)
			p.BaseSpeed = 40

			p.Update(frame(0.125, input.Held(tt.held...), p))

			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
			assert.Equal(t, tt.walking, p.Walking)
		})
	}
}

func TestPlayer_VelocityResetsEachFrame(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Update(frame(0.125, input.Held(input.ActionLeft), p))
	assert.Equal(t, -1.0, p.Velocity.X)

	p.Update(frame(0.125, input.Nothing, p))
	assert.Equal(t, geom.Vector2{}, p.Velocity)
}

func TestPlayer_CarryItem(t *testing.T) {
	p := NewPlayer(100, 100)
	eggs := NewItem(ItemEggs, 95, 95)

	f := frame(0.125, input.Held(input.ActionConfirm), p, eggs)
	p.Update(f)

	require.Same(t, eggs, p.Carrying)
	assert.True(t, eggs.Remove)
	assert.Equal(t, geom.Vec(97, 70), geom.Vec(eggs.X, eggs.Y))

	f = frame(0.125, input.Held(input.ActionCancel), p)
	p.Update(f)

	assert.Nil(t, p.Carrying)
	assert.False(t, eggs.Remove)
	assert.Equal(t, []Entity{eggs}, f.Spawned())
	assert.Equal(t, 110.0, eggs.Bounds().Bottom())
}

func TestPlayer_DrawsCarriedItem(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Carrying = NewItem(ItemCoffee, 0, 0)

	rec := &drawtest.Recorder{}
	p.Draw(rec)

	assert.Equal(t, []draw.SpriteID{
		draw.SpritePlayerShadow,
		draw.SpritePlayerFront,
		draw.SpritePlayerArmFront,
		draw.SpriteCoffee,
	}, rec.Sprites())
	assert.Equal(t, walkFrames, rec.Calls[2].Sprite.Frame)

	dbg := &drawtest.Recorder{DebugMode: true}
	p.Draw(dbg)
	assert.Equal(t, 5, dbg.Count("stroke"))
}

func TestWallet(t *testing.T) {
	w := NewWallet()
	w.Add(ItemCoffee, 3)
	w.Add(ItemCoffee, 2)
	w.Add(ItemFish, 0)

	assert.Equal(t, 5, w.Count(ItemCoffee))
	assert.Equal(t, 0, w.Count(ItemFish))
}

func TestNPC_ReversesAfterWalkDuration(t *testing.T) {
	n := NewNPC(50, 50, NPCOptions{CanMove: true, WalkDuration: 1000})
	require.Equal(t, NPCWalkingPositive, n.State())

	var deltas []float64
	for i := 0; i < 4; i++ {
		before := n.X
		n.Update(frame(0.25, nil, n))
		deltas = append(deltas, n.X-before)
	}

	assert.Greater(t, deltas[0], 0.0)
	assert.Greater(t, deltas[2], 0.0)
	assert.Less(t, deltas[3], 0.0)
	assert.Equal(t, NPCWalkingNegative, n.State())
}

// seqRand returns rolls in order
type seqRand struct {
	rolls []float64
	i     int
}

func (r *seqRand) Float64() float64 {
	v := r.rolls[r.i%len(r.rolls)]
	r.i++
	return v
}

func (r *seqRand) Intn(int) int { return 0 }

func TestNPC_WalkCycle(t *testing.T) {
	tests := []struct {
		name  string
		rolls []float64
		want  NPCState
	}{
		{"no toggle flips direction", []float64{0.5, 0.5}, NPCWalkingNegative},
		{"toggle to idle", []float64{0.05}, NPCIdle},
		{"variety flips back", []float64{0.5, 0.05}, NPCWalkingPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNPC(0, 0, NPCOptions{CanMove: true, WalkDuration: 500})
			n.Update(NewFrame(0.5, []Entity{n}, nil, &seqRand{rolls: tt.rolls}))

			assert.Equal(t, tt.want, n.State())
		})
	}
}

func TestNPC_Vertical(t *testing.T) {
	n := NewNPC(0, 0, NPCOptions{CanMove: true, Vertical: true, StartReverse: true})
	n.Update(frame(0.25, nil, n))

	assert.Equal(t, 0.0, n.X)
	assert.Equal(t, -6.25, n.Y)
	assert.Equal(t, DirectionUp, n.Facing)
}

func TestNPC_StandingStill(t *testing.T) {
	n := NewNPC(0, 0, NPCOptions{})
	n.Update(frame(10, nil, n))

	assert.Equal(t, 0.0, n.X)
	assert.Equal(t, 0.0, n.Y)
}

func TestNPC_CollidesWithTrees(t *testing.T) {
	n := NewNPC(0, 0, NPCOptions{CanMove: true})
	tree := NewTree(12, 0)

	n.Update(frame(0.125, nil, n, tree))

	assert.Equal(t, 2.0, n.X)
}

func TestNPC_SpeechBubble(t *testing.T) {
	n := NewNPC(100, 100, NPCOptions{})
	p := NewPlayer(120, 100)

	f := frame(0.125, nil, n, p)
	n.Update(f)

	require.True(t, n.ShowPrompt)
	spawned := f.Spawned()
	require.Len(t, spawned, 1)
	bubble, ok := spawned[0].(*SpeechBubble)
	require.True(t, ok)
	assert.Equal(t, LayerOverlay, bubble.Layer)

	// staying close does not spawn a second bubble
	f = frame(0.125, nil, n, p, bubble)
	n.Update(f)
	bubble.Update(f)
	assert.Empty(t, f.Spawned())
	assert.False(t, bubble.Remove)
	assert.Equal(t, geom.Vec(108, 72), geom.Vec(bubble.X, bubble.Y))

	p.SetLocation(200, 100)
	n.Update(frame(0.125, nil, n, p, bubble))
	assert.False(t, n.ShowPrompt)
	assert.True(t, bubble.Remove)
}

func TestSpeechBubble_RetiresWhenOwnerLeaves(t *testing.T) {
	n := NewNPC(100, 100, NPCOptions{})
	p := NewPlayer(100, 100)
	f := frame(0.125, nil, n, p)
	n.Update(f)
	bubble := f.Spawned()[0].(*SpeechBubble)

	bubble.Update(frame(0.125, nil, p, bubble))

	assert.True(t, bubble.Remove)
	assert.Nil(t, n.bubble)
}

func TestBoat_Damage(t *testing.T) {
	area := geom.R(0, 0, 400, 200)
	boat := NewBoat(100, 100, area)
	bullet := NewBullet(110, 100)
	rock := NewRock(120, 100)

	boat.Update(frame(0.125, nil, boat, bullet, rock))

	assert.Equal(t, BoatBeans-BoatDamageLight, boat.Beans)
	assert.True(t, bullet.Remove)
	assert.False(t, rock.Remove)
	assert.True(t, boat.Damaged)

	// invulnerable while damaged
	boat.Update(frame(0.125, nil, boat, rock))
	assert.Equal(t, BoatBeans-BoatDamageLight, boat.Beans)

	for i := 0; i < 10; i++ {
		boat.Update(frame(0.125, nil, boat))
	}
	assert.False(t, boat.Damaged)
	assert.False(t, boat.Flashing)

	boat.Update(frame(0.125, nil, boat, rock))
	assert.Equal(t, BoatBeans-BoatDamageLight-BoatDamageHeavy, boat.Beans)
}

func TestBoat_Blinks(t *testing.T) {
	boat := NewBoat(0, 0, geom.R(0, 0, 400, 200))
	boat.hurt(1)

	boat.Update(frame(0.125, nil, boat))
	assert.False(t, boat.Flashing)
	boat.Update(frame(0.0625, nil, boat))
	assert.True(t, boat.Flashing)

	rec := &drawtest.Recorder{}
	boat.Draw(rec)
	assert.Empty(t, rec.Calls)
}

func TestBoat_ConfinedToArea(t *testing.T) {
	boat := NewBoat(0, 0, geom.R(0, 48, 400, 116))

	boat.Update(frame(1, input.Held(input.ActionUp, input.ActionLeft), boat))

	assert.Equal(t, 0.0, boat.X)
	assert.Equal(t, 48.0, boat.Y)
}

func TestBoat_Sunk(t *testing.T) {
	boat := NewBoat(0, 0, geom.R(0, 0, 400, 200))
	boat.Beans = 3
	boat.hurt(BoatDamageLight)

	assert.True(t, boat.Sunk())
	assert.Equal(t, 0, boat.Beans)
}

func TestOctopus_Shoots(t *testing.T) {
	o := NewOctopus(300, 80, fixedRand{f: 0.1, n: 0})
	assert.Equal(t, 10.0, o.BaseSpeed)

	f := NewFrame(0.5, []Entity{o}, nil, fixedRand{f: 0.1})
	for i := 0; i < 3; i++ {
		o.Update(f)
	}

	spawned := f.Spawned()
	require.Len(t, spawned, 1)
	_, ok := spawned[0].(*Bullet)
	assert.True(t, ok)
	assert.Equal(t, 285.0, o.X)
}

func TestProjectiles_LeaveScreen(t *testing.T) {
	b := NewBullet(5, 0)
	b.Update(frame(1, nil, b))
	assert.True(t, b.Remove)

	r := NewRock(100, 0)
	r.Update(frame(1, nil, r))
	assert.Equal(t, 25.0, r.X)
	assert.False(t, r.Remove)
}

func TestHook_Catch(t *testing.T) {
	water := geom.R(0, 50, 200, 100)
	h := NewHook(50, 60, water)
	fish := NewSwimmer(48, 60, water, fixedRand{n: 1})
	other := NewSwimmer(150, 120, water, fixedRand{n: 1})

	h.Update(frame(0.125, input.Held(input.ActionConfirm), h, other, fish))

	assert.Equal(t, 1, h.Caught)
	assert.True(t, fish.Remove)
	assert.False(t, other.Remove)
}

func TestHook_ConfinedToWater(t *testing.T) {
	water := geom.R(0, 50, 200, 100)
	h := NewHook(0, 50, water)

	h.Update(frame(1, input.Held(input.ActionUp, input.ActionLeft), h))

	assert.Equal(t, geom.Vec(0, 50), geom.Vec(h.X, h.Y))
}

func TestSwimmer_Bounces(t *testing.T) {
	water := geom.R(0, 0, 100, 50)
	s := NewSwimmer(80, 10, water, fixedRand{n: 5})
	require.Equal(t, 20.0, s.BaseSpeed)
	require.Equal(t, 1.0, s.Heading())

	s.Update(frame(0.25, nil, s))

	assert.Equal(t, -1.0, s.Heading())
	assert.Equal(t, 84.0, s.X)

	s.Update(frame(0.25, nil, s))
	assert.Equal(t, 79.0, s.X)
}
