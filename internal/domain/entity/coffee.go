package entity

import (
	"math"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/input"
	"github.com/younwookim/village/internal/domain/timer"
)

// Coffee minigame tuning
const (
	BoatBeans         = 50
	BoatSpeed         = 50
	BoatInvulnerable  = 1280 // ms
	BoatBlinks        = 4
	BoatDamageLight   = 5
	BoatDamageHeavy   = 10
	BulletSpeed       = 50
	RockSpeed         = 75
	OctopusShootOdds  = 0.25
	octopusWobble     = 6
	octopusWobbleRate = 4 // rad/s
)

// Boat is the coffee minigame avatar. Beans are its health and the
// round's payout.
type Boat struct {
	Kinetic

	Beans    int
	Area     geom.Rect // play strip the boat is confined to
	Damaged  bool
	Flashing bool

	invulnerable *timer.Timer
	blink        *timer.Timer
}

// NewBoat creates a boat at (x, y) confined to area
func NewBoat(x, y float64, area geom.Rect) *Boat {
	return &Boat{
		Kinetic:      newKinetic(x, y, 83, 16, BoatSpeed, GroupBoat, 0),
		Beans:        BoatBeans,
		Area:         area,
		invulnerable: timer.New(BoatInvulnerable, false),
		blink:        timer.New(BoatInvulnerable/BoatBlinks/2, false),
	}
}

func (b *Boat) Update(f *Frame) {
	b.ScaleSpeed(f.DT)
	b.UpdateInput(f)
	b.collide(f.Entities)
	b.ClampTo(b.Area)
	b.updateHealth(f.DT)
}

// UpdateInput moves the boat in every held direction
func (b *Boat) UpdateInput(f *Frame) {
	b.Velocity.X, b.Velocity.Y = 0, 0
	for _, m := range []struct {
		a   input.Action
		dir Direction
	}{
		{input.ActionUp, DirectionUp},
		{input.ActionDown, DirectionDown},
		{input.ActionLeft, DirectionLeft},
		{input.ActionRight, DirectionRight},
	} {
		if f.Input.Pressing(m.a) {
			b.Move(m.dir)
		}
	}
}

func (b *Boat) collide(entities []Entity) {
	if b.Damaged {
		return
	}
	for _, e := range entities {
		o := e.GetBody()
		if o.Remove || !o.Bounds().Intersects(b.Bounds()) {
			continue
		}
		switch {
		case o.Group.Has(GroupProjectile | GroupEnemy):
			o.Remove = true
			b.hurt(BoatDamageLight)
		case o.Group.Has(GroupHazard):
			b.hurt(BoatDamageHeavy)
		}
		if b.Damaged {
			return
		}
	}
}

func (b *Boat) hurt(amount int) {
	b.Damaged = true
	b.Beans -= amount
	if b.Beans < 0 {
		b.Beans = 0
	}
	b.invulnerable.Start()
	b.blink.Start()
}

func (b *Boat) updateHealth(dt float64) {
	if !b.Damaged {
		return
	}
	b.invulnerable.Update(dt)
	b.blink.Update(dt)
	if b.blink.Done() {
		b.Flashing = !b.Flashing
		b.blink.Restart()
	}
	if b.invulnerable.Done() {
		b.Damaged = false
		b.Flashing = false
		b.invulnerable.Reset()
		b.blink.Reset()
	}
}

// Sunk reports whether the boat has run out of beans
func (b *Boat) Sunk() bool { return b.Beans <= 0 }

func (b *Boat) Draw(s draw.Surface) {
	if s.Debug() {
		b.drawBounds(s, draw.ColorBounds)
		return
	}
	if b.Flashing {
		return
	}
	id := draw.SpriteBoat
	if b.Damaged {
		id = draw.SpriteBoatHurt
	}
	draw.At(draw.SpriteBoatShadow, b.X-32, b.Y-16).Draw(s, draw.Dynamic)
	draw.At(id, b.X-16, b.Y-48).Draw(s, draw.Dynamic)
}

// Octopus drifts left along a wobbling line and sometimes spits ink
type Octopus struct {
	Kinetic

	baseY float64
	phase float64
	shoot *timer.Timer
}

// NewOctopus creates an octopus at (x, y) with a random speed and
// shooting interval
func NewOctopus(x, y float64, rng Rand) *Octopus {
	speed := float64(10 + rng.Intn(21))
	return &Octopus{
		Kinetic: newKinetic(x, y, 16, 16, speed, GroupEnemy, 0),
		baseY:   y,
		shoot:   timer.New(float64(1500+rng.Intn(1501)), true),
	}
}

func (o *Octopus) Update(f *Frame) {
	o.ScaleSpeed(f.DT)
	o.phase += f.DT * octopusWobbleRate
	o.SetLocation(o.X-o.MoveSpeed, o.baseY+math.Sin(o.phase)*octopusWobble)

	o.shoot.Update(f.DT)
	if o.shoot.Done() {
		if f.Rand.Float64() < OctopusShootOdds {
			f.Spawn(NewBullet(o.X, o.Y+o.Height/2))
		}
		o.shoot.Restart()
	}
	if offscreenLeft(&o.Body, 0) {
		o.Remove = true
	}
}

func (o *Octopus) Draw(s draw.Surface) {
	if s.Debug() {
		o.drawBounds(s, draw.ColorBounds)
		return
	}
	draw.At(draw.SpriteOctopusShadow, o.X-24, o.Y).Draw(s, draw.Dynamic)
	draw.At(draw.SpriteOctopus, o.X-16, o.Y-16).Draw(s, draw.Dynamic)
}

// projectile flies left in a straight line
type projectile struct {
	Kinetic
	sprite, shadow draw.SpriteID
	sdx, sdy       float64
	shadowDX       float64
	shadowDY       float64
}

func (p *projectile) Update(f *Frame) {
	p.ScaleSpeed(f.DT)
	p.SetLocation(p.X-p.MoveSpeed, p.Y)
	if offscreenLeft(&p.Body, 0) {
		p.Remove = true
	}
}

func (p *projectile) Draw(s draw.Surface) {
	if s.Debug() {
		p.drawBounds(s, draw.ColorBounds)
		return
	}
	draw.At(p.shadow, p.X+p.shadowDX, p.Y+p.shadowDY).Draw(s, draw.Dynamic)
	draw.At(p.sprite, p.X+p.sdx, p.Y+p.sdy).Draw(s, draw.Dynamic)
}

// Bullet is an ink blob; it breaks on the boat
type Bullet struct {
	projectile
}

// NewBullet creates a bullet at (x, y)
func NewBullet(x, y float64) *Bullet {
	return &Bullet{projectile{
		Kinetic:  newKinetic(x, y, 11, 12, BulletSpeed, GroupProjectile, 0),
		sprite:   draw.SpriteInkBullet,
		shadow:   draw.SpriteInkBulletShadow,
		sdy:      -2,
		shadowDY: 14,
	}}
}

// Rock is a floating obstacle; it survives hitting the boat
type Rock struct {
	projectile
}

// NewRock creates a rock at (x, y)
func NewRock(x, y float64) *Rock {
	return &Rock{projectile{
		Kinetic:  newKinetic(x, y, 34, 14, RockSpeed, GroupHazard, 0),
		sprite:   draw.SpriteRock,
		shadow:   draw.SpriteRockShadow,
		sdx:      -7,
		sdy:      -16,
		shadowDX: -15,
		shadowDY: -16,
	}}
}
