package minigame

import (
	"fmt"

	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/entity"
	"github.com/younwookim/village/internal/domain/geom"
	"github.com/younwookim/village/internal/domain/timer"
)

// CoffeeConfig tunes the coffee boat round
type CoffeeConfig struct {
	Area       geom.Rect // play strip on the water
	RoundMs    float64
	OctopusMs  float64 // spawn interval
	RockMs     float64
	StartBeans int
}

// DefaultCoffeeConfig returns the tuning used by the shipped scenes
func DefaultCoffeeConfig(viewW float64) CoffeeConfig {
	return CoffeeConfig{
		Area:       geom.R(0, 48, viewW, 116),
		RoundMs:    60000,
		OctopusMs:  2000,
		RockMs:     3500,
		StartBeans: entity.BoatBeans,
	}
}

// Coffee ferries beans across the lake while octopuses and rocks drift in
// from the right. Whatever beans survive become coffee.
type Coffee struct {
	round
	cfg CoffeeConfig

	Boat    *entity.Boat
	octopus *timer.Timer
	rock    *timer.Timer
	host    Host
}

// NewCoffee creates an idle coffee round
func NewCoffee(cfg CoffeeConfig) *Coffee {
	return &Coffee{
		round:   newRound(cfg.RoundMs),
		cfg:     cfg,
		octopus: timer.New(cfg.OctopusMs, false),
		rock:    timer.New(cfg.RockMs, false),
	}
}

func (c *Coffee) Start(h Host, _ entity.Rand) {
	h.RemoveWhere(notPlayer)
	c.host = h

	a := c.cfg.Area
	c.Boat = entity.NewBoat(16, a.Y+a.H/2-8, a)
	if c.cfg.StartBeans > 0 {
		c.Boat.Beans = c.cfg.StartBeans
	}
	h.Add(c.Boat)

	c.octopus.Restart()
	c.rock.Restart()
	c.start()
}

func (c *Coffee) Update(f *entity.Frame) {
	if !c.running {
		return
	}
	c.tick(f)

	c.octopus.Update(f.DT)
	if c.octopus.Done() {
		f.Spawn(entity.NewOctopus(c.cfg.Area.Right(), c.laneY(f.Rand, 16), f.Rand))
		c.octopus.Restart()
	}
	c.rock.Update(f.DT)
	if c.rock.Done() {
		f.Spawn(entity.NewRock(c.cfg.Area.Right(), c.laneY(f.Rand, 14)))
		c.rock.Restart()
	}
}

// laneY picks a random y inside the play strip for a body of height h
func (c *Coffee) laneY(rng entity.Rand, h float64) float64 {
	return c.cfg.Area.Y + offset(rng, c.cfg.Area.H-h)
}

func (c *Coffee) Over() bool {
	return c.running && (c.quit || c.clock.Done() || c.Boat.Sunk())
}

func (c *Coffee) Finish(w *entity.Wallet) {
	if !c.running {
		return
	}
	c.running = false
	if w != nil {
		w.Add(entity.ItemCoffee, c.Boat.Beans)
	}
	if c.host != nil {
		c.host.RemoveWhere(notPlayer)
	}
}

func (c *Coffee) Draw(s draw.Surface) {
	if c.Boat == nil {
		return
	}
	s.Text(fmt.Sprintf("beans %d  time %d", c.Boat.Beans, c.secondsLeft()), 4, 4)
}
