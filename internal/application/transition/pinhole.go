// Package transition draws the iris animation played between scenes
package transition

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
)

// Kind is the direction of a pinhole animation
type Kind int

const (
	// Open widens the hole until the scene is visible
	Open Kind = iota
	// Close shrinks the hole until the screen is black
	Close
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Open:
		return "Open"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// openRim is the ring thickness an Open iris settles at
const openRim = 10

// DefaultDuration is the length of one pinhole animation in seconds
const DefaultDuration = 0.75

// slack absorbs float32 rounding of Duration against the float64 clock
const slack = 1e-6

// Pinhole is a black ring around the view centre whose thickness is
// tweened. The ring's outer radius is 0.75 times the larger view
// dimension, which covers the corners of any landscape or portrait view.
type Pinhole struct {
	Kind     Kind
	Duration float32 // seconds

	center    geom.Vector2
	radius    float64
	view      geom.Rect
	thickness float64
	tween     *gween.Tween
	elapsed   float64
	done      bool
}

// NewPinhole creates a pinhole covering a view of the given logical size
func NewPinhole(kind Kind, view geom.Rect, duration float32) *Pinhole {
	if duration <= 0 {
		duration = DefaultDuration
	}
	p := &Pinhole{
		Kind:     kind,
		Duration: duration,
		center:   view.Center(),
		radius:   0.75 * math.Max(view.W, view.H),
		view:     view,
	}
	p.Reset()
	return p
}

// Reset rewinds the animation to its first frame
func (p *Pinhole) Reset() {
	p.done = false
	p.elapsed = 0
	switch p.Kind {
	case Open:
		p.thickness = p.radius - 1
		p.tween = gween.New(float32(p.radius-1), openRim, p.Duration, ease.OutQuad)
	default:
		p.thickness = 1
		p.tween = gween.New(1, float32(p.radius), p.Duration, ease.InQuad)
	}
}

// Update advances the animation by dt seconds. Steps that sum to Duration
// finish on the last of them.
func (p *Pinhole) Update(dt float64) {
	if p.done {
		return
	}
	p.elapsed += dt
	at := float32(p.elapsed)
	if p.elapsed+slack >= float64(p.Duration) {
		p.done = true
		at = p.Duration
	}
	v, _ := p.tween.Set(at)
	p.thickness = float64(v)
}

// Overflow returns how far the last Update ran past the end of a finished
// animation, in seconds
func (p *Pinhole) Overflow() float64 {
	if !p.done {
		return 0
	}
	return math.Max(p.elapsed-float64(p.Duration), 0)
}

// Done reports whether the animation has finished
func (p *Pinhole) Done() bool { return p.done }

// Radius returns the outer radius of the ring
func (p *Pinhole) Radius() float64 { return p.radius }

// Thickness returns the current ring thickness
func (p *Pinhole) Thickness() float64 { return p.thickness }

// Draw paints the ring on the static camera. A closed iris blacks out the
// whole view.
func (p *Pinhole) Draw(s draw.Surface) {
	if p.Kind == Close && p.done {
		s.FillRect(p.view, draw.Static, draw.ColorBlack)
		return
	}
	t := math.Max(p.thickness, 0)
	s.StrokeCircle(p.center, p.radius-t/2, t, draw.Static, draw.ColorBlack)
}
