package camera

import "github.com/younwookim/village/internal/domain/geom"

// Orientation decides which window axis the logical view is fitted to first
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
)

// ParseOrientation converts a config value to an Orientation
func ParseOrientation(s string) Orientation {
	if s == "portrait" {
		return Portrait
	}
	return Landscape
}

// Viewport is the fixed UI camera. It knows the logical screen size and
// how that screen is scaled and letterboxed onto the window.
type Viewport struct {
	Width, Height float64 // logical units
	Orientation   Orientation

	Scale      float64
	LetterboxX float64 // window pixels
	LetterboxY float64

	windowW, windowH float64
}

// NewViewport creates a viewport of the given logical size at scale 1
func NewViewport(w, h float64, o Orientation) *Viewport {
	return &Viewport{Width: w, Height: h, Orientation: o, Scale: 1, windowW: w, windowH: h}
}

// Fit computes scale and letterbox for a window of the given size
func (v *Viewport) Fit(windowW, windowH float64) {
	if v.Width <= 0 || v.Height <= 0 || windowW <= 0 || windowH <= 0 {
		return
	}
	v.windowW, v.windowH = windowW, windowH

	switch v.Orientation {
	case Portrait:
		v.Scale = windowW / v.Width
		if v.Height*v.Scale > windowH {
			v.Scale = windowH / v.Height
		}
	default:
		v.Scale = windowH / v.Height
		if v.Width*v.Scale > windowW {
			v.Scale = windowW / v.Width
		}
	}

	v.LetterboxX, v.LetterboxY = 0, 0
	if w := v.Width * v.Scale; w < windowW {
		v.LetterboxX = (windowW - w) / 2
	}
	if h := v.Height * v.Scale; h < windowH {
		v.LetterboxY = (windowH - h) / 2
	}
}

// Window returns the window size last passed to Fit
func (v *Viewport) Window() (w, h float64) {
	return v.windowW, v.windowH
}

// Bounds returns the logical screen rectangle
func (v *Viewport) Bounds() geom.Rect {
	return geom.R(0, 0, v.Width, v.Height)
}

// ToScreen projects a logical UI point to window pixels
func (v *Viewport) ToScreen(p geom.Vector2) geom.Vector2 {
	return geom.Vec(p.X*v.Scale+v.LetterboxX, p.Y*v.Scale+v.LetterboxY)
}

// Letterboxes returns the window-pixel bars around the scaled view
func (v *Viewport) Letterboxes() []geom.Rect {
	var bars []geom.Rect
	if v.LetterboxY > 0 {
		bars = append(bars,
			geom.R(0, 0, v.windowW, v.LetterboxY),
			geom.R(0, v.LetterboxY+v.Height*v.Scale, v.windowW, v.LetterboxY))
	}
	if v.LetterboxX > 0 {
		bars = append(bars,
			geom.R(0, 0, v.LetterboxX, v.windowH),
			geom.R(v.LetterboxX+v.Width*v.Scale, 0, v.LetterboxX, v.windowH))
	}
	return bars
}
