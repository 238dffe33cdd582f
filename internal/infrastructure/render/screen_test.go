package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/village/internal/application/camera"
	"github.com/younwookim/village/internal/domain/draw"
	"github.com/younwookim/village/internal/domain/geom"
)

func TestScreen_Project(t *testing.T) {
	vp := camera.NewViewport(320, 180, camera.Landscape)
	vp.Fit(1280, 800) // scale 4 with 40px bars above and below
	cam := camera.New(vp)
	cam.Update(geom.Vec(100, 50), geom.R(0, 0, 640, 360))

	s := NewScreen(vp, nil)
	s.Begin(nil, cam)

	tests := []struct {
		name string
		ct   draw.CameraType
		in   geom.Vector2
		want geom.Vector2
	}{
		{"static origin", draw.Static, geom.Vec(0, 0), geom.Vec(0, 40)},
		{"static point", draw.Static, geom.Vec(10, 5), geom.Vec(40, 60)},
		{"dynamic at view corner", draw.Dynamic, geom.Vec(100, 50), geom.Vec(0, 40)},
		{"dynamic point", draw.Dynamic, geom.Vec(110, 55), geom.Vec(40, 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.project(tt.in, tt.ct))
		})
	}
}

func TestScreen_ProjectRectScalesSize(t *testing.T) {
	vp := camera.NewViewport(320, 180, camera.Landscape)
	vp.Fit(640, 360)
	s := NewScreen(vp, nil)

	got := s.projectRect(geom.R(8, 4, 16, 10), draw.Static)
	assert.Equal(t, geom.R(16, 8, 32, 20), got)
}

func TestScreen_Debug(t *testing.T) {
	s := NewScreen(camera.NewViewport(320, 180, camera.Landscape), nil)
	assert.False(t, s.Debug())
	s.SetDebug(true)
	assert.True(t, s.Debug())
}

func TestDefaultAtlas_CoversEverySprite(t *testing.T) {
	for id := draw.SpriteNone + 1; id <= draw.SpriteFishSwimming; id++ {
		r, ok := DefaultAtlas.Region(id)
		if assert.True(t, ok, "sprite %d", id) {
			assert.Positive(t, r.W)
			assert.Positive(t, r.H)
		}
	}
	_, ok := DefaultAtlas.Region(draw.SpriteNone)
	assert.False(t, ok)
}
