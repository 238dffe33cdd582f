package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.Width)
	assert.Equal(t, 180, cfg.Display.Height)
	assert.Equal(t, "landscape", cfg.Display.Orientation)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 0.75, cfg.Transition.Duration)
	assert.Equal(t, "village", cfg.Player.Scene)
	assert.Equal(t, 50, cfg.Coffee.Beans)
	assert.Equal(t, 5, cfg.Fishing.MaxFish)
}

func TestLoader_LoadScene(t *testing.T) {
	loader := NewLoader(configDir)

	layout, err := loader.LoadScene("village")
	require.NoError(t, err)

	assert.Equal(t, "village", layout.ID)
	assert.Equal(t, "outdoor", layout.Kind)
	assert.Equal(t, RectSpec{W: 640, H: 360}, layout.World)
	assert.Len(t, layout.Grids, 2)

	var house *TriggerSpec
	for i := range layout.Triggers {
		if layout.Triggers[i].ID == "house" {
			house = &layout.Triggers[i]
		}
	}
	require.NotNil(t, house)
	assert.Equal(t, "button", house.Type)
	assert.Equal(t, "room", house.Target)
	assert.Equal(t, "up", house.Facing)
	assert.Equal(t, "door", house.Return)
	assert.Equal(t, PointSpec{X: 66, Y: 144}, house.End)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Len(t, cfg.Scenes, len(cfg.Game.Scenes))
	require.NotNil(t, cfg.Scene("coffee"))
	assert.True(t, cfg.Scene("coffee").HidePlayer)
	assert.Equal(t, "coffee", cfg.Scene("coffee").Minigame)
	assert.Nil(t, cfg.Scene("nowhere"))

	for _, s := range cfg.Scenes {
		for _, g := range s.Grids {
			_, err := loader.LoadGrid(g.File)
			assert.NoError(t, err, "%s: %s", s.ID, g.File)
		}
	}
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "missing game.json",
			files: fstest.MapFS{},
			want:  "failed to read game.json",
		},
		{
			name:  "bad json",
			files: fstest.MapFS{"game.json": {Data: []byte("{")}},
			want:  "failed to parse game.json",
		},
		{
			name:  "zero display",
			files: fstest.MapFS{"game.json": {Data: []byte(`{"display": {}}`)}},
			want:  "must be positive",
		},
		{
			name: "missing scene",
			files: fstest.MapFS{
				"game.json": {Data: []byte(`{"display": {"width": 1, "height": 1}, "scenes": ["a"]}`)},
			},
			want: "failed to read scene a",
		},
		{
			name: "id mismatch",
			files: fstest.MapFS{
				"game.json":     {Data: []byte(`{"display": {"width": 1, "height": 1}, "scenes": ["a"]}`)},
				"scenes/a.yaml": {Data: []byte("id: b\n")},
			},
			want: "declares id",
		},
		{
			name: "dangling references",
			files: fstest.MapFS{
				"game.json": {Data: []byte(`{"display": {"width": 1, "height": 1}, "player": {"scene": "a"}, "scenes": ["a", "b"]}`)},
				"scenes/a.yaml": {Data: []byte(strings.Join([]string{
					"triggers:",
					"  - {id: t1, type: collision, target: nowhere}",
					"  - {id: t2, type: button, target: b, return: back}",
					"  - {id: t3, type: minigame, target: b}",
				}, "\n"))},
				"scenes/b.yaml": {Data: []byte("exit: {scene: gone}\n")},
			},
			want: "unknown scene \"nowhere\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.files, "test").LoadAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Game: &GameConfig{Player: PlayerConfig{Scene: "missing"}},
		Scenes: []*SceneLayout{
			{ID: "a", Triggers: []TriggerSpec{
				{ID: "t", Type: "button", Target: "b", Return: "back"},
				{ID: "m", Type: "minigame", Target: "b"},
			}},
			{ID: "b", Exit: &ExitSpec{Scene: "gone"}},
			{ID: "b"},
			{ID: "coffee", Kind: "minigame", HidePlayer: true, Minigame: "coffee"},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "duplicate scene \"b\"")
	assert.Contains(t, msg, "player start scene \"missing\"")
	assert.Contains(t, msg, "returns through \"back\"")
	assert.Contains(t, msg, "has no minigame")
	assert.Contains(t, msg, "exit to unknown scene \"gone\"")
	assert.Contains(t, msg, "scene coffee: minigame coffee has no exit")
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("# comment\n-1, 0,-1\n3,-1\n"))
	require.NoError(t, err)

	assert.Equal(t, Grid{{-1, 0, -1}, {3, -1}}, g)
	assert.Equal(t, []Cell{{Col: 1, Row: 0, Value: 0}, {Col: 0, Row: 1, Value: 3}}, g.Cells())

	_, err = ParseGrid(strings.NewReader("1,x\n"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint32
		a       uint32
		wantErr bool
	}{
		{in: "black", a: 0xffff},
		{in: " White ", r: 0xffff, g: 0xffff, b: 0xffff, a: 0xffff},
		{in: "#ff0000", r: 0xffff, a: 0xffff},
		{in: "#00000000"},
		{in: "#12", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "notacolour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			r, g, b, a := c.RGBA()
			assert.Equal(t, []uint32{tt.r, tt.g, tt.b, tt.a}, []uint32{r, g, b, a})
		})
	}
}

func TestSceneID(t *testing.T) {
	assert.Equal(t, "village", SceneID("/x/configs/scenes/village.yaml"))
	assert.Equal(t, "room", SceneID("scenes/room.YML"))
	assert.Equal(t, "", SceneID("grids/trees.csv"))
	assert.True(t, isContentFile("a/b.csv"))
	assert.False(t, isContentFile("game.json"))
}
