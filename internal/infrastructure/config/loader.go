package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every loaded configuration
type Config struct {
	Game   *GameConfig
	Scenes []*SceneLayout
}

// Scene returns the layout with the given id, or nil
func (c *Config) Scene(id string) *SceneLayout {
	for _, s := range c.Scenes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string { return l.basePath }

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		return nil, fmt.Errorf("game.json: display size %dx%d must be positive", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.TPS <= 0 {
		cfg.Display.TPS = 60
	}
	if cfg.Display.Scale <= 0 {
		cfg.Display.Scale = 1
	}

	return &cfg, nil
}

// LoadScene loads scenes/<id>.yaml
func (l *Loader) LoadScene(id string) (*SceneLayout, error) {
	path := "scenes/" + id + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", id, err)
	}

	var layout SceneLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", id, err)
	}
	if layout.ID == "" {
		layout.ID = id
	}
	if layout.ID != id {
		return nil, fmt.Errorf("scene %s: file declares id %q", id, layout.ID)
	}

	return &layout, nil
}

// LoadGrid loads a CSV grid relative to the config root
func (l *Loader) LoadGrid(path string) (Grid, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid %s: %w", path, err)
	}
	defer f.Close()

	g, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid %s: %w", path, err)
	}
	return g, nil
}

// LoadAll loads game.json and every scene it lists, then checks that the
// scenes reference each other consistently
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	cfg := &Config{Game: game}
	for _, id := range game.Scenes {
		layout, err := l.LoadScene(id)
		if err != nil {
			return nil, err
		}
		cfg.Scenes = append(cfg.Scenes, layout)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-scene references
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for _, s := range c.Scenes {
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate scene %q", s.ID))
		}
		seen[s.ID] = true
	}

	if c.Scene(c.Game.Player.Scene) == nil {
		errs = append(errs, fmt.Errorf("player start scene %q not found", c.Game.Player.Scene))
	}

	for _, s := range c.Scenes {
		for _, t := range s.Triggers {
			target := c.Scene(t.Target)
			if target == nil {
				errs = append(errs, fmt.Errorf("scene %s: trigger %q targets unknown scene %q", s.ID, t.ID, t.Target))
				continue
			}
			if t.Return != "" && !hasTrigger(target, t.Return) {
				errs = append(errs, fmt.Errorf("scene %s: trigger %q returns through %q, which %s lacks", s.ID, t.ID, t.Return, target.ID))
			}
			if t.Type == "minigame" && target.Minigame == "" {
				errs = append(errs, fmt.Errorf("scene %s: trigger %q targets %s, which has no minigame", s.ID, t.ID, target.ID))
			}
		}
		if s.Minigame != "" && s.Exit == nil {
			errs = append(errs, fmt.Errorf("scene %s: minigame %s has no exit", s.ID, s.Minigame))
		}
		if s.Exit != nil && c.Scene(s.Exit.Scene) == nil {
			errs = append(errs, fmt.Errorf("scene %s: exit to unknown scene %q", s.ID, s.Exit.Scene))
		}
	}

	return errors.Join(errs...)
}

func hasTrigger(s *SceneLayout, id string) bool {
	for _, t := range s.Triggers {
		if t.ID == id {
			return true
		}
	}
	return false
}
