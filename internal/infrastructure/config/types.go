package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig    `json:"display"`
	Transition TransitionConfig `json:"transition"`
	Player     PlayerConfig     `json:"player"`
	Coffee     CoffeeConfig     `json:"coffee"`
	Fishing    FishingConfig    `json:"fishing"`
	Scenes     []string         `json:"scenes"` // layout ids under scenes/
}

type DisplayConfig struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"` // landscape or portrait
	Scale       int    `json:"scale"`
	TPS         int    `json:"tps"`
	Title       string `json:"title"`
}

type TransitionConfig struct {
	Duration float64 `json:"duration"` // seconds per pinhole
	Reentry  string  `json:"reentry"`  // drop or queue
}

// PlayerConfig places the player at start-up and after a reset
type PlayerConfig struct {
	Scene string  `json:"scene"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

type CoffeeConfig struct {
	RoundMs   float64 `json:"roundMs"`
	OctopusMs float64 `json:"octopusMs"`
	RockMs    float64 `json:"rockMs"`
	Beans     int     `json:"beans"`
}

type FishingConfig struct {
	RoundMs float64 `json:"roundMs"`
	SpawnMs float64 `json:"spawnMs"`
	MaxFish int     `json:"maxFish"`
}
