package config

// SceneLayout is the root config for scenes/<id>.yaml
type SceneLayout struct {
	ID         string   `yaml:"id"`
	Kind       string   `yaml:"kind"` // outdoor, indoor or minigame
	World      RectSpec `yaml:"world"`
	HidePlayer bool     `yaml:"hide_player"`
	CullMargin float64  `yaml:"cull_margin"`

	Shapes    []ShapeSpec     `yaml:"shapes"`
	Sprites   []SpriteSpec    `yaml:"sprites"`
	Grids     []GridSpec      `yaml:"grids"`
	Buildings []BuildingSpec  `yaml:"buildings"`
	Trees     []TreeSpec      `yaml:"trees"`
	NPCs      []NPCSpec       `yaml:"npcs"`
	Walls     []WallSpec      `yaml:"walls"`
	WallShift PointSpec       `yaml:"wall_offset"`
	Furniture []FurnitureSpec `yaml:"furniture"`
	Items     []ItemSpec      `yaml:"items"`
	Triggers  []TriggerSpec   `yaml:"triggers"`

	Minigame string    `yaml:"minigame"` // coffee or fishing
	Exit     *ExitSpec `yaml:"exit"`
}

type ShapeSpec struct {
	Rect  RectSpec `yaml:"rect"`
	Color string   `yaml:"color"` // colour name or #rrggbb
}

type SpriteSpec struct {
	Sprite string  `yaml:"sprite"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

type TriggerSpec struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"` // collision, button or minigame
	Rect   RectSpec  `yaml:"rect"`
	Target string    `yaml:"target"`
	End    PointSpec `yaml:"end"`
	Facing string    `yaml:"facing"`
	Return string    `yaml:"return"` // id of the paired trigger in target
	Groups []string  `yaml:"groups"` // collision only; default player
}

type ExitSpec struct {
	Scene string  `yaml:"scene"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}
