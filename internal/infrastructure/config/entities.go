package config

// PointSpec is a position in world units
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectSpec is a rectangle in world units
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type BuildingSpec struct {
	Kind string  `yaml:"kind"` // simple_house, special_house, shop, diner
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type TreeSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type NPCSpec struct {
	Kind     string  `yaml:"kind"` // male or female
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	CanMove  bool    `yaml:"can_move"`
	Vertical bool    `yaml:"vertical"`
	Reverse  bool    `yaml:"reverse"`
	WalkMs   float64 `yaml:"walk_ms"`
}

// WallSpec is measured in wall cells
type WallSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type FurnitureSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type ItemSpec struct {
	Kind string  `yaml:"kind"` // coffee, fish, crop, eggs
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// GridSpec places one entity per present cell of a CSV grid
type GridSpec struct {
	File   string    `yaml:"file"`
	Cell   float64   `yaml:"cell"`
	Entity string    `yaml:"entity"` // tree, wall or a static sprite name
	Offset PointSpec `yaml:"offset"`
}
