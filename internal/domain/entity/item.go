package entity

import "github.com/younwookim/village/internal/domain/draw"

// ItemKind is the kind of a collectible item
type ItemKind int

const (
	ItemCoffee ItemKind = iota
	ItemFish
	ItemCrop
	ItemEggs
)

// String returns the string representation of the item kind
func (k ItemKind) String() string {
	switch k {
	case ItemCoffee:
		return "Coffee"
	case ItemFish:
		return "Fish"
	case ItemCrop:
		return "Crop"
	case ItemEggs:
		return "Eggs"
	default:
		return "Unknown"
	}
}

// ParseItemKind converts a layout-file name to an ItemKind
func ParseItemKind(s string) (ItemKind, bool) {
	switch s {
	case "coffee":
		return ItemCoffee, true
	case "fish":
		return ItemFish, true
	case "crop":
		return ItemCrop, true
	case "eggs":
		return ItemEggs, true
	default:
		return 0, false
	}
}

var itemSprites = map[ItemKind]draw.SpriteID{
	ItemCoffee: draw.SpriteCoffee,
	ItemFish:   draw.SpriteFish,
	ItemCrop:   draw.SpriteCrop,
	ItemEggs:   draw.SpriteEggs,
}

// Item is a 16x16 collectible the player can carry
type Item struct {
	Base
	Kind ItemKind
}

// NewItem creates an item with its top-left at (x, y)
func NewItem(kind ItemKind, x, y float64) *Item {
	return &Item{
		Base: Base{Body: Body{X: x, Y: y, Width: 16, Height: 16, Group: GroupItem}},
		Kind: kind,
	}
}

func (i *Item) Update(*Frame) {}

func (i *Item) Draw(s draw.Surface) {
	draw.At(itemSprites[i.Kind], i.X, i.Y).Draw(s, draw.Dynamic)
}
