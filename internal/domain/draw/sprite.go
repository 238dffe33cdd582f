package draw

// SpriteID identifies a region of the sprite atlas
type SpriteID int

const (
	SpriteNone SpriteID = iota

	SpritePlayerFront
	SpritePlayerRight
	SpritePlayerBack
	SpritePlayerLeft
	SpritePlayerArmFront
	SpritePlayerArmRight
	SpritePlayerArmBack
	SpritePlayerArmLeft
	SpritePlayerShadow

	SpriteNPCMaleFront
	SpriteNPCMaleRight
	SpriteNPCMaleBack
	SpriteNPCMaleLeft
	SpriteNPCFemaleFront
	SpriteNPCFemaleRight
	SpriteNPCFemaleBack
	SpriteNPCFemaleLeft
	SpriteSpeechBubble

	SpriteSimpleHouse
	SpriteSimpleHouseShadow
	SpriteSpecialHouse
	SpriteSpecialHouseShadow
	SpriteShop
	SpriteShopShadow
	SpriteDiner
	SpriteDinerShadow
	SpriteGrass
	SpriteTreeCluster

	SpriteFlowerPot
	SpriteSofa
	SpriteBed
	SpriteShelfEmpty
	SpriteShelfFull
	SpriteShopCounter
	SpriteDinerCounter
	SpriteStoolTall
	SpriteStoolShort
	SpriteTable

	SpriteCoffee
	SpriteFish
	SpriteCrop
	SpriteEggs

	SpriteBoat
	SpriteBoatHurt
	SpriteBoatShadow
	SpriteOctopus
	SpriteOctopusShadow
	SpriteInkBullet
	SpriteInkBulletShadow
	SpriteRock
	SpriteRockShadow
	SpriteWater

	SpriteHook
	SpriteFishSwimming
)

// Sprite is a placed atlas region. Frame selects a column offset for
// animated strips.
type Sprite struct {
	ID    SpriteID
	X, Y  float64
	Frame int
}

// At returns a sprite of the given id placed at (x, y)
func At(id SpriteID, x, y float64) Sprite {
	return Sprite{ID: id, X: x, Y: y}
}

// SetLocation moves the sprite
func (s *Sprite) SetLocation(x, y float64) {
	s.X = x
	s.Y = y
}

// Draw draws the sprite unless it is SpriteNone
func (s Sprite) Draw(surface Surface, ct CameraType) {
	if s.ID == SpriteNone {
		return
	}
	surface.DrawSprite(s, ct)
}
