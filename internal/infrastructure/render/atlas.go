package render

import (
	"image/color"

	"github.com/younwookim/village/internal/domain/draw"
	"golang.org/x/image/colornames"
)

// Region is the placeholder art of one sprite: a filled rectangle in
// logical units
type Region struct {
	W, H  float64
	Color color.Color
}

var shadow = color.RGBA{0, 0, 0, 64}

// Atlas maps sprite ids to regions
type Atlas map[draw.SpriteID]Region

// DefaultAtlas sizes every sprite like its art and tints it by kind
var DefaultAtlas = Atlas{
	draw.SpritePlayerFront:    {16, 32, colornames.Tomato},
	draw.SpritePlayerRight:    {16, 32, colornames.Tomato},
	draw.SpritePlayerBack:     {16, 32, colornames.Firebrick},
	draw.SpritePlayerLeft:     {16, 32, colornames.Tomato},
	draw.SpritePlayerArmFront: {6, 10, colornames.Peachpuff},
	draw.SpritePlayerArmRight: {6, 10, colornames.Peachpuff},
	draw.SpritePlayerArmBack:  {6, 10, colornames.Peachpuff},
	draw.SpritePlayerArmLeft:  {6, 10, colornames.Peachpuff},
	draw.SpritePlayerShadow:   {16, 6, shadow},

	draw.SpriteNPCMaleFront:    {16, 32, colornames.Slateblue},
	draw.SpriteNPCMaleRight:    {16, 32, colornames.Slateblue},
	draw.SpriteNPCMaleBack:     {16, 32, colornames.Darkslateblue},
	draw.SpriteNPCMaleLeft:     {16, 32, colornames.Slateblue},
	draw.SpriteNPCFemaleFront:  {16, 32, colornames.Orchid},
	draw.SpriteNPCFemaleRight:  {16, 32, colornames.Orchid},
	draw.SpriteNPCFemaleBack:   {16, 32, colornames.Darkorchid},
	draw.SpriteNPCFemaleLeft:   {16, 32, colornames.Orchid},
	draw.SpriteSpeechBubble:    {16, 16, colornames.White},

	draw.SpriteSimpleHouse:        {48, 64, colornames.Peru},
	draw.SpriteSimpleHouseShadow:  {48, 64, shadow},
	draw.SpriteSpecialHouse:       {80, 64, colornames.Sienna},
	draw.SpriteSpecialHouseShadow: {80, 64, shadow},
	draw.SpriteShop:               {80, 96, colornames.Cadetblue},
	draw.SpriteShopShadow:         {80, 96, shadow},
	draw.SpriteDiner:              {128, 64, colornames.Indianred},
	draw.SpriteDinerShadow:        {128, 64, shadow},
	draw.SpriteGrass:              {32, 32, colornames.Yellowgreen},
	draw.SpriteTreeCluster:        {64, 48, colornames.Forestgreen},

	draw.SpriteFlowerPot:    {16, 32, colornames.Hotpink},
	draw.SpriteSofa:         {64, 32, colornames.Teal},
	draw.SpriteBed:          {32, 64, colornames.Lightsteelblue},
	draw.SpriteShelfEmpty:   {32, 64, colornames.Saddlebrown},
	draw.SpriteShelfFull:    {32, 64, colornames.Chocolate},
	draw.SpriteShopCounter:  {112, 48, colornames.Tan},
	draw.SpriteDinerCounter: {240, 80, colornames.Tan},
	draw.SpriteStoolTall:    {16, 28, colornames.Darkgoldenrod},
	draw.SpriteStoolShort:   {16, 24, colornames.Darkgoldenrod},
	draw.SpriteTable:        {32, 28, colornames.Burlywood},

	draw.SpriteCoffee: {16, 16, colornames.Saddlebrown},
	draw.SpriteFish:   {16, 16, colornames.Lightskyblue},
	draw.SpriteCrop:   {16, 16, colornames.Gold},
	draw.SpriteEggs:   {16, 16, colornames.Ivory},

	draw.SpriteBoat:            {32, 16, colornames.Sandybrown},
	draw.SpriteBoatHurt:        {32, 16, colornames.Red},
	draw.SpriteBoatShadow:      {32, 8, shadow},
	draw.SpriteOctopus:         {16, 16, colornames.Mediumpurple},
	draw.SpriteOctopusShadow:   {16, 6, shadow},
	draw.SpriteInkBullet:       {8, 8, colornames.Black},
	draw.SpriteInkBulletShadow: {8, 4, shadow},
	draw.SpriteRock:            {16, 16, colornames.Gray},
	draw.SpriteRockShadow:      {16, 6, shadow},
	draw.SpriteWater:           {32, 32, colornames.Steelblue},

	draw.SpriteHook:         {8, 8, colornames.Silver},
	draw.SpriteFishSwimming: {16, 8, colornames.Orange},
}

// Region returns the region of id and whether it is known
func (a Atlas) Region(id draw.SpriteID) (Region, bool) {
	r, ok := a[id]
	return r, ok
}
