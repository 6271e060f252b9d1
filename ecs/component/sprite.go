package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritelab/common"
)

type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	// Tint multiplies the image colour, like a material colour.
	Tint common.RGBA
}

var SpriteComponent = NewComponent[Sprite]()
