// Package effect holds the scene state: drifting star particles, the whale
// actor, pointer state and the proximity connection pass. It draws through
// the Surface interface and never touches the window directly.
package effect

import (
	"image"
	"image/color"
)

// Asset identifies an image the Surface knows how to blit.
type Asset string

const (
	StarAsset  Asset = "star"
	WhaleAsset Asset = "whale"
)

// Sprite is one image blit centred on (X, Y).
type Sprite struct {
	Asset Asset
	// Frame is the source region inside the asset. The zero rectangle means
	// the whole image.
	Frame         image.Rectangle
	X, Y          float64
	Width, Height float64
	// Rotation in radians around the sprite centre.
	Rotation float64
}

// Line is one stroked segment. Color is the opaque stroke colour and Opacity
// the alpha applied on top of it.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.NRGBA
	Opacity        float64
}

// Surface receives the draw calls of one frame.
type Surface interface {
	DrawSprite(s Sprite)
	DrawLine(l Line)
}

// Rand is the random source used for particle placement. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}
