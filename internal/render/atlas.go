package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/star-whale/internal/effect"
)

// Atlas maps asset ids to GPU images.
type Atlas map[effect.Asset]*ebiten.Image

// NewAtlas uploads decoded images.
func NewAtlas(images map[effect.Asset]image.Image) Atlas {
	a := make(Atlas, len(images))
	for id, img := range images {
		a[id] = ebiten.NewImageFromImage(img)
	}
	return a
}

// Frame returns the region r of asset id, or the whole image when r is
// empty. Regions outside the image yield nil.
func (a Atlas) Frame(id effect.Asset, r image.Rectangle) *ebiten.Image {
	img, ok := a[id]
	if !ok {
		return nil
	}
	if r.Empty() {
		return img
	}
	b := img.Bounds()
	if !r.In(b) {
		return nil
	}
	return img.SubImage(r).(*ebiten.Image)
}
