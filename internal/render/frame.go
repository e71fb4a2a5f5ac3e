// Package render turns the draw calls recorded during a tick into ebiten
// draw calls.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/star-whale/internal/effect"
)

type opKind uint8

const (
	opSprite opKind = iota
	opLine
)

type op struct {
	kind   opKind
	sprite effect.Sprite
	line   effect.Line
}

// Frame is a display list. Update records into it through the
// effect.Surface methods and Draw replays it onto the screen, so the scene
// keeps its draw-then-advance order while ebiten keeps Update and Draw
// apart.
type Frame struct {
	ops []op
}

func (f *Frame) DrawSprite(s effect.Sprite) {
	f.ops = append(f.ops, op{kind: opSprite, sprite: s})
}

func (f *Frame) DrawLine(l effect.Line) {
	f.ops = append(f.ops, op{kind: opLine, line: l})
}

// Reset clears the frame, keeping its storage for the next tick.
func (f *Frame) Reset() {
	f.ops = f.ops[:0]
}

func (f *Frame) Len() int { return len(f.ops) }

// Render replays the recorded calls in order.
func (f *Frame) Render(screen *ebiten.Image, atlas Atlas) {
	for i := range f.ops {
		o := &f.ops[i]
		switch o.kind {
		case opSprite:
			img := atlas.Frame(o.sprite.Asset, o.sprite.Frame)
			if img == nil {
				continue
			}
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM = spriteGeoM(o.sprite, img.Bounds().Size())
			opts.Filter = ebiten.FilterLinear
			screen.DrawImage(img, opts)
		case opLine:
			l := o.line
			vector.StrokeLine(screen,
				float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
				float32(l.Width), lineColor(l), true)
		}
	}
}

// spriteGeoM scales a src-sized image to the sprite size, rotates it about
// its centre and moves the centre to (X, Y).
func spriteGeoM(s effect.Sprite, src image.Point) ebiten.GeoM {
	var m ebiten.GeoM
	if src.X == 0 || src.Y == 0 {
		return m
	}
	m.Translate(-float64(src.X)/2, -float64(src.Y)/2)
	m.Scale(s.Width/float64(src.X), s.Height/float64(src.Y))
	if s.Rotation != 0 {
		m.Rotate(s.Rotation)
	}
	m.Translate(s.X, s.Y)
	return m
}

func lineColor(l effect.Line) color.NRGBA {
	c := l.Color
	a := float64(c.A) * clamp01(l.Opacity)
	c.A = uint8(a + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
