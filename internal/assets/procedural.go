package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/star-whale/internal/config"
)

// StarSize is the edge of the built-in star sprite. Stars are drawn at most
// 48px wide, so the sprite is only ever scaled down.
const StarSize = 64

var (
	starGlow  = color.NRGBA{R: 255, G: 236, B: 160, A: 90}
	starCore  = color.NRGBA{R: 255, G: 248, B: 220, A: 255}
	whaleBack = color.NRGBA{R: 46, G: 78, B: 150, A: 255}
	whaleBell = color.NRGBA{R: 150, G: 180, B: 225, A: 255}
	whaleEye  = color.NRGBA{R: 12, G: 18, B: 40, A: 255}
)

// Star rasterises a five-pointed star with a faint halo.
func Star(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	z := vector.NewRasterizer(size, size)
	c := float32(size) / 2

	ellipse(z, c, c, c*0.9, c*0.9)
	z.Draw(img, img.Bounds(), image.NewUniform(starGlow), image.Point{})

	z.Reset(size, size)
	starPath(z, c, c, c*0.95, c*0.4)
	z.Draw(img, img.Bounds(), image.NewUniform(starCore), image.Point{})
	return img
}

func starPath(z *vector.Rasterizer, cx, cy, outer, inner float32) {
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// ellipse adds an axis-aligned ellipse built from four cubic arcs.
func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	const k = 0.5523
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry)
	z.CubeTo(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry)
	z.CubeTo(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy)
	z.ClosePath()
}

// WhaleSheet draws MaxFrame+1 frames of a whale beating its tail, laid out
// row by row with cfg.SheetColumns() frames per row.
func WhaleSheet(cfg config.WhaleConfig) image.Image {
	frames := cfg.MaxFrame + 1
	cols := cfg.SheetColumns()
	rows := (frames + cols - 1) / cols
	fw, fh := cfg.FrameWidth, cfg.FrameHeight

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*fw, rows*fh))
	for i := 0; i < frames; i++ {
		x0, y0 := (i%cols)*fw, (i/cols)*fh
		phase := 2 * math.Pi * float64(i) / float64(frames)
		drawWhale(sheet, image.Rect(x0, y0, x0+fw, y0+fh), phase)
	}
	return sheet
}

// Whale draws a single still whale frame.
func Whale(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawWhale(img, img.Bounds(), 0)
	return img
}

func drawWhale(dst draw.Image, r image.Rectangle, phase float64) {
	w, h := float32(r.Dx()), float32(r.Dy())
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	flap := float32(math.Sin(phase)) * h * 0.14

	// Tail stock and flukes, head to the right.
	z.MoveTo(w*0.30, h*0.42)
	z.QuadTo(w*0.16, h*0.46+flap*0.4, w*0.09, h*0.50+flap*0.7)
	z.QuadTo(w*0.03, h*0.30+flap, w*0.01, h*0.32+flap)
	z.QuadTo(w*0.05, h*0.50+flap, w*0.01, h*0.68+flap)
	z.QuadTo(w*0.04, h*0.70+flap, w*0.09, h*0.50+flap*0.7)
	z.QuadTo(w*0.16, h*0.56+flap*0.4, w*0.30, h*0.60)
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(whaleBack), image.Point{})

	z.Reset(r.Dx(), r.Dy())
	ellipse(z, w*0.56, h*0.50, w*0.36, h*0.19)
	z.Draw(dst, r, image.NewUniform(whaleBack), image.Point{})

	z.Reset(r.Dx(), r.Dy())
	ellipse(z, w*0.60, h*0.58, w*0.27, h*0.08)
	z.Draw(dst, r, image.NewUniform(whaleBell), image.Point{})

	// Pectoral fin swings against the tail.
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(w*0.62, h*0.60)
	z.QuadTo(w*0.56, h*0.74-flap*0.5, w*0.50, h*0.80-flap*0.6)
	z.QuadTo(w*0.60, h*0.72, w*0.68, h*0.62)
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(whaleBack), image.Point{})

	z.Reset(r.Dx(), r.Dy())
	ellipse(z, w*0.82, h*0.46, w*0.012, w*0.012)
	z.Draw(dst, r, image.NewUniform(whaleEye), image.Point{})
}
