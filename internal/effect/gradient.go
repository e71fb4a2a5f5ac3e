package effect

import (
	"image/color"
	"math"
)

var (
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Gold      = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	OrangeRed = color.NRGBA{R: 255, G: 69, B: 0, A: 255}
)

type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a linear colour ramp from (X0, Y0) to (X1, Y1). Points are
// projected onto that axis; anything before the start or past the end takes
// the first or last stop colour.
type Gradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

func LinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) Gradient {
	return Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// initialGradient is the top-to-bottom ramp used before the first resize.
func initialGradient(height float64) Gradient {
	return LinearGradient(0, 0, 0, height,
		ColorStop{0, White},
		ColorStop{1, Gold},
	)
}

// resizedGradient runs corner to corner once the viewport has been resized.
func resizedGradient(width, height float64) Gradient {
	return LinearGradient(0, 0, width, height,
		ColorStop{0, White},
		ColorStop{0.5, Gold},
		ColorStop{1, OrangeRed},
	)
}

// At samples the gradient at (x, y).
func (g Gradient) At(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return White
	}

	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	var t float64
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		t = clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq)
	}

	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
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
