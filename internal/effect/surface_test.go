package effect

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/star-whale/internal/config"
)

// recorder is a Surface that keeps every call in order.
type recorder struct {
	ops     []string
	sprites []Sprite
	lines   []Line
}

func (r *recorder) DrawSprite(s Sprite) {
	r.ops = append(r.ops, string(s.Asset))
	r.sprites = append(r.sprites, s)
}

func (r *recorder) DrawLine(l Line) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, l)
}

func (r *recorder) reset() {
	r.ops, r.sprites, r.lines = nil, nil, nil
}

// pairLines drops the zero-length self connections.
func (r *recorder) pairLines() []Line {
	var out []Line
	for _, l := range r.lines {
		if l.X1 != l.X2 || l.Y1 != l.Y2 {
			out = append(out, l)
		}
	}
	return out
}

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestEffect(count int, width, height float64) *Effect {
	cfg := config.Default()
	cfg.Particles.Count = count
	return New(cfg, width, height, rand.New(rand.NewSource(7)))
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
