package effect

import (
	"math"

	"github.com/iburimskiy/star-whale/internal/config"
)

// Pointer is the shared pointer state read by every particle.
type Pointer struct {
	X, Y    float64
	Pressed bool
	Radius  float64
}

// Effect owns the particle field, the whale and the pointer. All methods
// must be called from the goroutine that drives the frame loop.
type Effect struct {
	Width, Height     float64
	MaxDistance       float64
	NumberOfParticles int

	Particles []*Particle
	Whale     Actor
	Pointer   Pointer
	Gradient  Gradient

	particleCfg   config.ParticleConfig
	skipSelfPairs bool
	rng           Rand
}

func New(cfg config.Config, width, height float64, rng Rand) *Effect {
	e := &Effect{
		Width:             width,
		Height:            height,
		MaxDistance:       cfg.Particles.MaxDistance,
		NumberOfParticles: cfg.Particles.Count,
		Gradient:          initialGradient(height),
		particleCfg:       cfg.Particles,
		skipSelfPairs:     cfg.Particles.SkipSelfPairs,
		rng:               rng,
	}
	e.createParticles()
	e.Whale = newWhale(cfg.Whale, width, height)
	e.Pointer = Pointer{
		X:      width * 0.5,
		Y:      height * 0.5,
		Radius: cfg.Pointer.Radius,
	}
	return e
}

func (e *Effect) createParticles() {
	e.Particles = make([]*Particle, 0, e.NumberOfParticles)
	for i := 0; i < e.NumberOfParticles; i++ {
		e.Particles = append(e.Particles, newParticle(e))
	}
}

func (e *Effect) PointerDown(x, y float64) {
	e.Pointer.Pressed = true
	e.Pointer.X = x
	e.Pointer.Y = y
}

// PointerMove only tracks the pointer while it is pressed.
func (e *Effect) PointerMove(x, y float64) {
	if !e.Pointer.Pressed {
		return
	}
	e.Pointer.X = x
	e.Pointer.Y = y
}

func (e *Effect) PointerUp() {
	e.Pointer.Pressed = false
}

// Resize reseeds the whole scene for a new viewport. Non-positive sizes, as
// reported by a minimised window, are ignored.
func (e *Effect) Resize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	e.Width = width
	e.Height = height
	e.Gradient = resizedGradient(width, height)
	e.Whale.Resize(width, height)
	for _, p := range e.Particles {
		p.Reset()
	}
	return true
}

// ConnectParticles strokes a line between every pair of particles closer
// than MaxDistance, fading out with distance, and returns how many lines it
// drew. Unless skipSelfPairs is set the inner loop starts at the outer index,
// so every particle also gets a zero-length line to itself.
func (e *Effect) ConnectParticles(s Surface) int {
	lines := 0
	width := e.particleCfg.LineWidth
	for a := 0; a < len(e.Particles); a++ {
		start := a
		if e.skipSelfPairs {
			start = a + 1
		}
		pa := e.Particles[a]
		for b := start; b < len(e.Particles); b++ {
			pb := e.Particles[b]
			dx := pa.X - pb.X
			dy := pa.Y - pb.Y
			distance := math.Hypot(dx, dy)
			if distance >= e.MaxDistance {
				continue
			}
			s.DrawLine(Line{
				X1:      pa.X,
				Y1:      pa.Y,
				X2:      pb.X,
				Y2:      pb.Y,
				Width:   width,
				Color:   e.Gradient.At((pa.X+pb.X)*0.5, (pa.Y+pb.Y)*0.5),
				Opacity: 1 - distance/e.MaxDistance,
			})
			lines++
		}
	}
	return lines
}

// Stats describes the last frame.
type Stats struct {
	Particles int
	Lines     int
}

// HandleParticles renders and advances one frame: whale, connection lines,
// then every particle. Each entity is drawn with its current state before
// it is updated. dt is in milliseconds.
func (e *Effect) HandleParticles(s Surface, dt float64) Stats {
	e.Whale.Draw(s)
	e.Whale.Update(dt)

	var stats Stats
	if e.Width > 0 && e.Height > 0 {
		stats.Lines = e.ConnectParticles(s)
	}

	for _, p := range e.Particles {
		p.Draw(s)
		p.Update()
	}
	stats.Particles = len(e.Particles)
	return stats
}
