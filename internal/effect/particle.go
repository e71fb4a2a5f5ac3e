package effect

import "math"

// Particle is one drifting star.
type Particle struct {
	scene *Effect

	X, Y         float64
	VX           float64
	PushX, PushY float64
	Radius       int
	ImageSize    float64
	Friction     float64
}

func newParticle(scene *Effect) *Particle {
	cfg := scene.particleCfg
	radius := cfg.MinRadius + int(scene.rng.Float64()*float64(cfg.MaxRadius-cfg.MinRadius+1))
	p := &Particle{
		scene:     scene,
		VX:        cfg.Drift,
		Radius:    radius,
		ImageSize: float64(radius) * cfg.SizePerRadius,
		Friction:  cfg.Friction,
	}
	p.Reset()
	return p
}

func (p *Particle) Draw(s Surface) {
	s.DrawSprite(Sprite{
		Asset:  StarAsset,
		X:      p.X,
		Y:      p.Y,
		Width:  p.ImageSize,
		Height: p.ImageSize,
	})
}

// Update applies pointer repulsion, friction decay and drift, then wraps the
// particle back to the right edge once it is fully off the left one.
func (p *Particle) Update() {
	e := p.scene
	if e.Pointer.Pressed {
		dx := p.X - e.Pointer.X
		dy := p.Y - e.Pointer.Y
		distance := math.Hypot(dx, dy)
		// A particle exactly under the pointer has no direction to be pushed in.
		if distance > 0 && distance < e.Pointer.Radius {
			force := e.Pointer.Radius / distance
			angle := math.Atan2(dy, dx)
			p.PushX += math.Cos(angle) * force
			p.PushY += math.Sin(angle) * force
		}
	}

	p.PushX *= p.Friction
	p.X += p.PushX + p.VX
	p.PushY *= p.Friction
	p.Y += p.PushY

	if p.X < -p.ImageSize-e.MaxDistance {
		p.X = e.Width + p.ImageSize + e.MaxDistance
		p.Y = p.randomY()
	}
}

// Reset places the particle anywhere in the spawn band
// [ImageSize, Width+4*MaxDistance], which extends past the right edge so the
// field keeps coming in from off-screen.
func (p *Particle) Reset() {
	e := p.scene
	p.X = p.ImageSize + e.rng.Float64()*(e.Width+e.MaxDistance*4-p.ImageSize)
	p.Y = p.randomY()
}

func (p *Particle) randomY() float64 {
	e := p.scene
	return p.ImageSize + e.rng.Float64()*(e.Height-p.ImageSize*2)
}
