package effect

import (
	"testing"

	"github.com/iburimskiy/star-whale/internal/config"
)

func TestEffectEndToEnd(t *testing.T) {
	e := newTestEffect(500, 800, 600)

	if len(e.Particles) != 500 {
		t.Fatalf("particles = %d, want 500", len(e.Particles))
	}
	type pos struct{ x, y float64 }
	before := make([]pos, len(e.Particles))
	for i, p := range e.Particles {
		if p.X < p.ImageSize || p.X > 800+e.MaxDistance*4 {
			t.Fatalf("particle %d x = %v, want in [%v, %v]", i, p.X, p.ImageSize, 800+e.MaxDistance*4)
		}
		before[i] = pos{p.X, p.Y}
	}

	var r recorder
	stats := e.HandleParticles(&r, 16)

	if stats.Particles != 500 {
		t.Errorf("stats.Particles = %d, want 500", stats.Particles)
	}
	for i, p := range e.Particles {
		if want := before[i].x + p.VX; p.X != want {
			t.Errorf("particle %d x = %v, want %v", i, p.X, want)
		}
		if p.Y != before[i].y {
			t.Errorf("particle %d y = %v, want unchanged %v", i, p.Y, before[i].y)
		}
	}
}

func TestEffectParticleCountIsStable(t *testing.T) {
	e := newTestEffect(40, 300, 200)
	var r recorder

	for i := 0; i < 600; i++ {
		if i == 100 {
			e.PointerDown(150, 100)
		}
		if i == 300 {
			e.PointerUp()
		}
		r.reset()
		e.HandleParticles(&r, 16)
		if len(e.Particles) != 40 {
			t.Fatalf("frame %d: particles = %d, want 40", i, len(e.Particles))
		}
	}
}

func TestConnectParticlesOpacity(t *testing.T) {
	tests := []struct {
		name        string
		distance    float64
		wantPair    bool
		wantOpacity float64
	}{
		{"same spot", 0, true, 1},
		{"half threshold", 55, true, 0.5},
		{"near threshold", 99, true, 1 - 99.0/110},
		{"at threshold", 110, false, 0},
		{"beyond threshold", 200, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEffect(2, 800, 600)
			e.Particles[0].X, e.Particles[0].Y = 100, 100
			e.Particles[1].X, e.Particles[1].Y = 100+tt.distance, 100

			var r recorder
			n := e.ConnectParticles(&r)

			// Self pairs are always drawn at full opacity.
			wantLines := 2
			if tt.wantPair {
				wantLines = 3
			}
			if n != wantLines || len(r.lines) != wantLines {
				t.Fatalf("lines = %d (returned %d), want %d", len(r.lines), n, wantLines)
			}
			for _, l := range r.lines {
				if l.X1 == l.X2 && l.Y1 == l.Y2 && l.Opacity != 1 {
					t.Errorf("self line opacity = %v, want 1", l.Opacity)
				}
			}
			if !tt.wantPair || tt.distance == 0 {
				return
			}
			pairs := r.pairLines()
			if len(pairs) != 1 {
				t.Fatalf("pair lines = %d, want 1", len(pairs))
			}
			if !approxEqual(pairs[0].Opacity, tt.wantOpacity) {
				t.Errorf("opacity = %v, want %v", pairs[0].Opacity, tt.wantOpacity)
			}
		})
	}
}

func TestConnectParticlesSkipSelfPairs(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.Count = 3
	cfg.Particles.SkipSelfPairs = true
	e := New(cfg, 800, 600, fixedRand(0.5))
	e.Particles[0].X, e.Particles[0].Y = 100, 100
	e.Particles[1].X, e.Particles[1].Y = 150, 100
	e.Particles[2].X, e.Particles[2].Y = 500, 500

	var r recorder
	if n := e.ConnectParticles(&r); n != 1 {
		t.Fatalf("ConnectParticles() = %d, want 1", n)
	}
	l := r.lines[0]
	if l.X1 != 100 || l.X2 != 150 {
		t.Errorf("line = %+v, want between the two close particles", l)
	}
	if l.Width != cfg.Particles.LineWidth {
		t.Errorf("line width = %v, want %v", l.Width, cfg.Particles.LineWidth)
	}
	if want := e.Gradient.At(125, 100); l.Color != want {
		t.Errorf("line colour = %v, want gradient sample %v", l.Color, want)
	}
}

func TestHandleParticlesOrder(t *testing.T) {
	e := newTestEffect(3, 800, 600)
	whaleX, whaleY := e.Whale.Position()
	starX := e.Particles[0].X

	var r recorder
	e.HandleParticles(&r, 16)

	if len(r.ops) == 0 || r.ops[0] != string(WhaleAsset) {
		t.Fatalf("ops = %v, want whale first", r.ops)
	}
	seenStar := false
	for _, op := range r.ops[1:] {
		switch op {
		case "line":
			if seenStar {
				t.Fatalf("ops = %v, want every line before the stars", r.ops)
			}
		case string(StarAsset):
			seenStar = true
		default:
			t.Fatalf("unexpected op %q", op)
		}
	}
	if got := r.ops[len(r.ops)-3:]; got[0] != "star" || got[1] != "star" || got[2] != "star" {
		t.Errorf("last ops = %v, want three stars", got)
	}

	if s := r.sprites[0]; s.X != whaleX || s.Y != whaleY {
		t.Errorf("whale drawn at (%v, %v), want pre-update (%v, %v)", s.X, s.Y, whaleX, whaleY)
	}
	if s := r.sprites[1]; s.X != starX {
		t.Errorf("first star drawn at x %v, want pre-update %v", s.X, starX)
	}
}

func TestHandleParticlesSkipsConnectionsOnEmptyViewport(t *testing.T) {
	e := newTestEffect(5, 0, 0)

	var r recorder
	stats := e.HandleParticles(&r, 16)

	if stats.Lines != 0 || len(r.lines) != 0 {
		t.Errorf("lines = %d, want none for a zero-sized viewport", len(r.lines))
	}
	if stats.Particles != 5 {
		t.Errorf("stats.Particles = %d, want 5", stats.Particles)
	}
}

func TestPointerEvents(t *testing.T) {
	e := newTestEffect(0, 800, 600)
	if e.Pointer.X != 400 || e.Pointer.Y != 300 || e.Pointer.Pressed {
		t.Fatalf("initial pointer = %+v, want released at viewport centre", e.Pointer)
	}
	if e.Pointer.Radius != 120 {
		t.Errorf("pointer radius = %v, want 120", e.Pointer.Radius)
	}

	e.PointerMove(10, 10)
	if e.Pointer.X != 400 || e.Pointer.Y != 300 {
		t.Errorf("move while released changed pointer to (%v, %v)", e.Pointer.X, e.Pointer.Y)
	}

	e.PointerDown(50, 60)
	if !e.Pointer.Pressed || e.Pointer.X != 50 || e.Pointer.Y != 60 {
		t.Errorf("after down pointer = %+v, want pressed at (50, 60)", e.Pointer)
	}
	e.PointerMove(70, 80)
	if e.Pointer.X != 70 || e.Pointer.Y != 80 {
		t.Errorf("after move pointer = (%v, %v), want (70, 80)", e.Pointer.X, e.Pointer.Y)
	}

	e.PointerUp()
	if e.Pointer.Pressed {
		t.Error("pointer still pressed after up")
	}
	e.PointerMove(1, 1)
	if e.Pointer.X != 70 || e.Pointer.Y != 80 {
		t.Errorf("move after up changed pointer to (%v, %v)", e.Pointer.X, e.Pointer.Y)
	}
}

func TestResize(t *testing.T) {
	e := newTestEffect(200, 800, 600)

	if !e.Resize(1000, 500) {
		t.Fatal("Resize(1000, 500) = false, want true")
	}
	if e.Width != 1000 || e.Height != 500 {
		t.Errorf("size = %vx%v, want 1000x500", e.Width, e.Height)
	}
	if x, y := e.Whale.Position(); x != 400 || y != 250 {
		t.Errorf("whale = (%v, %v), want (400, 250)", x, y)
	}
	for i, p := range e.Particles {
		if p.X < p.ImageSize || p.X > 1000+e.MaxDistance*4 {
			t.Errorf("particle %d x = %v, out of bounds", i, p.X)
		}
		if p.Y < p.ImageSize || p.Y > 500-p.ImageSize {
			t.Errorf("particle %d y = %v, out of bounds", i, p.Y)
		}
	}
	if got := e.Gradient.At(1000, 500); got != OrangeRed {
		t.Errorf("gradient end = %v, want orangered", got)
	}
	if len(e.Particles) != 200 {
		t.Errorf("particles = %d, want 200", len(e.Particles))
	}
}

func TestResizeIgnoresEmptyViewport(t *testing.T) {
	e := newTestEffect(10, 800, 600)
	x0 := e.Particles[0].X

	if e.Resize(0, 400) {
		t.Error("Resize(0, 400) = true, want false")
	}
	if e.Width != 800 || e.Height != 600 {
		t.Errorf("size = %vx%v, want unchanged 800x600", e.Width, e.Height)
	}
	if e.Particles[0].X != x0 {
		t.Error("particles were reseeded by an ignored resize")
	}
}
