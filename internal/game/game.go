// Package game drives the scene from ebiten's frame loop.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/star-whale/internal/ambient"
	"github.com/iburimskiy/star-whale/internal/effect"
	"github.com/iburimskiy/star-whale/internal/input"
	"github.com/iburimskiy/star-whale/internal/logger"
	"github.com/iburimskiy/star-whale/internal/render"
)

// Options wires the pieces built at startup into a Game. Player may be nil;
// one is created the first time a soundtrack is picked.
type Options struct {
	Effect  *effect.Effect
	Atlas   render.Atlas
	Input   input.Source
	Player  *ambient.Player
	Volume  float64
	Overlay bool
}

type Game struct {
	effect  *effect.Effect
	atlas   render.Atlas
	frame   render.Frame
	source  input.Source
	tracker input.Tracker
	player  *ambient.Player
	volume  float64

	clock   Clock
	now     func() time.Time
	keys    *keyState
	pick    func() (string, error)
	started time.Time

	// outside size reported by Layout, applied on the next Update
	layoutW, layoutH   int
	appliedW, appliedH int

	overlay bool
	stats   effect.Stats
	lastErr error
}

func New(opts Options) *Game {
	g := &Game{
		effect:   opts.Effect,
		atlas:    opts.Atlas,
		source:   opts.Input,
		player:   opts.Player,
		volume:   opts.Volume,
		now:      time.Now,
		keys:     newKeyState(ebiten.IsKeyPressed),
		pick:     ambient.PickFile,
		overlay:  opts.Overlay,
		appliedW: int(opts.Effect.Width),
		appliedH: int(opts.Effect.Height),
	}
	if g.source == nil {
		g.source = input.WindowSource{}
	}
	g.started = g.now()
	return g
}

func (g *Game) Update() error {
	dt := g.clock.Tick(g.now())

	g.pollInput()
	g.applyResize()
	for _, a := range g.keys.actions() {
		if err := g.handle(a); err != nil {
			return err
		}
	}

	g.frame.Reset()
	g.stats = g.effect.HandleParticles(&g.frame, dt)
	return nil
}

func (g *Game) pollInput() {
	s, err := g.source.Poll()
	if err != nil {
		logger.Warn("Pointer source failed, using the window cursor: %v", err)
		_ = g.source.Close()
		g.source = input.WindowSource{}
		if s, err = g.source.Poll(); err != nil {
			return
		}
	}
	g.tracker.Feed(s, g.effect)
}

// applyResize forwards the size recorded by Layout once it differs from the
// size the effect was last laid out for.
func (g *Game) applyResize() {
	if g.layoutW == 0 && g.layoutH == 0 {
		return
	}
	if g.layoutW == g.appliedW && g.layoutH == g.appliedH {
		return
	}
	if g.effect.Resize(float64(g.layoutW), float64(g.layoutH)) {
		logger.Debug("Resized to %dx%d", g.layoutW, g.layoutH)
	}
	g.appliedW, g.appliedH = g.layoutW, g.layoutH
}

func (g *Game) handle(a action) error {
	switch a {
	case actionQuit:
		return ebiten.Termination
	case actionOverlay:
		g.overlay = !g.overlay
	case actionPause:
		if g.player != nil {
			g.player.TogglePause()
		}
	case actionOpen:
		g.lastErr = g.openSoundtrack()
		if g.lastErr != nil {
			logger.Warn("Soundtrack: %v", g.lastErr)
		}
	}
	return nil
}

func (g *Game) openSoundtrack() error {
	path, err := g.pick()
	if err != nil {
		return fmt.Errorf("pick soundtrack: %w", err)
	}
	if path == "" {
		return nil
	}
	if g.player == nil {
		g.player = ambient.NewPlayer(g.volume)
	}
	return g.player.Load(path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Render(screen, g.atlas)
	if g.overlay {
		ebitenutil.DebugPrintAt(screen, g.overlayText(), 12, 12)
	}
}

func (g *Game) overlayText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "stars %d  links %d\n", g.stats.Particles, g.stats.Lines)
	fmt.Fprintf(&b, "uptime %s\n", formatDuration(g.now().Sub(g.started)))
	if g.player != nil {
		b.WriteString(soundtrackStatus(g.player.Path(), g.player.Playing()))
	} else {
		b.WriteString(soundtrackStatus("", false))
	}
	if g.lastErr != nil {
		b.WriteString("\nerror: " + g.lastErr.Error())
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close releases the pointer source and the soundtrack.
func (g *Game) Close() {
	if err := g.source.Close(); err != nil {
		logger.Warn("Closing pointer source: %v", err)
	}
	if g.player != nil {
		g.player.Close()
	}
}

// IsQuit reports whether err is the normal way the game loop ends.
func IsQuit(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
