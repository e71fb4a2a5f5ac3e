package main

import (
	"flag"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/star-whale/internal/ambient"
	"github.com/iburimskiy/star-whale/internal/assets"
	"github.com/iburimskiy/star-whale/internal/config"
	"github.com/iburimskiy/star-whale/internal/effect"
	"github.com/iburimskiy/star-whale/internal/game"
	"github.com/iburimskiy/star-whale/internal/input"
	"github.com/iburimskiy/star-whale/internal/logger"
	"github.com/iburimskiy/star-whale/internal/render"
)

var (
	configFlag    = flag.String("config", "", "Path to a YAML scene config")
	debugFlag     = flag.Bool("debug", false, "Debug logging and the stats overlay")
	particlesFlag = flag.Int("particles", -1, "Override the number of stars")
	pointerFlag   = flag.String("pointer", "", `Pointer source: "window" or "x11"`)
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fatal(err)
	}
	if cfg.Debug {
		level = logger.LevelDebug
	}
	logger.SetLevel(level)

	images, err := loadSprites(cfg)
	if err != nil {
		fatal(err)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scene := effect.New(cfg, float64(w), float64(h), rng)
	logger.Info("Scene: %d stars, %s whale, %dx%d", cfg.Particles.Count, cfg.Whale.Mode, w, h)

	var player *ambient.Player
	if cfg.Soundtrack.Path != "" {
		player = ambient.NewPlayer(cfg.Soundtrack.Volume)
		if err := player.Load(cfg.Soundtrack.Path); err != nil {
			logger.Warn("Soundtrack disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.New(game.Options{
		Effect:  scene,
		Atlas:   render.NewAtlas(images),
		Input:   pointerSource(cfg.Pointer.Source),
		Player:  player,
		Volume:  cfg.Soundtrack.Volume,
		Overlay: cfg.Debug,
	})

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !game.IsQuit(err) {
		logger.Error("Game loop: %v", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}

	if *debugFlag {
		cfg.Debug = true
	}
	if *particlesFlag >= 0 {
		cfg.Particles.Count = *particlesFlag
	}
	if *pointerFlag != "" {
		cfg.Pointer.Source = *pointerFlag
	}
	return cfg, cfg.Validate()
}

func loadSprites(cfg config.Config) (map[effect.Asset]image.Image, error) {
	star, err := assets.LoadOr(cfg.Assets.Star, func() image.Image {
		return assets.Star(assets.StarSize)
	})
	if err != nil {
		return nil, err
	}

	whaleFallback := func() image.Image { return assets.WhaleSheet(cfg.Whale) }
	if cfg.Whale.Mode == config.WhaleStatic {
		whaleFallback = func() image.Image {
			return assets.Whale(cfg.Whale.FrameWidth, cfg.Whale.FrameHeight)
		}
	}
	whale, err := assets.LoadOr(cfg.Assets.Whale, whaleFallback)
	if err != nil {
		return nil, err
	}

	if cfg.Whale.Mode == config.WhaleAnimated {
		if err := assets.CheckSheet(whale.Bounds(), cfg.Whale); err != nil {
			return nil, err
		}
	}
	return map[effect.Asset]image.Image{
		effect.StarAsset:  star,
		effect.WhaleAsset: whale,
	}, nil
}

func pointerSource(kind string) input.Source {
	if kind != config.PointerX11 {
		return input.WindowSource{}
	}
	src, err := input.NewX11Source(ebiten.WindowPosition)
	if err != nil {
		logger.Warn("X11 pointer unavailable, using the window cursor: %v", err)
		return input.WindowSource{}
	}
	logger.Info("Pointer: following the X11 root pointer")
	return src
}

func fatal(err error) {
	logger.Error("%v", err)
	_ = zenity.Error(err.Error(), zenity.Title("Star Whale"))
	os.Exit(1)
}
