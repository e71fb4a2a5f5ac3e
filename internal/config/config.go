package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Star Whale - drag to scatter the stars, F3: stats, Esc/Q: Quit"

	// Particle field
	ParticleCount  = 500
	MaxDistance    = 110
	Drift          = -1.0
	Friction       = 0.8
	MinRadius      = 1
	MaxRadius      = 6
	SizePerRadius  = 8
	LineWidth      = 1.0
	PointerRadius  = 120
	PointerWindow  = "window"
	PointerX11     = "x11"
	WhaleAnimated  = "animated"
	WhaleStatic    = "static"
	DefaultLogging = "info"

	// Whale sprite sheet
	WhaleFrameWidth      = 420
	WhaleFrameHeight     = 284
	WhaleMaxFrame        = 38
	WhaleFPS             = 50
	WhaleAngularVelocity = 0.01
	WhaleCurveRatio      = 0.1
	WhaleResizeCurve     = 0.2
	WhaleRoll            = 0.5
	WhaleXRatio          = 0.4
	WhaleYRatio          = 0.5
)

// Config is the full scene configuration. Load unmarshals over Default(), so
// keys missing from a YAML file keep their defaults while an explicit zero
// replaces them.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Particles  ParticleConfig   `yaml:"particles"`
	Pointer    PointerConfig    `yaml:"pointer"`
	Whale      WhaleConfig      `yaml:"whale"`
	Assets     AssetConfig      `yaml:"assets"`
	Soundtrack SoundtrackConfig `yaml:"soundtrack"`
	LogLevel   string           `yaml:"log_level"`
	Debug      bool             `yaml:"debug"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type ParticleConfig struct {
	Count         int     `yaml:"count"`
	MaxDistance   float64 `yaml:"max_distance"`
	Drift         float64 `yaml:"drift"`
	Friction      float64 `yaml:"friction"`
	MinRadius     int     `yaml:"min_radius"`
	MaxRadius     int     `yaml:"max_radius"`
	SizePerRadius float64 `yaml:"size_per_radius"`
	LineWidth     float64 `yaml:"line_width"`

	// SkipSelfPairs starts the inner connection loop at a+1 instead of a.
	SkipSelfPairs bool `yaml:"skip_self_pairs"`
}

type PointerConfig struct {
	Radius float64 `yaml:"radius"`
	// Source is "window" (ebiten cursor) or "x11" (root window pointer).
	Source string `yaml:"source"`
}

type WhaleConfig struct {
	Mode             string  `yaml:"mode"`
	FrameWidth       int     `yaml:"frame_width"`
	FrameHeight      int     `yaml:"frame_height"`
	MaxFrame         int     `yaml:"max_frame"`
	Columns          int     `yaml:"columns"`
	FPS              float64 `yaml:"fps"`
	AngularVelocity  float64 `yaml:"angular_velocity"`
	CurveRatio       float64 `yaml:"curve_ratio"`
	ResizeCurveRatio float64 `yaml:"resize_curve_ratio"`
	Roll             float64 `yaml:"roll"`
	XRatio           float64 `yaml:"x_ratio"`
	YRatio           float64 `yaml:"y_ratio"`
}

// AssetConfig holds sprite paths. An empty path selects the built-in sprite.
type AssetConfig struct {
	Star  string `yaml:"star"`
	Whale string `yaml:"whale"`
}

type SoundtrackConfig struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
}

// Default returns the configuration the scene was designed around.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
		Particles: ParticleConfig{
			Count:         ParticleCount,
			MaxDistance:   MaxDistance,
			Drift:         Drift,
			Friction:      Friction,
			MinRadius:     MinRadius,
			MaxRadius:     MaxRadius,
			SizePerRadius: SizePerRadius,
			LineWidth:     LineWidth,
		},
		Pointer: PointerConfig{
			Radius: PointerRadius,
			Source: PointerWindow,
		},
		Whale: WhaleConfig{
			Mode:             WhaleAnimated,
			FrameWidth:       WhaleFrameWidth,
			FrameHeight:      WhaleFrameHeight,
			MaxFrame:         WhaleMaxFrame,
			FPS:              WhaleFPS,
			AngularVelocity:  WhaleAngularVelocity,
			CurveRatio:       WhaleCurveRatio,
			ResizeCurveRatio: WhaleResizeCurve,
			Roll:             WhaleRoll,
			XRatio:           WhaleXRatio,
			YRatio:           WhaleYRatio,
		},
		LogLevel: DefaultLogging,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the scene cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Particles.Count < 0:
		return fmt.Errorf("particles.count must not be negative, got %d", c.Particles.Count)
	case c.Particles.MaxDistance <= 0:
		return fmt.Errorf("particles.max_distance must be positive, got %v", c.Particles.MaxDistance)
	case c.Particles.Friction < 0 || c.Particles.Friction >= 1:
		return fmt.Errorf("particles.friction must be in [0, 1), got %v", c.Particles.Friction)
	case c.Particles.MinRadius < 1 || c.Particles.MaxRadius < c.Particles.MinRadius:
		return fmt.Errorf("particles: radius range [%d, %d] is invalid", c.Particles.MinRadius, c.Particles.MaxRadius)
	case c.Particles.SizePerRadius <= 0:
		return fmt.Errorf("particles.size_per_radius must be positive, got %v", c.Particles.SizePerRadius)
	case c.Pointer.Radius <= 0:
		return fmt.Errorf("pointer.radius must be positive, got %v", c.Pointer.Radius)
	case c.Pointer.Source != PointerWindow && c.Pointer.Source != PointerX11:
		return fmt.Errorf("pointer.source must be %q or %q, got %q", PointerWindow, PointerX11, c.Pointer.Source)
	case c.Whale.Mode != WhaleAnimated && c.Whale.Mode != WhaleStatic:
		return fmt.Errorf("whale.mode must be %q or %q, got %q", WhaleAnimated, WhaleStatic, c.Whale.Mode)
	case c.Whale.FrameWidth <= 0 || c.Whale.FrameHeight <= 0:
		return fmt.Errorf("whale: frame size must be positive, got %dx%d", c.Whale.FrameWidth, c.Whale.FrameHeight)
	case c.Whale.MaxFrame < 0:
		return fmt.Errorf("whale.max_frame must not be negative, got %d", c.Whale.MaxFrame)
	case c.Whale.Columns < 0:
		return fmt.Errorf("whale.columns must not be negative, got %d", c.Whale.Columns)
	case c.Whale.FPS <= 0:
		return fmt.Errorf("whale.fps must be positive, got %v", c.Whale.FPS)
	case c.Soundtrack.Volume < -10 || c.Soundtrack.Volume > 2:
		return fmt.Errorf("soundtrack.volume must be in [-10, 2], got %v", c.Soundtrack.Volume)
	}
	return nil
}

// SheetColumns is the number of frames per sprite sheet row.
func (w WhaleConfig) SheetColumns() int {
	if w.Columns > 0 {
		return w.Columns
	}
	return w.MaxFrame + 1
}
