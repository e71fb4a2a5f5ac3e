package effect

import (
	"image"
	"math"

	"github.com/iburimskiy/star-whale/internal/config"
)

// Actor is a decorative element that is drawn and advanced once per frame.
type Actor interface {
	// Update advances the actor by dt milliseconds.
	Update(dt float64)
	Draw(s Surface)
	// Resize re-anchors the actor to a new viewport.
	Resize(width, height float64)
	Position() (x, y float64)
}

func newWhale(cfg config.WhaleConfig, width, height float64) Actor {
	if cfg.Mode == config.WhaleStatic {
		return NewStaticWhale(cfg, width, height)
	}
	return NewSpriteWhale(cfg, width, height)
}

// StaticWhale draws the whole whale image at a fixed anchor.
type StaticWhale struct {
	X, Y          float64
	Width, Height float64

	xRatio, yRatio float64
}

func NewStaticWhale(cfg config.WhaleConfig, width, height float64) *StaticWhale {
	w := &StaticWhale{
		Width:  float64(cfg.FrameWidth),
		Height: float64(cfg.FrameHeight),
		xRatio: cfg.XRatio,
		yRatio: cfg.YRatio,
	}
	w.Resize(width, height)
	return w
}

func (w *StaticWhale) Update(float64) {}

func (w *StaticWhale) Draw(s Surface) {
	s.DrawSprite(Sprite{Asset: WhaleAsset, X: w.X, Y: w.Y, Width: w.Width, Height: w.Height})
}

func (w *StaticWhale) Resize(width, height float64) {
	w.X = width * w.xRatio
	w.Y = height * w.yRatio
}

func (w *StaticWhale) Position() (float64, float64) { return w.X, w.Y }

// SpriteWhale plays a sprite sheet while bobbing on a sine path and rolling
// with the phase of that motion.
type SpriteWhale struct {
	X, Y            float64
	Angle           float64
	AngularVelocity float64
	Curve           float64

	Frame         int
	MaxFrame      int
	FrameTimer    float64
	FrameInterval float64

	spriteWidth  int
	spriteHeight int
	columns      int
	roll         float64

	viewportHeight   float64
	xRatio, yRatio   float64
	resizeCurveRatio float64
}

func NewSpriteWhale(cfg config.WhaleConfig, width, height float64) *SpriteWhale {
	return &SpriteWhale{
		X:                width * cfg.XRatio,
		Y:                height * cfg.YRatio,
		AngularVelocity:  cfg.AngularVelocity,
		Curve:            height * cfg.CurveRatio,
		MaxFrame:         cfg.MaxFrame,
		FrameInterval:    1000 / cfg.FPS,
		spriteWidth:      cfg.FrameWidth,
		spriteHeight:     cfg.FrameHeight,
		columns:          cfg.SheetColumns(),
		roll:             cfg.Roll,
		viewportHeight:   height,
		xRatio:           cfg.XRatio,
		yRatio:           cfg.YRatio,
		resizeCurveRatio: cfg.ResizeCurveRatio,
	}
}

func (w *SpriteWhale) Update(dt float64) {
	if w.FrameTimer > w.FrameInterval {
		w.Frame++
		if w.Frame > w.MaxFrame {
			w.Frame = 0
		}
		w.FrameTimer = 0
	} else {
		w.FrameTimer += dt
	}

	w.Angle += w.AngularVelocity
	w.Y = w.viewportHeight*w.yRatio + math.Sin(w.Angle)*w.Curve
	if w.Angle > math.Pi*2 {
		w.Angle = 0
	}
}

func (w *SpriteWhale) Draw(s Surface) {
	s.DrawSprite(Sprite{
		Asset:    WhaleAsset,
		Frame:    w.FrameRect(),
		X:        w.X,
		Y:        w.Y,
		Width:    float64(w.spriteWidth),
		Height:   float64(w.spriteHeight),
		Rotation: math.Cos(w.Angle) * w.roll,
	})
}

// FrameRect is the sheet region of the current frame. Frames fill the sheet
// row by row.
func (w *SpriteWhale) FrameRect() image.Rectangle {
	col := w.Frame % w.columns
	row := w.Frame / w.columns
	x0, y0 := col*w.spriteWidth, row*w.spriteHeight
	return image.Rect(x0, y0, x0+w.spriteWidth, y0+w.spriteHeight)
}

func (w *SpriteWhale) Resize(width, height float64) {
	w.viewportHeight = height
	w.X = width * w.xRatio
	w.Y = height * w.yRatio
	w.Curve = height * w.resizeCurveRatio
}

func (w *SpriteWhale) Position() (float64, float64) { return w.X, w.Y }
