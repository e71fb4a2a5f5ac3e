// Package input samples the pointer and turns the samples into the
// down/move/up events the scene subscribes to.
package input

// State is one pointer sample in window coordinates.
type State struct {
	X, Y    int
	Pressed bool
}

// Source yields the pointer state once per tick.
type Source interface {
	Poll() (State, error)
	Close() error
}

// Handler receives pointer events. *effect.Effect implements it.
type Handler interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

// Tracker diffs consecutive samples into events.
type Tracker struct {
	last  State
	valid bool
}

// Feed compares s to the previous sample and forwards the difference: down
// on press, move while pressed and moved, up on release.
func (t *Tracker) Feed(s State, h Handler) {
	prev := t.last
	t.last, t.valid = s, true

	switch {
	case s.Pressed && !prev.Pressed:
		h.PointerDown(float64(s.X), float64(s.Y))
	case !s.Pressed && prev.Pressed:
		h.PointerUp()
	case s.Pressed && (s.X != prev.X || s.Y != prev.Y):
		h.PointerMove(float64(s.X), float64(s.Y))
	}
}

// Last returns the previous sample and whether there was one.
func (t *Tracker) Last() (State, bool) { return t.last, t.valid }
