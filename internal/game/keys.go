package game

import "github.com/hajimehoshi/ebiten/v2"

type action int

const (
	actionNone action = iota
	actionQuit
	actionOverlay
	actionPause
	actionOpen
)

var bindings = []struct {
	key    ebiten.Key
	action action
}{
	{ebiten.KeyEscape, actionQuit},
	{ebiten.KeyQ, actionQuit},
	{ebiten.KeyF3, actionOverlay},
	{ebiten.KeyM, actionPause},
	{ebiten.KeyO, actionOpen},
}

// keyState remembers which keys were down on the previous tick so a held key
// fires once.
type keyState struct {
	pressed func(ebiten.Key) bool
	prev    map[ebiten.Key]bool
}

func newKeyState(pressed func(ebiten.Key) bool) *keyState {
	return &keyState{pressed: pressed, prev: map[ebiten.Key]bool{}}
}

func (k *keyState) justPressed(key ebiten.Key) bool {
	down := k.pressed(key)
	jp := down && !k.prev[key]
	k.prev[key] = down
	return jp
}

// actions returns the actions whose keys went down this tick, in binding
// order.
func (k *keyState) actions() []action {
	var out []action
	for _, b := range bindings {
		if k.justPressed(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}
