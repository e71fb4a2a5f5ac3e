package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowSource reads the cursor and left button from ebiten. It only sees the
// pointer while it is over the focused window.
type WindowSource struct{}

func (WindowSource) Poll() (State, error) {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !pressed {
		// Touch screens report through the touch API instead of the mouse.
		if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
			x, y = ebiten.TouchPosition(ids[0])
			pressed = true
		}
	}
	return State{X: x, Y: y, Pressed: pressed}, nil
}

func (WindowSource) Close() error { return nil }
