package input

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11Source queries the pointer on the root window, so it keeps working
// when the scene runs undecorated behind other windows as a wallpaper.
type X11Source struct {
	conn *xgb.Conn
	root xproto.Window
	// origin returns the window's top-left corner in root coordinates.
	origin func() (int, int)
}

func NewX11Source(origin func() (int, int)) (*X11Source, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	setup := xproto.Setup(conn)
	return &X11Source{
		conn:   conn,
		root:   setup.DefaultScreen(conn).Root,
		origin: origin,
	}, nil
}

func (s *X11Source) Poll() (State, error) {
	reply, err := xproto.QueryPointer(s.conn, s.root).Reply()
	if err != nil {
		return State{}, fmt.Errorf("query pointer: %w", err)
	}
	ox, oy := 0, 0
	if s.origin != nil {
		ox, oy = s.origin()
	}
	return rootToWindow(int(reply.RootX), int(reply.RootY), reply.Mask, ox, oy), nil
}

func rootToWindow(rootX, rootY int, mask uint16, ox, oy int) State {
	return State{
		X:       rootX - ox,
		Y:       rootY - oy,
		Pressed: mask&xproto.KeyButMaskButton1 != 0,
	}
}

func (s *X11Source) Close() error {
	s.conn.Close()
	return nil
}
