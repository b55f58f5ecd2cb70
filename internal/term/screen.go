// Package term is the goncurses front end: it reads keys from the terminal and draws frames.
package term

import (
	"fmt"

	gc "github.com/gbin/goncurses"

	"github.com/omarnabikhan/spire"
	"github.com/omarnabikhan/spire/internal/view"
)

// Color pairs.
const (
	COLOR_PAIR_DEBUG  = 1
	COLOR_PAIR_STATUS = 2
)

type Screen struct {
	window  *gc.Window
	decoder *Decoder
	colors  bool
}

// Init takes over the terminal. Close must be called to give it back.
func Init() (*Screen, error) {
	window, err := gc.Init()
	if err != nil {
		return nil, fmt.Errorf("init curses: %w", err)
	}

	gc.Echo(false)
	// Raw rather than cbreak so Ctrl+S and Ctrl+Q reach the editor instead of flow control.
	gc.Raw(true)
	if err := window.Keypad(true); err != nil {
		gc.End()
		return nil, fmt.Errorf("enable keypad: %w", err)
	}

	s := &Screen{window: window}
	s.decoder = NewDecoder(window.GetChar)
	if gc.HasColors() && gc.StartColor() == nil {
		s.colors = gc.InitPair(COLOR_PAIR_DEBUG, gc.C_RED, gc.C_BLACK) == nil &&
			gc.InitPair(COLOR_PAIR_STATUS, gc.C_BLACK, gc.C_WHITE) == nil
	}
	return s, nil
}

// ReadKey blocks until the next key press.
func (s *Screen) ReadKey() spire.KeyEvent {
	return s.decoder.Decode(s.window.GetChar())
}

// Size returns the window's height and width.
func (s *Screen) Size() (int, int) {
	return s.window.MaxYX()
}

func (s *Screen) Draw(f view.Frame) {
	s.window.Erase()
	for y, row := range f.Rows {
		if row == "~" {
			s.window.AttrOn(gc.A_DIM)
			s.window.MovePrint(y, 0, row)
			s.window.AttrOff(gc.A_DIM)
			continue
		}
		s.window.MovePrint(y, 0, row)
	}

	y := len(f.Rows)
	if f.Debug != "" {
		s.withColor(COLOR_PAIR_DEBUG, func() { s.window.MovePrint(y, 0, f.Debug) })
	}
	s.withColor(COLOR_PAIR_STATUS, func() { s.window.MovePrint(y+1, 0, f.Status) })

	s.window.Move(f.CursorY, f.CursorX)
	s.window.Refresh()
}

func (s *Screen) withColor(pair int16, draw func()) {
	if !s.colors {
		draw()
		return
	}
	s.window.ColorOn(pair)
	draw()
	s.window.ColorOff(pair)
}

func (s *Screen) Close() {
	gc.End()
}
