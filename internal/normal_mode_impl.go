package internal

import (
	"fmt"

	"github.com/omarnabikhan/spire"
)

// handleNavigation applies the NAVIGATION mode bindings. Only the open-line commands edit the
// buffer, and they leave the session in INSERT mode.
func (s *Session) handleNavigation(ev spire.KeyEvent) (spire.Action, error) {
	if ev.Ctrl {
		if ev.Code != spire.KeyCharacter {
			return spire.Ignored, nil
		}
		switch ev.Rune {
		case 's', 'S':
			return spire.SaveRequested, nil
		case 'q', 'Q':
			// Quit is only honored here, never while inserting.
			return spire.QuitRequested, nil
		default:
			return spire.Ignored, nil
		}
	}

	switch ev.Code {
	case spire.KeyDown:
		s.cursor.MoveDown(s.buf)
	case spire.KeyUp:
		s.cursor.MoveUp(s.buf)
	case spire.KeyRight:
		s.cursor.MoveRight(s.buf)
	case spire.KeyLeft:
		s.cursor.MoveLeft(s.buf)
	case spire.KeyEnd:
		s.cursor.MoveToLineEnd(s.buf)
	case spire.KeyHome:
		s.cursor.MoveToLineStart()
	case spire.KeyInsert:
		return s.enterInsert(), nil
	case spire.KeyCharacter:
		if ev.Alt {
			return spire.Ignored, nil
		}
		return s.handleNavigationRune(ev.Rune)
	default:
		return spire.Ignored, nil
	}
	return spire.CursorMove, nil
}

func (s *Session) handleNavigationRune(r rune) (spire.Action, error) {
	switch r {
	case 'j':
		s.cursor.MoveDown(s.buf)
	case 'k':
		s.cursor.MoveUp(s.buf)
	case 'l':
		s.cursor.MoveRight(s.buf)
	case 'h':
		s.cursor.MoveLeft(s.buf)
	case '$':
		s.cursor.MoveToLineEnd(s.buf)
	case '0':
		s.cursor.MoveToLineStart()
	case 'i':
		return s.enterInsert(), nil
	case 'a':
		// Swap to INSERT mode after the character under the cursor, without leaving the line.
		if s.cursor.Col < s.buf.LineLen(s.cursor.Row) {
			s.cursor.Col++
		}
		return s.enterInsert(), nil
	case 'o':
		// Insert an empty line after the current line, and swap to INSERT mode.
		return s.openLine(s.cursor.Row + 1)
	case 'O':
		// Insert an empty line before the current line, and swap to INSERT mode.
		return s.openLine(s.cursor.Row)
	default:
		s.userMsg = fmt.Sprintf("unrecognized key %q", r)
		return spire.Ignored, nil
	}
	return spire.CursorMove, nil
}

// openLine inserts an empty line at row, puts the cursor on it and starts inserting. It reports
// BufferMutated rather than ModeChanged so the new line gets drawn.
func (s *Session) openLine(row int) (spire.Action, error) {
	if err := s.buf.InsertLine(row); err != nil {
		return spire.Ignored, err
	}
	s.modified = true
	s.cursor = Cursor{Row: row, Col: 0}
	s.enterInsert()
	return spire.BufferMutated, nil
}

func (s *Session) enterInsert() spire.Action {
	next, ok := s.mode.enterInsert()
	if !ok {
		return spire.Ignored
	}
	s.swapEditorMode(next)
	return spire.ModeChanged
}
