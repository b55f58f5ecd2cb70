package internal

import (
	"github.com/omarnabikhan/spire"
)

// handleInsertion applies the INSERT mode bindings. Keys without a binding, including every
// Ctrl combination, are ignored.
func (s *Session) handleInsertion(ev spire.KeyEvent) (spire.Action, error) {
	switch {
	case ev.Code == spire.KeyEscape:
		next, _ := s.mode.escape()
		s.swapEditorMode(next)
		return spire.ModeChanged, nil
	case ev.Printable():
		return mutated(true, s.insertCharacter(ev.Rune))
	case ev.Ctrl || ev.Alt:
		return spire.Ignored, nil
	case ev.Code == spire.KeyBackspace:
		return mutated(s.deleteLeft())
	case ev.Code == spire.KeyEnter:
		return mutated(true, s.insertNewLine())
	default:
		return spire.Ignored, nil
	}
}

func mutated(changed bool, err error) (spire.Action, error) {
	if err != nil {
		return spire.Ignored, err
	}
	if !changed {
		return spire.Ignored, nil
	}
	return spire.BufferMutated, nil
}

// Insert ch at the cursor and step past it.
func (s *Session) insertCharacter(ch rune) error {
	if err := s.buf.InsertChar(s.cursor.Row, s.cursor.Col, ch); err != nil {
		return err
	}
	s.modified = true
	s.cursor.Col++
	return nil
}

// The current line is split at the cursor: the part before it stays, the rest moves to a new line
// below, and the cursor goes to the start of that new line.
func (s *Session) insertNewLine() error {
	if err := s.buf.SplitLine(s.cursor.Row, s.cursor.Col); err != nil {
		return err
	}
	s.modified = true
	s.cursor.Row++
	s.cursor.Col = 0
	return nil
}

// deleteLeft handles backspace. At the start of a line it never joins lines: a blank line is
// dropped along with its whitespace, and a non-blank line only gives up the cursor to the end of
// the previous line. Reports false only at the very start of the buffer. Only the branches that
// change the lines mark the session modified.
func (s *Session) deleteLeft() (bool, error) {
	row, col := s.cursor.Row, s.cursor.Col
	if row == 0 && col == 0 {
		return false, nil
	}
	if col > 0 {
		s.cursor.MoveLeft(s.buf)
		if err := s.buf.RemoveChar(s.cursor.Row, s.cursor.Col); err != nil {
			return false, err
		}
		s.modified = true
		return true, nil
	}

	line, err := s.buf.Line(row)
	if err != nil {
		return false, err
	}
	if line.IsBlank() {
		if err := s.buf.RemoveLine(row); err != nil {
			return false, err
		}
		s.modified = true
		s.cursor.Row = row - 1
		s.cursor.MoveToLineEnd(s.buf)
		return true, nil
	}
	// Still reported as a mutation so the screen is redrawn, but the lines are unchanged.
	s.cursor.MoveLeft(s.buf)
	return true, nil
}
