package spire

import "unicode"

// KeyCode identifies the key that was pressed, independent of the terminal library that read it.
type KeyCode int

const (
	KeyNull KeyCode = iota // Unknown input; always ignored.
	KeyCharacter
	KeyFunction
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyInsert
)

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Code KeyCode
	// Rune is set for KeyCharacter.
	Rune rune
	// Fn is the function key number for KeyFunction (F1 = 1).
	Fn int

	Ctrl  bool
	Alt   bool
	Shift bool
}

// Char builds an unmodified character event.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyCharacter, Rune: r}
}

// CtrlChar builds a character event with the Ctrl modifier held.
func CtrlChar(r rune) KeyEvent {
	return KeyEvent{Code: KeyCharacter, Rune: r, Ctrl: true}
}

// Key builds an unmodified event for a non-character key.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// Printable reports whether the event should be inserted as text.
func (ev KeyEvent) Printable() bool {
	if ev.Code != KeyCharacter || ev.Ctrl || ev.Alt {
		return false
	}
	return unicode.IsPrint(ev.Rune)
}
