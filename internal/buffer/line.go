package buffer

import "unicode"

// Line holds one line of text without its terminator. Columns index runes.
type Line struct {
	chars []rune
}

// NewLine copies s into a new Line.
func NewLine(s string) Line {
	return Line{chars: []rune(s)}
}

func (l Line) Len() int {
	return len(l.chars)
}

func (l Line) String() string {
	return string(l.chars)
}

// Runes returns a copy of the line's characters.
func (l Line) Runes() []rune {
	return append([]rune(nil), l.chars...)
}

// IsBlank reports whether the line is empty or only whitespace.
func (l Line) IsBlank() bool {
	for _, c := range l.chars {
		if !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}

func (l *Line) insert(col int, c rune) {
	l.chars = append(l.chars, 0)
	copy(l.chars[col+1:], l.chars[col:])
	l.chars[col] = c
}

func (l *Line) remove(col int) {
	l.chars = append(l.chars[:col], l.chars[col+1:]...)
}

func (l Line) clone() Line {
	return Line{chars: l.Runes()}
}
