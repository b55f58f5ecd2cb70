// Package buffer holds the lines of the file being edited. A Buffer always has at least one line.
package buffer

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

type Buffer struct {
	lines []Line
}

// New returns a buffer with a single empty line.
func New() *Buffer {
	return &Buffer{lines: []Line{{}}}
}

// FromStrings builds a buffer from already decoded lines.
func FromStrings(lines ...string) *Buffer {
	b := New()
	if len(lines) == 0 {
		return b
	}
	b.lines = make([]Line, 0, len(lines))
	for _, s := range lines {
		b.lines = append(b.lines, NewLine(s))
	}
	return b
}

// Load replaces every line with the given records. A record must not contain its terminator; a
// trailing '\n' is stripped anyway. On a decode failure the buffer is left untouched.
func (b *Buffer) Load(records [][]byte) error {
	lines := make([]Line, 0, len(records))
	for i, rec := range records {
		if n := len(rec); n > 0 && rec[n-1] == '\n' {
			rec = rec[:n-1]
		}
		if !utf8.Valid(rec) {
			return &DecodeError{Line: i + 1}
		}
		lines = append(lines, NewLine(string(rec)))
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	b.lines = lines
	return nil
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns a copy of the line at row i.
func (b *Buffer) Line(i int) (Line, error) {
	if err := b.checkRow(i); err != nil {
		return Line{}, err
	}
	return b.lines[i].clone(), nil
}

// LineLen returns the number of characters on row i, or 0 when i is out of range.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return b.lines[i].Len()
}

// Strings returns every line as a string.
func (b *Buffer) Strings() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// InsertChar inserts c at (row, col).
func (b *Buffer) InsertChar(row, col int, c rune) error {
	if err := b.checkCol(row, col, 0); err != nil {
		return err
	}
	b.lines[row].insert(col, c)
	return nil
}

// RemoveChar deletes the character at (row, col).
func (b *Buffer) RemoveChar(row, col int) error {
	if err := b.checkCol(row, col, 1); err != nil {
		return err
	}
	b.lines[row].remove(col)
	return nil
}

// SplitLine replaces the line at row with its prefix [0, col) followed by its suffix [col, end).
func (b *Buffer) SplitLine(row, col int) error {
	if err := b.checkCol(row, col, 0); err != nil {
		return err
	}
	chars := b.lines[row].chars
	before := Line{chars: append([]rune(nil), chars[:col]...)}
	after := Line{chars: append([]rune(nil), chars[col:]...)}

	b.lines = append(b.lines, Line{})
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row] = before
	b.lines[row+1] = after
	return nil
}

// InsertLine inserts an empty line before row. row may equal LineCount to append.
func (b *Buffer) InsertLine(row int) error {
	if row < 0 || row > len(b.lines) {
		return indexError("row", row, len(b.lines)+1)
	}
	b.lines = append(b.lines, Line{})
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = Line{}
	return nil
}

// RemoveLine deletes the line at row. Removing the only line is refused.
func (b *Buffer) RemoveLine(row int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if len(b.lines) == 1 {
		return fmt.Errorf("%w: cannot remove the last line", ErrInvariant)
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return nil
}

// MergeIntoPrevious appends the line at row onto the line above it and removes it.
func (b *Buffer) MergeIntoPrevious(row int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if row == 0 {
		return fmt.Errorf("%w: row 0 has no previous line", ErrIndex)
	}
	prev := &b.lines[row-1]
	prev.chars = append(prev.chars, b.lines[row].chars...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return nil
}

// WriteTo writes every line followed by '\n'.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range b.lines {
		m, err := bw.WriteString(l.String())
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

func (b *Buffer) checkRow(row int) error {
	if row < 0 || row >= len(b.lines) {
		return indexError("row", row, len(b.lines))
	}
	return nil
}

// checkCol validates col against the line length minus slack: 0 for insertion points, 1 for
// character positions.
func (b *Buffer) checkCol(row, col, slack int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if n := b.lines[row].Len() + 1 - slack; col < 0 || col >= n {
		return indexError("column", col, n)
	}
	return nil
}
