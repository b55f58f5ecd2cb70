package internal

import "github.com/omarnabikhan/spire/internal/buffer"

// Cursor is the insertion point. Col is always in [0, len(line)]: the end of a line is a valid
// position, so "last valid index" means the line length for every movement and edit.
//
// Vertical moves clamp Col to the new line without remembering the column they started from.
type Cursor struct {
	Row, Col int
}

func (c *Cursor) MoveRight(b *buffer.Buffer) {
	if c.Col < b.LineLen(c.Row) {
		c.Col++
		return
	}
	if c.Row+1 < b.LineCount() {
		// Wrap to the start of the next line.
		c.Row++
		c.Col = 0
	}
}

func (c *Cursor) MoveLeft(b *buffer.Buffer) {
	if c.Col > 0 {
		c.Col--
		return
	}
	if c.Row > 0 {
		// Wrap to the end of the previous line.
		c.Row--
		c.Col = b.LineLen(c.Row)
	}
}

func (c *Cursor) MoveUp(b *buffer.Buffer) {
	if c.Row == 0 {
		return
	}
	c.Row--
	c.Col = min(c.Col, b.LineLen(c.Row))
}

func (c *Cursor) MoveDown(b *buffer.Buffer) {
	if c.Row+1 >= b.LineCount() {
		return
	}
	c.Row++
	c.Col = min(c.Col, b.LineLen(c.Row))
}

func (c *Cursor) MoveToLineEnd(b *buffer.Buffer) {
	c.Col = b.LineLen(c.Row)
}

func (c *Cursor) MoveToLineStart() {
	c.Col = 0
}
