package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrIndex is returned when a row or column outside the buffer reaches it. It always means a
	// cursor or edit bug, never bad user input.
	ErrIndex = errors.New("buffer: index out of range")
	// ErrInvariant is returned when an operation would leave the buffer without any line.
	ErrInvariant = errors.New("buffer: invariant violation")
)

// DecodeError reports a loaded record that is not valid UTF-8.
type DecodeError struct {
	// Line is 1-based.
	Line int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: invalid UTF-8", e.Line)
}

func indexError(what string, i, n int) error {
	return fmt.Errorf("%w: %s %d not in [0, %d)", ErrIndex, what, i, n)
}
