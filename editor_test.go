package spire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionMutated(t *testing.T) {
	for _, a := range []Action{Ignored, CursorMove, ModeChanged, SaveRequested, QuitRequested} {
		assert.False(t, a.Mutated(), a.String())
	}
	assert.True(t, BufferMutated.Mutated())
}

func TestKeyEventPrintable(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want bool
	}{
		{"letter", Char('a'), true},
		{"space", Char(' '), true},
		{"non-ascii", Char('é'), true},
		{"tab rune", Char('\t'), false},
		{"ctrl letter", CtrlChar('q'), false},
		{"alt letter", KeyEvent{Code: KeyCharacter, Rune: 'x', Alt: true}, false},
		{"control rune", Char('\x01'), false},
		{"enter", Key(KeyEnter), false},
		{"null", Key(KeyNull), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.Printable())
		})
	}
}
