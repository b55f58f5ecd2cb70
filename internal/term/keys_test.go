package term

import (
	"testing"

	gc "github.com/gbin/goncurses"
	"github.com/stretchr/testify/assert"

	"github.com/omarnabikhan/spire"
)

func feed(keys ...gc.Key) func() gc.Key {
	return func() gc.Key {
		if len(keys) == 0 {
			return 0
		}
		k := keys[0]
		keys = keys[1:]
		return k
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		key  gc.Key
		want spire.KeyEvent
	}{
		{"letter", 'a', spire.Char('a')},
		{"dollar", '$', spire.Char('$')},
		{"escape", 0x1b, spire.Key(spire.KeyEscape)},
		{"delete byte", 0x7f, spire.Key(spire.KeyBackspace)},
		{"curses backspace", gc.KEY_BACKSPACE, spire.Key(spire.KeyBackspace)},
		{"line feed", '\n', spire.Key(spire.KeyEnter)},
		{"carriage return", '\r', spire.Key(spire.KeyEnter)},
		{"tab", '\t', spire.Key(spire.KeyTab)},
		{"ctrl q", 0x11, spire.CtrlChar('q')},
		{"ctrl s", 0x13, spire.CtrlChar('s')},
		{"left", gc.KEY_LEFT, spire.Key(spire.KeyLeft)},
		{"down", gc.KEY_DOWN, spire.Key(spire.KeyDown)},
		{"end", gc.KEY_END, spire.Key(spire.KeyEnd)},
		{"insert", gc.KEY_IC, spire.Key(spire.KeyInsert)},
		{"f2", gc.KEY_F1 + 1, spire.KeyEvent{Code: spire.KeyFunction, Fn: 2}},
		{"nothing", 0, spire.Key(spire.KeyNull)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDecoder(feed()).Decode(tt.key))
		})
	}
}

func TestDecode_MultiByte(t *testing.T) {
	// "é" is 0xc3 0xa9; "日" is 0xe6 0x97 0xa5.
	assert.Equal(t, spire.Char('é'), NewDecoder(feed(0xa9)).Decode(0xc3))
	assert.Equal(t, spire.Char('日'), NewDecoder(feed(0x97, 0xa5)).Decode(0xe6))

	// A lead byte followed by ASCII is not a character.
	assert.Equal(t, spire.Key(spire.KeyNull), NewDecoder(feed('a')).Decode(0xc3))
}
