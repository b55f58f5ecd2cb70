package term

import (
	"unicode/utf8"

	gc "github.com/gbin/goncurses"

	"github.com/omarnabikhan/spire"
)

// Escape sequences and control bytes delivered as plain keys.
const (
	escKey       = 0x1b
	deleteKey    = 0x7f
	ctrlH        = 0x08
	tabKey       = 0x09
	lineFeed     = 0x0a
	carriageRet  = 0x0d
	maxFunctionN = 64
)

// Decoder turns goncurses keys into editor key events. next reads the continuation bytes of a
// multi-byte UTF-8 character.
type Decoder struct {
	next func() gc.Key
}

func NewDecoder(next func() gc.Key) *Decoder {
	return &Decoder{next: next}
}

func (d *Decoder) Decode(key gc.Key) spire.KeyEvent {
	switch key {
	case escKey:
		return spire.Key(spire.KeyEscape)
	case deleteKey, ctrlH, gc.KEY_BACKSPACE:
		return spire.Key(spire.KeyBackspace)
	case lineFeed, carriageRet, gc.KEY_ENTER:
		return spire.Key(spire.KeyEnter)
	case tabKey:
		return spire.Key(spire.KeyTab)
	case gc.KEY_LEFT:
		return spire.Key(spire.KeyLeft)
	case gc.KEY_RIGHT:
		return spire.Key(spire.KeyRight)
	case gc.KEY_UP:
		return spire.Key(spire.KeyUp)
	case gc.KEY_DOWN:
		return spire.Key(spire.KeyDown)
	case gc.KEY_HOME:
		return spire.Key(spire.KeyHome)
	case gc.KEY_END:
		return spire.Key(spire.KeyEnd)
	case gc.KEY_PAGEUP:
		return spire.Key(spire.KeyPageUp)
	case gc.KEY_PAGEDOWN:
		return spire.Key(spire.KeyPageDown)
	case gc.KEY_DC:
		return spire.Key(spire.KeyDelete)
	case gc.KEY_IC:
		return spire.Key(spire.KeyInsert)
	}

	switch {
	case key >= 1 && key <= 26:
		return spire.CtrlChar(rune('a' + key - 1))
	case key >= ' ' && key < deleteKey:
		return spire.Char(rune(key))
	case key >= 0xc0 && key <= 0xf7:
		return d.decodeUTF8(key)
	case key >= gc.KEY_F1 && key < gc.KEY_F1+maxFunctionN:
		return spire.KeyEvent{Code: spire.KeyFunction, Fn: int(key-gc.KEY_F1) + 1}
	default:
		return spire.Key(spire.KeyNull)
	}
}

// decodeUTF8 assembles a character whose lead byte is lead.
func (d *Decoder) decodeUTF8(lead gc.Key) spire.KeyEvent {
	var n int
	switch {
	case lead >= 0xf0:
		n = 4
	case lead >= 0xe0:
		n = 3
	default:
		n = 2
	}
	p := []byte{byte(lead)}
	for len(p) < n {
		k := d.next()
		if k < 0x80 || k > 0xbf {
			return spire.Key(spire.KeyNull)
		}
		p = append(p, byte(k))
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return spire.Key(spire.KeyNull)
	}
	return spire.Char(r)
}
