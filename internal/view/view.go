// Package view turns session state into the strings and screen coordinates the terminal draws.
// Display strings are cached and only rebuilt when the buffer changes.
package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// The bottom two screen rows are reserved for the debug line and the user message.
const reservedRows = 2

// State is the part of a session the view needs for one frame.
type State struct {
	Row, Col int
	Mode     string
	Message  string
	Modified bool
	Build    string
}

// Frame is one fully laid out screen.
type Frame struct {
	// Rows holds exactly the content area's height; rows past the end of the file are "~".
	Rows []string
	// Debug is empty unless the view is verbose.
	Debug  string
	Status string
	// Screen position of the cursor, always inside the window.
	CursorY, CursorX int
}

type View struct {
	tabWidth int
	verbose  bool

	raw     []string
	display []string
	// Which line of the file is shown at the top of the screen.
	top int
}

func New(tabWidth int, verbose bool) *View {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &View{tabWidth: tabWidth, verbose: verbose}
}

// Update refreshes the cached display strings. It is a no-op unless mutated is set or nothing has
// been cached yet.
func (v *View) Update(lines []string, mutated bool) {
	if !mutated && v.display != nil {
		return
	}
	v.raw = append(v.raw[:0], lines...)
	v.display = make([]string, len(lines))
	for i, l := range lines {
		v.display[i] = ExpandTabs(l, v.tabWidth)
	}
}

// LineSource is anything that can hand over its lines, normally the editor session.
type LineSource interface {
	Lines() []string
}

// Sync is Update that only asks src for its lines when they will actually be used.
func (v *View) Sync(src LineSource, mutated bool) {
	if !mutated && v.display != nil {
		return
	}
	v.Update(src.Lines(), true)
}

func (v *View) Verbose() bool {
	return v.verbose
}

func (v *View) ToggleVerbose() {
	v.verbose = !v.verbose
}

// Frame lays out a height x width window around st's cursor, scrolling as little as possible.
func (v *View) Frame(st State, height, width int) Frame {
	contentRows := max(height-reservedRows, 1)
	width = max(width, 1)

	row := Saturate(st.Row, 0, len(v.display)-1)
	if row < v.top {
		v.top = row
	} else if row >= v.top+contentRows {
		v.top = row - contentRows + 1
	}
	v.top = Saturate(v.top, 0, max(len(v.display)-1, 0))

	f := Frame{Rows: make([]string, 0, contentRows)}
	for i := 0; i < contentRows; i++ {
		if n := v.top + i; n < len(v.display) {
			f.Rows = append(f.Rows, runewidth.Truncate(v.display[n], width, ""))
		} else {
			// There are no more file contents, so denote that these lines are not in the file.
			f.Rows = append(f.Rows, "~")
		}
	}

	f.CursorY = Saturate(row-v.top, 0, contentRows-1)
	f.CursorX = Saturate(v.cursorColumn(row, st.Col), 0, width-1)
	f.Status = runewidth.Truncate(v.status(st), width, "")
	if v.verbose {
		f.Debug = runewidth.Truncate(v.debug(st, row), width, "")
	}
	return f
}

// cursorColumn converts a character column into a display column.
func (v *View) cursorColumn(row, col int) int {
	if row < 0 || row >= len(v.raw) {
		return 0
	}
	line := []rune(v.raw[row])
	col = Saturate(col, 0, len(line))
	return runewidth.StringWidth(ExpandTabs(string(line[:col]), v.tabWidth))
}

func (v *View) status(st State) string {
	msg := st.Message
	if msg == "" && st.Modified {
		msg = "[+]"
	}
	return fmt.Sprintf("%s  %d:%d", msg, st.Row+1, st.Col+1)
}

func (v *View) debug(st State, row int) string {
	lineLen := 0
	if row >= 0 && row < len(v.raw) {
		lineLen = len([]rune(v.raw[row]))
	}
	return fmt.Sprintf("DEBUG: build=%s; file len=%d lines; curr line len=%d chars; curr line offset=%d lines; cursor=(x=%d,y=%d); mode=%s",
		st.Build, len(v.raw), lineLen, v.top, st.Col, st.Row, st.Mode)
}

// ExpandTabs replaces each tab with spaces up to the next multiple of width display columns.
func ExpandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// Saturate clamps n into [lo, hi]. When hi < lo the result is lo.
func Saturate(n, lo, hi int) int {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}
