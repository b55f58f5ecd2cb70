package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 4, "abc"},
		{"\tx", 4, "    x"},
		{"ab\tx", 4, "ab  x"},
		{"abcd\tx", 4, "abcd    x"},
		{"日\tx", 4, "日  x"},
		{"\t\t", 2, "    "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandTabs(tt.in, tt.width), "%q", tt.in)
	}
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, 3, Saturate(3, 0, 5))
	assert.Equal(t, 5, Saturate(1<<40, 0, 5))
	assert.Equal(t, 0, Saturate(-7, 0, 5))
	assert.Equal(t, 0, Saturate(2, 0, -1))
}

func TestFrame_FillsWithTildes(t *testing.T) {
	v := New(4, false)
	v.Update([]string{"a", "b"}, true)

	f := v.Frame(State{Row: 1, Col: 1}, 6, 20)
	assert.Equal(t, []string{"a", "b", "~", "~"}, f.Rows)
	assert.Equal(t, 1, f.CursorY)
	assert.Equal(t, 1, f.CursorX)
	assert.Empty(t, f.Debug)
	assert.Equal(t, "  2:2", f.Status)
}

func TestFrame_ScrollsToKeepCursorVisible(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	v := New(4, false)
	v.Update(lines, true)

	f := v.Frame(State{Row: 7}, 5, 20) // three content rows
	assert.Equal(t, []string{"line 5", "line 6", "line 7"}, f.Rows)
	assert.Equal(t, 2, f.CursorY)

	f = v.Frame(State{Row: 6}, 5, 20)
	assert.Equal(t, []string{"line 5", "line 6", "line 7"}, f.Rows, "moving within the window does not scroll")
	assert.Equal(t, 1, f.CursorY)

	f = v.Frame(State{Row: 2}, 5, 20)
	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, f.Rows)
	assert.Equal(t, 0, f.CursorY)
}

func TestFrame_CursorUsesDisplayWidth(t *testing.T) {
	v := New(4, false)
	v.Update([]string{"日本\tx"}, true)

	f := v.Frame(State{Row: 0, Col: 2}, 4, 40)
	assert.Equal(t, 4, f.CursorX)

	f = v.Frame(State{Row: 0, Col: 3}, 4, 40)
	assert.Equal(t, 8, f.CursorX)
	assert.Equal(t, "日本    x", f.Rows[0])
}

func TestFrame_SaturatesToWindow(t *testing.T) {
	v := New(4, false)
	v.Update([]string{"abcdefghij"}, true)

	f := v.Frame(State{Row: 0, Col: 10}, 1, 4)
	require.Len(t, f.Rows, 1)
	assert.Equal(t, "abcd", f.Rows[0])
	assert.Equal(t, 3, f.CursorX)
	assert.Equal(t, 0, f.CursorY)
}

func TestUpdate_OnlyRebuildsWhenMutated(t *testing.T) {
	v := New(4, false)
	v.Update([]string{"one"}, false)
	v.Update([]string{"two"}, false)
	assert.Equal(t, []string{"one", "~"}, v.Frame(State{}, 4, 10).Rows)

	v.Update([]string{"two"}, true)
	assert.Equal(t, []string{"two", "~"}, v.Frame(State{}, 4, 10).Rows)
}

func TestFrame_DebugAndStatus(t *testing.T) {
	v := New(4, true)
	v.Update([]string{"abc"}, true)

	f := v.Frame(State{Row: 0, Col: 2, Mode: "INSERT", Build: "0.0.1", Modified: true}, 10, 200)
	assert.Contains(t, f.Debug, "build=0.0.1")
	assert.Contains(t, f.Debug, "curr line len=3 chars")
	assert.Contains(t, f.Debug, "mode=INSERT")
	assert.Equal(t, "[+]  1:3", f.Status)

	v.ToggleVerbose()
	assert.Empty(t, v.Frame(State{}, 10, 200).Debug)
}

type countingSource struct {
	lines []string
	calls int
}

func (c *countingSource) Lines() []string {
	c.calls++
	return c.lines
}

func TestSync_OnlyReadsLinesWhenMutated(t *testing.T) {
	src := &countingSource{lines: []string{"a"}}
	v := New(4, false)

	v.Sync(src, false)
	assert.Equal(t, 1, src.calls, "first frame always reads")

	src.lines = []string{"b"}
	v.Sync(src, false)
	v.Sync(src, false)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, []string{"a", "~"}, v.Frame(State{}, 4, 10).Rows)

	v.Sync(src, true)
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, []string{"b", "~"}, v.Frame(State{}, 4, 10).Rows)
}
