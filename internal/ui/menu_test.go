package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m tea.Model, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	mm, ok := m.(MenuModel)
	require.True(t, ok)
	return mm
}

func TestMenu_InitialView(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())
	view := m.View()

	assert.Contains(t, view, "Choose an algorithm")
	assert.Contains(t, view, "kmp")
	assert.Contains(t, view, "aho-corasick")
}

func TestMenu_CursorMovement(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())

	moved := update(t, m, "down", "down")
	assert.Equal(t, 2, moved.cursor)

	// Cursor clamps at the list edges.
	moved = update(t, moved, "down", "down")
	assert.Equal(t, 2, moved.cursor)
	moved = update(t, moved, "up", "up", "up", "up")
	assert.Equal(t, 0, moved.cursor)
}

func TestMenu_ScanFlow(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())

	// Select kmp, type a pattern, scan.
	result := update(t, m, "enter", "A", "B", "C", "enter")

	require.Equal(t, stateShowResult, result.state)
	require.NoError(t, result.err)
	require.NotNil(t, result.result)
	assert.Equal(t, []int{1}, result.result.Positions)
	assert.Contains(t, result.View(), "1 match(es)")
}

func TestMenu_MultiPatternScan(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())

	// aho-corasick is the third entry; comma separates patterns.
	result := update(t, m, "down", "down", "enter",
		"A", "B", "C", ",", "B", "C", "enter")

	require.NoError(t, result.err)
	assert.Equal(t, []int{1, 2}, result.result.Positions)
}

func TestMenu_EmptyPatternShowsError(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())

	result := update(t, m, "enter", "enter")
	require.Equal(t, stateShowResult, result.state)
	assert.Error(t, result.err)
	assert.True(t, strings.Contains(result.View(), "error"))
}

func TestMenu_EscReturnsToPicker(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())

	back := update(t, m, "enter", "esc")
	assert.Equal(t, statePickAlgorithm, back.state)
}

func TestMenu_EnterAfterResultResets(t *testing.T) {
	m := NewMenu([]byte("XABCX"), 1, NoColorStyles())

	done := update(t, m, "enter", "A", "enter", "enter")
	assert.Equal(t, statePickAlgorithm, done.state)
	assert.Nil(t, done.result)
}
