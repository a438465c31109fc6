package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(b block.Block) *block.Block { return &b }

func newModel(t *testing.T, hand ...*block.Block) Model {
	t.Helper()
	m, err := New(engine.DefaultRules(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	if len(hand) > 0 {
		m.game.Hand = hand
	}
	return m
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestCursorMovementIsClamped(t *testing.T) {
	m := newModel(t)
	m = press(m, "down", "left")
	assert.Equal(t, 0, m.row)
	assert.Equal(t, 0, m.col)

	m = press(m, "up", "k", "right", "l")
	assert.Equal(t, 2, m.row)
	assert.Equal(t, 2, m.col)

	for i := 0; i < 20; i++ {
		m = press(m, "up", "right")
	}
	assert.Equal(t, 7, m.row)
	assert.Equal(t, 7, m.col)
}

func TestSelectAndRotate(t *testing.T) {
	m := newModel(t, ptr(block.NewTee()), nil, ptr(block.NewLine(3)))
	m = press(m, "3")
	assert.Equal(t, 2, m.slot)

	m = press(m, "2")
	assert.Equal(t, 2, m.slot)
	assert.Contains(t, m.status, "already been played")

	m = press(m, "r", "r", "R")
	assert.Equal(t, 1, m.rotation)

	m = press(m, "1")
	assert.Equal(t, 0, m.slot)
	assert.Equal(t, 0, m.rotation)
}

func TestPlaceBlock(t *testing.T) {
	m := newModel(t, ptr(block.NewRectangle(2, 2)), ptr(block.NewRectangle(1, 1)), ptr(block.NewTee()))
	m = press(m, "enter")

	assert.Equal(t, 1, m.game.Moves)
	assert.Equal(t, 4, m.game.Canvas.OccupiedCount())
	assert.Nil(t, m.game.Hand[0])
	assert.Equal(t, 1, m.slot)

	// The 1x1 cannot go on an occupied cell.
	m = press(m, " ")
	assert.Equal(t, 1, m.game.Moves)
	assert.Contains(t, m.status, "does not fit")
}

func TestHintMovesCursor(t *testing.T) {
	m := newModel(t, ptr(block.NewLine(5)), nil, nil)
	m = press(m, "?")
	assert.Equal(t, 0, m.slot)
	assert.Contains(t, m.status, "Try block 1")

	m = press(m, "enter")
	assert.Equal(t, 1, m.game.Moves)
}

func TestNewGameResets(t *testing.T) {
	m := newModel(t, ptr(block.NewRectangle(1, 1)), nil, nil)
	m = press(m, "enter")
	require.Equal(t, 1, m.game.Moves)

	m = press(m, "n")
	assert.Equal(t, 0, m.game.Moves)
	assert.Equal(t, 0, m.game.Canvas.OccupiedCount())
	assert.Equal(t, 3, m.game.Remaining())
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", next.View())
}

func TestView(t *testing.T) {
	m := newModel(t, ptr(block.NewRectangle(1, 1)), nil, nil)
	v := m.View()
	assert.Contains(t, v, "score 0")
	assert.Contains(t, v, "(played)")
	assert.True(t, strings.Contains(v, "quit"))

	m.game.Over = true
	assert.Contains(t, m.View(), "GAME OVER")
}
