// Package tui is a terminal client that plays a game locally.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"github.com/avg-cs-student/jcblocks/internal/canvas"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/solver"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the bubbletea model for one local game.
type Model struct {
	game   *engine.Game
	keys   keyMap
	help   help.Model
	styles Styles

	// cursor is the board cell the selected block is anchored to.
	row, col int
	slot     int
	rotation int
	status   string
	quitting bool
}

// New starts a game with the given rules.
func New(rules engine.Rules, rng *rand.Rand) (Model, error) {
	g, err := engine.New(rules, rng)
	if err != nil {
		return Model{}, err
	}
	return Model{
		game:   g,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		status: "Pick a block with 1-9 and place it with enter.",
	}, nil
}

// Run plays a game in the terminal until the player quits.
func Run(rules engine.Rules, rng *rand.Rand) error {
	m, err := New(rules, rng)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		m.game.Reset()
		m.slot, m.rotation = 0, 0
		m.status = "New game."
	case key.Matches(msg, m.keys.Up):
		m.row = clamp(m.row+1, 0, m.game.Canvas.Rows-1)
	case key.Matches(msg, m.keys.Down):
		m.row = clamp(m.row-1, 0, m.game.Canvas.Rows-1)
	case key.Matches(msg, m.keys.Left):
		m.col = clamp(m.col-1, 0, m.game.Canvas.Columns-1)
	case key.Matches(msg, m.keys.Right):
		m.col = clamp(m.col+1, 0, m.game.Canvas.Columns-1)
	case key.Matches(msg, m.keys.Select):
		m.selectSlot(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Rotate):
		m.rotation = (m.rotation + 1) % 4
	case key.Matches(msg, m.keys.RotateCC):
		m.rotation = (m.rotation + 3) % 4
	case key.Matches(msg, m.keys.Place):
		m.place()
	case key.Matches(msg, m.keys.Hint):
		m.hint()
	}
	return m, nil
}

func (m *Model) selectSlot(slot int) {
	if slot < 0 || slot >= len(m.game.Hand) {
		m.status = fmt.Sprintf("There is no block %d.", slot+1)
		return
	}
	if m.game.Hand[slot] == nil {
		m.status = fmt.Sprintf("Block %d has already been played.", slot+1)
		return
	}
	m.slot, m.rotation = slot, 0
	m.status = ""
}

func (m *Model) place() {
	if m.game.Over {
		m.status = "Game over. Press n to play again."
		return
	}
	res, err := m.game.Play(engine.Move{Slot: m.slot, Rotation: m.rotation, Row: m.row, Column: m.col})
	switch {
	case errors.Is(err, canvas.ErrDoesNotFit):
		m.status = "That block does not fit there."
		return
	case errors.Is(err, engine.ErrSlotEmpty), errors.Is(err, engine.ErrInvalidSlot):
		m.status = "Pick a block first."
		return
	case err != nil:
		m.status = err.Error()
		return
	}

	m.rotation = 0
	m.slot = m.firstAvailableSlot()
	switch {
	case res.Over:
		m.status = fmt.Sprintf("No block fits. Final score %d.", m.game.Score)
	case res.Cleared.Count() > 0:
		m.status = fmt.Sprintf("Cleared %d line(s) for %d points!", res.Cleared.Count(), res.Points)
	case res.Refilled:
		m.status = "New blocks dealt."
	default:
		m.status = ""
	}
}

func (m *Model) hint() {
	s, ok := solver.Hint(m.game)
	if !ok {
		m.status = "No move available."
		return
	}
	m.slot, m.rotation = s.Move.Slot, s.Move.Rotation
	m.row, m.col = s.Move.Row, s.Move.Column
	m.status = fmt.Sprintf("Try block %d here: clears %d line(s).", s.Move.Slot+1, s.Lines)
}

func (m Model) firstAvailableSlot() int {
	for i, b := range m.game.Hand {
		if b != nil {
			return i
		}
	}
	return 0
}

// ghost returns the cells the selected block would cover and whether it fits.
func (m Model) ghost() (map[block.Point]bool, bool) {
	if m.slot >= len(m.game.Hand) || m.game.Hand[m.slot] == nil {
		return nil, false
	}
	b := m.game.Hand[m.slot].Rotated(m.rotation)
	cells := make(map[block.Point]bool, b.Len())
	for _, p := range b.Coordinates() {
		cells[block.Point{X: m.col + p.X, Y: m.row + p.Y}] = true
	}
	return cells, m.game.Canvas.CanFitAt(b, m.row, m.col)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("jcblocks"))
	sb.WriteString(fmt.Sprintf("  score %d  lines %d  moves %d\n\n", m.game.Score, m.game.LinesCleared, m.game.Moves))
	sb.WriteString(m.styles.Board.Render(m.renderBoard()))
	sb.WriteString("\n")
	sb.WriteString(m.renderHand())
	sb.WriteString("\n")
	if m.game.Over {
		sb.WriteString(m.styles.GameOver.Render(fmt.Sprintf("GAME OVER  final score %d", m.game.Score)))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderBoard() string {
	c := m.game.Canvas
	ghost, fits := m.ghost()
	ghostStyle := m.styles.GhostBad
	if fits {
		ghostStyle = m.styles.GhostFits
	}
	glyph := string(block.CellGlyph)

	var sb strings.Builder
	for row := c.Rows - 1; row >= 0; row-- {
		sb.WriteString(m.styles.Label.Render(fmt.Sprintf("%d ", row%10)))
		for col := 0; col < c.Columns; col++ {
			status, _ := c.Status(col, row)
			switch {
			case ghost[block.Point{X: col, Y: row}]:
				sb.WriteString(ghostStyle.Render(glyph))
			case status == canvas.Occupied:
				sb.WriteString(m.styles.Filled.Render(glyph))
			default:
				sb.WriteString(m.styles.Empty.Render("."))
			}
			sb.WriteByte(' ')
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("\n  ")
	for col := 0; col < c.Columns; col++ {
		sb.WriteString(m.styles.Label.Render(fmt.Sprintf("%d ", col%10)))
	}
	return sb.String()
}

func (m Model) renderHand() string {
	slots := make([]string, 0, len(m.game.Hand))
	for i, b := range m.game.Hand {
		label := fmt.Sprintf("%d", i+1)
		switch {
		case b == nil:
			slots = append(slots, m.styles.Used.Render(label+"\n(played)"))
		case i == m.slot:
			drawing := strings.TrimRight(b.Rotated(m.rotation).Normalized().String(), "\n")
			slots = append(slots, m.styles.Selected.Render(label+"\n"+drawing))
		default:
			drawing := strings.TrimRight(b.String(), "\n")
			slots = append(slots, m.styles.Slot.Render(label+"\n"+drawing))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, slots...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
