package tui

import "github.com/charmbracelet/lipgloss"

var (
	Accent      = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Muted       = lipgloss.Color("#5c6a80")
	Filled      = lipgloss.Color("#f9e2af")
)

// Styles holds every lipgloss style used by the view.
type Styles struct {
	Title     lipgloss.Style
	Empty     lipgloss.Style
	Filled    lipgloss.Style
	GhostFits lipgloss.Style
	GhostBad  lipgloss.Style
	Label     lipgloss.Style
	Board     lipgloss.Style
	Slot      lipgloss.Style
	Selected  lipgloss.Style
	Used      lipgloss.Style
	Status    lipgloss.Style
	GameOver  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Empty:     lipgloss.NewStyle().Foreground(Muted),
		Filled:    lipgloss.NewStyle().Foreground(Filled),
		GhostFits: lipgloss.NewStyle().Foreground(Accent).Bold(true),
		GhostBad:  lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(Muted),
		Board:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1),
		Slot:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Muted).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(Accent).Padding(0, 1),
		Used:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Muted).Foreground(Muted).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(Warning),
		GameOver:  lipgloss.NewStyle().Bold(true).Foreground(Destructive).Border(lipgloss.DoubleBorder()).BorderForeground(Destructive).Padding(0, 2),
	}
}
