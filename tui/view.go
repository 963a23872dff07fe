package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const helpText = "enter: choose   /: filter   esc: clear filter / quit   q: quit"

func (m model) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var (
		appPad = lipgloss.NewStyle().Padding(1, 2)

		muted = lipgloss.NewStyle().Faint(true)

		panel = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

		footer = lipgloss.NewStyle().MarginTop(1)
	)

	return appPad.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			panel.Render(m.items.View()),
			footer.Render(muted.Render(helpText)),
		),
	)
}
