package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.items.SetSize(max(msg.Width-4, 20), max(msg.Height-6, 4))
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}

		// enter picks the highlighted item, even while the filter is being typed
		if key == "enter" {
			if it, ok := m.items.SelectedItem().(labelItem); ok {
				m.choice = it.value
				m.chosen = true
				return m, tea.Quit
			}
			return m, nil
		}

		// esc first clears an active filter, then quits
		if key == "esc" && m.items.FilterState() == list.Unfiltered {
			m.aborted = true
			return m, tea.Quit
		}
		if key == "q" && !m.filtering() {
			m.aborted = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.items, cmd = m.items.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.items, cmd = m.items.Update(msg)
		return m, cmd
	}
}
