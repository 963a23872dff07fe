package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m model, keys ...tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel(t *testing.T) {
	labels := []string{"v2.0.0", "v1.1.0", "v1.0.0"}

	t.Run("enter_chooses_highlighted", func(t *testing.T) {
		// Arrange
		m := newModel("release", labels)

		// Act
		m, cmd := press(t, m,
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyEnter},
		)

		// Assert
		assert.True(t, isQuit(cmd))
		assert.True(t, m.chosen)
		assert.Equal(t, "v1.1.0", m.choice)
		assert.Empty(t, m.View())
	})

	t.Run("esc_aborts", func(t *testing.T) {
		// Arrange
		m := newModel("release", labels)

		// Act
		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		// Assert
		assert.True(t, isQuit(cmd))
		assert.True(t, m.aborted)
		assert.False(t, m.chosen)
	})

	t.Run("ctrl_c_aborts", func(t *testing.T) {
		// Arrange
		m := newModel("release", labels)

		// Act
		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

		// Assert
		assert.True(t, isQuit(cmd))
		assert.True(t, m.aborted)
	})

	t.Run("q_while_filtering_is_text", func(t *testing.T) {
		// Arrange
		m := newModel("release", labels)

		// Act
		m, _ = press(t, m,
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}},
		)

		// Assert
		assert.True(t, m.filtering())
		assert.False(t, m.aborted)
	})

	t.Run("view_lists_title", func(t *testing.T) {
		// Arrange
		m := newModel("release", labels)

		// Act
		out := m.View()

		// Assert
		assert.Contains(t, out, "release")
		assert.Contains(t, out, "v2.0.0")
	})
}
