package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrQuit is returned by Select when the user leaves the picker without choosing.
var ErrQuit = errors.New("picker closed without a choice")

// Select shows labels under title and returns the label the user picks.
// in and out default to the terminal when nil.
func Select(ctx context.Context, title string, labels []string, in io.Reader, out io.Writer) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	p := tea.NewProgram(newModel(title, labels), opts...)
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(model)
	if !ok || !m.chosen {
		return "", ErrQuit
	}
	return m.choice, nil
}
