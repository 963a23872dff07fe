package selector

import (
	"context"
	"errors"

	"releaseinstallergo/tui"
)

// TUI is the built-in Bubble Tea picker.
type TUI struct{}

func (TUI) Select(ctx context.Context, title string, labels []string) (string, error) {
	choice, err := tui.Select(ctx, title, labels, nil, nil)
	if errors.Is(err, tui.ErrQuit) {
		return "", ErrAborted
	}
	return choice, err
}
