// Package selector provides the interactive chooser backends: an external fzf
// process, the built-in Bubble Tea picker and a promptui list.
package selector

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"releaseinstallergo/internal/logger"
)

// ErrAborted is returned when the user leaves a prompt without choosing.
var ErrAborted = errors.New("selection aborted")

// Backend names accepted by New.
const (
	BackendFzf    = "fzf"
	BackendTUI    = "tui"
	BackendPrompt = "prompt"
)

// Prompt asks a human to pick one label out of labels.
type Prompt interface {
	Select(ctx context.Context, title string, labels []string) (string, error)
}

// New returns the Prompt for backend. The fzf backend falls back to the
// built-in picker when fzfPath cannot be found.
func New(backend, fzfPath string) (Prompt, error) {
	switch backend {
	case BackendFzf, "":
		path, err := exec.LookPath(fzfPath)
		if err != nil {
			logger.Log.Info("fzf not found; using built-in picker", "path", fzfPath, "err", err)
			return TUI{}, nil
		}
		return Fzf{Path: path}, nil
	case BackendTUI:
		return TUI{}, nil
	case BackendPrompt:
		return List{}, nil
	default:
		return nil, fmt.Errorf("unknown selector backend %q", backend)
	}
}
