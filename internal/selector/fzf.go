package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Fzf pipes labels into an fzf process and reads the choice from its stdout.
type Fzf struct {
	Path string
	// Args replaces the default fzf arguments when set.
	Args []string
}

func (f Fzf) Select(ctx context.Context, title string, labels []string) (string, error) {
	args := f.Args
	if args == nil {
		args = []string{"--prompt", title + "> ", "--no-multi"}
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, f.Path, args...)
	cmd.Stdin = strings.NewReader(strings.Join(labels, "\n"))
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		// fzf exits 1 on no match and 130 on interrupt
		if errors.As(err, &ee) && (ee.ExitCode() == 1 || ee.ExitCode() == 130) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("run fzf: %w", err)
	}

	choice := strings.TrimRight(stdout.String(), "\r\n")
	if choice == "" {
		return "", ErrAborted
	}
	return choice, nil
}
