package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// List is a promptui select list with fuzzy search.
type List struct {
	// Size is the number of visible rows; 0 means 15.
	Size int
}

func (l List) Select(_ context.Context, title string, labels []string) (string, error) {
	size := l.Size
	if size == 0 {
		size = 15
	}

	prompt := promptui.Select{
		Label:             title,
		Items:             labels,
		Size:              size,
		Searcher:          searcher(labels),
		StartInSearchMode: true,
	}

	_, result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}
	return result, nil
}

// searcher matches labels[index] against input as a fuzzy subsequence.
func searcher(labels []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		return len(fuzzy.Find(input, labels[index:index+1])) > 0
	}
}
