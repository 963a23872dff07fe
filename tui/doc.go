// Package tui implements the Bubble Tea picker used by the interactive selector.
// It shows a filterable list of labels and reports the chosen one, or that the
// user quit without choosing.
package tui
