package tui

import (
	"github.com/charmbracelet/bubbles/list"
)

type labelItem struct {
	value string
}

func (i labelItem) Title() string       { return i.value }
func (i labelItem) Description() string { return "" }
func (i labelItem) FilterValue() string { return i.value }

type model struct {
	title string
	items list.Model

	choice  string
	chosen  bool
	aborted bool

	width  int
	height int
}

func newModel(title string, labels []string) model {
	items := make([]list.Item, 0, len(labels))
	for _, l := range labels {
		items = append(items, labelItem{value: l})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 60, 16)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return model{
		title: title,
		items: l,
	}
}

// filtering reports whether the list is capturing keystrokes for its filter.
func (m *model) filtering() bool {
	return m.items.FilterState() == list.Filtering
}
