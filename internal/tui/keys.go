package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/charbrowser/internal/locale"
	"github.com/jask/charbrowser/internal/pager"
)

type keyMap struct {
	First    key.Binding
	Prev     key.Binding
	Next     key.Binding
	Last     key.Binding
	Retry    key.Binding
	Search   key.Binding
	Language key.Binding
	Quit     key.Binding

	// search mode
	Done   key.Binding
	Cancel key.Binding
}

func newKeyMap(l locale.Labels) keyMap {
	return keyMap{
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", l.T("help_first"))),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", l.T("help_prev"))),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", l.T("help_next"))),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", l.T("help_last"))),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", l.T("help_retry"))),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", l.T("help_search"))),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", l.T("help_language"))),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", l.T("help_quit"))),
		Done:     key.NewBinding(key.WithKeys("enter")),
		Cancel:   key.NewBinding(key.WithKeys("esc")),
	}
}

// navBindings pairs each navigation binding with the action it triggers.
func (k *keyMap) navBindings() []struct {
	binding *key.Binding
	action  pager.Action
} {
	return []struct {
		binding *key.Binding
		action  pager.Action
	}{
		{&k.First, pager.ActionFirst},
		{&k.Prev, pager.ActionPrev},
		{&k.Next, pager.ActionNext},
		{&k.Last, pager.ActionLast},
		{&k.Retry, pager.ActionRetry},
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.First, k.Prev, k.Next, k.Last, k.Retry, k.Search, k.Language, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
