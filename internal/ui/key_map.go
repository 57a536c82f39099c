package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	back   key.Binding
	add    key.Binding
	edit   key.Binding
	reject key.Binding
	delete key.Binding
	hide   key.Binding
	save   key.Binding
	reload key.Binding
	yes    key.Binding
	no     key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		reject: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject")),
		delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		hide:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "show/hide rejected")),
		save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "retry save")),
		reload: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.add, k.edit, k.reject, k.delete},
		{k.hide, k.save, k.reload, k.quit},
	}
}
