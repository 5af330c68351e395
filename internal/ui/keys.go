package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasklist/internal/config"
)

// KeyMap implements help.KeyMap.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Add            key.Binding
	Edit           key.Binding
	Delete         key.Binding
	Toggle         key.Binding
	FilterStatus   key.Binding
	FilterPriority key.Binding
	ClearFilter    key.Binding
	Theme          key.Binding
	Quit           key.Binding

	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding

	Yes key.Binding
	No  key.Binding
}

func newKeyMap(k config.Keymap) KeyMap {
	return KeyMap{
		Up:             binding("up", k.Up, "up"),
		Down:           binding("down", k.Down, "down"),
		Add:            binding("add", k.Add),
		Edit:           binding("edit", k.Edit),
		Delete:         binding("delete", k.Delete),
		Toggle:         binding("done", k.Toggle),
		FilterStatus:   binding("status filter", k.FilterStatus),
		FilterPriority: binding("priority filter", k.FilterPriority),
		ClearFilter:    binding("clear filters", k.ClearFilter),
		Theme:          binding("theme", k.Theme),
		Quit:           binding("quit", k.Quit, "ctrl+c"),

		Confirm:   binding("save", k.Confirm),
		Cancel:    binding("cancel", k.Cancel),
		NextField: binding("next field", k.NextField),
		PrevField: binding("prev field", k.PrevField),
		Cycle:     binding("cycle value", "up", "down"),

		Yes: binding("yes", k.Yes, "Y"),
		No:  binding("no", k.No, "N", k.Cancel),
	}
}

// binding builds a key.Binding whose help shows the first key. Duplicate and
// empty keys are dropped.
func binding(desc string, keys ...string) key.Binding {
	seen := map[string]bool{}
	var ks []string
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		ks = append(ks, k)
	}
	label := ""
	if len(ks) > 0 {
		label = ks[0]
		if label == " " {
			label = "space"
		}
	}
	return key.NewBinding(key.WithKeys(ks...), key.WithHelp(label, desc))
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Toggle, k.FilterStatus, k.FilterPriority, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Delete, k.Toggle},
		{k.FilterStatus, k.FilterPriority, k.ClearFilter, k.Theme},
		{k.Quit},
	}
}

func (k KeyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Cycle, k.Confirm, k.Cancel}
}

func (k KeyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}
