package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Task mutations
	New            key.Binding
	Edit           key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding

	// View parameters
	Search        key.Binding
	CyclePriority key.Binding
	CycleSort     key.Binding
	FlipOrder     key.Binding

	// Manual reorder
	MoveUp   key.Binding
	MoveDown key.Binding

	// Panels
	Mentor  key.Binding
	Writing key.Binding
	Review  key.Binding
	Linkage key.Binding
	Compose key.Binding

	// ComposeWriting summons the writing partner from inside the
	// composer, where bare letters belong to the textarea.
	ComposeWriting key.Binding

	// Toast follow-up
	ToastAction key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ClearCompleted: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear completed"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CyclePriority: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "priority filter"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sort column"),
		),
		FlipOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort direction"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		Mentor: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mentor chat"),
		),
		Writing: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "writing partner"),
		),
		Review: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "review posts"),
		),
		Linkage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "linkages"),
		),
		Compose: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "smart post"),
		),
		ComposeWriting: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "writing partner"),
		),
		ToastAction: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toast action"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
