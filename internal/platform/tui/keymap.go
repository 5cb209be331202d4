package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmvolkov/rollcube/internal/core"
)

// KeyMap defines the keybindings for playing a puzzle. It implements
// help.KeyMap so the help bubble can render it.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	New   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "roll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "roll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "roll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "roll right"),
		),
		New: key.NewBinding(
			key.WithKeys("n", "r"),
			key.WithHelp("n", "new puzzle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.New, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.New, k.Help, k.Quit},
	}
}

// MapKey translates a key message to a game command.
// Returns nil when the key is not bound to a command.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Up):
		return core.Roll{Dir: core.DirUp}
	case key.Matches(msg, k.Down):
		return core.Roll{Dir: core.DirDown}
	case key.Matches(msg, k.Left):
		return core.Roll{Dir: core.DirLeft}
	case key.Matches(msg, k.Right):
		return core.Roll{Dir: core.DirRight}
	case key.Matches(msg, k.New):
		return core.NewPuzzle{}
	case key.Matches(msg, k.Quit):
		return core.Quit{}
	}
	return nil
}
