package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/car-wordle/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Letter keys are not listed here: any A-Z key appends to the guess.
type KeyMap struct {
	Submit  key.Binding
	Delete  key.Binding
	NewGame key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.NewGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete},
		{k.NewGame, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates one key message into exactly one command.
// Enter only submits and never appends; keys that are neither a letter nor
// a binding map to CmdNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Command{Kind: core.CmdQuit}
	case key.Matches(msg, k.Submit):
		return core.SubmitCmd()
	case key.Matches(msg, k.Delete):
		return core.DeleteCmd()
	case key.Matches(msg, k.NewGame):
		return core.Command{Kind: core.CmdNewGame}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		r := msg.Runes[0]
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return core.AppendCmd(r)
		}
	}
	return core.Command{}
}
