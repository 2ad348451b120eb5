package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/car-wordle/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"lowercase letter", runeKey('t'), core.AppendCmd('t')},
		{"uppercase letter", runeKey('T'), core.AppendCmd('T')},
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, core.SubmitCmd()},
		{"backspace deletes", tea.KeyMsg{Type: tea.KeyBackspace}, core.DeleteCmd()},
		{"ctrl+n new game", tea.KeyMsg{Type: tea.KeyCtrlN}, core.Command{Kind: core.CmdNewGame}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.Command{Kind: core.CmdQuit}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Command{Kind: core.CmdQuit}},
		{"digit ignored", runeKey('1'), core.Command{}},
		{"accented letter ignored", runeKey('é'), core.Command{}},
		{"space ignored", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Command{}},
		{"alt+letter ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, core.Command{}},
		{"pasted text ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, core.Command{}},
		{"arrow ignored", tea.KeyMsg{Type: tea.KeyLeft}, core.Command{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.MapKey(tc.msg)
			if got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestEnterNeverAppends(t *testing.T) {
	km := DefaultKeyMap()
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyEnter}); got.Kind == core.CmdAppend {
		t.Errorf("MapKey(enter) = %v, expected submit only", got)
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, expected 5", total)
	}
}
