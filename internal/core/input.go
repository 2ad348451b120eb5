// Package core provides fundamental types shared by the game engine and the
// platform layer. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "fmt"

// CommandKind identifies one discrete player intent, abstracted from physical
// key presses.
type CommandKind int

const (
	CmdNone    CommandKind = iota
	CmdAppend              // A-Z key or on-screen letter - add a letter to the guess
	CmdDelete              // Backspace - remove the last letter
	CmdSubmit              // Enter - submit the current guess
	CmdNewGame             // Ctrl+N - start a new game after game over
	CmdQuit                // Esc, Ctrl+C - exit
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdAppend:
		return "Append"
	case CmdDelete:
		return "Delete"
	case CmdSubmit:
		return "Submit"
	case CmdNewGame:
		return "NewGame"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is the single action decided for one input event.
// Letter is only meaningful for CmdAppend.
type Command struct {
	Kind   CommandKind
	Letter rune
}

// AppendCmd builds an append command for the given letter.
func AppendCmd(r rune) Command {
	return Command{Kind: CmdAppend, Letter: r}
}

// DeleteCmd builds a delete command.
func DeleteCmd() Command {
	return Command{Kind: CmdDelete}
}

// SubmitCmd builds a submit command.
func SubmitCmd() Command {
	return Command{Kind: CmdSubmit}
}

// IsGameInput reports whether the command is handled by the game engine
// rather than by the platform.
func (c Command) IsGameInput() bool {
	switch c.Kind {
	case CmdAppend, CmdDelete, CmdSubmit:
		return true
	}
	return false
}

func (c Command) String() string {
	if c.Kind == CmdAppend {
		return fmt.Sprintf("%s(%c)", c.Kind, c.Letter)
	}
	return c.Kind.String()
}
