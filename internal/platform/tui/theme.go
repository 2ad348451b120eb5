package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/car-wordle/internal/config"
	"github.com/vovakirdan/car-wordle/internal/wordle"
)

// Theme holds the lipgloss styles used to draw the board and keyboard.
type Theme struct {
	Tile    map[wordle.LetterStatus]lipgloss.Style
	Typing  lipgloss.Style // Tile in the row being typed
	Key     map[wordle.LetterStatus]lipgloss.Style
	Message lipgloss.Style
	Title   lipgloss.Style
}

// NewTheme builds styles from configured colours.
func NewTheme(c config.ThemeConfig) Theme {
	text := lipgloss.Color(c.Text)

	tile := lipgloss.NewStyle().
		Bold(true).
		Width(3).
		Align(lipgloss.Center).
		Foreground(text)

	keyStyle := lipgloss.NewStyle().
		Width(3).
		Align(lipgloss.Center).
		Foreground(text)

	// Dark text on the present colour, like the yellow tiles of the classic game.
	presentText := lipgloss.Color("0")

	return Theme{
		Tile: map[wordle.LetterStatus]lipgloss.Style{
			wordle.Unknown: tile.Background(lipgloss.Color(c.Empty)),
			wordle.Absent:  tile.Background(lipgloss.Color(c.Absent)),
			wordle.Present: tile.Background(lipgloss.Color(c.Present)).Foreground(presentText),
			wordle.Correct: tile.Background(lipgloss.Color(c.Correct)),
		},
		Typing: tile.Background(lipgloss.Color(c.Empty)).Underline(true),
		Key: map[wordle.LetterStatus]lipgloss.Style{
			wordle.Unknown: keyStyle.Background(lipgloss.Color(c.Empty)),
			wordle.Absent:  keyStyle.Background(lipgloss.Color(c.Absent)),
			wordle.Present: keyStyle.Background(lipgloss.Color(c.Present)).Foreground(presentText),
			wordle.Correct: keyStyle.Background(lipgloss.Color(c.Correct)),
		},
		Message: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Message)),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
	}
}

// DefaultTheme returns the theme built from the default colours.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultTheme())
}
