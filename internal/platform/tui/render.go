package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/car-wordle/internal/core"
	"github.com/vovakirdan/car-wordle/internal/wordle"
)

const (
	title       = "Car Wordle"
	keysPerRow  = 10 // On-screen keyboard columns
	keyWidth    = 3  // Cell width, matches the Theme key style
	tileGap     = " "
	placeholder = "·"
	deleteLabel = "⌫"
	submitLabel = "✔"
)

// RenderAttempt draws one scored row of tiles.
func RenderAttempt(t Theme, a wordle.Attempt) string {
	tiles := make([]string, 0, wordle.WordLength)
	for i := 0; i < wordle.WordLength; i++ {
		tiles = append(tiles, t.Tile[a.Result[i]].Render(string(a.Word[i])))
	}
	return strings.Join(tiles, tileGap)
}

// renderGuessRow draws the row being typed; unfilled cells show a placeholder.
func renderGuessRow(t Theme, guess string) string {
	tiles := make([]string, 0, wordle.WordLength)
	for i := 0; i < wordle.WordLength; i++ {
		if i < len(guess) {
			tiles = append(tiles, t.Typing.Render(string(guess[i])))
		} else {
			tiles = append(tiles, t.Typing.Render(placeholder))
		}
	}
	return strings.Join(tiles, tileGap)
}

// renderEmptyRow draws a row that has not been reached yet.
func renderEmptyRow(t Theme) string {
	tiles := make([]string, 0, wordle.WordLength)
	for i := 0; i < wordle.WordLength; i++ {
		tiles = append(tiles, t.Tile[wordle.Unknown].Render(" "))
	}
	return strings.Join(tiles, tileGap)
}

// RenderBoard draws all MaxAttempts rows: submitted attempts, the current
// guess (while the game runs) and empty rows.
func RenderBoard(t Theme, s wordle.State) string {
	rows := make([]string, 0, wordle.MaxAttempts)
	for i := 0; i < wordle.MaxAttempts; i++ {
		switch {
		case i < len(s.Attempts):
			rows = append(rows, RenderAttempt(t, s.Attempts[i]))
		case i == len(s.Attempts) && !s.GameOver:
			rows = append(rows, renderGuessRow(t, s.Guess))
		default:
			rows = append(rows, renderEmptyRow(t))
		}
	}
	return strings.Join(rows, "\n\n")
}

// keyCell is one clickable cell of the on-screen keyboard.
type keyCell struct {
	label string
	cmd   core.Command
}

// keyboardRows returns the on-screen keyboard: A-Z in rows of keysPerRow,
// then a row with the delete and submit keys.
func keyboardRows() [][]keyCell {
	var rows [][]keyCell
	var row []keyCell
	for r := 'A'; r <= 'Z'; r++ {
		row = append(row, keyCell{label: string(r), cmd: core.AppendCmd(r)})
		if len(row) == keysPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return append(rows, []keyCell{
		{label: deleteLabel, cmd: core.DeleteCmd()},
		{label: submitLabel, cmd: core.SubmitCmd()},
	})
}

// renderKeyRow draws one keyboard row, letters coloured by their best known status.
func renderKeyRow(t Theme, k wordle.Keyboard, row []keyCell) string {
	cells := make([]string, 0, len(row))
	for _, c := range row {
		status := wordle.Unknown
		if c.cmd.Kind == core.CmdAppend {
			status = k.Status(c.cmd.Letter)
		}
		cells = append(cells, t.Key[status].Render(c.label))
	}
	return strings.Join(cells, tileGap)
}

// keyRowHit records where a keyboard row landed on screen.
type keyRowHit struct {
	x, y  int
	cells []keyCell
}

// screen is the laid-out view: every line already padded to its on-screen
// position, plus the keyboard rows for hit testing.
type screen struct {
	lines []string
	keys  []keyRowHit
}

// String joins the screen lines for display.
func (s screen) String() string {
	return strings.Join(s.lines, "\n")
}

// keyAt returns the command of the keyboard cell at column x, row y.
// The gap between cells belongs to no key.
func (s screen) keyAt(x, y int) (core.Command, bool) {
	for _, row := range s.keys {
		if y != row.y || x < row.x {
			continue
		}
		i := (x - row.x) / (keyWidth + len(tileGap))
		offset := (x - row.x) % (keyWidth + len(tileGap))
		if i < len(row.cells) && offset < keyWidth {
			return row.cells[i].cmd, true
		}
	}
	return core.Command{}, false
}

// layoutView lays out the full game screen, centring every line in a
// width x height area. Zero dimensions disable centring on that axis.
func layoutView(t Theme, s wordle.State, footer string, width, height int) screen {
	var lines []string
	keyLine := map[int][]keyCell{}

	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(t.Title.Render(title) + "  " + fmt.Sprintf("%d/%d left", s.AttemptsLeft(), wordle.MaxAttempts))
	add("")
	add(RenderBoard(t, s))
	add("")
	add(t.Message.Render(s.Message))
	add("")
	for _, row := range keyboardRows() {
		keyLine[len(lines)] = row
		add(renderKeyRow(t, s.Keyboard, row))
	}
	add("")
	add(footer)

	top := 0
	if height > len(lines) {
		top = (height - len(lines)) / 2
	}

	out := screen{lines: make([]string, 0, top+len(lines))}
	for i := 0; i < top; i++ {
		out.lines = append(out.lines, "")
	}
	for i, line := range lines {
		left := 0
		if w := lipgloss.Width(line); width > w {
			left = (width - w) / 2
		}
		if row, ok := keyLine[i]; ok {
			out.keys = append(out.keys, keyRowHit{x: left, y: top + i, cells: row})
		}
		out.lines = append(out.lines, strings.Repeat(" ", left)+line)
	}
	return out
}
