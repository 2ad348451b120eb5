// Package tui provides the Bubble Tea presentation layer for Car Wordle.
// It translates key and mouse events into engine commands and renders the
// game state.
package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/car-wordle/internal/core"
	"github.com/vovakirdan/car-wordle/internal/wordle"
)

// Model is the Bubble Tea model for one terminal session.
type Model struct {
	engine   *wordle.Engine
	state    wordle.State
	keys     KeyMap
	help     help.Model
	theme    Theme
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model and starts the first game.
// A nil logger discards all log output.
func NewModel(engine *wordle.Engine, theme Theme, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		engine: engine,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  theme,
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.state = engine.Initialize()
	m.logger.Info("game started", "game", m.state.ID)
	return m
}

// State returns the current game state.
func (m Model) State() wordle.State {
	return m.state
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey maps one key event to one command and runs it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.dispatch(m.keys.MapKey(msg))
}

// handleMouse turns a left click on an on-screen key into that key's command.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	cmd, ok := m.layout().keyAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	return m.dispatch(cmd)
}

// dispatch runs one command: game input goes to the engine, the rest
// controls the session.
func (m Model) dispatch(cmd core.Command) (tea.Model, tea.Cmd) {
	if cmd.IsGameInput() {
		m.apply(cmd)
		return m, nil
	}

	switch cmd.Kind {
	case core.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case core.CmdNewGame:
		if m.state.GameOver {
			m.state = m.engine.Initialize()
			m.logger.Info("game started", "game", m.state.ID)
		}
	}
	return m, nil
}

// apply runs a game command and logs the transitions worth recording.
func (m *Model) apply(cmd core.Command) {
	prev := m.state
	next, err := m.engine.Apply(prev, cmd)
	m.state = next

	if errors.Is(err, wordle.ErrInvalidWord) {
		m.logger.Debug("invalid word", "game", next.ID, "guess", next.Guess)
		return
	}

	if len(next.Attempts) > len(prev.Attempts) {
		last, _ := next.LastAttempt()
		m.logger.Debug("attempt", "game", next.ID, "guess", last.Word, "n", len(next.Attempts))
	}

	if next.GameOver && !prev.GameOver {
		m.logger.Info("game over",
			"game", next.ID,
			"result", next.Phase(),
			"attempts", len(next.Attempts),
			"solution", next.Solution,
		)
	}
}

// layout positions the current screen, keyboard hit areas included.
func (m Model) layout() screen {
	footer := m.help.View(m.keys)
	if m.state.GameOver && !m.help.ShowAll {
		footer = m.help.ShortHelpView([]key.Binding{m.keys.NewGame, m.keys.Quit})
	}
	return layoutView(m.theme, m.state, footer, m.width, m.height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.layout().String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(engine *wordle.Engine, theme Theme, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(engine, theme, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the on-screen keyboard
	)

	_, err := p.Run()
	return err
}
