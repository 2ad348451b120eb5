package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/car-wordle/internal/core"
	"github.com/vovakirdan/car-wordle/internal/platform/tui"
	"github.com/vovakirdan/car-wordle/internal/wordle"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game of Car Wordle.

Controls:
  A-Z        - Type a letter
  Backspace  - Delete the last letter
  Enter      - Submit the guess
  Ctrl+N     - New game (after game over)
  ?          - Show all keys
  Esc/Ctrl+C - Quit
  Mouse      - Click the on-screen letter, ⌫ and ✔ keys

Examples:
  carwordle play
  carwordle play --seed 42
  carwordle play --words ./my-cars.txt --log-file ./carwordle.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	words, err := loadWordList()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(appConfig.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}

	logger.Debug("starting", "words", words.Len(), "skipped", words.Skipped(), "seed", seed)

	engine := wordle.NewEngine(words, rand.NewSource(cfg.Seed))
	return tui.Run(engine, tui.NewTheme(appConfig.Theme), logger, cfg)
}
