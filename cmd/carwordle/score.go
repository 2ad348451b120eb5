package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/car-wordle/internal/platform/tui"
	"github.com/vovakirdan/car-wordle/internal/wordle"
)

var scoreCmd = &cobra.Command{
	Use:   "score <guess> <solution>",
	Short: "Score a guess against a solution",
	Long: `Shows the tiles a guess would get against a given solution.

Any two five-letter words are accepted; neither has to be in the word list.

Examples:
  carwordle score civic tesla
  carwordle score laser tesla`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	guess, ok := wordle.Normalize(args[0])
	if !ok {
		return fmt.Errorf("guess %q must be %d letters A-Z", args[0], wordle.WordLength)
	}
	solution, ok := wordle.Normalize(args[1])
	if !ok {
		return fmt.Errorf("solution %q must be %d letters A-Z", args[1], wordle.WordLength)
	}

	attempt := wordle.Attempt{
		Word:   guess,
		Result: wordle.Score(guess, solution),
	}

	names := make([]string, 0, wordle.WordLength)
	for _, s := range attempt.Result {
		names = append(names, s.String())
	}

	out := cmd.OutOrStdout()
	theme := tui.NewTheme(appConfig.Theme)
	fmt.Fprintln(out, tui.RenderAttempt(theme, attempt))
	fmt.Fprintln(out, strings.Join(names, " "))
	return nil
}
