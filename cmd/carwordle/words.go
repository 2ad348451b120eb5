package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/car-wordle/internal/wordle"
)

const wordsPerLine = 8

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the active word list",
	Long: `Prints every word that can be a solution or a guess.

Entries that are not exactly five letters A-Z, and repeated entries,
are skipped when the list is loaded.`,
	RunE: runWords,
}

func runWords(cmd *cobra.Command, _ []string) error {
	words, err := loadWordList()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	source := "built-in car models"
	if appConfig.Words.File != "" {
		source = appConfig.Words.File
	}
	fmt.Fprintf(out, "Word list: %s\n\n", source)

	list := words.Words()
	for i := 0; i < len(list); i += wordsPerLine {
		end := min(i+wordsPerLine, len(list))
		fmt.Fprintf(out, "  %s\n", strings.Join(list[i:end], "  "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d words", words.Len())
	if words.Skipped() > 0 {
		fmt.Fprintf(out, " (%d entries skipped)", words.Skipped())
	}
	fmt.Fprintln(out)
	return nil
}

// loadWordList returns the configured word list, or the built-in one.
func loadWordList() (*wordle.WordList, error) {
	if appConfig.Words.File == "" {
		return wordle.DefaultWordList(), nil
	}
	return wordle.LoadWordList(appConfig.Words.File)
}
