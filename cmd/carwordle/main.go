// carwordle is a Wordle-style guessing game for car model names, played in the terminal.
//
// Usage:
//
//	carwordle                       - Play a game (same as "play")
//	carwordle play                  - Play a game
//	carwordle words                 - Show the active word list
//	carwordle score <guess> <word>  - Score a guess against a solution
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible solution
//	--config <path>     - Set config file (default: ~/.carwordle/config.yaml)
//	--words <path>      - Use a custom word list file
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/car-wordle/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagWords    string
	flagLogLevel string
	flagLogFile  string

	// appConfig is resolved once before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carwordle",
	Short: "Car Wordle - guess the car model in six tries",
	Long: `Car Wordle is a terminal word-guessing game: find the hidden five-letter
car model in six attempts.

Available commands:
  play     - Play a game (default)
  words    - Show the active word list
  score    - Score a guess against a solution

Examples:
  carwordle
  carwordle play --seed 42
  carwordle words --words ./my-cars.txt
  carwordle score civic tesla`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to a word list file (one word per line)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoreCmd)
}

// loadConfig resolves .env, the config file, environment and flags, in
// increasing order of precedence.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.Words.File = flagWords
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}
