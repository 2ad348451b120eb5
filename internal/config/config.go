// Package config provides YAML-based configuration loading for Car Wordle,
// with environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "CARWORDLE_"

// Config contains all configuration for the game.
type Config struct {
	Words WordsConfig `yaml:"words"`
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// WordsConfig selects the word list.
type WordsConfig struct {
	File string `yaml:"file" env:"WORDS_FILE"` // Empty = built-in car models
}

// ThemeConfig defines terminal colours (ANSI 256 codes or hex) for the board.
type ThemeConfig struct {
	Correct string `yaml:"correct"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
	Empty   string `yaml:"empty"`
	Text    string `yaml:"text"`
	Message string `yaml:"message"`
	Title   string `yaml:"title"`
}

// LogConfig defines where and how much to log.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" env:"LOG_FILE"`   // Empty = discard
}

// ParseLevel returns the configured log level. Empty means info.
func (c LogConfig) ParseLevel() (log.Level, error) {
	if c.Level == "" {
		return log.InfoLevel, nil
	}
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
		return log.ParseLevel(strings.ToLower(c.Level))
	}
	return log.InfoLevel, fmt.Errorf("config: unknown log level %q", c.Level)
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}
