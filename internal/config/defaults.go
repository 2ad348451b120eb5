package config

import (
	_ "embed"
)

//go:embed defaults/carwordle.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme: DefaultTheme(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultTheme returns the default board colours.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Correct: "34",
		Present: "178",
		Absent:  "240",
		Empty:   "236",
		Text:    "15",
		Message: "203",
		Title:   "75",
	}
}
