package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/car-wordle/internal/config"
)

// newLogger builds the application logger. The game owns the terminal, so
// without a log file everything is discarded. The returned close function
// is always safe to call.
func newLogger(cfg config.LogConfig) (*log.Logger, func() error, error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", cfg.File, openErr)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "carwordle",
		Level:           level,
	})
	return logger, closeFn, nil
}
