package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// loadGameConfig resolves the game configuration from the global flags.
func loadGameConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return config.BreakoutConfig{}, err
	}
	return cfg, nil
}

// newLogger opens the game log. The terminal is owned by the game, so
// without --log-file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	if flagLogFile == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: level}), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
