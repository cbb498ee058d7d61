// Package logging builds the zap loggers used by the wordgraph CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the given level ("debug", "info", "warn", "error").
// development selects the console encoder with caller info; otherwise JSON
// production output is used. Logs go to stderr so command output on stdout
// stays clean.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger, nil
}

// Must is New that falls back to a no-op logger on error.
func Must(level string, development bool) *zap.Logger {
	logger, err := New(level, development)
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
