// Package logging builds the zap logger shared by the CLI and its packages.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the logger configuration.
type Options struct {
	// Level is a zap level name such as "info" or "debug".
	Level string
	// Verbose forces the debug level regardless of Level.
	Verbose bool
	// Development switches to the human-readable console encoder.
	Development bool
}

// New builds a logger tagged with a fresh run id so that the lines of one
// invocation can be grouped.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}

		level = parsed
	}

	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.With(zap.String("run_id", RunID())), nil
}

// RunID returns a short random identifier.
func RunID() string {
	return uuid.New().String()[:8]
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}
