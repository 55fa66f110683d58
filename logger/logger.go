// Package logger configures structured logging for the citybike pipeline.
// It wraps log/slog, supporting text or JSON output, and redirects the legacy
// log package so that third-party code logs through the same handler.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// configMutex protects concurrent calls to ConfigureWithOptions, which
// modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	JSON     bool
	MinLevel slog.Level
	Output   io.Writer
}

// ConfigureWithOptions configures logging for the application and returns the
// default logger. It is thread-safe but modifies global state, so concurrent
// calls are serialized.
func ConfigureWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// The old log package has no levels, so pick one for anything that still
	// writes through it.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, slog.LevelInfo)

	return logger
}

// ParseLevel maps a level name (debug, info, warn, error; case-insensitive)
// to its slog.Level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
