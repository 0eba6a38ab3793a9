// Package telemetry provides structured logging for the service, backed by
// github.com/rs/zerolog.
package telemetry

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newLogger("info", "json")
)

// Init configures the global logger. Level is one of zerolog's level names;
// format is "json" or "console".
func Init(level, format string) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(level, format)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Info().Fields(fields).Msg(msg)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Error().Fields(fields).Msg(msg)
}

func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if format == "console" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		l = zerolog.New(os.Stdout)
	}
	return l.Level(lvl).With().Timestamp().Logger()
}
