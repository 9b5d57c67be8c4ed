// Package logging provides the process-wide logging facility.
//
// A single leveled sink is configured once at startup via Init; components
// retrieve the shared logger with L. Formatting is deferred to log/slog, so
// disabled levels cost only the attribute construction.
//
// The autodiff engine itself never logs — this package exists for the
// surrounding code (CLI, benchmarks, examples).
package logging

import (
	"io"
	"log/slog"
)

var (
	level  slog.LevelVar
	logger = slog.Default()
)

// Init installs a text handler writing to w as the shared logger and sets
// the minimum level. Call once at startup, before any logging.
func Init(w io.Writer, l slog.Level) {
	level.Set(l)
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level}))
	slog.SetDefault(logger)
}

// SetLevel changes the minimum level of the shared logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// L returns the shared logger. Before Init it is the slog default.
func L() *slog.Logger {
	return logger
}

// Discard routes the shared logger to a sink that drops everything.
// Intended for tests.
func Discard() {
	Init(io.Discard, slog.LevelError)
}
