// Package deckhand is a slide-deck presentation controller.
//
// It owns the navigation state of a linear run of slides. It keeps the
// progress bar, page label, indicator dots and prev/next buttons in step
// with it, and it staggers each slide's entrance (cards sliding in, counters
// counting up). Rendering and timekeeping are injected: the core talks to a
// Surface of optional view capabilities and schedules everything on a
// clock.Scheduler, so it runs the same under the SDL host and in tests.
package deckhand

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/internal"
)

// Options configures a presentation.
type Options struct {
	LogPath              string // Full path for log file including filename (creates parent directories)
	LogLevel             string // Application log level: debug, info, warn, error
	Locale               string // BCP 47 tag for counter digit grouping; falls back to the deck's locale, then English
	SymmetricExitMarkers bool   // Mark the outgoing slide on backward transitions too
}

// Init configures logging. Call it once, before building a Presenter, if
// the defaults (JSON to stdout, internal logger at Error) don't suit.
// DECKHAND_LOG_LEVEL overrides Options.LogLevel.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	if constants.IsDevMode() || internal.ParseLevel(level) == slog.LevelDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sets the console writer logs are written to, os.Stdout by
// default. Call before Init() to take effect.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger deckhand's own packages write to.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
