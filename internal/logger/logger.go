package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	ready bool
)

// Options controls the global logger.
//   - Level: debug|info|warn|error (default: info)
//   - Pretty: human readable console output instead of JSON
type Options struct {
	Level  string
	Pretty bool
}

// Init configures the global JSON logger.
func Init(opts Options) {
	initWithWriter(opts, os.Stdout)
}

func initWithWriter(opts Options, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Str("service", "stocktrend").Logger().Level(parseLevel(opts.Level))
	ready = true
}

// L returns the global logger. Falls back to info-level JSON when Init was never called.
func L() *zerolog.Logger {
	if !ready {
		Init(Options{})
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
