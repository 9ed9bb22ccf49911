package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatZerolog = "zerolog"
	FormatPretty  = "pretty"
)

// Options controls which backend New builds.
type Options struct {
	// Format is one of text, json (log/slog) or zerolog, pretty (zerolog).
	// Unknown values fall back to text.
	Format string
	// Level is debug, info, warn or error. Defaults to info.
	Level string
	// Output defaults to os.Stderr so log lines do not mix with console output.
	Output io.Writer
}

// New builds a Logger for the given options.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case FormatZerolog, FormatPretty:
		if strings.EqualFold(opts.Format, FormatPretty) {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}
		l := zerolog.New(out).Level(zerologLevel(opts.Level)).With().Timestamp().Logger()
		return NewZerologLogger(l)
	case FormatJSON:
		h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h))
	default:
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h))
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
