package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Init creates and sets the package-level default slog logger on stderr.
// When outputIsStdout is true, uses JSONHandler (avoids mixing with NDJSON
// records on stdout). Otherwise uses TextHandler for human readability.
func Init(outputIsStdout bool, level slog.Level, local bool) {
	slog.SetDefault(New(os.Stderr, outputIsStdout, level, local))
}

// New builds a logger writing to w. Timestamps are rendered in UTC, or in
// the local zone when local is true.
func New(w io.Writer, json bool, level slog.Level, local bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.TimeValue(inZone(a.Value.Time(), local))
			}
			return a
		},
	}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func inZone(t time.Time, local bool) time.Time {
	if local {
		return t.Local()
	}
	return t.UTC()
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
