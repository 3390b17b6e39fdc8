// Package logging configures the slog.Logger shared by rwkb and echoes.
//
// Commands log a run summary at info, per-echo and per-comb-line detail at
// debug, and every evaluated sample at trace. Library packages never log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelTrace sits below Debug and gates per-sample records such as each
// (frequency, R) pair rwkb writes.
const LevelTrace = slog.LevelDebug - 4

// ErrUnknownLevel is returned by [ValidateLevel] for an unrecognised name.
var ErrUnknownLevel = errors.New("logging: unknown level")

var levels = map[string]slog.Level{
	"":      slog.LevelInfo,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"debug": slog.LevelDebug,
	"trace": LevelTrace,
}

// ParseLevel maps a --log-level or logging.level value to a slog.Level.
// Names are case-insensitive. An unknown name falls back to info so the run
// summary is never silenced.
func ParseLevel(s string) slog.Level {
	if lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// ValidateLevel reports whether s names one of info, warn, debug or trace.
// The empty string is accepted and means info.
func ValidateLevel(s string) error {
	if _, ok := levels[strings.ToLower(strings.TrimSpace(s))]; !ok {
		return fmt.Errorf("%w %q (want info, warn, debug or trace)", ErrUnknownLevel, s)
	}
	return nil
}

// NewLogger returns a text logger on w. Commands pass stderr so the CSV
// output and the "Wrote" line stay on their own streams. LevelTrace records
// are labelled TRACE.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
