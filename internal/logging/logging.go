// Package logging provides the leveled, structured logger used by the CLI
// and the editor server. Output always goes to a caller-supplied writer
// (stderr in practice) so stdout stays free for command output.
package logging

import (
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Level is a log level name.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Logger is a structured logger taking alternating key/value pairs.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	With(keyvals ...any) Logger
}

// Config controls logger construction.
type Config struct {
	Level  Level
	Output io.Writer
	Prefix string
	JSON   bool
}

type logger struct {
	l *charmlog.Logger
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case DebugLevel:
		return DebugLevel, nil
	case InfoLevel, "":
		return InfoLevel, nil
	case WarnLevel, "warning":
		return WarnLevel, nil
	case ErrorLevel:
		return ErrorLevel, nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

func (lv Level) charm() charmlog.Level {
	switch lv {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// New builds a Logger from cfg. A nil Output discards everything.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           cfg.Level.charm(),
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return &logger{l: l}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return New(Config{Output: io.Discard})
}

func (lg *logger) Debug(msg string, keyvals ...any) { lg.l.Debug(msg, keyvals...) }
func (lg *logger) Info(msg string, keyvals ...any)  { lg.l.Info(msg, keyvals...) }
func (lg *logger) Warn(msg string, keyvals ...any)  { lg.l.Warn(msg, keyvals...) }
func (lg *logger) Error(msg string, keyvals ...any) { lg.l.Error(msg, keyvals...) }

func (lg *logger) With(keyvals ...any) Logger {
	return &logger{l: lg.l.With(keyvals...)}
}
