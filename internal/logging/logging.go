// Package logging builds the zerolog logger used for --verbose diagnostics
// and the optional --log-file.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for --log-file.
const (
	MaxLogSizeMB  = 10
	MaxLogBackups = 3
	MaxLogAgeDays = 28
)

// New returns a debug-level console logger writing to w when verbose is set,
// and a disabled logger otherwise.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(consoleWriter(w)).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// NewJSON returns a debug-level logger emitting JSON lines to w.
func NewJSON(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Open returns the CLI logger. Without a path it behaves like New. With a
// path, JSON lines also go to a size-rotated file; the returned closer
// releases it.
func Open(console io.Writer, verbose bool, path string) (zerolog.Logger, io.Closer) {
	if path == "" {
		return New(console, verbose), nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxLogSizeMB,
		MaxBackups: MaxLogBackups,
		MaxAge:     MaxLogAgeDays,
	}

	var w io.Writer = file
	if verbose {
		w = zerolog.MultiLevelWriter(consoleWriter(console), file)
	}
	return NewJSON(w), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
}

// WithContext attaches the logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
