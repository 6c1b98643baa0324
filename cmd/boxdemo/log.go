package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// logOptions controls logger setup.
type logOptions struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	File   string // optional rotated JSON log file
}

// newLogger builds a logger writing to stderr and, when opts.File is set,
// to a rotating file. The returned closer flushes the file.
func newLogger(stderr io.Writer, opts logOptions) (*slog.Logger, io.Closer) {
	ho := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(stderr, ho)
	} else {
		console = slog.NewTextHandler(stderr, ho)
	}
	if strings.TrimSpace(opts.File) == "" {
		return slog.New(console), nopCloser{}
	}

	w := &lj.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	file := slog.NewJSONHandler(w, ho)
	return slog.New(multi{console, file}), w
}

// parseLevel converts a level name to a slog.Level. Unknown names are
// info.
func parseLevel(s string) slog.Level {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multi fans out log records to several handlers.
type multi []slog.Handler

func (m multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multi) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (m multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multi, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multi) WithGroup(name string) slog.Handler {
	out := make(multi, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}

var _ slog.Handler = multi(nil)

// stderr is swapped in tests.
var stderr io.Writer = os.Stderr
