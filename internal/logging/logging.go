// Package logging provides the context-carried logger used across layers.
// Use cases and adapters never hold a logger; they take it from the context
// the command layer prepared.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger is the minimal logging surface shared by all layers.
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...any)
	Info(ctx context.Context, msg string, kv ...any)
	Warn(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, kv ...any)
	Errorf(ctx context.Context, format string, args ...any)
	With(kv ...any) Logger
}

type contextKey struct{}

var loggerKey contextKey

// WithLogger stores a logger in context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the context logger, falling back to the process-wide
// human logger so callers never need a nil check.
func FromContext(ctx context.Context) Logger {
	if v, ok := ctx.Value(loggerKey).(Logger); ok && v != nil {
		return v
	}
	return defaultLogger(slog.LevelInfo)
}

// New constructs a Logger of the given format (human|text|json) and level
// writing to stderr.
func New(format string, level slog.Leveler) (Logger, error) {
	return NewWithWriter(format, level, os.Stderr)
}

// NewWithWriter constructs a Logger of the given format, level and writer.
func NewWithWriter(format string, level slog.Leveler, w io.Writer) (Logger, error) {
	switch format {
	case "", "human":
		if w == os.Stderr {
			return defaultLogger(level), nil
		}
		return wrap(slog.NewTextHandler(w, handlerOptions(level))), nil
	case "text":
		return wrap(slog.NewTextHandler(w, handlerOptions(level))), nil
	case "json":
		return wrap(slog.NewJSONHandler(w, handlerOptions(level))), nil
	default:
		return nil, errors.New("unsupported log format: " + format)
	}
}

func handlerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level, AddSource: false}
}

func wrap(h slog.Handler) *slogWrapper {
	return &slogWrapper{logger: slog.New(h)}
}

// slogWrapper adapts slog.Logger to Logger.
type slogWrapper struct{ logger *slog.Logger }

func (l *slogWrapper) Debug(ctx context.Context, msg string, kv ...any) {
	l.logger.DebugContext(ctx, msg, kv...)
}
func (l *slogWrapper) Info(ctx context.Context, msg string, kv ...any) {
	l.logger.InfoContext(ctx, msg, kv...)
}
func (l *slogWrapper) Warn(ctx context.Context, msg string, kv ...any) {
	l.logger.WarnContext(ctx, msg, kv...)
}
func (l *slogWrapper) Error(ctx context.Context, msg string, kv ...any) {
	l.logger.ErrorContext(ctx, msg, kv...)
}
func (l *slogWrapper) Errorf(ctx context.Context, format string, args ...any) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogWrapper) With(kv ...any) Logger { return &slogWrapper{logger: l.logger.With(kv...)} }

var (
	defaultLoggerOnce  sync.Once
	defaultLoggerValue *slogWrapper
	defaultLoggerLevel slog.LevelVar
)

// defaultLevelHandler applies defaultLoggerLevel on top of the default slog
// handler; it stands in for slog.SetLogLoggerLevel, which needs Go 1.22+.
type defaultLevelHandler struct{ h slog.Handler }

func (d defaultLevelHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= defaultLoggerLevel.Level()
}
func (d defaultLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	return d.h.Handle(ctx, r)
}
func (d defaultLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return defaultLevelHandler{h: d.h.WithAttrs(attrs)}
}
func (d defaultLevelHandler) WithGroup(name string) slog.Handler {
	return defaultLevelHandler{h: d.h.WithGroup(name)}
}

// defaultLogger is the stderr human logger, shared process-wide.
func defaultLogger(level slog.Leveler) *slogWrapper {
	defaultLoggerLevel.Set(level.Level())
	defaultLoggerOnce.Do(func() {
		defaultLoggerValue = &slogWrapper{logger: slog.New(defaultLevelHandler{h: slog.Default().Handler()})}
	})
	return defaultLoggerValue
}
