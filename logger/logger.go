// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger carries a [slog] logger and its level in a context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Logger is an [slog.Logger] together with the level its handler obeys.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// NewText returns a Logger at info level that writes human-readable records
// to w using [tint]. Records are colored only when color is true.
func NewText(w io.Writer, color bool) *Logger {
	level := new(slog.LevelVar)
	return &Logger{
		Logger: slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !color,
		})),
		Level: level,
	}
}

var discard = &Logger{
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	Level:  new(slog.LevelVar),
}

type ctxKey struct{}

// Put returns a copy of ctx carrying l.
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Get returns the Logger carried by ctx, or one that discards everything.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return discard
}

// IsDefault reports whether l is the discarding Logger returned by [Get] for
// contexts without one.
func IsDefault(l *Logger) bool { return l == discard }

// LevelVar returns the level of the Logger carried by ctx.
func LevelVar(ctx context.Context) *slog.LevelVar { return Get(ctx).Level }

// Debug logs msg at debug level.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
