package gxgl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record and reports every level disabled.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func newNopLogger() *slog.Logger { return slog.New(discardHandler{}) }

// defaultLogger is handed to every NewContext call that has no WithLogger
// option.
var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(newNopLogger())
}

// SetLogger replaces the logger that new contexts start with. Contexts
// that already exist keep theirs. A nil logger silences new contexts,
// which is also the state before the first call.
//
// Records at debug level cover uploads, conversions, draws and ignored
// calls. Video setup logs at info level. Calls that are accepted but do
// nothing on the hardware log a warning.
//
//	gxgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	defaultLogger.Store(l)
}

// Logger reports the logger new contexts start with.
func Logger() *slog.Logger {
	return defaultLogger.Load()
}
