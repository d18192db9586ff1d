package objshape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so that
// message formatting is skipped entirely when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the package.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels in use:
//   - [slog.LevelDebug]: canvas allocation, mesh and raster statistics
//   - [slog.LevelWarn]: degenerate input that produced empty or partial output
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
