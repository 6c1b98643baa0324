package canvas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record and reports every level disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is swapped by SetLogger while tile workers may be logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l for the canvas package and every sub-package. The
// default logger, restored by passing nil, is silent.
//
// Debug records:
//   - canvas: a pooled scratch canvas was reused
//   - resample: a non-ARGB source fell back to nearest
//   - shadow: a visible shadow collapsed to empty geometry
//   - border: widths or radii were clamped to fit the box
//   - glyph: a font was registered
//   - scene: an image was decoded, a render finished
//
// Warn records a tile callback that failed inside TilePainter.
//
//	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger. It is safe for
// concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
