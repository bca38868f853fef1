package gpu

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. It is the logger until rasterlab.SetLogger
// installs one.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// slogger returns the logger device, pipeline and frame code write to.
func slogger() *slog.Logger { return current.Load() }

// SetLogger replaces the package logger. rasterlab.SetLogger is the only
// caller and forwards its argument here, so the root logger and the GPU
// logger never diverge. A nil l discards output again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}
