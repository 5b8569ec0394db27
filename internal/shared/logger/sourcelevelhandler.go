package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceLevelHandler struct {
	handler     slog.Handler
	sourceLevel map[slog.Level]bool
}

// NewSourceLevelHandler wraps a handler so that source location is only
// attached to records of the given levels. The wrapped handler must be
// configured with AddSource: false; this wrapper resolves the caller frame
// itself for the levels that want it.
func NewSourceLevelHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	levelMap := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		levelMap[level] = true
	}
	return &sourceLevelHandler{
		handler:     handler,
		sourceLevel: levelMap,
	}
}

func (h *sourceLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevel[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frames := runtime.CallersFrames(pcs[:])
		frame, _ := frames.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceLevelHandler{
		handler:     h.handler.WithAttrs(attrs),
		sourceLevel: h.sourceLevel,
	}
}

func (h *sourceLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceLevelHandler{
		handler:     h.handler.WithGroup(name),
		sourceLevel: h.sourceLevel,
	}
}

func (h *sourceLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
