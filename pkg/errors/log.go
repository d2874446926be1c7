package errors

import (
	"sync"

	"go.uber.org/zap"
)

var (
	fallbackOnce   sync.Once
	fallbackLogger *zap.Logger
)

// LogHandler is an ErrorHandler that logs errors through zap.
type LogHandler struct {
	// Logger receives the entries. When nil, a development logger writing
	// to stderr is used.
	Logger *zap.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	fallbackOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			l = zap.NewNop()
		}
		fallbackLogger = l
	})
	return fallbackLogger
}

// HandleError logs a SpecError.
func (h *LogHandler) HandleError(err *SpecError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Path != "" {
		fields = append(fields, zap.String("path", err.Path))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Warn("ui spec error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if err.Op != "" {
		fields = append(fields, zap.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("ui spec panic", fields...)
}
