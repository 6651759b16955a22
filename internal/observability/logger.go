package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger writes JSON log lines tagged with a component name.
type Logger struct {
	logger *slog.Logger
}

// NewLogger logs to stderr so terminal rendering on stdout is not disturbed.
func NewLogger(component string) Logger {
	return NewLoggerTo(os.Stderr, component)
}

// NewLoggerTo logs to w.
func NewLoggerTo(w io.Writer, component string) Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return Logger{logger: slog.New(h).With("component", component)}
}

// With returns a logger carrying extra attributes.
func (l Logger) With(args ...any) Logger {
	return Logger{logger: l.logger.With(args...)}
}

func (l Logger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l Logger) Warnf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
