package logger

import (
	"log/slog"
	"os"
)

// Logger wraps slog with the service name attached to every record.
type Logger struct {
	service string
	handler *slog.Logger
}

func New(service string) *Logger {
	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return &Logger{service: service, handler: handler}
}

func (l *Logger) Info(action, message string, attrs ...any) {
	l.handler.Info(message, l.with(action, attrs)...)
}

func (l *Logger) Debug(action, message string, attrs ...any) {
	l.handler.Debug(message, l.with(action, attrs)...)
}

func (l *Logger) Warn(action, message string, attrs ...any) {
	l.handler.Warn(message, l.with(action, attrs)...)
}

func (l *Logger) Error(action, message string, err error, attrs ...any) {
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.handler.Error(message, l.with(action, attrs)...)
}

func (l *Logger) with(action string, attrs []any) []any {
	return append([]any{
		slog.String("service", l.service),
		slog.String("action", action),
	}, attrs...)
}
