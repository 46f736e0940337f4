package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

type LoggerAdapter struct {
	logger *slog.Logger
}

// NewLoggerAdapter logs JSON at info level in production and text at debug
// level everywhere else.
func NewLoggerAdapter(env string) *LoggerAdapter {
	return NewLoggerAdapterWithWriter(env, os.Stdout)
}

func NewLoggerAdapterWithWriter(env string, w io.Writer) *LoggerAdapter {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &LoggerAdapter{logger: slog.New(handler)}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, attrs(fields)...)
}

// attrs flattens fields in key order so log lines are stable.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
