package logger

import (
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Init installs the process logger. Development mode uses zap's
// human-readable console encoder, anything else emits JSON.
func Init(environment string) {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		l = zap.NewExample()
	}

	current.Store(l)
	l.Info("logger initialized", zap.String("environment", environment))
}

// Replace swaps the underlying logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := current.Swap(l)
	return func() { current.Store(prev) }
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	return current.Load()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}

func Info(msg string, fields map[string]any) {
	L().Info(msg, toFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	L().Warn(msg, toFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	L().Error(msg, toFields(fields)...)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, fields map[string]any) {
	L().Fatal(msg, toFields(fields)...)
}

func toFields(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
