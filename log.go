package goyax

import "log/slog"

// LogFunc receives leveled log messages with optional key/value pairs.
// A nil LogFunc discards everything.
type LogFunc func(level slog.Level, msg string, args ...any)

// Log calls f if it is not nil.
func (f LogFunc) Log(level slog.Level, msg string, args ...any) {
	if f != nil {
		f(level, msg, args...)
	}
}
