// Package console writes to the browser console and adapts it to logr.
package console

import "github.com/go-logr/logr"

// Log writes args to the console at log level.
func Log(args ...any) {
	emit(LevelLog, args...)
}

// Warn writes args to the console at warning level.
func Warn(args ...any) {
	emit(LevelWarn, args...)
}

// Error writes args to the console at error level.
func Error(args ...any) {
	emit(LevelError, args...)
}

// Logger returns a logger writing V(0) entries to the console. Outside
// js/wasm it discards everything.
func Logger() logr.Logger {
	return NewLogger(func(level Level, line string) {
		emit(level, line)
	}, 0)
}
