// FILE: default.go
package log

import (
	"sync/atomic"
	"time"
)

// Global instance for package-level functions; nil until Init
var defaultLogger atomic.Pointer[Logger]

// Default package-level functions that delegate to the default logger.
// Calls made before Init are dropped.

// Init builds the default logger from cfg and installs it. The previous logger is
// shut down afterwards; a failure there is reported to the error stream, since the
// new logger is already in place.
func Init(cfg *Config) error {
	l, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	if old := defaultLogger.Swap(l); old != nil {
		if err := old.Shutdown(); err != nil {
			reportError(errorStream, fmtErrorf("previous default logger shutdown failed: %w", err))
		}
	}
	return nil
}

// InitWithDefaults initializes the default logger with built-in defaults and optional overrides
func InitWithDefaults(overrides ...string) error {
	cfg := DefaultConfig()
	if err := cfg.ApplyOverride(overrides...); err != nil {
		return err
	}
	return Init(cfg)
}

// Default returns the default logger, or nil before Init
func Default() *Logger {
	return defaultLogger.Load()
}

// Log writes a message to the default logger
func Log(message string, level Level, category Category, customCategory string) {
	if l := defaultLogger.Load(); l != nil {
		l.Log(message, level, category, customCategory)
	}
}

// LogError writes an error and its causes to the default logger
func LogError(err error, level Level, category Category, customCategory string) {
	if l := defaultLogger.Load(); l != nil {
		l.LogError(err, level, category, customCategory)
	}
}

// LogValue writes an arbitrary value to the default logger
func LogValue(v any, level Level, category Category, customCategory string) {
	if l := defaultLogger.Load(); l != nil {
		l.LogValue(v, level, category, customCategory)
	}
}

// Debug logs a message at debug level
func Debug(message string) {
	if l := defaultLogger.Load(); l != nil {
		l.Debug(message)
	}
}

// Info logs a message at info level
func Info(message string) {
	if l := defaultLogger.Load(); l != nil {
		l.Info(message)
	}
}

// Warn logs a message at warning level
func Warn(message string) {
	if l := defaultLogger.Load(); l != nil {
		l.Warn(message)
	}
}

// Error logs a message at error level
func Error(message string) {
	if l := defaultLogger.Load(); l != nil {
		l.Error(message)
	}
}

// Flush waits for the default logger's pending entries to reach the file
func Flush(timeout time.Duration) error {
	l := defaultLogger.Load()
	if l == nil {
		return fmtErrorf("default logger not initialized")
	}
	return l.Flush(timeout)
}

// Shutdown closes the default logger and clears it
func Shutdown(timeout ...time.Duration) error {
	l := defaultLogger.Swap(nil)
	if l == nil {
		return nil
	}
	return l.Shutdown(timeout...)
}
