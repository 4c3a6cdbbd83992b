// Package logger provides verbose diagnostic logging for gosismo.
// Logging is silent by default; the --verbose flag switches to a zap
// console logger on stderr that traces the analysis pipeline.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	log     = zap.NewNop()
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	if !v {
		SetLogger(zap.NewNop())
		mu.Lock()
		verbose = false
		mu.Unlock()
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewExample()
	}
	SetLogger(l)

	mu.Lock()
	verbose = true
	mu.Unlock()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLogger replaces the underlying logger. Useful for testing.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	_ = log.Sync()
	log = l
}

// L returns the current logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a pipeline trace message.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs an informational message.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a warning.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = L().Sync()
}
