// Package logger is the process-wide leveled logger, backed by zap.
// Call Init early during startup; the level comes from LOG_LEVEL
// (debug|info|warn|error). Default level is Info.
package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
	level = zapcore.InfoLevel
)

// Init builds the global logger at the given level. Unknown levels fall
// back to info.
func Init(l string) {
	lvl := parseLevel(l)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	base, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	mu.Lock()
	sugar = base.Sugar()
	level = lvl
	mu.Unlock()
}

func parseLevel(l string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// set swaps the backing logger, used by tests to capture output.
func set(l *zap.SugaredLogger, lvl zapcore.Level) {
	mu.Lock()
	sugar = l
	level = lvl
	mu.Unlock()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { current().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { current().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { current().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { current().Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { current().Fatalf(format, v...) }

// Sync flushes buffered entries; call on shutdown.
func Sync() error { return current().Sync() }

// LevelString returns the active level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}
