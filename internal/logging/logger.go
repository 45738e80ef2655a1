// Package logging provides the global logger for sopchat.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance. It defaults to a no-op logger so
// library code may log unconditionally.
var Logger = zap.NewNop()

// Init builds the global logger. Verbose enables debug-level output on
// stderr; otherwise only warnings and errors are emitted, keeping the TUI
// and piped output clean.
func Init(verbose bool) error {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}

	Logger = logger
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
