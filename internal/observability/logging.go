// Package observability wires structured logging for the CLI and the local
// serve mode.
//
// CLILogger writes human-oriented console output to stderr so command
// results on stdout stay pipeable. ServerLogger writes JSON for serve mode.
package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// CLILogger is the logger for command execution paths.
	CLILogger = newConsoleLogger(zapcore.InfoLevel)

	// ServerLogger is the logger for the local dashboard server.
	ServerLogger = newJSONLogger(zapcore.InfoLevel)
)

// SetVerbose switches both loggers to debug level.
func SetVerbose(verbose bool) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	CLILogger = newConsoleLogger(level)
	ServerLogger = newJSONLogger(level)
}

// Sync flushes buffered log entries. Called on process exit.
func Sync() {
	_ = CLILogger.Sync()
	_ = ServerLogger.Sync()
}

func newConsoleLogger(level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

func newJSONLogger(level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}
