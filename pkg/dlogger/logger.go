// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelWarn sets the log level to warn
	LogLevelWarn = "warn"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

const (
	// FormatJSON renders log entries as JSON lines
	FormatJSON = "json"

	// FormatConsole renders log entries for humans
	FormatConsole = "console"
)

// GetLogger returns a JSON zap logger with the specified level
func GetLogger(logLevel string) (*zap.Logger, error) {
	return build(logLevel, zap.NewProductionConfig())
}

// GetConsoleLogger returns a zap logger with the specified level, writing
// human-readable entries to stderr.
func GetConsoleLogger(logLevel string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return build(logLevel, cfg)
}

// GetLoggerWithFormat picks the encoder from a format name (json or console)
func GetLoggerWithFormat(logLevel, format string) (*zap.Logger, error) {
	switch format {
	case FormatConsole:
		return GetConsoleLogger(logLevel)
	case FormatJSON:
		return GetLogger(logLevel)
	default:
		return nil, fmt.Errorf("unknown log format %q, expected %s or %s", format, FormatConsole, FormatJSON)
	}
}

func build(logLevel string, zapConfig zap.Config) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
