/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package log

import (
	"fmt"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Flags contains the set of values necessary for configuring the
// logging subsystem of the tooling
type Flags struct {
	logLevel       string
	logDestination string
}

// AddFlags binds the logging configuration flags to a given flagset
func (l *Flags) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&l.logLevel, "log-level", DefaultLevelString,
		"the desired log level, one of error, warning, info, debug and trace")
	flags.StringVar(&l.logDestination, "log-destination", "",
		"where the log stream will be written (defaults to standard error)")
}

// ConfigureLogging configures the logging honoring the flags
// passed from the user
func (l *Flags) ConfigureLogging() error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(getLogLevel(l.logLevel))
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(getLogLevelString(level))
	}
	if l.logDestination != "" {
		config.OutputPaths = []string{l.logDestination}
		config.ErrorOutputPaths = []string{l.logDestination}
	}

	zapLogger, err := config.Build()
	if err != nil {
		return fmt.Errorf("while building the logger: %w", err)
	}

	logger := zapr.NewLogger(zapLogger)
	switch l.logLevel {
	case ErrorLevelString,
		WarningLevelString,
		InfoLevelString,
		DebugLevelString,
		TraceLevelString:
		break
	default:
		logger.Info("Invalid log level, defaulting",
			"level", l.logLevel, "default", DefaultLevelString)
	}

	SetLogger(logger)
	return nil
}

func getLogLevel(l string) zapcore.Level {
	switch l {
	case ErrorLevelString:
		return ErrorLevel
	case WarningLevelString:
		return WarningLevel
	case InfoLevelString:
		return InfoLevel
	case DebugLevelString:
		return DebugLevel
	case TraceLevelString:
		return TraceLevel
	default:
		return DefaultLevel
	}
}

func getLogLevelString(l zapcore.Level) string {
	switch l {
	case ErrorLevel:
		return ErrorLevelString
	case WarningLevel:
		return WarningLevelString
	case InfoLevel:
		return InfoLevelString
	case DebugLevel:
		return DebugLevelString
	case TraceLevel:
		return TraceLevelString
	default:
		return DefaultLevelString
	}
}
