/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package log contains the logging subsystem of the rollrestart tooling
package log

import (
	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

const (
	// ErrorLevelString is the string representation of the error level
	ErrorLevelString = "error"

	// WarningLevelString is the string representation of the warning level
	WarningLevelString = "warning"

	// InfoLevelString is the string representation of the info level
	InfoLevelString = "info"

	// DebugLevelString is the string representation of the debug level
	DebugLevelString = "debug"

	// TraceLevelString is the string representation of the trace level
	TraceLevelString = "trace"

	// DefaultLevelString is the string representation of the default level
	DefaultLevelString = InfoLevelString
)

const (
	// ErrorLevel is the error level priority
	ErrorLevel = zapcore.ErrorLevel

	// WarningLevel is the warning level priority
	WarningLevel = zapcore.WarnLevel

	// InfoLevel is the info level priority
	InfoLevel = zapcore.InfoLevel

	// DebugLevel is the debug level priority
	DebugLevel = zapcore.Level(-2)

	// TraceLevel is the trace level priority
	TraceLevel = zapcore.Level(-4)

	// DefaultLevel is the default logging level
	DefaultLevel = InfoLevel
)

// Log is the logger that will be used in this package
var Log = logr.Discard()

// SetLogger will set the backing logr implementation for the tooling
func SetLogger(logger logr.Logger) {
	Log = logger
}
