package logger

import (
	"github.com/philipp01105/synclog/core"
)

// std is the process-wide logger. It is built eagerly during package
// initialization so it exists before any other package's init can log.
var std = mustNew(NewConfig())

func mustNew(cfg *Config) *Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the process-wide logger
func Default() *Logger {
	return std
}

// Package-level convenience functions using the process-wide logger

// Configure changes the process-wide logger's configuration
func Configure(fn func(cfg *Config)) {
	std.Configure(fn)
}

// Write logs a message at level using the process-wide logger
func Write(level core.Level, msg string) {
	std.log(level, msg)
}

// Trace logs a trace message using the process-wide logger
func Trace(msg string) {
	std.log(core.TraceLevel, msg)
}

// Info logs an info message using the process-wide logger
func Info(msg string) {
	std.log(core.InfoLevel, msg)
}

// Warn logs a warning message using the process-wide logger
func Warn(msg string) {
	std.log(core.WarnLevel, msg)
}

// Debug logs a debug message using the process-wide logger
func Debug(msg string) {
	std.log(core.DebugLevel, msg)
}

// Error logs an error message using the process-wide logger
func Error(msg string) {
	std.log(core.ErrorLevel, msg)
}

// Tracef logs a formatted trace message using the process-wide logger
func Tracef(format string, args ...interface{}) {
	std.logf(core.TraceLevel, format, args)
}

// Infof logs a formatted info message using the process-wide logger
func Infof(format string, args ...interface{}) {
	std.logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message using the process-wide logger
func Warnf(format string, args ...interface{}) {
	std.logf(core.WarnLevel, format, args)
}

// Debugf logs a formatted debug message using the process-wide logger
func Debugf(format string, args ...interface{}) {
	std.logf(core.DebugLevel, format, args)
}

// Errorf logs a formatted error message using the process-wide logger
func Errorf(format string, args ...interface{}) {
	std.logf(core.ErrorLevel, format, args)
}

// Assertion reports a failed assertion using the process-wide logger
func Assertion(file string, line int, function, expr, msg string) {
	std.Assertion(file, line, function, expr, msg)
}

// Assert reports a failed assertion at the caller's location using the
// process-wide logger and returns cond
func Assert(cond bool, expr, format string, args ...interface{}) bool {
	return std.assert(cond, expr, format, args)
}
