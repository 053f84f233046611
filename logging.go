package fuelcell

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger denotes a generic logging interface, avoiding a dependency of the
// library on any particular logging framework
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// NullLogger denotes a logger that simply discards all messages
type NullLogger struct{}

// Debugf logs a debug-level message (no-op)
func (l *NullLogger) Debugf(format string, args ...interface{}) {}

// Infof logs an info-level message (no-op)
func (l *NullLogger) Infof(format string, args ...interface{}) {}

// Warnf logs a warning-level message (no-op)
func (l *NullLogger) Warnf(format string, args ...interface{}) {}

// Errorf logs an error-level message (no-op)
func (l *NullLogger) Errorf(format string, args ...interface{}) {}

// Fatalf logs a fatal message (no-op)
func (l *NullLogger) Fatalf(format string, args ...interface{}) {}

// DefaultLogger denotes a simple console logger based on zap
type DefaultLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger instantiates a new console logger, optionally enabling
// debug-level output
func NewDefaultLogger(debug bool) *DefaultLogger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &DefaultLogger{
		sugar: logger.Sugar(),
	}
}

// Debugf logs a debug-level message
func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs an info-level message
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a warning-level message
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs an error-level message
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a fatal message and terminates the process
func (l *DefaultLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}
