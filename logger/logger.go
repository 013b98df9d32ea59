package logger

import "sync/atomic"

var current atomic.Value

func init() {
	current.Store(holder{NewGlogLogger()})
}

// holder keeps the stored concrete type stable for atomic.Value.
type holder struct {
	Logger
}

// SetLogger replaces the package logger and returns the previous one.
func SetLogger(l Logger) Logger {
	prev := current.Load().(holder)
	current.Store(holder{l})
	return prev.Logger
}

func get() Logger {
	return current.Load().(holder).Logger
}

// Debug level logging
func Debugf(msg string, args ...any) {
	get().Debugf(msg, args...)
}

// Info level logging
func Infof(msg string, args ...any) {
	get().Infof(msg, args...)
}

// Warn level logging
func Warnf(msg string, args ...any) {
	get().Warnf(msg, args...)
}

// Error level logging
func Errorf(msg string, args ...any) {
	get().Errorf(msg, args...)
}
