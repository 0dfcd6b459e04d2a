package logger

import (
	"go.uber.org/zap/zaptest/observer"
)

// newObservedHandler returns a handler recording every entry at or above level.
func newObservedHandler(level Level) (*Handler, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return NewCoreHandler(core), logs
}

// newTestLogger returns a logger from a private registry, so tests do not share state.
func newTestLogger(name string) *Logger {
	return NewRegistry().Get(name)
}
