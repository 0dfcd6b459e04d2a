package logger

import (
	"io"
	"os"
	"sync"
)

// Scope is returned by Context. Close undoes what Context did.
type Scope struct {
	logger *Logger
	// handler is nil for a NoOverride scope.
	handler *Handler
	// prior is the level set on the logger before the scope was entered,
	// levelNotSet if it inherited its level.
	prior Level
	once  sync.Once
}

// Context attaches a handler writing records formatted with NewFormatter to w,
// and sets both the handler threshold and the effective level of l to level.
// The caller must Close the returned scope, usually with defer:
//
//	scope := l.Context(logger.DebugLevel, os.Stderr)
//	defer scope.Close()
//
// With NoOverride nothing is attached and Close does nothing.
// A nil writer means standard output.
//
// Scopes on the same logger are not serialized against each other: when two
// overlap on different goroutines, the level restored by one may clobber the
// level set by the other.
func (l *Logger) Context(level Level, w io.Writer) *Scope {
	s := &Scope{
		logger: l,
	}

	if level == NoOverride {
		return s
	}

	if w == nil {
		w = os.Stdout
	}

	h := NewStreamHandler(w, NewFormatter())
	s.prior = l.level.Level()
	l.AddHandler(h)
	h.SetLevel(level)
	l.SetLevel(level)
	s.handler = h

	return s
}

// WithContext runs fn inside l.Context(level, w). The scope is closed even if
// fn panics, and the error of fn is returned as is.
func (l *Logger) WithContext(level Level, w io.Writer, fn func(*Logger) error) error {
	scope := l.Context(level, w)
	defer scope.Close()

	return fn(scope.Logger())
}

// Enable permanently attaches a handler writing plain records to w and sets
// the effective level of l. Every call adds another handler.
// A nil writer means standard output.
func (l *Logger) Enable(level Level, w io.Writer) {
	l.AddHandler(NewStreamHandler(w, NewPlainEncoder()))
	l.SetLevel(level)
}

// Logger returns the logger the scope was opened on.
func (s *Scope) Logger() *Logger {
	return s.logger
}

// Close detaches the scope handler and restores the prior level, including
// inheritance from the parent logger.
// Only the first call has an effect.
func (s *Scope) Close() {
	if s.handler == nil {
		return
	}

	s.once.Do(func() {
		s.logger.RemoveHandler(s.handler)
		s.logger.level.SetLevel(s.prior)
	})
}

// Context opens a scope on the shared logger. See Logger.Context.
func Context(level Level, w io.Writer) *Scope {
	return Shared().Context(level, w)
}

// WithContext runs fn inside a scope on the shared logger. See Logger.WithContext.
func WithContext(level Level, w io.Writer, fn func(*Logger) error) error {
	return Shared().WithContext(level, w, fn)
}

// Enable configures the shared logger once at start-up. See Logger.Enable.
func Enable(level Level, w io.Writer) {
	Shared().Enable(level, w)
}

// EnableDefault enables the shared logger at InfoLevel on standard output.
func EnableDefault() {
	Enable(InfoLevel, os.Stdout)
}
