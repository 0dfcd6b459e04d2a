package logger

import (
	"errors"
	"io"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handler is a destination attached to a Logger.
// It wraps a zapcore.Core with a threshold of its own, so a record must pass
// both the logger's effective level and the handler's level to be written.
type Handler struct {
	zapcore.Core

	// level is the minimum log level for this handler to process messages.
	level zap.AtomicLevel
}

// NewStreamHandler creates a handler that encodes records with enc and writes them to w.
// A nil writer means standard output, a nil encoder means NewPlainEncoder.
// Writes are serialized, so w does not need to be safe for concurrent use.
func NewStreamHandler(w io.Writer, enc zapcore.Encoder) *Handler {
	if w == nil {
		w = os.Stdout
	}

	if w == os.Stdout || w == os.Stderr {
		w = stdStream{File: w.(*os.File)}
	}

	if enc == nil {
		enc = NewPlainEncoder()
	}

	level := zap.NewAtomicLevelAt(DebugLevel)

	return &Handler{
		Core:  zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level),
		level: level,
	}
}

// NewCoreHandler adapts an arbitrary zapcore.Core into a handler.
// The core's own level still applies on top of the handler threshold.
func NewCoreHandler(core zapcore.Core) *Handler {
	return &Handler{
		Core:  core,
		level: zap.NewAtomicLevelAt(DebugLevel),
	}
}

// NewNullHandler returns a handler that discards every record.
func NewNullHandler() *Handler {
	return NewCoreHandler(zapcore.NewNopCore())
}

// Level returns the handler threshold.
func (h *Handler) Level() Level {
	return h.level.Level()
}

// SetLevel changes the handler threshold.
func (h *Handler) SetLevel(l Level) {
	h.level.SetLevel(l)
}

// Enabled returns true if both the handler threshold and the wrapped core accept l.
func (h *Handler) Enabled(l zapcore.Level) bool {
	return h.level.Enabled(l) && h.Core.Enabled(l)
}

// Check adds the handler to a checked entry if the log entry level is enabled.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (h *Handler) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if h.Enabled(ent.Level) {
		return ce.AddCore(ent, h)
	}

	return ce
}

// With returns a handler carrying the added fields that shares the threshold of h.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (h *Handler) With(fields []zapcore.Field) zapcore.Core {
	return &Handler{
		Core:  h.Core.With(fields),
		level: h.level,
	}
}

// stdStream is standard output or standard error. Syncing them fails with
// EINVAL or ENOTTY when they are a terminal or a pipe, which is not an error
// worth reporting.
type stdStream struct {
	*os.File
}

// Sync flushes the stream, ignoring the errors of streams that cannot be synced.
func (s stdStream) Sync() error {
	err := s.File.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return err
}
