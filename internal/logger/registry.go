package logger

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Registry hands out named loggers. Asking twice for the same name returns the same Logger.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		loggers: make(map[string]*Logger),
	}
}

// Get returns the logger registered under name, creating it on first use.
//
// Names are dot-separated paths: "disdat.api" is a child of "disdat", which is
// created along with it. A child without a level of its own inherits the
// effective level of its parent, and its records are also passed to the
// handlers of every ancestor. A new top-level logger has no handlers and an
// effective level of WarnLevel.
func (r *Registry) Get(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.get(name)
}

func (r *Registry) get(name string) *Logger {
	if l, ok := r.loggers[name]; ok {
		return l
	}

	var parent *Logger
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		parent = r.get(name[:i])
	}

	l := newLogger(name, parent)
	r.loggers[name] = l

	return l
}

// Logger is a named logger whose handlers and effective level may change
// while it is in use. The zap handles returned by Zap and Sugar observe
// those changes immediately.
type Logger struct {
	// name is the registry key, also used as the zap logger name.
	name string
	// parent is the logger one dot up, nil for top-level names.
	parent *Logger
	// level is the level set on this logger, levelNotSet until SetLevel is called.
	level zap.AtomicLevel

	// mu protects handlers. The slice is copied on every change, so
	// snapshots taken by writers stay valid without holding the lock.
	mu       sync.RWMutex
	handlers []*Handler

	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// levelNotSet marks a logger that takes its effective level from its ancestors.
const levelNotSet = DebugLevel - 1

func newLogger(name string, parent *Logger) *Logger {
	l := &Logger{
		name:   name,
		parent: parent,
		level:  zap.NewAtomicLevelAt(levelNotSet),
	}

	l.base = zap.New(&handlerCore{logger: l}).Named(name)
	l.sugar = l.base.Sugar()

	return l
}

// Name returns the registry name of the logger.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the effective level of the logger: its own level if one was
// set, otherwise the level of the nearest ancestor that has one, otherwise WarnLevel.
func (l *Logger) Level() Level {
	for c := l; c != nil; c = c.parent {
		if level := c.level.Level(); level != levelNotSet {
			return level
		}
	}

	return WarnLevel
}

// Parent returns the logger one dot up in the name, or nil.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// SetLevel changes the effective level of the logger. The value is not validated.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

// AddHandler attaches h. Attaching the same handler twice makes it receive records twice.
func (l *Logger) AddHandler(h *Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handlers = append(slices.Clip(l.handlers), h)
}

// RemoveHandler detaches the first attachment of h and reports whether h was attached.
func (l *Logger) RemoveHandler(h *Handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.Index(l.handlers, h)
	if i < 0 {
		return false
	}

	l.handlers = slices.Delete(slices.Clone(l.handlers), i, i+1)

	return true
}

// Handlers returns the attached handlers in attachment order.
func (l *Logger) Handlers() []*Handler {
	return slices.Clone(l.snapshot())
}

// Zap returns the zap logger writing through l.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// Sugar returns the sugared zap logger writing through l.
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Sync flushes every attached handler.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

func (l *Logger) snapshot() []*Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.handlers
}

// handlerCore is the zapcore.Core behind every Logger: it filters by the
// logger's effective level and fans records out to the handlers attached, at
// write time, to the logger and its ancestors.
type handlerCore struct {
	logger *Logger
	// fields are added through zap's With and passed to every handler.
	fields []zapcore.Field
}

func (c *handlerCore) Enabled(l zapcore.Level) bool {
	return c.logger.Level().Enabled(l)
}

//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *handlerCore) With(fields []zapcore.Field) zapcore.Core {
	return &handlerCore{
		logger: c.logger,
		fields: append(slices.Clip(c.fields), fields...),
	}
}

//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *handlerCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

//nolint:gocritic // zapcore.Core requires ent to be passed by value.
func (c *handlerCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if len(c.fields) > 0 {
		fields = append(slices.Clip(c.fields), fields...)
	}

	var err error

	// Ancestor levels do not filter, only their handlers do.
	for l := c.logger; l != nil; l = l.parent {
		for _, h := range l.snapshot() {
			if !h.Enabled(ent.Level) {
				continue
			}

			err = multierr.Append(err, h.Write(ent, fields))
		}
	}

	return err
}

func (c *handlerCore) Sync() error {
	var err error

	for _, h := range c.logger.snapshot() {
		err = multierr.Append(err, h.Sync())
	}

	return err
}
