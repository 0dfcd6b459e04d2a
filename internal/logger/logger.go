package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	// Name is the name of the shared logger, the name of the owning package.
	Name = "disdat"

	// LuigiLoggerName is the logger used by the luigi workflow integration.
	LuigiLoggerName = "luigi-interface"
	// Boto3LoggerName is the logger used by the boto3 storage integration.
	Boto3LoggerName = "boto3"
	// BotocoreLoggerName is the logger used by the botocore storage integration.
	BotocoreLoggerName = "botocore"
	// GRPCLoggerName receives gRPC library output once RedirectGRPC was called.
	GRPCLoggerName = "grpc"
)

var (
	// registry holds every named logger of the process.
	//nolint:gochecknoglobals // Loggers are looked up by name all over the project.
	registry = NewRegistry()

	//nolint:gochecknoglobals // Guards the one-time setup of the shared logger.
	sharedOnce sync.Once
)

// ctxKey is the context key under which a sugared logger is stored.
type ctxKey struct{}

// Shared returns the package-wide logger. It is created on first use with a
// NullHandler attached, so records are discarded until output is configured
// with Enable or Context.
func Shared() *Logger {
	l := registry.Get(Name)

	sharedOnce.Do(func() {
		l.AddHandler(NewNullHandler())
	})

	return l
}

// Get returns the process-wide logger registered under name.
func Get(name string) *Logger {
	if name == Name {
		return Shared()
	}

	return registry.Get(name)
}

// Luigi returns the external luigi logger.
func Luigi() *Logger {
	return Get(LuigiLoggerName)
}

// Boto3 returns the external boto3 logger.
func Boto3() *Logger {
	return Get(Boto3LoggerName)
}

// Botocore returns the external botocore logger.
func Botocore() *Logger {
	return Get(BotocoreLoggerName)
}

// GRPC returns the logger gRPC output is routed to.
func GRPC() *Logger {
	return Get(GRPCLoggerName)
}

// EffectiveLevel returns the effective level of the shared logger.
func EffectiveLevel() Level {
	return Shared().Level()
}

// SetLevel sets the effective level of the shared logger.
func SetLevel(level Level) {
	l := Shared()

	//nolint: errcheck // No need to check the error here.
	defer l.Sync()

	l.SetLevel(level)
}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or the shared logger if there is none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && l != nil {
		return l
	}

	return Shared().Sugar()
}

// WithName returns a copy of ctx whose logger gets name appended to its name.
func WithName(ctx context.Context, name string) context.Context {
	return ToContext(ctx, FromContext(ctx).Named(name))
}

// WithKV returns a copy of ctx whose logger adds the key-value pairs to every record.
func WithKV(ctx context.Context, kvs ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(kvs...))
}

// WithFields returns a copy of ctx whose logger adds the fields to every record.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ToContext(ctx, FromContext(ctx).Desugar().With(fields...).Sugar())
}

// Debug writes a debug level message using the logger from the context.
func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Debug(args...)
}

// Debugf writes a formatted debug level message using the logger from the context.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}

// DebugKV writes a message and key-value pairs
// at the debug level using the logger from the context.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Debugw(message, kvs...)
}

// Info writes an information level message using the logger from the context.
func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Info(args...)
}

// Infof writes a formatted information level message using the logger from the context.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

// InfoKV writes a message and key-value pairs
// at the information level using the logger from the context.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Infow(message, kvs...)
}

// Warn writes a warning level message using the logger from the context.
func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Warn(args...)
}

// Warnf writes a formatted warning level message using the logger from the context.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}

// WarnKV writes a message and key-value pairs
// at the warning level using the logger from the context.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Warnw(message, kvs...)
}

// Error writes an error level message using the logger from the context.
func Error(ctx context.Context, args ...any) {
	FromContext(ctx).Error(args...)
}

// Errorf writes a formatted error level message using the logger from the context.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorKV writes a message and key-value pairs
// at the error level using the logger from the context.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Errorw(message, kvs...)
}

// Critical writes a critical level message using the logger from the context.
func Critical(ctx context.Context, args ...any) {
	FromContext(ctx).DPanic(args...)
}

// Criticalf writes a formatted critical level message using the logger from the context.
func Criticalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).DPanicf(format, args...)
}

// CriticalKV writes a message and key-value pairs
// at the critical level using the logger from the context.
func CriticalKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).DPanicw(message, kvs...)
}

// Fatal writes a fatal error level message
// using the logger from the context and then calls os.Exit(1).
func Fatal(ctx context.Context, args ...any) {
	FromContext(ctx).Fatal(args...)
}

// Fatalf writes a formatted fatal error level message
// using the logger from the context and then calls os.Exit(1).
func Fatalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Fatalf(format, args...)
}

// FatalKV writes a message and key-value pairs
// at the fatal error level using the logger from the context
// and then calls os.Exit(1).
func FatalKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Fatalw(message, kvs...)
}

// Panic writes a panic level message
// using the logger from the context and then calls panic().
func Panic(ctx context.Context, args ...any) {
	FromContext(ctx).Panic(args...)
}

// Panicf writes a formatted panic level message
// using the logger from the context and then calls panic().
func Panicf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Panicf(format, args...)
}

// PanicKV writes a message and key-value pairs
// at the panic level using the logger from the context
// and then calls panic().
func PanicKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Panicw(message, kvs...)
}
