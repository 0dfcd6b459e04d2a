package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is a logging severity.
type Level = zapcore.Level

const (
	// DebugLevel logs are verbose and usually disabled.
	DebugLevel = zapcore.DebugLevel
	// InfoLevel is the default level of Enable.
	InfoLevel = zapcore.InfoLevel
	// WarnLevel is the effective level of a logger nobody configured.
	WarnLevel = zapcore.WarnLevel
	// ErrorLevel logs are high-priority.
	ErrorLevel = zapcore.ErrorLevel
	// CriticalLevel maps onto zap's DPanic level.
	// Loggers of this package are never built in development mode, so it only logs.
	CriticalLevel = zapcore.DPanicLevel

	// NoOverride makes Context a pass-through that leaves the logger untouched.
	NoOverride = zapcore.FatalLevel + 1
)

// ParseLogLevel converts string input to a log level.
// "none" yields NoOverride, which only Context accepts.
func ParseLogLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "critical", "dpanic":
		return CriticalLevel, true
	case "panic":
		return zapcore.PanicLevel, true
	case "fatal":
		return zapcore.FatalLevel, true
	case "none":
		return NoOverride, true
	default:
		return InfoLevel, false
	}
}

// LevelName returns the upper-case name used in formatted output.
func LevelName(l Level) string {
	switch l {
	case WarnLevel:
		return "WARNING"
	case CriticalLevel:
		return "CRITICAL"
	case NoOverride:
		return "NONE"
	default:
		return l.CapitalString()
	}
}
