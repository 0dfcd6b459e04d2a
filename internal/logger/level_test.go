package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to levels and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":     DebugLevel,
		"info":      InfoLevel,
		"warn":      WarnLevel,
		" WARNING ": WarnLevel,
		"error":     ErrorLevel,
		"critical":  CriticalLevel,
		"dpanic":    CriticalLevel,
		"panic":     zapcore.PanicLevel,
		"fatal":     zapcore.FatalLevel,
		"none":      NoOverride,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got, s)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestLevelName checks the names printed by the formatter.
func TestLevelName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "DEBUG", LevelName(DebugLevel))
	require.Equal(t, "INFO", LevelName(InfoLevel))
	require.Equal(t, "WARNING", LevelName(WarnLevel))
	require.Equal(t, "ERROR", LevelName(ErrorLevel))
	require.Equal(t, "CRITICAL", LevelName(CriticalLevel))
	require.Equal(t, "NONE", LevelName(NoOverride))
}

// TestNoOverrideOutsideValidLevels ensures the sentinel never collides with a real severity.
func TestNoOverrideOutsideValidLevels(t *testing.T) {
	t.Parallel()

	for _, lvl := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel, zapcore.FatalLevel} {
		require.Less(t, lvl, NoOverride)
	}
}
