package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestStreamHandler_UsableAsZapCore verifies the handler threshold when the handler backs a zap logger directly.
func TestStreamHandler_UsableAsZapCore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h := NewStreamHandler(&buf, NewPlainEncoder())
	require.Equal(t, DebugLevel, h.Level())

	h.SetLevel(WarnLevel)

	l := zap.New(h)
	l.Info("dropped")
	l.Warn("kept")
	l.With(zap.String("key", "value")).Error("with fields")
	l.With(zap.String("key", "value")).Info("dropped too")

	require.Equal(t, "kept\nwith fields {\"key\": \"value\"}\n", buf.String())
}

// TestNullHandler_DiscardsEverything asserts that the null handler accepts no level at all.
func TestNullHandler_DiscardsEverything(t *testing.T) {
	t.Parallel()

	h := NewNullHandler()
	for _, lvl := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel} {
		require.False(t, h.Enabled(lvl))
	}
}

// TestCoreHandler_RespectsBothThresholds checks that the wrapped core level and the handler level both apply.
func TestCoreHandler_RespectsBothThresholds(t *testing.T) {
	t.Parallel()

	h, _ := newObservedHandler(InfoLevel)
	require.False(t, h.Enabled(DebugLevel))
	require.True(t, h.Enabled(InfoLevel))

	h.SetLevel(ErrorLevel)
	require.False(t, h.Enabled(WarnLevel))
	require.True(t, h.Enabled(ErrorLevel))
}

// TestStreamHandler_StdStreamsSync verifies that syncing standard output and error reports no error.
func TestStreamHandler_StdStreamsSync(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewStreamHandler(os.Stdout, nil).Sync())
	require.NoError(t, NewStreamHandler(os.Stderr, nil).Sync())
	require.NoError(t, NewStreamHandler(nil, nil).Sync())
}
