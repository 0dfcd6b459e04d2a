package check

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/disdat/internal/config"
	"github.com/oshokin/disdat/internal/logger"
)

// TestRun_WithScope applies a warning configuration, emits inside a debug scope and checks the restored state.
func TestRun_WithScope(t *testing.T) {
	t.Parallel()

	l := logger.NewRegistry().Get(logger.Name)

	core, logs := observer.New(logger.DebugLevel)
	l.AddHandler(logger.NewCoreHandler(core))

	var scoped, out bytes.Buffer

	err := Run(context.Background(), &Options{
		Config:       &config.Config{Level: "warning", Output: config.OutputStderr},
		ScopedLevel:  "debug",
		ScopedOutput: &scoped,
		Out:          &out,
		Logger:       l,
	})
	require.NoError(t, err)

	// Three records pass the warning level, six pass the debug scope.
	require.Equal(t, 9, logs.Len())
	require.Equal(t, "disdat.check", logs.All()[0].LoggerName)
	require.Equal(t, 6, logs.FilterField(zap.String("scoped_level", "DEBUG")).Len())

	lines := strings.Split(strings.TrimSpace(scoped.String()), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[1], " - disdat.check - DEBUG - debug record")

	require.Equal(t, "logger disdat: effective level WARNING, 2 handler(s)\n", out.String())
}

// TestRun_WithoutScope ensures nothing is written to the scoped output when no scope level is given.
func TestRun_WithoutScope(t *testing.T) {
	t.Parallel()

	l := logger.NewRegistry().Get(logger.Name)

	var scoped, out bytes.Buffer

	err := Run(context.Background(), &Options{
		Config:       &config.Config{Level: "error", Output: config.OutputStderr},
		ScopedLevel:  "none",
		ScopedOutput: &scoped,
		Out:          &out,
		Logger:       l,
	})
	require.NoError(t, err)
	require.Empty(t, scoped.String())
	require.Equal(t, "logger disdat: effective level ERROR, 1 handler(s)\n", out.String())
}

// TestRun_InvalidInput asserts that bad levels are rejected before the logger is touched.
func TestRun_InvalidInput(t *testing.T) {
	t.Parallel()

	l := logger.NewRegistry().Get(logger.Name)

	err := Run(context.Background(), &Options{
		Config:      config.Default(),
		ScopedLevel: "loud",
		Logger:      l,
	})
	require.ErrorIs(t, err, config.ErrInvalidLevel)
	require.Empty(t, l.Handlers())

	err = Run(context.Background(), &Options{
		Config: &config.Config{Format: "xml"},
		Logger: l,
	})
	require.ErrorIs(t, err, config.ErrInvalidFormat)
	require.Empty(t, l.Handlers())
}
