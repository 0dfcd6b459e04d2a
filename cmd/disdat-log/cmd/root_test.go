package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/disdat/internal/config"
)

// TestResolveConfig checks that flags alone are used without a file and override file values otherwise.
// It does not run in parallel because the command state is package-global.
func TestResolveConfig(t *testing.T) {
	defer func() {
		configPath = ""
	}()

	values := config.Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	values.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--log-format", "template"}))

	// Flags only.
	cfg, err := resolveConfig(flags)
	require.NoError(t, err)
	require.Same(t, flagConfig, cfg)

	// File plus explicit flags.
	configPath = filepath.Join(t.TempDir(), "logging.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("level: debug\noutput: stderr\n"), config.DefaultFilePermissions))

	cfg, err = resolveConfig(flags)
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		Level:  "debug",
		Output: config.OutputStderr,
		Format: config.FormatTemplate,
	}, cfg)

	// Missing file.
	configPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err = resolveConfig(flags)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestCommandsRegistered ensures the check command and the logging flags are wired to the root command.
func TestCommandsRegistered(t *testing.T) {
	found, _, err := rootCmd.Find([]string{"check"})
	require.NoError(t, err)
	require.Same(t, checkCmd, found)

	for _, name := range []string{"config", config.FlagLevel, config.FlagOutput, config.FlagFormat, config.FlagGRPC} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}

	require.NotNil(t, checkCmd.Flags().Lookup("scoped-level"))
}
