package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/disdat/internal/config"
	"github.com/oshokin/disdat/internal/service/check"
	"github.com/oshokin/disdat/internal/version"
)

var (
	// configPath to the logging configuration YAML file. Empty means flags only.
	configPath string
	// scopedLevel is the level of the optional scoped emission.
	scopedLevel string
	// flagConfig holds the values of the logging flags.
	flagConfig = config.Default()

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:   "disdat-log",
		Short: "Inspect the package-wide logging of disdat.",
		Long: `Inspect the package-wide logging of disdat.

Logging settings come from the YAML file given with --config; --log-* flags
override the values read from the file.`,
		SilenceUsage: true,
	}

	// checkCmd emits sample records through the configured shared logger.
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Apply the logging configuration and emit one record per level.",
		Long: `Applies the logging configuration to the shared "disdat" logger and emits one
record per level, so you can see which records get through.

With --scoped-level the records are emitted a second time inside a scoped
context that writes formatted records to stderr; afterwards the logger is back
to the configured state, which the final summary line shows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			cfg, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}

			return check.Run(ctx, &check.Options{
				Config:       cfg,
				ScopedLevel:  scopedLevel,
				ScopedOutput: cmd.ErrOrStderr(),
				Out:          cmd.OutOrStdout(),
			})
		},
	}
)

// Execute runs the disdat-log CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig returns the file configuration with explicit flags applied on
// top, or the flag values alone when no file was given.
func resolveConfig(flags *pflag.FlagSet) (*config.Config, error) {
	if configPath == "" {
		return flagConfig, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if err := cfg.OverrideFromFlags(flags); err != nil {
		return nil, err
	}

	return cfg, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to logging configuration file")
	flagConfig.RegisterFlags(rootCmd.PersistentFlags())

	checkCmd.Flags().StringVarP(&scopedLevel, "scoped-level", "s", "none",
		"also emit inside a scoped context at this level (none disables it)")

	rootCmd.AddCommand(checkCmd)
}
