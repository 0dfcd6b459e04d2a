package check

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/disdat/internal/config"
	"github.com/oshokin/disdat/internal/logger"
	"github.com/oshokin/disdat/internal/version"
)

// Options controls the check command.
type Options struct {
	// Config is applied permanently to Logger before anything is emitted.
	Config *config.Config
	// ScopedLevel, unless empty or "none", repeats the emission inside a scoped context at that level.
	ScopedLevel string
	// ScopedOutput receives the formatted records of the scoped context. Defaults to standard error.
	ScopedOutput io.Writer
	// Out receives the final summary. Defaults to standard output.
	Out io.Writer
	// Logger is the logger to configure. Defaults to the shared logger.
	Logger *logger.Logger
}

// Run applies the configuration, emits the sample records and prints a summary
// of the logger state once the optional scope has been closed.
func Run(ctx context.Context, opts *Options) error {
	l := opts.Logger
	if l == nil {
		l = logger.Shared()
	}

	scopedLevel := logger.NoOverride

	if opts.ScopedLevel != "" {
		level, ok := logger.ParseLogLevel(opts.ScopedLevel)
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrInvalidLevel, opts.ScopedLevel)
		}

		scopedLevel = level
	}

	if err := config.Apply(opts.Config, l); err != nil {
		return fmt.Errorf("apply logging configuration: %w", err)
	}

	ctx = logger.WithName(logger.ToContext(ctx, l.Sugar()), "check")

	emit(ctx)

	scopedOutput := opts.ScopedOutput
	if scopedOutput == nil {
		scopedOutput = os.Stderr
	}

	err := l.WithContext(scopedLevel, scopedOutput, func(scoped *logger.Logger) error {
		if scopedLevel == logger.NoOverride {
			return nil
		}

		emit(logger.WithKV(ctx, "scoped_level", logger.LevelName(scoped.Level())))

		return nil
	})
	if err != nil {
		return err
	}

	if err := l.Sync(); err != nil {
		return fmt.Errorf("sync logger: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	_, err = fmt.Fprintf(out, "logger %s: effective level %s, %d handler(s)\n",
		l.Name(), logger.LevelName(l.Level()), len(l.Handlers()))
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// emit writes one record per level through the logger carried by ctx.
func emit(ctx context.Context) {
	logger.InfoKV(ctx, "Checking log output", version.KV()...)
	logger.Debug(ctx, "debug record")
	logger.Info(ctx, "info record")
	logger.Warn(ctx, "warning record")
	logger.Error(ctx, "error record")
	logger.Critical(ctx, "critical record")
}
