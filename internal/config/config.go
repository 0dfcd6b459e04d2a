package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/disdat/internal/logger"
)

// Config holds the start-up logging configuration.
type Config struct {
	// Level is the effective level of the shared logger, e.g. "info" or "warning".
	Level string `yaml:"level"`
	// Output selects the stream records are written to: "stdout" or "stderr".
	Output string `yaml:"output"`
	// Format selects the rendering: "plain" (message only) or "template"
	// ("timestamp - logger_name - level - message").
	Format string `yaml:"format"`
	// GRPC routes gRPC library logs into the "grpc" logger.
	GRPC bool `yaml:"grpc"`
}

const (
	// DefaultConfigFilename is the default filename for logging settings.
	DefaultConfigFilename = "disdat-logging.yaml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// OutputStdout writes records to standard output.
	OutputStdout = "stdout"
	// OutputStderr writes records to standard error.
	OutputStderr = "stderr"

	// FormatPlain renders the message only.
	FormatPlain = "plain"
	// FormatTemplate renders "timestamp - logger_name - level - message".
	FormatTemplate = "template"

	// FlagLevel is the command line flag bound to Level.
	FlagLevel = "log-level"
	// FlagOutput is the command line flag bound to Output.
	FlagOutput = "log-output"
	// FlagFormat is the command line flag bound to Format.
	FlagFormat = "log-format"
	// FlagGRPC is the command line flag bound to GRPC.
	FlagGRPC = "log-grpc"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrInvalidLevel is returned when the level cannot be parsed.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidOutput is returned for an unknown output stream.
	ErrInvalidOutput = errors.New("invalid log output")
	// ErrInvalidFormat is returned for an unknown format.
	ErrInvalidFormat = errors.New("invalid log format")
)

// Default returns the configuration Enable would use without arguments.
func Default() *Config {
	return &Config{
		Level:  "info",
		Output: OutputStdout,
		Format: FormatPlain,
	}
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Level == "" {
		cfg.Level = "info"
	}

	// NoOverride only makes sense for a scoped context.
	if level, ok := logger.ParseLogLevel(cfg.Level); !ok || level == logger.NoOverride {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Level)
	}

	switch cfg.Output {
	case "":
		cfg.Output = OutputStdout
	case OutputStdout, OutputStderr:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
	}

	switch cfg.Format {
	case "":
		cfg.Format = FormatPlain
	case FormatPlain, FormatTemplate:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	return nil
}

// RegisterFlags adds the logging flags to flags, using the current values as defaults.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, FlagLevel, c.Level,
		"log level, one of: debug, info, warning, error, critical")
	flags.StringVar(&c.Output, FlagOutput, c.Output,
		fmt.Sprintf("log output, one of: %s, %s", OutputStdout, OutputStderr))
	flags.StringVar(&c.Format, FlagFormat, c.Format,
		fmt.Sprintf("log format, one of: %s, %s", FormatPlain, FormatTemplate))
	flags.BoolVar(&c.GRPC, FlagGRPC, c.GRPC, "route gRPC library logs to the grpc logger")
}

// OverrideFromFlags copies the values of the logging flags that were set
// explicitly on the command line into c.
func (c *Config) OverrideFromFlags(flags *pflag.FlagSet) error {
	var err error

	if flags.Changed(FlagLevel) {
		if c.Level, err = flags.GetString(FlagLevel); err != nil {
			return fmt.Errorf("read %s flag: %w", FlagLevel, err)
		}
	}

	if flags.Changed(FlagOutput) {
		if c.Output, err = flags.GetString(FlagOutput); err != nil {
			return fmt.Errorf("read %s flag: %w", FlagOutput, err)
		}
	}

	if flags.Changed(FlagFormat) {
		if c.Format, err = flags.GetString(FlagFormat); err != nil {
			return fmt.Errorf("read %s flag: %w", FlagFormat, err)
		}
	}

	if flags.Changed(FlagGRPC) {
		if c.GRPC, err = flags.GetBool(FlagGRPC); err != nil {
			return fmt.Errorf("read %s flag: %w", FlagGRPC, err)
		}
	}

	return nil
}

// Apply validates cfg and permanently configures l with it.
// The plain format is exactly what logger.Enable does.
func Apply(cfg *Config, l *logger.Logger) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	level, _ := logger.ParseLogLevel(cfg.Level)
	w := cfg.Writer()

	switch cfg.Format {
	case FormatTemplate:
		l.AddHandler(logger.NewStreamHandler(w, cfg.Encoder()))
		l.SetLevel(level)
	default:
		l.Enable(level, w)
	}

	if cfg.GRPC {
		logger.RedirectGRPC()
	}

	return nil
}

// Writer returns the stream selected by Output.
func (c *Config) Writer() io.Writer {
	if c.Output == OutputStderr {
		return os.Stderr
	}

	return os.Stdout
}

// Encoder returns the encoder selected by Format.
//
//nolint:ireturn,nolintlint // Returning zapcore.Encoder is intended for zap integration.
func (c *Config) Encoder() zapcore.Encoder {
	if c.Format == FormatTemplate {
		return logger.NewFormatter()
	}

	return logger.NewPlainEncoder()
}
