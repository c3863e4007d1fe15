package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Config holds the resolved command-line options for one run.
type Config struct {
	// NoColor disables all ANSI styling in the output.
	NoColor bool

	// Compact drops gauge rows and blank separator lines.
	Compact bool

	// NoBanner suppresses the ASCII-art banner column.
	NoBanner bool

	// Font is the figlet font used for the banner.
	Font string

	// LogLevel controls diagnostic logging on stderr.
	LogLevel string

	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// Parse builds the flag set, parses args (excluding the program name) and
// validates the result.
func Parse(name string, args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&cfg.Compact, "compact", false, "compact output (no gauges or separators)")
	fs.BoolVar(&cfg.NoBanner, "no-banner", false, "suppress the hostname banner")
	fs.StringVar(&cfg.Font, "font", "slant", "figlet font for the banner")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "diagnostic log level (debug, info, warn, error)")
	fs.BoolVarP(&cfg.ShowVersion, "version", "V", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks option values that flag parsing alone cannot reject
func validate(cfg *Config) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	if cfg.Font == "" {
		return fmt.Errorf("font must not be empty")
	}

	return nil
}
