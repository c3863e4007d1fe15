package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/stone-age-io/minifetch/internal/config"
	"github.com/stone-age-io/minifetch/internal/render"
	"github.com/stone-age-io/minifetch/internal/sysinfo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout *os.File) int {
	cfg, err := config.Parse("minifetch", args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "minifetch: %v\n", err)
		return 2
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "minifetch %s\n", version)
		return 0
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minifetch: %v\n", err)
		return 1
	}
	defer logger.Sync()

	snap := sysinfo.New(logger).Collect(context.Background())

	var banner string
	if !cfg.NoBanner && snap.Hostname != nil {
		banner = render.Banner(*snap.Hostname, cfg.Font)
	}

	opts := render.Options{
		Color:   !cfg.NoColor && isatty.IsTerminal(stdout.Fd()),
		Compact: cfg.Compact,
	}

	if _, err := io.WriteString(stdout, render.Render(snap, banner, opts)); err != nil {
		fmt.Fprintf(os.Stderr, "minifetch: %v\n", err)
		return 1
	}

	return 0
}

// initLogger creates a console logger on stderr. Fact collection failures are
// logged here at Warn; the default level keeps a healthy run silent.
func initLogger(levelText string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core), nil
}
