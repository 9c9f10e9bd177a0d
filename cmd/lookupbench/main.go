package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"lookup-bench/internal/config"
	"lookup-bench/internal/core/service"
	"lookup-bench/internal/dataset"
	"lookup-bench/internal/observability"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookupbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "Path to a YAML config file")
		sizes       = fs.String("sizes", "", "Comma separated data sizes, e.g. 10,100,1500")
		iterations  = fs.Int("iterations", 0, "Lookups per structure per data size")
		seed        = fs.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
		logLevel    = fs.String("log-level", "", "trace|debug|info|warn|error|disabled")
		dumpMetrics = fs.Bool("metrics", false, "Write prometheus metrics to stderr after the run")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(fs, *configPath, *sizes, *iterations, *seed, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "lookupbench: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, cfg.LogLevel)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	logger.Info().
		Ints("sizes", cfg.Sizes).
		Int("iterations", cfg.Iterations).
		Uint64("seed", cfg.Seed).
		Msg("starting lookup benchmark")

	runner := service.New(cfg.Sizes, cfg.Iterations, dataset.NewRand(cfg.Seed), service.WithLogger(logger))
	if err := runner.Run(stdout); err != nil {
		logger.Error().Err(err).Msg("benchmark aborted")
		return 1
	}

	if *dumpMetrics {
		if err := observability.WriteText(stderr, prometheus.DefaultGatherer); err != nil {
			logger.Error().Err(err).Msg("failed to write metrics")
			return 1
		}
	}
	return 0
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(fs *flag.FlagSet, path, sizes string, iterations int, seed uint64, logLevel string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sizes":
			cfg.Sizes, parseErr = config.ParseSizes(sizes)
		case "iterations":
			cfg.Iterations = iterations
		case "seed":
			cfg.Seed = seed
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
	if parseErr != nil {
		return config.Config{}, parseErr
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
