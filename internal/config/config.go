package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lookup-bench/internal/core/domain"

	"gopkg.in/yaml.v3"
)

const (
	EnvIterations = "LOOKUPBENCH_ITERATIONS"
	EnvSeed       = "LOOKUPBENCH_SEED"
	EnvLogLevel   = "LOOKUPBENCH_LOG_LEVEL"
)

// Config holds the benchmark settings. It is immutable once a run starts.
type Config struct {
	Sizes      []int  `yaml:"sizes"`
	Iterations int    `yaml:"iterations"`
	Seed       uint64 `yaml:"seed"` // 0 seeds from the runtime
	LogLevel   string `yaml:"log_level"`
}

// Default returns the compiled-in configuration. The sizes straddle the
// point where the runtime's hash tables change layout.
func Default() Config {
	return Config{
		Sizes:      []int{10, 100, 500, 900, 1000, 1100, 1500, 10000},
		Iterations: 10000,
		LogLevel:   "info",
	}
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("cannot read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("cannot parse config: %w", err)
		}
	}

	// Invalid numbers are ignored
	if s := os.Getenv(EnvIterations); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			cfg.Iterations = n
		}
	}
	if s := os.Getenv(EnvSeed); s != "" {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if s := os.Getenv(EnvLogLevel); s != "" {
		cfg.LogLevel = s
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once, wrapped in
// domain.ErrInvalidConfiguration.
func (c Config) Validate() error {
	var errs []error

	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("at least one data size is required"))
	}
	for _, size := range c.Sizes {
		if size < 0 {
			errs = append(errs, fmt.Errorf("data size %d must be >= 0", size))
		}
	}
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations %d must be >= 1", c.Iterations))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}
	return nil
}

// ParseSizes parses a comma separated list such as "10,100,1500".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("data size %q: %w", field, domain.ErrInvalidConfiguration)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no data sizes in %q: %w", s, domain.ErrInvalidConfiguration)
	}
	return sizes, nil
}
