package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lookup-bench/internal/config"
	"lookup-bench/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	createTempConfigFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write temp config file: %v", err)
		}
		return path
	}

	validYAML := `
sizes: [10, 900, 1500]
iterations: 250
seed: 42
log_level: debug
`
	partialYAML := `
iterations: 50
`
	invalidYAML := `
sizes: [10, 900
iterations
`
	negativeYAML := `
sizes: [10, -1]
iterations: 0
`

	testCases := []struct {
		name        string
		path        func(t *testing.T) string
		envVars     map[string]string
		expectedCfg config.Config
		expectErr   bool
	}{
		{
			name:        "defaults when no file",
			path:        func(t *testing.T) string { return "" },
			expectedCfg: config.Default(),
		},
		{
			name: "load from file",
			path: func(t *testing.T) string { return createTempConfigFile(t, validYAML) },
			expectedCfg: config.Config{
				Sizes:      []int{10, 900, 1500},
				Iterations: 250,
				Seed:       42,
				LogLevel:   "debug",
			},
		},
		{
			name: "file keeps unset defaults",
			path: func(t *testing.T) string { return createTempConfigFile(t, partialYAML) },
			expectedCfg: config.Config{
				Sizes:      config.Default().Sizes,
				Iterations: 50,
				LogLevel:   "info",
			},
		},
		{
			name: "override with env vars",
			path: func(t *testing.T) string { return createTempConfigFile(t, validYAML) },
			envVars: map[string]string{
				config.EnvIterations: "99",
				config.EnvSeed:       "7",
				config.EnvLogLevel:   "warn",
			},
			expectedCfg: config.Config{
				Sizes:      []int{10, 900, 1500},
				Iterations: 99,
				Seed:       7,
				LogLevel:   "warn",
			},
		},
		{
			name: "ignore invalid numeric env vars",
			path: func(t *testing.T) string { return createTempConfigFile(t, validYAML) },
			envVars: map[string]string{
				config.EnvIterations: "lots",
				config.EnvSeed:       "-3",
			},
			expectedCfg: config.Config{
				Sizes:      []int{10, 900, 1500},
				Iterations: 250,
				Seed:       42,
				LogLevel:   "debug",
			},
		},
		{
			name:      "file not found",
			path:      func(t *testing.T) string { return "non_existent_file.yaml" },
			expectErr: true,
		},
		{
			name:      "invalid yaml",
			path:      func(t *testing.T) string { return createTempConfigFile(t, invalidYAML) },
			expectErr: true,
		},
		{
			name:      "invalid values",
			path:      func(t *testing.T) string { return createTempConfigFile(t, negativeYAML) },
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := config.Load(tc.path(t))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCfg, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, config.Default().Validate())

	cfg := config.Config{Sizes: []int{-1, 5}, Iterations: 0, LogLevel: "loud"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "data size -1")
	assert.Contains(t, err.Error(), "iterations 0")
	assert.Contains(t, err.Error(), "unknown log level")

	err = config.Config{Iterations: 1}.Validate()
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))

	// Zero is a valid size to configure; it is rejected at sampling time.
	assert.NoError(t, config.Config{Sizes: []int{0}, Iterations: 1}.Validate())
}

func TestParseSizes(t *testing.T) {
	sizes, err := config.ParseSizes("10, 100,1500,")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 100, 1500}, sizes)

	_, err = config.ParseSizes("10,ten")
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))

	_, err = config.ParseSizes(" , ")
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
}
