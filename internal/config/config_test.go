package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, 2023, cfg.Year)
	assert.Equal(t, "https://adventofcode.com", cfg.BaseURL)
	assert.Equal(t, BackendDir, cfg.Cache.Backend)
	assert.Equal(t, "advent_of_code_2023", filepath.Base(cfg.Cache.Dir))
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Solve.Parallelism)
	assert.Equal(t, 30*time.Second, cfg.Solve.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestParse_Values(t *testing.T) {
	t.Parallel()

	data := []byte(`
year: 2022
session: abc
base_url: http://localhost:8080
cache:
  backend: sqlite
  dir: /tmp/inputs
logging:
  level: debug
solve:
  parallelism: 2
  timeout: 1m30s
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Year:    2022,
		Session: "abc",
		BaseURL: "http://localhost:8080",
		Cache:   CacheConfig{Backend: BackendSQLite, Dir: "/tmp/inputs"},
		Logging: LoggingConfig{Level: "debug"},
		Solve:   SolveConfig{Parallelism: 2, Timeout: 90 * time.Second},
	}, cfg)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("year: [1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"early year", func(c *Config) { c.Year = 2014 }},
		{"relative url", func(c *Config) { c.BaseURL = "adventofcode.com" }},
		{"backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
		{"parallelism", func(c *Config) { c.Solve.Parallelism = -1 }},
		{"timeout", func(c *Config) { c.Solve.Timeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Parallel()

	env := map[string]string{EnvSession: "token", EnvCacheDir: "/srv/cache"}

	cfg := Default()
	applyEnvOverrides(cfg, func(k string) string { return env[k] })

	assert.Equal(t, "token", cfg.Session)
	assert.Equal(t, "/srv/cache", cfg.Cache.Dir)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvSession, "from-env")
	t.Setenv(EnvCacheDir, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: from-file\nyear: 2023\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTripWithoutSession(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Session = "secret"
	cfg.Cache.Dir = "/data"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Empty(t, loaded.Session)
	assert.Equal(t, "/data", loaded.Cache.Dir)
	assert.Equal(t, "secret", cfg.Session)
}
