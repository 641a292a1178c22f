// Package config loads the solver configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvSession  = "ADVENT_OF_CODE_SESSION"
	EnvCacheDir = "ADVENT_SOLVER_CACHE_DIR"
)

// Cache backends.
const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

var ErrInvalidConfig = errors.New("invalid config")

// Backends lists the supported cache backends.
var Backends = []string{BackendDir, BackendSQLite}

// Config is the full configuration file.
type Config struct {
	Year    int           `yaml:"year"`
	Session string        `yaml:"session,omitempty"`
	BaseURL string        `yaml:"base_url"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Solve   SolveConfig   `yaml:"solve"`
}

// CacheConfig selects where fetched inputs are kept.
type CacheConfig struct {
	Backend string `yaml:"backend"` // dir, sqlite
	Dir     string `yaml:"dir"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SolveConfig bounds a solve run.
type SolveConfig struct {
	Parallelism int           `yaml:"parallelism"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// DefaultPath is $XDG_CONFIG_HOME/advent-solver/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "advent-solver", "config.yaml")
}

// Load reads path, or DefaultPath when path is empty. A missing default file
// yields the defaults; a missing explicit file is an error. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		cfg = Default()
	}

	applyEnvOverrides(cfg, os.Getenv)

	return cfg, nil
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Year == 0 {
		cfg.Year = 2023
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://adventofcode.com"
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = BackendDir
	}

	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = filepath.Join("~", ".cache", fmt.Sprintf("advent_of_code_%d", cfg.Year))
	}

	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Solve.Parallelism == 0 {
		cfg.Solve.Parallelism = 4
	}

	if cfg.Solve.Timeout == 0 {
		cfg.Solve.Timeout = 30 * time.Second
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if session := getenv(EnvSession); session != "" {
		cfg.Session = session
	}

	if dir := getenv(EnvCacheDir); dir != "" {
		cfg.Cache.Dir = expandHome(dir)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("%w: year %d is before the first event", ErrInvalidConfig, c.Year)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url %q is not an absolute URL", ErrInvalidConfig, c.BaseURL)
	}

	if !slices.Contains(Backends, c.Cache.Backend) {
		return fmt.Errorf("%w: cache backend %q (valid: %v)", ErrInvalidConfig, c.Cache.Backend, Backends)
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Solve.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1", ErrInvalidConfig)
	}

	if c.Solve.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}

	return nil
}

// Marshal serializes a Config to YAML. The session token is left out.
func Marshal(cfg *Config) ([]byte, error) {
	redacted := *cfg
	redacted.Session = ""

	return yaml.Marshal(&redacted)
}

// WriteFile writes cfg to path, creating parent directories.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
