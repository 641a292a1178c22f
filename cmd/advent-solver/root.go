package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent-solver/internal/config"
	"advent-solver/internal/fetch"
	"advent-solver/internal/inputcache"
	"advent-solver/internal/logging"
)

var (
	// Global flags
	configPath   string
	verbose      bool
	cacheDir     string
	cacheBackend string

	cfg    *config.Config
	logger *zap.Logger
)

// skipConfigLoad marks commands that must run before a config file exists.
const skipConfigLoad = "skip_config_load"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent-solver",
	Short: "Solve Advent of Code 2023, days 1 through 8",
	Long: `advent-solver fetches, caches and solves puzzle inputs.

Inputs are read from a file given with --input, from the local cache, or
downloaded with the session token in ADVENT_OF_CODE_SESSION.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cmd.Annotations[skipConfigLoad] != "" {
			cfg = config.Default()
		} else if cfg, err = config.Load(configPath); err != nil {
			return err
		}

		if cmd.Flags().Changed("cache-dir") {
			cfg.Cache.Dir = cacheDir
		}

		if cmd.Flags().Changed("cache-backend") {
			cfg.Cache.Backend = cacheBackend
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(logging.Options{Level: cfg.Logging.Level, Verbose: verbose})
		if err != nil {
			return err
		}

		logger.Debug("Configuration loaded",
			zap.Int("year", cfg.Year),
			zap.String("cache_backend", cfg.Cache.Backend),
			zap.String("cache_dir", cfg.Cache.Dir))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/advent-solver/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "directory for cached inputs")
	rootCmd.PersistentFlags().StringVar(&cacheBackend, "cache-backend", "", "cache backend: dir or sqlite")

	rootCmd.AddCommand(solveCmd, fetchCmd, daysCmd, almanacCmd, configCmd)
}

// openLoader opens the configured cache. Without a session token the loader
// can only serve inputs that are already cached.
func openLoader() (*inputcache.Loader, func(), error) {
	store, err := inputcache.Open(cfg.Cache.Backend, cfg.Cache.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input cache: %w", err)
	}

	loader := &inputcache.Loader{Store: store, Logger: logger}

	if cfg.Session != "" {
		client, err := fetch.New(cfg.BaseURL, cfg.Year, cfg.Session, fetch.WithLogger(logger))
		if err != nil {
			store.Close()
			return nil, nil, err
		}

		loader.Fetcher = client
	}

	closeFn := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close input cache", zap.Error(err))
		}
	}

	return loader, closeFn, nil
}

// explainMiss adds a hint to cache misses that happen without a session.
func explainMiss(err error) error {
	if errors.Is(err, inputcache.ErrNotCached) && cfg.Session == "" {
		return fmt.Errorf("%w; %w", err, fetch.ErrNoSession)
	}

	return err
}
