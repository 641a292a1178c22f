// Package watch reruns work when input files change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"advent-solver/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports changes to a fixed set of files. Parent directories are
// watched so files replaced by rename are still seen.
type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	logger   *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a file must stay quiet before it is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New watches paths.
func New(paths []string, opts ...Option) (*Watcher, error) {
	w := &Watcher{files: make(map[string]bool, len(paths)), debounce: DefaultDebounce}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}

		w.files[abs] = true
	}

	for _, opt := range opts {
		opt(w)
	}

	w.logger = logging.OrNop(w.logger)

	return w, nil
}

// Run blocks until ctx is done, calling onChange from the watching
// goroutine once per settled change.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}

		w.logger.Debug("Watching directory", zap.String("dir", dir))
	}

	tick := max(w.debounce/4, 10*time.Millisecond)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if !w.files[event.Name] || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			pending[event.Name] = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("Watcher error", zap.Error(err))

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}

				delete(pending, path)
				w.logger.Debug("File changed", zap.String("path", path))
				onChange(ctx, path)
			}
		}
	}
}
