package inputcache

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"advent-solver/internal/logging"
)

// Fetcher downloads the input for a day.
type Fetcher interface {
	Fetch(ctx context.Context, day int) (string, error)
}

// Loader reads inputs through a Store, fetching and storing on a miss.
type Loader struct {
	Store Store
	// Fetcher may be nil, in which case a miss is ErrNotCached.
	Fetcher Fetcher
	Logger  *zap.Logger
}

// Load returns day's input.
func (l *Loader) Load(ctx context.Context, day int) (string, error) {
	log := logging.OrNop(l.Logger).With(zap.Int("day", day))

	body, ok, err := l.Store.Get(ctx, day)
	if err != nil {
		return "", err
	}

	if ok {
		log.Debug("Input cache hit")
		return body, nil
	}

	if l.Fetcher != nil {
		log.Info("Input not cached, fetching")
	}

	return l.Refresh(ctx, day)
}

// Refresh fetches day's input and overwrites the cached copy.
func (l *Loader) Refresh(ctx context.Context, day int) (string, error) {
	if l.Fetcher == nil {
		return "", fmt.Errorf("%w: day %d", ErrNotCached, day)
	}

	body, err := l.Fetcher.Fetch(ctx, day)
	if err != nil {
		return "", fmt.Errorf("failed to fetch day %d: %w", day, err)
	}

	if err := l.Store.Put(ctx, day, body); err != nil {
		return "", err
	}

	return body, nil
}
