package inputcache

import (
	"context"
	"errors"
	"fmt"

	"advent-solver/internal/config"
)

// FirstDay and LastDay bound the valid day numbers of an event.
const (
	FirstDay = 1
	LastDay  = 25
)

var (
	ErrInvalidDay = errors.New("day out of range")
	ErrNotCached  = errors.New("input not cached")
)

// Store persists raw inputs keyed by day.
type Store interface {
	// Get returns the cached input; ok is false on a miss.
	Get(ctx context.Context, day int) (body string, ok bool, err error)
	Put(ctx context.Context, day int, body string) error
	// Days lists the cached days in ascending order.
	Days(ctx context.Context) ([]int, error)
	Close() error
}

// Open returns the store for backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case config.BackendDir, "":
		return NewDirStore(dir)
	case config.BackendSQLite:
		return NewSQLiteStore(SQLitePath(dir))
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}

func checkDay(day int) error {
	if day < FirstDay || day > LastDay {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}

	return nil
}
