package inputcache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// DirStore keeps each input as <dir>/day_<N>.txt.
type DirStore struct {
	dir string
}

// NewDirStore creates dir if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &DirStore{dir: dir}, nil
}

// Path returns the file that holds day's input.
func (s *DirStore) Path(day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("day_%d.txt", day))
}

func (s *DirStore) Get(ctx context.Context, day int) (string, bool, error) {
	if err := checkDay(day); err != nil {
		return "", false, err
	}

	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.Path(day))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read cached input: %w", err)
	}

	return string(data), true, nil
}

// Put writes through a temporary file so readers never see a partial input.
func (s *DirStore) Put(ctx context.Context, day int, body string) error {
	if err := checkDay(day); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf("day_%d.*.tmp", day))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write cached input: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cached input: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path(day)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store cached input: %w", err)
	}

	return nil
}

func (s *DirStore) Days(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache directory: %w", err)
	}

	var days []int

	for _, e := range entries {
		name, ok := strings.CutPrefix(e.Name(), "day_")
		if !ok || e.IsDir() {
			continue
		}

		name, ok = strings.CutSuffix(name, ".txt")
		if !ok {
			continue
		}

		if day, err := strconv.Atoi(name); err == nil && checkDay(day) == nil {
			days = append(days, day)
		}
	}

	slices.Sort(days)

	return days, nil
}

func (s *DirStore) Close() error { return nil }
