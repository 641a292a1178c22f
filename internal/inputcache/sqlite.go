package inputcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS inputs (
	day INTEGER PRIMARY KEY,
	body TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);`

// SQLitePath is the database file used for the sqlite backend in dir.
func SQLitePath(dir string) string {
	return filepath.Join(dir, "inputs.db")
}

// SQLiteStore keeps every input in one SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens or creates the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create inputs table: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, day int) (string, bool, error) {
	if err := checkDay(day); err != nil {
		return "", false, err
	}

	var body string

	err := s.db.QueryRowContext(ctx, "SELECT body FROM inputs WHERE day = ?", day).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read cached input: %w", err)
	}

	return body, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, day int, body string) error {
	if err := checkDay(day); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inputs (day, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET
		 body = excluded.body,
		 fetched_at = excluded.fetched_at`,
		day, body, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store cached input: %w", err)
	}

	return nil
}

// FetchedAt returns when day's input was stored.
func (s *SQLiteStore) FetchedAt(ctx context.Context, day int) (time.Time, error) {
	var unix int64

	err := s.db.QueryRowContext(ctx, "SELECT fetched_at FROM inputs WHERE day = ?", day).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("%w: day %d", ErrNotCached, day)
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read fetch time: %w", err)
	}

	return time.Unix(unix, 0), nil
}

func (s *SQLiteStore) Days(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT day FROM inputs ORDER BY day")
	if err != nil {
		return nil, fmt.Errorf("failed to list cached days: %w", err)
	}
	defer rows.Close()

	var days []int

	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan cached day: %w", err)
		}

		days = append(days, day)
	}

	return days, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
