package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/f3rmion/ziwei/internal/ziwei"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a throwaway in-memory database.
const MemoryPath = ":memory:"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS charts (
		key        TEXT PRIMARY KEY,
		input      TEXT NOT NULL,
		chart      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_charts_created_at ON charts(created_at)`,
}

// SQLite persists charts as JSON rows.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// Open opens or creates the cache database at path and runs migrations.
func Open(path string, logger *zap.Logger) (*SQLite, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if path == MemoryPath {
		// each connection would get its own empty database
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}

	logger.Debug("chart cache opened", zap.String("path", path))
	return &SQLite{db: db, path: path, logger: logger}, nil
}

// Close releases the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get implements ziwei.Cache.
func (s *SQLite) Get(key string) (*ziwei.Chart, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT chart FROM charts WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		s.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading chart %s: %w", key, err)
	}

	var c ziwei.Chart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// a row written by an older layout is treated as a miss
		s.logger.Warn("discarding unreadable cached chart", zap.String("key", key), zap.Error(err))
		s.misses.Add(1)
		return nil, false, nil
	}
	s.hits.Add(1)
	return &c, true, nil
}

// Put implements ziwei.Cache.
func (s *SQLite) Put(key string, c *ziwei.Chart) error {
	input, err := json.Marshal(c.Input)
	if err != nil {
		return fmt.Errorf("marshaling input: %w", err)
	}
	chart, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling chart: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO charts (key, input, chart, created_at) VALUES (?, ?, ?, ?)`,
		key, string(input), string(chart), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing chart %s: %w", key, err)
	}
	return nil
}

// Stats returns the row count and this handle's counters.
func (s *SQLite) Stats() (Stats, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM charts`).Scan(&n); err != nil {
		return Stats{}, fmt.Errorf("counting charts: %w", err)
	}
	return Stats{
		Entries: n,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Backend: "sqlite",
		Path:    s.path,
	}, nil
}

// Clear deletes every row and returns how many were removed.
func (s *SQLite) Clear() (int, error) {
	res, err := s.db.Exec(`DELETE FROM charts`)
	if err != nil {
		return 0, fmt.Errorf("clearing charts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared charts: %w", err)
	}
	return int(n), nil
}
