package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fernweh/api/internal/model"
)

// DefaultKeep is how many snapshot rows Save retains when none is configured
const DefaultKeep = 5

const schemaSQL = `CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at TEXT NOT NULL,
    user_count INTEGER NOT NULL,
    payload BLOB NOT NULL
);`

// SQLiteConfig holds settings for the SQLite snapshot store
type SQLiteConfig struct {
	Path string // database file path
	Keep int    // snapshot rows to retain, DefaultKeep when <= 0
}

// SQLiteStore implements Store over an embedded SQLite database
type SQLiteStore struct {
	db   *sql.DB
	keep int
}

// OpenSQLite opens (creating if needed) the snapshot database at cfg.Path
func OpenSQLite(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}
	keep := cfg.Keep
	if keep <= 0 {
		keep = DefaultKeep
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single connection: snapshots are one writer, and this keeps
	// in-memory databases usable from tests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db, keep: keep}, nil
}

// Save inserts a new snapshot row and prunes old rows beyond the retention
// limit. The snapshot is stored as a single JSON payload.
func (s *SQLiteStore) Save(ctx context.Context, snap *model.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	takenAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO snapshots (taken_at, user_count, payload) VALUES (?, ?, ?)",
		takenAt, len(snap.Users), payload,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)",
		s.keep,
	); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// LoadLatest returns the newest stored snapshot
func (s *SQLiteStore) LoadLatest(ctx context.Context) (*model.Snapshot, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM snapshots ORDER BY id DESC LIMIT 1",
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &snap, nil
}

// Ping verifies the database is reachable
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
