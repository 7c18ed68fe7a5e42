// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/history/history.go
// Summary: SQLite store of visited paths for the gallery's Recent tab.
//
// Each visit upserts one row keyed by path, bumping its count and
// timestamp. Recent lists paths newest first.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelwidgets/config"
	"github.com/framegrace/texelwidgets/internal/logging"
)

// DefaultFile is the database name under the state directory.
const DefaultFile = "history.db"

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS visits (
    path       TEXT PRIMARY KEY,
    visited_at INTEGER NOT NULL,  -- UnixNano
    count      INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_visits_time ON visits(visited_at);
`

// ErrEmptyPath is returned when recording an empty path.
var ErrEmptyPath = errors.New("history: empty path")

// Visit is one remembered path.
type Visit struct {
	Path      string
	VisitedAt time.Time
	Count     int
}

// Store records visited paths.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultPath returns the database path under the config state directory.
func DefaultPath() (string, error) {
	return config.StatePath(DefaultFile)
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	if err := checkVersion(db); err != nil {
		db.Close()
		return nil, err
	}
	logging.Component("history").Debug().Str("path", path).Msg("opened")
	return &Store{db: db, now: time.Now}, nil
}

func checkVersion(db *sql.DB) error {
	var v int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
		if err != nil {
			return fmt.Errorf("record history schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read history schema version: %w", err)
	case v > schemaVersion:
		return fmt.Errorf("history schema version %d is newer than supported %d", v, schemaVersion)
	}
	return nil
}

// Record notes a visit to path.
func (s *Store) Record(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO visits (path, visited_at, count) VALUES (?, ?, 1)
ON CONFLICT(path) DO UPDATE SET visited_at = excluded.visited_at, count = count + 1`,
		path, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Recent returns up to limit visits, newest first. limit <= 0 means all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	q := "SELECT path, visited_at, count FROM visits ORDER BY visited_at DESC, path"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var (
			v  Visit
			ns int64
		)
		if err := rows.Scan(&v.Path, &ns, &v.Count); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.VisitedAt = time.Unix(0, ns)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Forget removes path from the history.
func (s *Store) Forget(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE path = ?", path); err != nil {
		return fmt.Errorf("forget visit: %w", err)
	}
	return nil
}

// Prune keeps only the keep most recent visits and returns how many rows
// were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
DELETE FROM visits WHERE path NOT IN (
    SELECT path FROM visits ORDER BY visited_at DESC, path LIMIT ?
)`, max(keep, 0))
	if err != nil {
		return 0, fmt.Errorf("prune visits: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
