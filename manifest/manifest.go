// Package manifest keeps a sqlite record of the frames written by a run so a sequence can be re-assembled
// or inspected without rescanning the frame directory.
package manifest

import (
	"context"
	"database/sql"
	"fmt"

	"FractalRenderer/output"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS frames (
	idx  INTEGER PRIMARY KEY,
	t    REAL NOT NULL,
	path TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

type Manifest struct {
	db   *sql.DB
	path string
}

func Open(path string) (*Manifest, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open manifest %s - %w", path, err)
	}
	// A single connection keeps every statement on the same database, which matters for :memory:
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err = db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("unable to configure manifest %s - %w", path, err)
		}
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create manifest schema - %w", err)
	}

	return &Manifest{db: db, path: path}, nil
}

func (m *Manifest) Path() string {
	return m.path
}

// Record stores a written frame, replacing any earlier record with the same index.
func (m *Manifest) Record(ctx context.Context, frame output.FrameRecord) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO frames (idx, t, path) VALUES (?, ?, ?)
		 ON CONFLICT(idx) DO UPDATE SET t = excluded.t, path = excluded.path`,
		frame.Index, frame.T, frame.Path)
	if err != nil {
		return fmt.Errorf("unable to record frame %d - %w", frame.Index, err)
	}
	return nil
}

// Frames returns every recorded frame ordered by time.
func (m *Manifest) Frames(ctx context.Context) ([]output.FrameRecord, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT idx, t, path FROM frames ORDER BY t, idx`)
	if err != nil {
		return nil, fmt.Errorf("unable to list frames - %w", err)
	}
	defer rows.Close()

	var frames []output.FrameRecord
	for rows.Next() {
		var frame output.FrameRecord
		if err = rows.Scan(&frame.Index, &frame.T, &frame.Path); err != nil {
			return nil, fmt.Errorf("unable to read frame - %w", err)
		}
		frames = append(frames, frame)
	}
	return frames, rows.Err()
}

func (m *Manifest) SetMeta(ctx context.Context, key string, value string) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("unable to store %s - %w", key, err)
	}
	return nil
}

// Meta returns the value stored under key and whether it exists.
func (m *Manifest) Meta(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("unable to load %s - %w", key, err)
	}
	return value, true, nil
}

func (m *Manifest) Close() error {
	return m.db.Close()
}
