// Package sqlite keeps the save document and its journal in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS game_events (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  stream_id TEXT NOT NULL,
  type TEXT NOT NULL,
  occurred_at INTEGER NOT NULL,
  payload TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_game_events_stream ON game_events (stream_id, id);
`

// Store implements the document store, the journal and a transaction
// manager over one database handle.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ ports.KeyValueStore   = (*Store)(nil)
	_ ports.EventRepository = (*Store)(nil)
	_ ports.TxManager       = (*Store)(nil)
)

type txKey struct{}

// execer is the part of *sql.DB and *sql.Tx the store uses.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the save file at path, creating it and its tables if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) conn(ctx context.Context) execer {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return s.sqlDB
}

func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := s.conn(ctx).QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ports.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get item %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetItem(ctx context.Context, key, value string) error {
	_, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("set item %s: %w", key, err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, streamID string, events []player.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	return s.RunInTx(ctx, func(ctx context.Context) error {
		for _, e := range events {
			b, err := json.Marshal(e.Payload)
			if err != nil {
				return fmt.Errorf("encode %s payload: %w", e.Type, err)
			}
			if _, err := s.conn(ctx).ExecContext(ctx,
				`INSERT INTO game_events (stream_id, type, occurred_at, payload) VALUES (?, ?, ?, ?)`,
				streamID, e.Type, toMillis(e.OccurredAt), string(b),
			); err != nil {
				return fmt.Errorf("append %s: %w", e.Type, err)
			}
		}
		return nil
	})
}

// ListByStream returns the newest limit events, oldest first.
func (s *Store) ListByStream(ctx context.Context, streamID string, limit int) ([]player.DomainEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT type, occurred_at, payload FROM game_events WHERE stream_id = ? ORDER BY id DESC LIMIT ?`,
		streamID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := []player.DomainEvent{}
	for rows.Next() {
		var (
			kind    string
			at      int64
			payload string
		)
		if err := rows.Scan(&kind, &at, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt := player.DomainEvent{Type: kind, OccurredAt: fromMillis(at)}
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", kind, err)
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	slices.Reverse(out)
	return out, nil
}

// RunInTx joins an enclosing transaction when ctx already carries one.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
