package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/fieldcard/core/fieldstats"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	num_messages_analyzed INTEGER NOT NULL DEFAULT 0,
	field_count INTEGER NOT NULL DEFAULT 0,
	fields_json TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

const selectColumns = `SELECT id, name, source, created_at, num_messages_analyzed, fields_json FROM snapshots`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &SQLiteStore{
		db:   db,
		path: path,
	}, nil
}

// Init initializes the database schema.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// SaveSnapshot persists a new snapshot.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}

	fields := snap.Fields
	if fields == nil {
		fields = []fieldstats.Record{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, name, source, created_at, num_messages_analyzed, field_count, fields_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID.String(), snap.Name, snap.Source, snap.CreatedAt.UnixNano(),
		snap.NumMessagesAnalyzed, len(fields), string(data))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshot retrieves a snapshot by ID.
func (s *SQLiteStore) GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id.String())

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return snap, nil
}

// GetSnapshotByPrefix retrieves a snapshot by ID prefix.
func (s *SQLiteStore) GetSnapshotByPrefix(ctx context.Context, prefix string) (*Snapshot, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || strings.ContainsAny(prefix, "%_") {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+` WHERE id LIKE ? ORDER BY created_at DESC LIMIT 2`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot by prefix: %w", err)
	}
	defer rows.Close()

	snaps, err := scanSnapshots(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot by prefix: %w", err)
	}

	switch len(snaps) {
	case 0:
		return nil, nil
	case 1:
		return snaps[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousPrefix, prefix)
	}
}

// ListSnapshots returns snapshots newest first.
func (s *SQLiteStore) ListSnapshots(ctx context.Context, limit int) ([]*Snapshot, error) {
	query := selectColumns + ` ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snaps, err := scanSnapshots(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return snaps, nil
}

// DeleteSnapshot deletes a snapshot by ID.
func (s *SQLiteStore) DeleteSnapshot(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete snapshot: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return n > 0, nil
}

// DeleteSnapshotsBefore deletes snapshots older than the given time.
func (s *SQLiteStore) DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE created_at < ?`, before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old snapshots: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete old snapshots: %w", err)
	}

	return int(n), nil
}

// CountSnapshotsBefore returns the count of snapshots older than the given time.
func (s *SQLiteStore) CountSnapshotsBefore(ctx context.Context, before time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots WHERE created_at < ?`, before.UnixNano()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count old snapshots: %w", err)
	}

	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var (
		id        string
		createdAt int64
		fields    string
		snap      Snapshot
	)

	if err := row.Scan(&id, &snap.Name, &snap.Source, &createdAt, &snap.NumMessagesAnalyzed, &fields); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot id %q: %w", id, err)
	}
	snap.ID = parsed
	snap.CreatedAt = time.Unix(0, createdAt).UTC()

	if err := json.Unmarshal([]byte(fields), &snap.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields of %s: %w", id, err)
	}

	return &snap, nil
}

func scanSnapshots(rows *sql.Rows) ([]*Snapshot, error) {
	var snaps []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}
