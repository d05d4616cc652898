// Package storage persists analysis snapshots.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/fieldcard/core/fieldstats"
)

// ErrAmbiguousPrefix is returned when an ID prefix matches more than one
// snapshot.
var ErrAmbiguousPrefix = errors.New("snapshot id prefix is ambiguous")

// Snapshot is a saved set of field records together with where they came from.
type Snapshot struct {
	ID                  uuid.UUID
	Name                string
	Source              string
	CreatedAt           time.Time
	NumMessagesAnalyzed int64
	Fields              []fieldstats.Record
}

// EmptyFields returns the number of fields without any documents.
func (s *Snapshot) EmptyFields() int {
	n := 0
	for i := range s.Fields {
		if fieldstats.Classify(&s.Fields[i]) == fieldstats.StateEmpty {
			n++
		}
	}
	return n
}

// SnapshotStore defines the interface for storing and querying snapshots.
type SnapshotStore interface {
	// SaveSnapshot persists a snapshot. A zero ID is replaced with a new one
	// and a zero CreatedAt with the current time.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error

	// GetSnapshot retrieves a snapshot by ID. It returns nil when not found.
	GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error)

	// GetSnapshotByPrefix retrieves a snapshot by ID prefix. It returns nil
	// when not found and ErrAmbiguousPrefix when several match.
	GetSnapshotByPrefix(ctx context.Context, prefix string) (*Snapshot, error)

	// ListSnapshots returns snapshots newest first. A limit of 0 returns all.
	ListSnapshots(ctx context.Context, limit int) ([]*Snapshot, error)

	// DeleteSnapshot deletes a snapshot by ID and reports whether it existed.
	DeleteSnapshot(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteSnapshotsBefore deletes snapshots created before the given time.
	DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int, error)

	// CountSnapshotsBefore returns the count of snapshots created before the given time.
	CountSnapshotsBefore(ctx context.Context, before time.Time) (int, error)
}

// Store combines all storage interfaces.
type Store interface {
	SnapshotStore

	// Init initializes the storage (creates tables, etc.).
	Init(ctx context.Context) error

	// Close closes the storage connection.
	Close() error
}
