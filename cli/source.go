package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/storage"
	"github.com/safedep/fieldcard/tui"
)

// stdinRef reads the stats document from standard input.
const stdinRef = "-"

// statsSource is a resolved stats reference.
type statsSource struct {
	Name     string
	Document *fieldstats.Document
	// Snapshot is set when the source was loaded from the store.
	Snapshot *storage.Snapshot
}

// loadSource resolves ref as stdin, a stats file or a snapshot ID prefix,
// in that order.
func (a *App) loadSource(ctx context.Context, stdin io.Reader, ref string) (*statsSource, error) {
	if ref == stdinRef {
		doc, err := fieldstats.Decode(stdin, fieldstats.FormatJSON)
		if err != nil {
			return nil, ErrSource("failed to read stats from stdin", err)
		}
		return &statsSource{Name: "stdin", Document: doc}, nil
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		doc, err := fieldstats.DecodeFile(ref)
		if err != nil {
			return nil, ErrSource("failed to read stats document", err)
		}
		return &statsSource{Name: ref, Document: doc}, nil
	}

	snap, err := a.findSnapshot(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &statsSource{
		Name: snapshotName(snap),
		Document: &fieldstats.Document{
			Fields:              snap.Fields,
			NumMessagesAnalyzed: snap.NumMessagesAnalyzed,
		},
		Snapshot: snap,
	}, nil
}

// findSnapshot looks a snapshot up by ID prefix.
func (a *App) findSnapshot(ctx context.Context, prefix string) (*storage.Snapshot, error) {
	if err := a.InitStore(ctx); err != nil {
		return nil, ErrStorage("failed to open snapshot database", err)
	}

	snap, err := a.Store.GetSnapshotByPrefix(ctx, prefix)
	if errors.Is(err, storage.ErrAmbiguousPrefix) {
		return nil, ErrSource("use a longer snapshot id", err)
	}
	if err != nil {
		return nil, ErrStorage("failed to look up snapshot", err)
	}
	if snap == nil {
		return nil, ErrSourceNotFound(prefix)
	}

	return snap, nil
}

func snapshotName(snap *storage.Snapshot) string {
	if snap.Name != "" {
		return snap.Name
	}
	return tui.FormatShortID(snap.ID.String())
}

func snapshotView(snap *storage.Snapshot) *tui.SnapshotView {
	return &tui.SnapshotView{
		ID:          snap.ID.String(),
		ShortID:     tui.FormatShortID(snap.ID.String()),
		Name:        snap.Name,
		Source:      snap.Source,
		CreatedAt:   snap.CreatedAt,
		FieldCount:  len(snap.Fields),
		EmptyFields: snap.EmptyFields(),
		Messages:    snap.NumMessagesAnalyzed,
	}
}
