package tui

import (
	"time"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/tui/card"
)

// CardView is one field card ready for presentation.
type CardView struct {
	Record fieldstats.Record `json:"record"`
	State  string            `json:"state"`
	Tree   *card.Node        `json:"tree"`
}

// NewCardViews builds a CardView per record with the given builder.
func NewCardViews(b *card.Builder, records []fieldstats.Record) []*CardView {
	views := make([]*CardView, 0, len(records))
	for _, rec := range records {
		views = append(views, &CardView{
			Record: rec,
			State:  fieldstats.Classify(&rec).String(),
			Tree:   b.Build(rec),
		})
	}
	return views
}

// SnapshotView represents a stored analysis snapshot for display.
type SnapshotView struct {
	ID          string    `json:"id"`
	ShortID     string    `json:"short_id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	FieldCount  int       `json:"field_count"`
	EmptyFields int       `json:"empty_fields"`
	Messages    int64     `json:"num_messages_analyzed"`
}

// DiffView represents the difference between two renderings of a field.
type DiffView struct {
	Field   string `json:"field"`
	Status  string `json:"status"`
	Content string `json:"content,omitempty"`
}

// Diff statuses.
const (
	DiffChanged = "changed"
	DiffAdded   = "added"
	DiffRemoved = "removed"
)

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location"`
	Values   map[string]interface{} `json:"values"`
}
