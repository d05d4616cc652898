package tui

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/safedep/fieldcard/core/i18n"
	"github.com/safedep/fieldcard/tui/card"
)

// CSVPresenter renders one summary row per field.
type CSVPresenter struct {
	w      io.Writer
	writer *csv.Writer
}

// NewCSVPresenter creates a new CSV presenter.
func NewCSVPresenter(opts PresenterOptions) *CSVPresenter {
	return &CSVPresenter{
		w:      opts.Writer,
		writer: csv.NewWriter(opts.Writer),
	}
}

// RenderCards renders the field statistics as CSV.
func (p *CSVPresenter) RenderCards(cards []*CardView) error {
	p.writer.Write([]string{
		"name", "type", "state", "count", "percent", "cardinality",
		"min", "median", "max", "top_values",
	})

	for _, c := range cards {
		r := c.Record
		p.writer.Write([]string{
			r.Name,
			r.Type,
			c.State,
			strconv.FormatInt(r.Count, 10),
			i18n.FormatFloat(r.Percent),
			strconv.FormatInt(r.Cardinality, 10),
			card.DisplayValue(r.MinValue, nil),
			card.DisplayValue(r.MedianValue, nil),
			card.DisplayValue(r.MaxValue, nil),
			strconv.Itoa(len(r.TopHits)),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderSnapshots renders snapshots as CSV.
func (p *CSVPresenter) RenderSnapshots(snapshots []*SnapshotView) error {
	p.writer.Write([]string{"id", "name", "source", "created_at", "fields", "empty_fields", "messages"})

	for _, s := range snapshots {
		p.writer.Write([]string{
			s.ID,
			s.Name,
			s.Source,
			FormatTime(s.CreatedAt),
			strconv.Itoa(s.FieldCount),
			strconv.Itoa(s.EmptyFields),
			strconv.FormatInt(s.Messages, 10),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderDiff renders diff statuses as CSV.
func (p *CSVPresenter) RenderDiff(diffs []*DiffView) error {
	p.writer.Write([]string{"field", "status"})
	for _, d := range diffs {
		p.writer.Write([]string{d.Field, d.Status})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderConfig renders the configuration as CSV.
func (p *CSVPresenter) RenderConfig(config *ConfigView) error {
	p.writer.Write([]string{"key", "value"})

	flat := make(map[string]any)
	flatten("", config.Values, flat)
	for k, v := range flat {
		p.writer.Write([]string{k, fmt.Sprintf("%v", v)})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderMessage renders a simple message as CSV.
func (p *CSVPresenter) RenderMessage(message string) error {
	p.writer.Write([]string{"message"})
	p.writer.Write([]string{message})
	p.writer.Flush()
	return p.writer.Error()
}

// RenderError renders an error message as CSV.
func (p *CSVPresenter) RenderError(err error) error {
	p.writer.Write([]string{"error"})
	p.writer.Write([]string{err.Error()})
	p.writer.Flush()
	return p.writer.Error()
}

var _ Presenter = (*CSVPresenter)(nil)
