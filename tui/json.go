package tui

import (
	"encoding/json"
	"io"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderCards renders cards with their visual trees as JSON.
func (p *JSONPresenter) RenderCards(cards []*CardView) error {
	if cards == nil {
		cards = []*CardView{}
	}
	return p.encoder.Encode(cards)
}

// RenderSnapshots renders snapshots as JSON.
func (p *JSONPresenter) RenderSnapshots(snapshots []*SnapshotView) error {
	if snapshots == nil {
		snapshots = []*SnapshotView{}
	}
	return p.encoder.Encode(snapshots)
}

// RenderDiff renders diffs as JSON.
func (p *JSONPresenter) RenderDiff(diffs []*DiffView) error {
	if diffs == nil {
		diffs = []*DiffView{}
	}
	return p.encoder.Encode(diffs)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderMessage renders a simple message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// RenderError renders an error message as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

var _ Presenter = (*JSONPresenter)(nil)
