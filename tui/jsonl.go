package tui

import "encoding/json"

// JSONLPresenter renders output as newline-delimited JSON.
type JSONLPresenter struct {
	*JSONPresenter
}

// NewJSONLPresenter creates a new JSONL presenter.
func NewJSONLPresenter(opts PresenterOptions) *JSONLPresenter {
	// No indentation for JSONL
	return &JSONLPresenter{
		JSONPresenter: &JSONPresenter{
			w:       opts.Writer,
			encoder: json.NewEncoder(opts.Writer),
		},
	}
}

// RenderCards renders one card per line.
func (p *JSONLPresenter) RenderCards(cards []*CardView) error {
	for _, c := range cards {
		if err := p.encoder.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

// RenderSnapshots renders one snapshot per line.
func (p *JSONLPresenter) RenderSnapshots(snapshots []*SnapshotView) error {
	for _, s := range snapshots {
		if err := p.encoder.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

// RenderDiff renders one diff per line.
func (p *JSONLPresenter) RenderDiff(diffs []*DiffView) error {
	for _, d := range diffs {
		if err := p.encoder.Encode(d); err != nil {
			return err
		}
	}
	return nil
}

var _ Presenter = (*JSONLPresenter)(nil)
