package tui

import "github.com/safedep/fieldcard/tui/card"

// PlainPresenter renders cards as accessible plain text. Everything other
// than cards is delegated to an uncoloured CardPresenter.
type PlainPresenter struct {
	*CardPresenter
}

// NewPlainPresenter creates a new plain text presenter.
func NewPlainPresenter(opts PresenterOptions) *PlainPresenter {
	opts.UseColors = false
	return &PlainPresenter{
		CardPresenter: NewCardPresenter(opts),
	}
}

// RenderCards renders each card's accessible text separated by blank lines.
func (p *PlainPresenter) RenderCards(cards []*CardView) error {
	tw := &lineWriter{w: p.w}
	if len(cards) == 0 {
		tw.println("No fields found.")
		return tw.Err()
	}

	for i, c := range cards {
		if i > 0 {
			tw.println()
		}
		tw.block(card.RenderAccessible(c.Tree))
	}
	return tw.Err()
}

var _ Presenter = (*PlainPresenter)(nil)
