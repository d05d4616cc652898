// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"

	"github.com/safedep/fieldcard/tui/card"
)

// Format represents the output format.
type Format string

const (
	// FormatCard draws each field as a bordered terminal card.
	FormatCard Format = "card"
	// FormatPlain renders cards as accessible plain text.
	FormatPlain Format = "plain"
	// FormatJSON emits the visual tree of each card as JSON.
	FormatJSON Format = "json"
	// FormatJSONL is newline-delimited JSON, one card per line.
	FormatJSONL Format = "jsonl"
	// FormatCSV is one summary row per field.
	FormatCSV Format = "csv"
)

// ParseFormat maps a flag value to a Format. Unknown values fall back to
// FormatCard.
func ParseFormat(s string) Format {
	switch Format(s) {
	case FormatPlain, FormatJSON, FormatJSONL, FormatCSV:
		return Format(s)
	default:
		return FormatCard
	}
}

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderCards renders field statistics cards.
	RenderCards(cards []*CardView) error

	// RenderSnapshots renders a list of stored snapshots.
	RenderSnapshots(snapshots []*SnapshotView) error

	// RenderDiff renders per-field card differences.
	RenderDiff(diffs []*DiffView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error

	// RenderError renders an error message.
	RenderError(err error) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// TerminalWidth is the width available for cards.
	// If 0, the width will be auto-detected.
	TerminalWidth int
	// CardWidth is the outer width of one card. If 0, card.DefaultCardWidth.
	CardWidth int
	// BarWidth caps top value bars. If 0, bars fill the card.
	BarWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.CardWidth <= 0 {
		opts.CardWidth = card.DefaultCardWidth
	}

	switch format {
	case FormatPlain:
		return NewPlainPresenter(opts)
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatJSONL:
		return NewJSONLPresenter(opts)
	case FormatCSV:
		return NewCSVPresenter(opts)
	default:
		return NewCardPresenter(opts)
	}
}
