package browser

import "github.com/safedep/fieldcard/tui"

// Options configures the field browser.
type Options struct {
	// Title is shown in the header, usually the source name.
	Title     string
	Cards     []*tui.CardView
	UseColors bool
	// MaxCardWidth caps the card width on wide terminals.
	MaxCardWidth int
	BarWidth     int
	// HideEmpty starts with empty fields hidden.
	HideEmpty bool
}
