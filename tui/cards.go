package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/fieldcard/tui/card"
)

// CardPresenter draws field cards in a grid sized to the terminal.
type CardPresenter struct {
	w         io.Writer
	color     *Colorizer
	useColors bool
	termWidth int
	cardWidth int
	barWidth  int
}

// NewCardPresenter creates a new card presenter.
func NewCardPresenter(opts PresenterOptions) *CardPresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = GetTerminalWidth()
	}
	cardWidth := opts.CardWidth
	if cardWidth <= 0 {
		cardWidth = card.DefaultCardWidth
	}
	if cardWidth > termWidth {
		cardWidth = termWidth
	}
	return &CardPresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		useColors: opts.UseColors,
		termWidth: termWidth,
		cardWidth: cardWidth,
		barWidth:  opts.BarWidth,
	}
}

// RenderCards renders cards left to right, wrapping rows at the terminal width.
func (p *CardPresenter) RenderCards(cards []*CardView) error {
	tw := &lineWriter{w: p.w}
	if len(cards) == 0 {
		tw.println("No fields found.")
		return tw.Err()
	}

	perRow := p.termWidth / p.cardWidth
	if perRow < 1 {
		perRow = 1
	}

	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}

		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, card.RenderTerminal(c.Tree, card.RenderOptions{
				Width:     p.cardWidth,
				UseColors: p.useColors,
				BarWidth:  p.barWidth,
			}))
		}
		tw.block(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	return tw.Err()
}

// RenderSnapshots renders stored snapshots newest first.
func (p *CardPresenter) RenderSnapshots(snapshots []*SnapshotView) error {
	tw := &lineWriter{w: p.w}
	if len(snapshots) == 0 {
		tw.println("No snapshots found.")
		return tw.Err()
	}

	tw.printf("%s\n", p.color.Header(fmt.Sprintf("Snapshots (%d)", len(snapshots))))
	tw.println(HorizontalLine(p.termWidth))

	for _, s := range snapshots {
		tw.printf("%s  %s  %s\n",
			p.color.Dim(s.ShortID),
			FormatTime(s.CreatedAt),
			p.color.Field(s.Name))
		tw.printf("   %s fields, %s empty, %s messages  %s\n",
			p.color.Number(fmt.Sprintf("%d", s.FieldCount)),
			p.color.Number(fmt.Sprintf("%d", s.EmptyFields)),
			p.color.Number(fmt.Sprintf("%d", s.Messages)),
			p.color.Path(s.Source))
	}

	return tw.Err()
}

// RenderDiff renders per-field unified diffs.
func (p *CardPresenter) RenderDiff(diffs []*DiffView) error {
	tw := &lineWriter{w: p.w}
	if len(diffs) == 0 {
		tw.println("No differences.")
		return tw.Err()
	}

	for _, d := range diffs {
		tw.printf("%s %s\n", p.color.Header(d.Field), p.color.Dim("("+d.Status+")"))
		for _, line := range strings.Split(strings.TrimRight(d.Content, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
				tw.println(p.color.DiffHeader(line))
			case strings.HasPrefix(line, "+"):
				tw.println(p.color.DiffAdd(line))
			case strings.HasPrefix(line, "-"):
				tw.println(p.color.DiffRemove(line))
			default:
				tw.println(line)
			}
		}
		tw.println()
	}

	return tw.Err()
}

// RenderConfig renders the configuration as sorted dotted keys.
func (p *CardPresenter) RenderConfig(config *ConfigView) error {
	tw := &lineWriter{w: p.w}
	tw.printf("%s %s\n\n", p.color.Header("Configuration"), p.color.Path(config.Location))

	flat := make(map[string]any)
	flatten("", config.Values, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tw.printf("  %-32s %v\n", k, flat[k])
	}

	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *CardPresenter) RenderMessage(message string) error {
	tw := &lineWriter{w: p.w}
	tw.println(message)
	return tw.Err()
}

// RenderError renders an error message.
func (p *CardPresenter) RenderError(err error) error {
	tw := &lineWriter{w: p.w}
	tw.println(p.color.Error("Error: " + err.Error()))
	return tw.Err()
}

func flatten(prefix string, values map[string]any, out map[string]any) {
	for k, v := range values {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

var _ Presenter = (*CardPresenter)(nil)
