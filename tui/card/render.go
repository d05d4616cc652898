package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/safedep/fieldcard/core/fieldstats"
)

const (
	// DefaultCardWidth is the outer width of a card when none is given.
	DefaultCardWidth = 48
	minCardWidth     = 24
	minBarWidth      = 4
	ellipsis         = "…"
)

// RenderOptions controls terminal rendering of a card.
type RenderOptions struct {
	// Width is the outer width including the border.
	Width     int
	UseColors bool
	// Focused draws a heavier, highlighted border.
	Focused bool
	// BarWidth caps the top value bars. Zero fills the remaining width.
	BarWidth int
}

// RenderTerminal draws a card tree as a bordered lipgloss panel.
func RenderTerminal(root *Node, opts RenderOptions) string {
	if opts.Width <= 0 {
		opts.Width = DefaultCardWidth
	}
	if opts.Width < minCardWidth {
		opts.Width = minCardWidth
	}

	st := newStyles(opts.UseColors, opts.Focused)
	r := &terminalRenderer{st: st, inner: opts.Width - 4, barCap: opts.BarWidth}

	var lines []string
	for _, child := range root.Children {
		lines = append(lines, r.node(child)...)
	}

	return st.panel.Width(opts.Width - 2).Render(strings.Join(lines, "\n"))
}

type terminalRenderer struct {
	st     styles
	inner  int
	barCap int
}

func (r *terminalRenderer) node(n *Node) []string {
	switch n.Role {
	case RoleHeader:
		return []string{r.header(n)}
	case RoleContent:
		var lines []string
		for _, c := range n.Children {
			lines = append(lines, r.node(c)...)
		}
		return lines
	case RoleRangeHeadings:
		return []string{r.columns(n, r.st.label)}
	case RoleRangeValues:
		return []string{r.columns(n, r.st.value)}
	case RoleTopHit:
		return []string{r.topHit(n)}
	}

	switch n.Kind {
	case KindSpacer:
		return []string{""}
	case KindStat:
		return []string{r.stat(n)}
	default:
		if n.Text != "" {
			return []string{r.truncate(n.Text, r.inner)}
		}
		return nil
	}
}

func (r *terminalRenderer) header(n *Node) string {
	var parts []string
	for _, c := range n.Children {
		switch c.Kind {
		case KindIcon:
			if c.Icon != nil {
				parts = append(parts, r.st.icon(c.Icon.Color).Render(c.Icon.Glyph))
			}
		case KindText:
			parts = append(parts, r.st.title.Render(r.truncate(c.Text, r.inner-2)))
		}
	}
	return strings.Join(parts, " ")
}

func (r *terminalRenderer) stat(n *Node) string {
	s := r.st.value
	if n.Role == RoleTopValues || n.Role == RolePlaceholder {
		s = r.st.label
	}

	line := n.Text
	if n.Icon != nil {
		line = n.Icon.Glyph + " " + line
	}
	return s.Render(r.truncate(line, r.inner))
}

// columns spreads the children of n over equal centered columns.
func (r *terminalRenderer) columns(n *Node, s lipgloss.Style) string {
	if len(n.Children) == 0 {
		return ""
	}

	colW := r.inner / len(n.Children)
	cells := make([]string, 0, len(n.Children))
	for i, c := range n.Children {
		w := colW
		if i == len(n.Children)-1 {
			w = r.inner - colW*(len(n.Children)-1)
		}
		cells = append(cells, s.Width(w).Align(lipgloss.Center).Render(r.truncate(c.Text, w)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (r *terminalRenderer) topHit(n *Node) string {
	var label, bar, pct *Node
	for _, c := range n.Children {
		switch c.Role {
		case RoleTopHitLabel:
			label = c
		case RoleTopHitBar:
			bar = c
		case RoleTopHitPercent:
			pct = c
		}
	}

	labelW, pctW := r.hitColumns(label, pct)

	var cells []string
	if label != nil {
		// One cell of gap between label and bar.
		text := r.truncate(label.Text, labelW-1) + " "
		cells = append(cells, r.st.label.Width(labelW).Align(lipgloss.Right).Render(text))
	}

	if bar != nil {
		w := r.inner - labelW - pctW
		if r.barCap > 0 && w > r.barCap {
			w = r.barCap
		}
		if w < minBarWidth {
			w = minBarWidth
		}
		cells = append(cells, r.bar(bar.Value, bar.Max, w))
	}

	if pct != nil {
		cells = append(cells, r.st.label.Width(pctW).Align(lipgloss.Left).Render(" "+r.truncate(pct.Text, pctW-1)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// hitColumns fits the label and percentage columns of a top value row into
// the inner width, leaving at least minBarWidth cells for the bar. The label
// column gives way first.
func (r *terminalRenderer) hitColumns(label, pct *Node) (labelW, pctW int) {
	if label != nil {
		labelW = label.Width
	}
	if pct != nil {
		pctW = pct.Width
	}

	avail := r.inner - minBarWidth
	if labelW+pctW > avail && label != nil {
		labelW = max(1, avail-pctW)
	}
	if labelW+pctW > avail && pct != nil {
		pctW = max(1, avail-labelW)
	}
	return labelW, pctW
}

func (r *terminalRenderer) bar(value, max int64, width int) string {
	filled := int(fieldstats.Fraction(value, max)*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return r.st.barFill.Render(strings.Repeat("█", filled)) +
		r.st.barRest.Render(strings.Repeat("░", width-filled))
}

func (r *terminalRenderer) truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, ellipsis)
}
