package card

import (
	"strings"
	"time"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/core/i18n"
)

const (
	// DefaultLabelWidth is the width of the top value label column.
	DefaultLabelWidth = 14
	// DefaultPercentWidth is the width of the top value percentage column.
	DefaultPercentWidth = 8
)

// Options tunes the layout hints written into the tree.
type Options struct {
	LabelWidth   int
	PercentWidth int
}

// Builder turns field records into visual trees. It holds no per-card state
// and is safe for concurrent use.
type Builder struct {
	collab Collaborators
	opts   Options
}

// NewBuilder creates a Builder. Missing collaborators are replaced with the
// defaults.
func NewBuilder(collab Collaborators, opts Options) *Builder {
	def := DefaultCollaborators(collab.Messages, nil)
	if collab.Messages == nil {
		collab.Messages = def.Messages
	}
	if collab.Icon == nil {
		collab.Icon = def.Icon
	}
	if collab.DisplayValue == nil {
		collab.DisplayValue = def.DisplayValue
	}
	if collab.TypeLabel == nil {
		collab.TypeLabel = def.TypeLabel
	}
	if opts.LabelWidth <= 0 {
		opts.LabelWidth = DefaultLabelWidth
	}
	if opts.PercentWidth <= 0 {
		opts.PercentWidth = DefaultPercentWidth
	}
	return &Builder{collab: collab, opts: opts}
}

// AccessibleLabel joins the type label and the field name. An empty type
// label is omitted.
func AccessibleLabel(name, typeLabel string) string {
	if typeLabel == "" {
		return name
	}
	return strings.Join([]string{typeLabel, name}, ", ")
}

// Build returns the visual tree of rec. rec is not modified.
func (b *Builder) Build(rec fieldstats.Record) *Node {
	displayType := fieldstats.DisplayType(rec.Type)
	state := fieldstats.Classify(&rec)

	return &Node{
		Kind: KindPanel,
		Role: RoleCard,
		Children: []*Node{
			b.header(rec.Name, displayType),
			{
				Kind:     KindFlexItem,
				Role:     RoleContent,
				Children: b.content(&rec, state),
			},
		},
	}
}

func (b *Builder) header(name, displayType string) *Node {
	icon := b.collab.Icon(displayType)
	return &Node{
		Kind:      KindFlex,
		Role:      RoleHeader,
		AriaLabel: AccessibleLabel(name, b.collab.TypeLabel(displayType)),
		Focusable: true,
		Children: []*Node{
			{Kind: KindIcon, Icon: &icon, Decorative: true},
			text(RoleTitle, name),
		},
	}
}

func (b *Builder) content(rec *fieldstats.Record, state fieldstats.State) []*Node {
	msgs := b.collab.Messages

	switch state {
	case fieldstats.StateEmpty:
		return []*Node{{
			Kind: KindStat,
			Role: RolePlaceholder,
			Text: msgs.Text(i18n.MsgNoInformation, nil),
		}}

	case fieldstats.StateDataOnly:
		return b.counts(rec)

	case fieldstats.StateDataWithRange:
		return append(b.counts(rec), b.rangeRows(rec)...)

	case fieldstats.StateDataWithTopHits:
		return append(b.counts(rec), b.topHits(rec)...)

	case fieldstats.StateDataWithRangeAndTopHits:
		nodes := append(b.counts(rec), b.rangeRows(rec)...)
		return append(nodes, b.topHits(rec)...)
	}

	return nil
}

func (b *Builder) counts(rec *fieldstats.Record) []*Node {
	msgs := b.collab.Messages
	return []*Node{
		{
			Kind: KindStat,
			Role: RoleDocuments,
			Icon: &Icon{Name: "documents", Glyph: "▤"},
			Text: msgs.Plural(i18n.MsgDocumentsCount, rec.Count, map[string]string{
				"percent": i18n.FormatFloat(rec.Percent),
			}),
			Decorative: true,
		},
		{
			Kind:       KindStat,
			Role:       RoleDistinct,
			Icon:       &Icon{Name: "distinct", Glyph: "◆"},
			Text:       msgs.Plural(i18n.MsgDistinctCount, rec.Cardinality, nil),
			Decorative: true,
		},
	}
}

func (b *Builder) rangeRows(rec *fieldstats.Record) []*Node {
	msgs := b.collab.Messages
	show := b.collab.DisplayValue
	if fieldstats.DisplayType(rec.Type) == "date" {
		show = func(v any) string {
			return b.collab.DisplayValue(parseDate(v))
		}
	}

	return []*Node{
		{
			Kind: KindFlex,
			Role: RoleRangeHeadings,
			Children: []*Node{
				{Kind: KindText, Text: msgs.Text(i18n.MsgMinTitle, nil), Align: AlignCenter, Subdued: true},
				{Kind: KindText, Text: msgs.Text(i18n.MsgMedianTitle, nil), Align: AlignCenter, Subdued: true},
				{Kind: KindText, Text: msgs.Text(i18n.MsgMaxTitle, nil), Align: AlignCenter, Subdued: true},
			},
		},
		{
			Kind: KindFlex,
			Role: RoleRangeValues,
			Children: []*Node{
				{Kind: KindText, Text: show(rec.MinValue), Align: AlignCenter},
				{Kind: KindText, Text: show(rec.MedianValue), Align: AlignCenter},
				{Kind: KindText, Text: show(rec.MaxValue), Align: AlignCenter},
			},
		},
	}
}

// parseDate turns RFC 3339 strings into times so that dates decoded from
// JSON get the display timezone. Anything else is returned unchanged.
func parseDate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return v
	}
	return t
}

func (b *Builder) topHits(rec *fieldstats.Record) []*Node {
	nodes := make([]*Node, 0, len(rec.TopHits)+2)
	nodes = append(nodes,
		&Node{Kind: KindSpacer},
		&Node{Kind: KindStat, Role: RoleTopValues, Text: b.collab.Messages.Text(i18n.MsgTopValues, nil)},
	)

	for _, hit := range rec.TopHits {
		pct := fieldstats.TopHitPercent(hit.Count, rec.Count)
		nodes = append(nodes, &Node{
			Kind: KindFlex,
			Role: RoleTopHit,
			Children: []*Node{
				{
					Kind:     KindFlexItem,
					Role:     RoleTopHitLabel,
					Text:     primitiveText(hit.Value),
					Align:    AlignRight,
					Width:    b.opts.LabelWidth,
					Truncate: true,
					Subdued:  true,
				},
				{
					Kind:  KindProgress,
					Role:  RoleTopHitBar,
					Value: hit.Count,
					Max:   rec.Count,
				},
				{
					Kind:     KindFlexItem,
					Role:     RoleTopHitPercent,
					Text:     i18n.FormatFloat(pct) + "%",
					Align:    AlignLeft,
					Width:    b.opts.PercentWidth,
					Truncate: true,
					Subdued:  true,
				},
			},
		})
	}

	return nodes
}
