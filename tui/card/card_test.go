package card

import (
	"testing"
	"time"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/core/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *Builder {
	return NewBuilder(DefaultCollaborators(i18n.Default(), time.UTC), Options{})
}

func TestAccessibleLabel(t *testing.T) {
	assert.Equal(t, "number, bytes", AccessibleLabel("bytes", "number"))
	assert.Equal(t, "bytes", AccessibleLabel("bytes", ""))
}

func TestBuild_Header(t *testing.T) {
	var iconTypes []string
	b := NewBuilder(Collaborators{
		Icon: func(displayType string) Icon {
			iconTypes = append(iconTypes, displayType)
			return Icon{Name: displayType, Glyph: "#"}
		},
		TypeLabel: func(displayType string) string {
			if displayType == "number" {
				return "number"
			}
			return ""
		},
	}, Options{})

	root := b.Build(fieldstats.Record{Name: "bytes", Type: "long", Count: 1})
	header := root.Find(RoleHeader)
	require.NotNil(t, header)

	assert.Equal(t, "number, bytes", header.AriaLabel)
	assert.True(t, header.Focusable)
	require.Len(t, header.Children, 2)
	assert.Equal(t, KindIcon, header.Children[0].Kind)
	assert.True(t, header.Children[0].Decorative)
	assert.Equal(t, "bytes", header.Children[1].Text)
	assert.Equal(t, []string{"number"}, iconTypes)

	root = b.Build(fieldstats.Record{Name: "host", Type: "keyword", Count: 1})
	assert.Equal(t, "host", root.Find(RoleHeader).AriaLabel)
}

func TestBuild_TypeCoalescing(t *testing.T) {
	b := newTestBuilder()

	for _, typ := range []string{"double", "long"} {
		root := b.Build(fieldstats.Record{Name: "f", Type: typ, Count: 1})
		header := root.Find(RoleHeader)
		assert.Equal(t, "number", header.Children[0].Icon.Name, typ)
		assert.Equal(t, "number type, f", header.AriaLabel, typ)
	}

	root := b.Build(fieldstats.Record{Name: "f", Type: "integer", Count: 1})
	assert.Equal(t, "unknown", root.Find(RoleHeader).Children[0].Icon.Name)
	assert.Equal(t, "f", root.Find(RoleHeader).AriaLabel)
}

func TestBuild_EmptyRendersOnlyPlaceholder(t *testing.T) {
	b := newTestBuilder()

	root := b.Build(fieldstats.Record{
		Name:        "ghost",
		Type:        "keyword",
		Count:       0,
		Cardinality: 4,
		MedianValue: 3.0,
		TopHits:     []fieldstats.TopHit{{Value: "x", Count: 2}},
	})

	content := root.Find(RoleContent)
	require.Len(t, content.Children, 1)
	assert.Equal(t, RolePlaceholder, content.Children[0].Role)
	assert.Equal(t, "No field information available", content.Children[0].Text)

	for _, role := range []Role{RoleDocuments, RoleDistinct, RoleRangeValues, RoleTopValues, RoleTopHit} {
		assert.Nil(t, root.Find(role), role)
	}
}

func TestBuild_Counts(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		name         string
		count        int64
		percent      float64
		cardinality  int64
		wantDocs     string
		wantDistinct string
	}{
		{"singular", 1, 12.5, 1, "1 document (12.5%)", "1 distinct value"},
		{"plural", 2, 100, 0, "2 documents (100%)", "0 distinct values"},
		{"thousands", 1500, 33.33, 12, "1,500 documents (33.33%)", "12 distinct values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := b.Build(fieldstats.Record{
				Name: "f", Type: "keyword",
				Count: tt.count, Percent: tt.percent, Cardinality: tt.cardinality,
			})

			assert.Equal(t, tt.wantDocs, root.Find(RoleDocuments).Text)
			assert.Equal(t, tt.wantDistinct, root.Find(RoleDistinct).Text)
			assert.Nil(t, root.Find(RolePlaceholder))
		})
	}
}

func TestBuild_RangeGatedOnMedianPresence(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		name      string
		rec       fieldstats.Record
		wantRange bool
		wantVals  []string
	}{
		{
			name:      "median of zero is shown",
			rec:       fieldstats.Record{Count: 3, MinValue: 0.0, MedianValue: 0.0, MaxValue: 5.5},
			wantRange: true,
			wantVals:  []string{"0", "0", "5.5"},
		},
		{
			name:      "min and max without median are hidden",
			rec:       fieldstats.Record{Count: 3, MinValue: 1.0, MaxValue: 5.0},
			wantRange: false,
		},
		{
			name:      "string median",
			rec:       fieldstats.Record{Count: 3, MinValue: "a", MedianValue: "m", MaxValue: "z"},
			wantRange: true,
			wantVals:  []string{"a", "m", "z"},
		},
		{
			name:      "median without min and max",
			rec:       fieldstats.Record{Count: 3, MedianValue: 2},
			wantRange: true,
			wantVals:  []string{"", "2", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rec.Name = "f"
			root := b.Build(tt.rec)

			headings := root.Find(RoleRangeHeadings)
			values := root.Find(RoleRangeValues)
			if !tt.wantRange {
				assert.Nil(t, headings)
				assert.Nil(t, values)
				return
			}

			require.NotNil(t, headings)
			require.NotNil(t, values)
			assert.Equal(t, []string{"min", "median", "max"}, texts(headings.Children))
			assert.Equal(t, tt.wantVals, texts(values.Children))
		})
	}
}

func TestBuild_TopHits(t *testing.T) {
	b := newTestBuilder()

	root := b.Build(fieldstats.Record{
		Name:  "status",
		Type:  "keyword",
		Count: 3,
		TopHits: []fieldstats.TopHit{
			{Value: "ok", Count: 1},
			{Value: "error", Count: 2},
			{Value: 404.0, Count: 3},
		},
	})

	require.NotNil(t, root.Find(RoleTopValues))
	assert.Equal(t, "top values", root.Find(RoleTopValues).Text)

	rows := root.FindAll(RoleTopHit)
	require.Len(t, rows, 3)

	var labels, pcts []string
	for _, row := range rows {
		labels = append(labels, row.Find(RoleTopHitLabel).Text)
		pcts = append(pcts, row.Find(RoleTopHitPercent).Text)

		bar := row.Find(RoleTopHitBar)
		assert.Equal(t, KindProgress, bar.Kind)
		assert.Equal(t, int64(3), bar.Max)
	}

	assert.Equal(t, []string{"ok", "error", "404"}, labels, "input order is preserved")
	assert.Equal(t, []string{"33.33%", "66.67%", "100%"}, pcts)

	label := rows[0].Find(RoleTopHitLabel)
	assert.Equal(t, AlignRight, label.Align)
	assert.True(t, label.Truncate)
	assert.Equal(t, DefaultLabelWidth, label.Width)
	assert.Equal(t, AlignLeft, rows[0].Find(RoleTopHitPercent).Align)
}

func TestBuild_EmptyTopHitsOmitted(t *testing.T) {
	root := newTestBuilder().Build(fieldstats.Record{Name: "f", Count: 2, TopHits: []fieldstats.TopHit{}})
	assert.Nil(t, root.Find(RoleTopValues))
	assert.Empty(t, root.FindAll(RoleTopHit))
}

func TestBuild_MalformedInputIsBestEffort(t *testing.T) {
	root := newTestBuilder().Build(fieldstats.Record{
		Name:        "weird",
		Type:        "made_up",
		Count:       2,
		Cardinality: -1,
		TopHits: []fieldstats.TopHit{
			{Value: nil, Count: 5},
			{Value: map[string]any{"a": 1.0}, Count: -1},
		},
	})

	rows := root.FindAll(RoleTopHit)
	require.Len(t, rows, 2)
	assert.Equal(t, "250%", rows[0].Find(RoleTopHitPercent).Text)
	assert.Equal(t, "", rows[0].Find(RoleTopHitLabel).Text)
	assert.Equal(t, "-50%", rows[1].Find(RoleTopHitPercent).Text)
	assert.Equal(t, "-1 distinct values", root.Find(RoleDistinct).Text)
}

func TestBuild_IsPure(t *testing.T) {
	b := newTestBuilder()
	rec := fieldstats.Record{
		Name:        "bytes",
		Type:        "long",
		Count:       3,
		Percent:     75,
		Cardinality: 2,
		MinValue:    0.0,
		MedianValue: 1.0,
		MaxValue:    9.0,
		TopHits:     []fieldstats.TopHit{{Value: 1.0, Count: 2}, {Value: 9.0, Count: 1}},
	}
	orig := rec
	orig.TopHits = append([]fieldstats.TopHit(nil), rec.TopHits...)

	first := b.Build(rec)
	second := b.Build(rec)

	assert.Equal(t, first, second)
	assert.Equal(t, orig, rec)
}

func TestDisplayValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	loc := time.FixedZone("X", 3600)

	assert.Equal(t, "2024-03-01 13:30:00", DisplayValue(ts, loc))
	assert.Equal(t, "1.5", DisplayValue(1.5, loc))
	assert.Equal(t, "0", DisplayValue(0.0, loc))
	assert.Equal(t, "7", DisplayValue(7, loc))
	assert.Equal(t, "true", DisplayValue(true, loc))
	assert.Equal(t, "", DisplayValue(nil, loc))
	assert.Equal(t, `[1,"a"]`, DisplayValue([]any{1.0, "a"}, loc))
}

func TestBuild_DateRangeUsesDisplayTimezone(t *testing.T) {
	b := NewBuilder(DefaultCollaborators(i18n.Default(), time.FixedZone("X", 3600)), Options{})

	rec := fieldstats.Record{
		Name:        "@timestamp",
		Type:        "date",
		Count:       2,
		MinValue:    "2024-03-01T12:30:00Z",
		MedianValue: "2024-03-01T12:45:00.5Z",
		MaxValue:    "01/03/2024",
	}
	values := b.Build(rec).Find(RoleRangeValues)
	require.NotNil(t, values)
	assert.Equal(t, []string{"2024-03-01 13:30:00", "2024-03-01 13:45:00", "01/03/2024"}, texts(values.Children))

	rec.Type = "keyword"
	values = b.Build(rec).Find(RoleRangeValues)
	require.NotNil(t, values)
	assert.Equal(t, "2024-03-01T12:30:00Z", values.Children[0].Text)
}

func TestFieldTypeIcon(t *testing.T) {
	assert.Equal(t, "#", FieldTypeIcon("number").Glyph)
	assert.Equal(t, "?", FieldTypeIcon("double").Glyph)
	assert.Equal(t, "unknown", FieldTypeIcon("").Name)
}

func texts(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text)
	}
	return out
}
