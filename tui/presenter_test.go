package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/tui/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() []*CardView {
	b := card.NewBuilder(card.DefaultCollaborators(nil, time.UTC), card.Options{})
	return NewCardViews(b, []fieldstats.Record{
		{
			Name: "status", Type: "keyword", Count: 4, Percent: 100, Cardinality: 2,
			TopHits: []fieldstats.TopHit{{Value: "ok", Count: 3}, {Value: "err", Count: 1}},
		},
		{Name: "ghost", Type: "text"},
	})
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatCard, ParseFormat(""))
	assert.Equal(t, FormatCard, ParseFormat("table"))
	assert.Equal(t, FormatPlain, ParseFormat("plain"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSONL, ParseFormat("jsonl"))
	assert.Equal(t, FormatCSV, ParseFormat("csv"))
}

func TestNewCardViews(t *testing.T) {
	cards := testCards()
	require.Len(t, cards, 2)
	assert.Equal(t, "data+top_hits", cards[0].State)
	assert.Equal(t, "empty", cards[1].State)
	assert.NotNil(t, cards[0].Tree.Find(card.RoleTopHit))
}

func TestCardPresenter_RenderCards(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCard, PresenterOptions{Writer: &buf, TerminalWidth: 100, CardWidth: 48})

	require.NoError(t, p.RenderCards(testCards()))
	out := buf.String()

	assert.Contains(t, out, "status")
	assert.Contains(t, out, "4 documents (100%)")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "No field information available")

	// Two 48-wide cards fit side by side in 100 columns.
	first := strings.Split(out, "\n")[0]
	assert.Equal(t, 2, strings.Count(first, "╭"))
}

func TestCardPresenter_NarrowTerminalStacks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCard, PresenterOptions{Writer: &buf, TerminalWidth: 60, CardWidth: 48})

	require.NoError(t, p.RenderCards(testCards()))
	assert.Equal(t, 2, strings.Count(buf.String(), "╭"))
	assert.Equal(t, 1, strings.Count(strings.Split(buf.String(), "\n")[0], "╭"))
}

func TestCardPresenter_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCard, PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderCards(nil))
	assert.Equal(t, "No fields found.\n", buf.String())
}

func TestPlainPresenter_RenderCards(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatPlain, PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderCards(testCards()))
	assert.Equal(t, strings.Join([]string{
		"keyword type, status",
		"4 documents (100%)",
		"2 distinct values",
		"top values:",
		"  ok: 75%",
		"  err: 25%",
		"",
		"text type, ghost",
		"No field information available",
		"",
	}, "\n"), buf.String())
}

func TestJSONPresenter_RenderCards(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatJSON, PresenterOptions{Writer: &buf})

	require.NoError(t, p.RenderCards(testCards()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "data+top_hits", decoded[0]["state"])

	tree := decoded[0]["tree"].(map[string]any)
	assert.Equal(t, "panel", tree["kind"])
}

func TestJSONLPresenter_RenderCards(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatJSONL, PresenterOptions{Writer: &buf})

	require.NoError(t, p.RenderCards(testCards()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)

	buf.Reset()
	require.NoError(t, p.RenderMessage("done"))
	assert.JSONEq(t, `{"message":"done"}`, buf.String())
}

func TestCSVPresenter_RenderCards(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCSV, PresenterOptions{Writer: &buf})

	require.NoError(t, p.RenderCards(testCards()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,type,state,count,percent,cardinality,min,median,max,top_values", lines[0])
	assert.Equal(t, "status,keyword,data+top_hits,4,100,2,,,,2", lines[1])
	assert.Equal(t, "ghost,text,empty,0,0,0,,,,0", lines[2])
}

func TestCardPresenter_RenderDiff(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCard, PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderDiff([]*DiffView{{
		Field:   "status",
		Status:  DiffChanged,
		Content: "--- a/status\n+++ b/status\n@@ -1 +1 @@\n-1 document\n+2 documents\n",
	}}))

	out := buf.String()
	assert.Contains(t, out, "status (changed)")
	assert.Contains(t, out, "-1 document")
	assert.Contains(t, out, "+2 documents")
}

func TestCardPresenter_RenderConfig(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCard, PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderConfig(&ConfigView{
		Location: "/tmp/config.yaml",
		Values: map[string]any{
			"display": map[string]any{"colors": "auto", "width": 0},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "display.colors")
	assert.Contains(t, out, "display.width")
	assert.Less(t, strings.Index(out, "display.colors"), strings.Index(out, "display.width"))
}

func TestCardPresenter_RenderError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(FormatCard, PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderError(errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, ClampWidth(10))
	assert.Equal(t, 120, ClampWidth(120))
	assert.Equal(t, MaxTerminalWidth, ClampWidth(1000))
	assert.Equal(t, DefaultTerminalWidth, WriterWidth(&bytes.Buffer{}))
}
