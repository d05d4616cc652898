package cli

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/tui"
	"github.com/safedep/fieldcard/tui/card"
	"github.com/spf13/cobra"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	var (
		format      string
		contextSize int
	)

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare the cards of two analyses",
		Long: `Compare the cards of two analyses.

Both sides may be stats files or snapshot IDs. Each field is rendered as
accessible text and a unified diff is shown for every field whose card
changed, was added or was removed.`,
		Example: `  fieldcard diff baseline.json today.json
  fieldcard diff 3f2a 9c1e --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			a, err := app.loadSource(ctx, cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			b, err := app.loadSource(ctx, cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			diffs, compared, err := cardDiffs(app.Builder, a, b, contextSize)
			if err != nil {
				return ErrRender("failed to diff cards", err)
			}
			debugf(cmd, "%d of %d fields differ", len(diffs), compared)

			if err := app.Presenter(cmd.OutOrStdout(), tui.ParseFormat(format)).RenderDiff(diffs); err != nil {
				return ErrRender("failed to render diff", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "card", "output format: card, json, jsonl, csv")
	cmd.Flags().IntVarP(&contextSize, "context", "U", 3, "lines of context around changes")

	return cmd
}

// cardDiffs compares the accessible rendering of every field of a and b,
// ordered by field name. It also returns the number of distinct field names
// compared.
func cardDiffs(b *card.Builder, a, other *statsSource, contextSize int) ([]*tui.DiffView, int, error) {
	left := renderAccessibleByName(b, a.Document.Fields)
	right := renderAccessibleByName(b, other.Document.Fields)

	names := make([]string, 0, len(left)+len(right))
	for name := range left {
		names = append(names, name)
	}
	for name := range right {
		if _, ok := left[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var diffs []*tui.DiffView
	for _, name := range names {
		from, inLeft := left[name]
		to, inRight := right[name]

		status := tui.DiffChanged
		switch {
		case !inLeft:
			status = tui.DiffAdded
		case !inRight:
			status = tui.DiffRemoved
		case from == to:
			continue
		}

		content, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        splitLines(from),
			B:        splitLines(to),
			FromFile: a.Name,
			ToFile:   other.Name,
			Context:  contextSize,
		})
		if err != nil {
			return nil, 0, err
		}

		diffs = append(diffs, &tui.DiffView{Field: name, Status: status, Content: content})
	}

	return diffs, len(names), nil
}

func renderAccessibleByName(b *card.Builder, records []fieldstats.Record) map[string]string {
	out := make(map[string]string, len(records))
	for _, rec := range records {
		out[rec.Name] = card.RenderAccessible(b.Build(rec))
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return difflib.SplitLines(s)
}
