package cli

import (
	"fmt"
	"strings"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/tui"
	"github.com/spf13/cobra"
)

// NewCardCmd creates the card command.
func NewCardCmd() *cobra.Command {
	var (
		fields []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "card <file|snapshot-id|->",
		Short: "Render field statistics cards",
		Long: `Render field statistics cards.

The source is a JSON or YAML stats document, a saved snapshot ID (or a
unique prefix of one), or "-" to read a JSON document from stdin. A stats
document is either a raw find_structure result or {"fields": [...]}.`,
		Example: `  fieldcard card structure.json
  fieldcard card structure.json --field bytes --field status
  fieldcard card 3f2a --format plain
  cat structure.json | fieldcard card - --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			src, err := app.loadSource(ctx, cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			records := src.Document.Filter(fields)
			if missing := missingFields(fields, records); len(missing) > 0 {
				return ErrSource("unknown field", fmt.Errorf("%s", strings.Join(missing, ", ")))
			}
			debugf(cmd, "rendering %d cards from %s", len(records), src.Name)

			cards := tui.NewCardViews(app.Builder, records)
			if err := app.Presenter(cmd.OutOrStdout(), tui.ParseFormat(format)).RenderCards(cards); err != nil {
				return ErrRender("failed to render cards", err)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "render only this field (repeatable)")
	cmd.Flags().StringVar(&format, "format", "card", "output format: card, plain, json, jsonl, csv")

	return cmd
}

// missingFields returns the requested names that have no record.
func missingFields(names []string, records []fieldstats.Record) []string {
	found := make(map[string]bool, len(records))
	for _, rec := range records {
		found[rec.Name] = true
	}

	var missing []string
	for _, name := range names {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
