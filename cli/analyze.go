package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/source/elasticsearch"
	"github.com/safedep/fieldcard/storage"
	"github.com/safedep/fieldcard/tui"
	"github.com/spf13/cobra"
)

// sourceElasticsearch is the snapshot source of live analyses.
const sourceElasticsearch = "elasticsearch"

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	var (
		save           string
		output         string
		linesToSample  int
		textFormat     string
		timestampField string
		format         string
	)

	cmd := &cobra.Command{
		Use:   "analyze <sample-file>",
		Short: "Analyze a sample with Elasticsearch and render its cards",
		Long: `Analyze a sample with Elasticsearch and render its cards.

The sample is sent to the _text_structure/find_structure API of the
configured cluster. The resulting field statistics are rendered as cards
and can be saved as a snapshot or written to a file for later use.`,
		Example: `  fieldcard analyze access.log
  fieldcard analyze events.ndjson --lines-to-sample 5000 --save baseline
  fieldcard analyze events.ndjson --output structure.json --format plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			samplePath := args[0]

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			esCfg := app.Config.Elasticsearch
			analyzer, err := elasticsearch.NewAnalyzer(elasticsearch.Config{
				Addresses: esCfg.Addresses,
				Username:  esCfg.Username,
				Password:  esCfg.Password,
				APIKey:    esCfg.APIKey,
			})
			if err != nil {
				return ErrConfig("invalid elasticsearch settings", err)
			}

			if !cmd.Flags().Changed("lines-to-sample") {
				linesToSample = esCfg.LinesToSample
			}

			sample, err := os.Open(samplePath)
			if err != nil {
				return ErrSource("failed to open sample", err)
			}
			defer sample.Close()

			opts := elasticsearch.Options{
				LinesToSample:  linesToSample,
				Format:         textFormat,
				TimestampField: timestampField,
			}

			msg := fmt.Sprintf("Analyzing %s...", filepath.Base(samplePath))
			result, err := tui.RunWithSpinner(ctx, msg, func(ctx context.Context) (*fieldstats.StructureResult, error) {
				return analyzer.FindStructure(ctx, sample, opts)
			}, tui.WithWriter(cmd.ErrOrStderr()), tui.WithColors(app.Config.ShouldUseColors()))
			if err != nil {
				return ErrSource("structure analysis failed", err)
			}
			debugf(cmd, "analyzed %d lines, %d messages, format %s",
				result.NumLinesAnalyzed, result.NumMessagesAnalyzed, result.Format)

			if output != "" {
				if err := writeStructure(output, result); err != nil {
					return ErrRender("failed to write analysis", err)
				}
				infof(cmd, "Wrote analysis to %s", output)
			}

			records := fieldstats.FromStructure(result)

			if save != "" {
				snap := &storage.Snapshot{
					Name:                save,
					Source:              sourceElasticsearch,
					NumMessagesAnalyzed: result.NumMessagesAnalyzed,
					Fields:              records,
				}
				if err := app.SaveSnapshot(ctx, snap); err != nil {
					return err
				}
				infof(cmd, "Saved snapshot %s (%s)", save, tui.FormatShortID(snap.ID.String()))
			}

			cards := tui.NewCardViews(app.Builder, records)
			if err := app.Presenter(cmd.OutOrStdout(), tui.ParseFormat(format)).RenderCards(cards); err != nil {
				return ErrRender("failed to render cards", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&save, "save", "", "save the result as a named snapshot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the raw analysis as JSON to this file")
	cmd.Flags().IntVar(&linesToSample, "lines-to-sample", 0, "number of lines to analyze (default from config)")
	cmd.Flags().StringVar(&textFormat, "text-format", "", "sample format hint: ndjson, xml, delimited, semi_structured_text")
	cmd.Flags().StringVar(&timestampField, "timestamp-field", "", "name of the timestamp field")
	cmd.Flags().StringVar(&format, "format", "card", "output format: card, plain, json, jsonl, csv")

	return cmd
}

func writeStructure(path string, result *fieldstats.StructureResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
