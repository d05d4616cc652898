package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/storage"
	"github.com/safedep/fieldcard/tui"
	"github.com/spf13/cobra"
)

// NewSnapshotCmd creates the snapshot command.
func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"snapshots"},
		Short:   "Manage saved analyses",
		Long: `Manage saved analyses.

Snapshots keep the field statistics of an analysis so that cards can be
rendered and compared later without the original file or cluster.`,
	}

	cmd.AddCommand(
		newSnapshotImportCmd(),
		newSnapshotListCmd(),
		newSnapshotShowCmd(),
		newSnapshotDeleteCmd(),
		newSnapshotPruneCmd(),
	)

	return cmd
}

func newSnapshotImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Save a stats document as a snapshot",
		Example: `  fieldcard snapshot import structure.json
  fieldcard snapshot import structure.yaml --name nightly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			doc, err := fieldstats.DecodeFile(path)
			if err != nil {
				return ErrSource("failed to read stats document", err)
			}

			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			snap := &storage.Snapshot{
				Name:                name,
				Source:              path,
				NumMessagesAnalyzed: doc.NumMessagesAnalyzed,
				Fields:              doc.Fields,
			}
			if err := app.SaveSnapshot(ctx, snap); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), snap.ID.String())
			infof(cmd, "Saved snapshot %s with %d fields", name, len(snap.Fields))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "snapshot name (default: file name)")

	return cmd
}

func newSnapshotListCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			if err := app.InitStore(ctx); err != nil {
				return ErrStorage("failed to open snapshot database", err)
			}

			snaps, err := app.Store.ListSnapshots(ctx, limit)
			if err != nil {
				return ErrStorage("failed to list snapshots", err)
			}

			views := make([]*tui.SnapshotView, 0, len(snaps))
			for _, snap := range snaps {
				views = append(views, snapshotView(snap))
			}

			if err := app.Presenter(cmd.OutOrStdout(), tui.ParseFormat(format)).RenderSnapshots(views); err != nil {
				return ErrRender("failed to render snapshots", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of snapshots (0 for all)")
	cmd.Flags().StringVar(&format, "format", "card", "output format: card, json, jsonl, csv")

	return cmd
}

func newSnapshotShowCmd() *cobra.Command {
	var (
		fields []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "show <snapshot-id>",
		Short: "Render the cards of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			snap, err := app.findSnapshot(ctx, args[0])
			if err != nil {
				return err
			}

			doc := &fieldstats.Document{Fields: snap.Fields}
			records := doc.Filter(fields)
			if missing := missingFields(fields, records); len(missing) > 0 {
				return ErrSource("unknown field", fmt.Errorf("%s", strings.Join(missing, ", ")))
			}

			infof(cmd, "%s (%s, %s)", snapshotName(snap), snap.Source, tui.FormatTime(snap.CreatedAt))

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

func newSnapshotDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <snapshot-id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			snap, err := app.findSnapshot(ctx, args[0])
			if err != nil {
				return err
			}

			if _, err := app.Store.DeleteSnapshot(ctx, snap.ID); err != nil {
				return ErrStorage("failed to delete snapshot", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %s\n", snapshotName(snap))
			return nil
		},
	}

	return cmd
}

func newSnapshotPruneCmd() *cobra.Command {
	var (
		olderThan int
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete snapshots older than a number of days",
		Long: `Delete snapshots older than a number of days.

Without --older-than the storage.retention_days setting is used.`,
		Example: `  fieldcard snapshot prune --older-than 30
  fieldcard snapshot prune --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := loadApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			days := olderThan
			if !cmd.Flags().Changed("older-than") {
				days = app.Config.Storage.RetentionDays
			}
			if days <= 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Retention disabled, nothing to prune")
				return nil
			}

			if err := app.InitStore(ctx); err != nil {
				return ErrStorage("failed to open snapshot database", err)
			}

			cutoff := time.Now().AddDate(0, 0, -days)

			if dryRun {
				count, err := app.Store.CountSnapshotsBefore(ctx, cutoff)
				if err != nil {
					return ErrStorage("failed to count snapshots", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Would delete %d snapshots older than %s (%d days)\n",
					count, cutoff.Format(time.RFC3339), days)
				return nil
			}

			deleted, err := app.Store.DeleteSnapshotsBefore(ctx, cutoff)
			if err != nil {
				return ErrStorage("failed to prune snapshots", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d snapshots older than %d days\n", deleted, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&olderThan, "older-than", 0, "age in days (default: storage.retention_days)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")

	return cmd
}
