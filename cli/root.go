// Package cli provides the command-line interface for fieldcard.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/safedep/dry/log"
	"github.com/safedep/fieldcard/config"
	"github.com/safedep/fieldcard/core/i18n"
	"github.com/safedep/fieldcard/internal/version"
	"github.com/safedep/fieldcard/storage"
	"github.com/safedep/fieldcard/tui"
	"github.com/safedep/fieldcard/tui/card"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Store    storage.Store
	Paths    *config.Paths
	Messages *i18n.Catalog
	Builder  *card.Builder
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) (*App, error) {
	messages, err := i18n.LoadFile(cfg.Display.LocaleFile)
	if err != nil {
		return nil, err
	}

	builder := card.NewBuilder(
		card.DefaultCollaborators(messages, cfg.Location()),
		card.Options{LabelWidth: cfg.Display.LabelWidth},
	)

	return &App{
		Config:   cfg,
		Paths:    config.ResolvePaths(),
		Messages: messages,
		Builder:  builder,
	}, nil
}

// InitStore opens the snapshot database.
func (a *App) InitStore(ctx context.Context) error {
	if a.Store != nil {
		return nil
	}

	dbPath := a.Config.GetDatabasePath()
	if err := config.EnsureDataDir(dbPath); err != nil {
		return err
	}

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return err
	}
	a.Store = store

	return nil
}

// SaveSnapshot stores snap and then prunes snapshots that fell out of the
// retention window. Pruning failures are logged, not returned.
func (a *App) SaveSnapshot(ctx context.Context, snap *storage.Snapshot) error {
	if err := a.InitStore(ctx); err != nil {
		return ErrStorage("failed to open snapshot database", err)
	}
	if err := a.Store.SaveSnapshot(ctx, snap); err != nil {
		return ErrStorage("failed to save snapshot", err)
	}

	if cutoff, ok := a.Config.RetentionCutoff(time.Now()); ok {
		deleted, err := a.Store.DeleteSnapshotsBefore(ctx, cutoff)
		if err != nil {
			log.Errorf("failed to apply snapshot retention: %v", err)
		} else if deleted > 0 {
			log.Debugf("pruned %d snapshots older than %s", deleted, cutoff.Format(time.RFC3339))
		}
	}

	return nil
}

// Close closes the application resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Presenter creates a presenter for the given format writing to w.
func (a *App) Presenter(w io.Writer, format tui.Format) tui.Presenter {
	return tui.NewPresenter(format, tui.PresenterOptions{
		Writer:        w,
		UseColors:     a.Config.ShouldUseColors(),
		TerminalWidth: tui.WriterWidth(w),
		CardWidth:     a.Config.Display.Width,
		BarWidth:      a.Config.Display.BarWidth,
	})
}

// closeApp closes the app and logs failures, for use in defer.
func closeApp(a *App) {
	if err := a.Close(); err != nil {
		log.Errorf("failed to close app: %v", err)
	}
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fieldcard",
		Short: "Field statistics cards for text structure analyses",
		Long: `fieldcard renders one card per field of a text structure analysis.

Statistics come from a saved find_structure result, a fields document,
a stored snapshot, or a live Elasticsearch cluster. Each card shows the
document count, distinct values, the value range and the most frequent
values of a field.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("FIELDCARD_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		NewCardCmd(),
		NewBrowseCmd(),
		NewAnalyzeCmd(),
		NewSnapshotCmd(),
		NewDiffCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// Always skip the stdout logger since we are running in a CLI context
	// with our own TUI.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("fieldcard", "cli")
}

// infof prints a status line to stderr unless --quiet is set.
func infof(cmd *cobra.Command, format string, args ...any) {
	if globalFlags.Quiet {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// debugf prints a status line to stderr only with --verbose.
func debugf(cmd *cobra.Command, format string, args ...any) {
	log.Debugf(format, args...)
	if globalFlags.Verbose && !globalFlags.Quiet {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

// configPath returns the config file the commands read and write.
func configPath() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	return config.ResolvePaths().ConfigFile
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load config", err)
	}

	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	app, err := NewApp(cfg)
	if err != nil {
		return nil, ErrConfig("failed to load message catalog", err)
	}

	return app, nil
}
