package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/fieldcard/tui"
	"github.com/safedep/fieldcard/tui/component/browser"
	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the browse command.
func NewBrowseCmd() *cobra.Command {
	var hideEmpty bool

	cmd := &cobra.Command{
		Use:   "browse <file|snapshot-id>",
		Short: "Browse field cards interactively",
		Long: `Browse field cards interactively.

Opens a full-screen view with one card per field. Use the arrow keys to
move between fields, / to filter by name, e to hide empty fields and ?
for help.`,
		Example: `  fieldcard browse structure.json
  fieldcard browse 3f2a --hide-empty`,
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

			model := browser.New(browser.Options{
				Title:        src.Name,
				Cards:        tui.NewCardViews(app.Builder, src.Document.Fields),
				UseColors:    app.Config.ShouldUseColors(),
				MaxCardWidth: app.Config.Display.Width,
				BarWidth:     app.Config.Display.BarWidth,
				HideEmpty:    hideEmpty,
			})

			prog := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := prog.Run(); err != nil {
				return ErrRender("browser failed", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&hideEmpty, "hide-empty", false, "start with empty fields hidden")

	return cmd
}
