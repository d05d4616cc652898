package cli

import (
	"fmt"

	"github.com/safedep/fieldcard/config"
	"github.com/safedep/fieldcard/tui"
	"github.com/spf13/cobra"
)

// redactedKeys are masked by config show and get.
var redactedKeys = map[string]bool{
	"elasticsearch.password": true,
	"elasticsearch.api_key":  true,
}

const redacted = "********"

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
		Long: `View or modify configuration.

Subcommands allow viewing and modifying configuration values. Values are
validated before they are written.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
	)

	return cmd
}

func openManager() (*config.Manager, error) {
	mgr, err := config.NewManager(configPath())
	if err != nil {
		return nil, ErrConfig("failed to open config", err)
	}
	return mgr, nil
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}

			values := mgr.AllSettings()
			redactSettings("", values)

			presenter := tui.NewPresenter(tui.ParseFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: !globalFlags.NoColor && tui.IsWriterTerminal(cmd.OutOrStdout()),
			})

			view := &tui.ConfigView{
				Location: mgr.ConfigPath(),
				Values:   values,
			}
			if err := presenter.RenderConfig(view); err != nil {
				return ErrRender("failed to render config", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "card", "output format: card, json, csv")

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get specific config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			mgr, err := openManager()
			if err != nil {
				return err
			}

			if !mgr.HasKey(key) {
				return ErrConfig("key not found", fmt.Errorf("%s", key))
			}

			value := mgr.Get(key)
			if redactedKeys[key] && value != "" {
				value = redacted
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set config value",
		Example: `  fieldcard config set display.colors never
  fieldcard config set display.width 60
  fieldcard config set elasticsearch.addresses "[https://es-1:9200, https://es-2:9200]"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			mgr, err := openManager()
			if err != nil {
				return err
			}

			if !mgr.HasKey(key) {
				return ErrConfig("unknown config key", fmt.Errorf("%s", key))
			}

			value := config.ParseValue(args[1])
			if err := mgr.Set(key, value); err != nil {
				return ErrConfig("failed to set config", err)
			}

			shown := value
			if redactedKeys[key] {
				shown = redacted
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, shown)
			return nil
		},
	}

	// Values such as -1 are arguments, not shorthand flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newConfigResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}

			if err := mgr.Reset(); err != nil {
				return ErrConfig("failed to reset config", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration reset to defaults (%s removed)\n", mgr.ConfigPath())
			return nil
		},
	}

	return cmd
}

// redactSettings masks secret values in a nested settings map in place.
func redactSettings(prefix string, values map[string]any) {
	for k, v := range values {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok {
			redactSettings(key, nested)
			continue
		}
		if redactedKeys[key] && v != "" {
			values[k] = redacted
		}
	}
}
