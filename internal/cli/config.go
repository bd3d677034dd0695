package cli

import (
	"fmt"
	"strings"

	"planboard/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Global preferences (stored in ~/.planboard/config.json)",
	}
	cmd.AddCommand(newConfigThemeCmd(app))
	return cmd
}

func newConfigThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|auto]",
		Short: "Show or set the TUI theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}

			if len(args) == 0 {
				theme := "auto"
				if cfg.TUI != nil && strings.TrimSpace(cfg.TUI.Theme) != "" {
					theme = cfg.TUI.Theme
				}
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"theme": theme}})
			}

			theme := strings.ToLower(strings.TrimSpace(args[0]))
			switch theme {
			case "light", "dark":
				if cfg.TUI == nil {
					cfg.TUI = &store.TUIConfig{}
				}
				cfg.TUI.Theme = theme
			case "auto":
				if cfg.TUI != nil {
					cfg.TUI.Theme = ""
				}
			default:
				return writeErr(cmd, fmt.Errorf("unknown theme: %s", args[0]))
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"theme": theme}})
		},
	}
	return cmd
}
