package cli

import (
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Roster commands",
	}
	cmd.AddCommand(newUsersListCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	var (
		filterText string
		grouped    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roster users",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := loadBoard(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, ros, err := newEngine(b)
			if err != nil {
				return writeErr(cmd, err)
			}
			if grouped {
				return writeOut(cmd, app, map[string]any{"data": ros.Grouped(filterText)})
			}
			return writeOut(cmd, app, map[string]any{"data": ros.Filter(filterText)})
		},
	}

	cmd.Flags().StringVar(&filterText, "filter", "", "Case-insensitive name substring")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "Bucket users by group label")
	return cmd
}
