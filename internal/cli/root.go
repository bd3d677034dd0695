package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"planboard/internal/board"
	"planboard/internal/format"
	"planboard/internal/model"
	"planboard/internal/roster"
	"planboard/internal/store"
	"planboard/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	BoardPath  string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "planboard",
		Short:        "Planning board CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  planboard

  # Scriptable commands
  planboard cards list available

  # Direct card lookup (shortcut for: planboard cards show <card-id>)
  planboard card-x7k2mqpa
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BoardPath, "board", "", "Path to the board file (default: $PLANBOARD_BOARD or ~/.planboard/board.db)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PLANBOARD_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newCardsCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	b, _, err := loadBoard(app)
	if err != nil {
		return err
	}
	st, ros, err := newEngine(b)
	if err != nil {
		return err
	}
	return tui.Run(st, ros)
}

// loadBoard resolves the board file and reads the seed payload. A missing
// file falls back to the built-in sample board so the tool works out of the
// box; run `planboard seed` to materialize it.
func loadBoard(app *App) (*store.Board, store.Store, error) {
	path := app.BoardPath
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return nil, store.Store{}, err
		}
		path = p
	}
	s := store.Store{Path: path}
	if !s.Exists() {
		return store.SampleBoard(), s, nil
	}
	b, err := s.Load(context.Background())
	if err != nil {
		return nil, s, err
	}
	return b, s, nil
}

// newEngine seeds a card store from the payload. Seeding goes through
// AddCard so duplicate ids in a hand-edited board file fail loudly instead
// of silently shadowing each other.
func newEngine(b *store.Board) (*board.Store, *roster.Roster, error) {
	st := board.NewStore(b.CollectionIDs()...)
	for _, col := range b.Collections {
		for _, c := range col.Cards {
			if _, err := st.AddCard(col.ID, c); err != nil {
				return nil, nil, fmt.Errorf("seed collection %s: %w", col.ID, err)
			}
		}
	}
	return st, roster.New(b.Users), nil
}

// snapshotBoard captures the store back into a payload for persisting.
func snapshotBoard(st *board.Store, users []model.User) *store.Board {
	b := &store.Board{Users: users}
	for _, id := range st.Collections() {
		b.Collections = append(b.Collections, store.Collection{ID: id, Cards: st.List(id)})
	}
	return b
}

func saveBoard(s store.Store, b *store.Board) error {
	return s.Save(context.Background(), b)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
