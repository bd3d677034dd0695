package cli

import (
	"context"
	"errors"

	"planboard/internal/store"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in sample board to the board file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.BoardPath
			if path == "" {
				p, err := store.DefaultPath()
				if err != nil {
					return writeErr(cmd, err)
				}
				path = p
			}
			s := store.Store{Path: path}
			if s.Exists() && !force {
				return writeErr(cmd, errors.New("board file already exists (use --force to overwrite): "+path))
			}
			b := store.SampleBoard()
			if err := s.Save(context.Background(), b); err != nil {
				return writeErr(cmd, err)
			}
			cards := 0
			for _, col := range b.Collections {
				cards += len(col.Cards)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"path":        path,
				"collections": len(b.Collections),
				"cards":       cards,
				"users":       len(b.Users),
			}})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing board file")
	return cmd
}
