package cli

import (
	"errors"
	"strings"

	"planboard/internal/filter"
	"planboard/internal/form"
	"planboard/internal/group"
	"planboard/internal/model"
	"planboard/internal/transition"

	"github.com/spf13/cobra"
)

func newCardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Card commands",
	}
	cmd.AddCommand(newCardsListCmd(app))
	cmd.AddCommand(newCardsShowCmd(app))
	cmd.AddCommand(newCardsAddCmd(app))
	cmd.AddCommand(newCardsRemoveCmd(app))
	cmd.AddCommand(newCardsMoveCmd(app))
	return cmd
}

type collectionPayload struct {
	Collection string                    `json:"collection"`
	Cards      []model.Card              `json:"cards,omitempty"`
	Groups     []group.Entry[model.Card] `json:"groups,omitempty"`
}

func newCardsListCmd(app *App) *cobra.Command {
	var (
		titles       []string
		descriptions []string
		groups       []string
		grouped      bool
	)

	cmd := &cobra.Command{
		Use:   "list [collection]",
		Short: "List cards (optionally filtered and grouped)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := loadBoard(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, _, err := newEngine(b)
			if err != nil {
				return writeErr(cmd, err)
			}

			fs := filter.NewState()
			for _, v := range titles {
				fs.Toggle(filter.FieldTitle, v)
			}
			for _, v := range descriptions {
				fs.Toggle(filter.FieldDescription, v)
			}
			for _, v := range groups {
				fs.Toggle(filter.FieldGroup, v)
			}

			ids := st.Collections()
			if len(args) == 1 {
				want := strings.TrimSpace(args[0])
				found := false
				for _, id := range ids {
					if id == want {
						found = true
						break
					}
				}
				if !found {
					return writeErr(cmd, errNotFound("collection", want))
				}
				ids = []string{want}
			}

			var out []collectionPayload
			for _, id := range ids {
				visible := filter.Visible(st.List(id), fs)
				p := collectionPayload{Collection: id}
				if grouped {
					p.Groups = group.By(visible, func(c model.Card) string {
						return group.Key(c.Group)
					})
				} else {
					p.Cards = visible
				}
				out = append(out, p)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().StringArrayVar(&titles, "title", nil, "Keep only cards whose title matches exactly (repeatable; OR within the flag)")
	cmd.Flags().StringArrayVar(&descriptions, "description", nil, "Keep only cards whose description matches exactly (repeatable)")
	cmd.Flags().StringArrayVar(&groups, "group", nil, "Keep only cards in the given group (repeatable)")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "Bucket cards by group label in first-seen order")
	return cmd
}

func newCardsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card wherever it lives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := loadBoard(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, _, err := newEngine(b)
			if err != nil {
				return writeErr(cmd, err)
			}
			card, where, ok := st.Find(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("card", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"collection": where,
				"card":       card,
			}})
		},
	}
	return cmd
}

func newCardsAddCmd(app *App) *cobra.Command {
	var c model.Card

	cmd := &cobra.Command{
		Use:   "add <collection>",
		Short: "Add a card to a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, s, err := loadBoard(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, _, err := newEngine(b)
			if err != nil {
				return writeErr(cmd, err)
			}
			added, err := st.AddCard(args[0], c)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveBoard(s, snapshotBoard(st, b.Users)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": added})
		},
	}

	cmd.Flags().StringVar(&c.ID, "id", "", "Card id (default: assigned)")
	cmd.Flags().StringVar(&c.Title, "title", "", "Card title")
	cmd.Flags().StringVar(&c.Description, "description", "", "Card description")
	cmd.Flags().StringVar(&c.Group, "group", "", "Group label")
	cmd.Flags().StringVar(&c.Status, "status", "", "Status")
	cmd.Flags().StringVar(&c.Priority, "priority", "", "Priority")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newCardsRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <collection> <card-id>",
		Short: "Remove a card (its id is retired)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, s, err := loadBoard(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, _, err := newEngine(b)
			if err != nil {
				return writeErr(cmd, err)
			}
			removed, err := st.RemoveCard(args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveBoard(s, snapshotBoard(st, b.Users)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": removed})
		},
	}
	return cmd
}

func newCardsMoveCmd(app *App) *cobra.Command {
	var (
		text     string
		dateFrom string
		dateTo   string
		date     string
		memo     string
		status   string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "move <source> <dest> <card-id>",
		Short: "Move a card between collections through the confirmation form",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, s, err := loadBoard(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, _, err := newEngine(b)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Drive the same gesture the TUI does: drag, drop, confirm.
			ctrl := transition.NewController(st)
			ctrl.DragStart(args[0], args[2])
			if !ctrl.Drop(args[1], transition.DropContext{Date: date}) {
				if _, where, ok := st.Find(args[2]); !ok || where != strings.TrimSpace(args[0]) {
					return writeErr(cmd, errNotFound("card", args[2]))
				}
				return writeErr(cmd, errors.New("invalid destination: "+args[1]))
			}

			d := ctrl.Form()
			if text != "" {
				d.Text = text
			}
			if dateFrom != "" {
				d.DateFrom = dateFrom
			}
			if dateTo != "" {
				d.DateTo = dateTo
			}
			if memo != "" {
				d.Memo = memo
			}
			if status != "" {
				d.Status = status
			}
			if priority != "" {
				d.Priority = priority
			}

			if err := ctrl.Submit(d); err != nil {
				var ve form.ValidationError
				if errors.As(err, &ve) {
					ctrl.Cancel()
				}
				return writeErr(cmd, err)
			}
			moved, _, ok := st.Find(args[2])
			if !ok {
				// Submit recovered from a vanished card; nothing to persist.
				return writeErr(cmd, errNotFound("card", args[2]))
			}

			if err := saveBoard(s, snapshotBoard(st, b.Users)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": moved})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Confirmed title (default: the card's current title)")
	cmd.Flags().StringVar(&dateFrom, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&date, "date", "", "Drop date context; pre-fills both --from and --to")
	cmd.Flags().StringVar(&memo, "memo", "", "Memo")
	cmd.Flags().StringVar(&status, "status", "", "Status (default: "+form.DefaultStatus+")")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (default: "+form.DefaultPriority+")")
	return cmd
}
