package tui

import (
	"fmt"
	"strings"

	"planboard/internal/group"
	"planboard/internal/model"
	"planboard/internal/transition"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewBoard(height int) string {
	gap := 2
	sideW := 26
	if m.width < 80 {
		sideW = 20
	}
	avail := m.width - sideW - 2*gap
	if avail < 20 {
		avail = 20
	}
	colW := avail / 2

	left := m.viewCardsPane(paneAvailable, colW, height)
	mid := m.viewCardsPane(paneEvents, colW, height)

	var side string
	if m.showDetail {
		side = m.viewDetailPane(sideW, height)
	} else {
		side = m.viewRosterPane(sideW, height)
	}

	sep := strings.Repeat(" ", gap)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sep, mid, sep, side)
}

func paneTitle(p pane) string {
	switch p {
	case paneAvailable:
		return "Available Jobs"
	case paneEvents:
		return "Events"
	default:
		return ""
	}
}

func (m appModel) viewCardsPane(p pane, width, height int) string {
	col := paneCollection(p)
	cards := m.visibleCards(p)
	focused := m.view == viewBoard && m.focus == p

	head := fmt.Sprintf("%s (%d)", paneTitle(p), len(cards))
	if m.filters.View(col).Active() {
		head += " ⊘"
	}
	lines := []string{renderPaneHeader(head, width, focused), ""}

	if len(cards) == 0 {
		empty := "(empty)"
		if m.filters.View(col).Active() {
			empty = "(no cards match the filter)"
		}
		lines = append(lines, styleMuted().Render(empty))
		return normalizePane(strings.Join(lines, "\n"), width, height)
	}

	selectedID := ""
	if focused {
		if card, _, ok := m.selectedCard(p); ok {
			selectedID = card.ID
		}
	}
	draggedID := ""
	if m.ctrl.Phase() != transition.PhaseIdle && m.ctrl.SourceID() == col {
		draggedID = m.ctrl.DraggedCardID()
	}

	if p == paneAvailable {
		buckets := group.By(cards, func(c model.Card) string { return group.Key(c.Group) })
		for bi, b := range buckets {
			if m.collapsed[b.Key] {
				head := fmt.Sprintf("▸ %s (%d)", b.Key, len(b.Items))
				lines = append(lines, styleMuted().Bold(true).Render(truncateText(head, width)))
			} else {
				lines = append(lines, styleMuted().Bold(true).Render(truncateText("▾ "+b.Key, width)))
				for _, c := range b.Items {
					lines = append(lines, renderCardRows(c, width, c.ID == selectedID, c.ID == draggedID)...)
				}
			}
			if bi < len(buckets)-1 {
				lines = append(lines, "")
			}
		}
	} else {
		for _, c := range cards {
			lines = append(lines, renderCardRows(c, width, c.ID == selectedID, c.ID == draggedID)...)
		}
	}

	return normalizePane(strings.Join(lines, "\n"), width, height)
}

func renderPaneHeader(text string, width int, focused bool) string {
	st := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Background(colorControlBg)
	if focused {
		st = lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
	}
	return st.Width(width).Render(truncateText(text, width))
}

// renderCardRows renders one card as a title row plus compact meta rows.
// Whitespace defines the card, not borders; stacked borders read like a
// continuous list.
func renderCardRows(c model.Card, width int, selected, dragged bool) []string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = "(untitled)"
	}
	marker := "  "
	if dragged {
		marker = "◆ "
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	rowStyle := lipgloss.NewStyle().Width(width).Padding(0, 1)
	switch {
	case selected:
		titleStyle = titleStyle.Foreground(colorSelectedFg).Background(colorSelectedBg)
		rowStyle = rowStyle.Background(colorSelectedBg)
	case dragged:
		titleStyle = titleStyle.Foreground(colorDraggingFg)
	}

	rows := []string{rowStyle.Render(titleStyle.Render(truncateText(marker+title, inner)))}

	if desc := strings.TrimSpace(c.Description); desc != "" {
		rows = append(rows, rowStyle.Render(styleMuted().Render(truncateText("  "+desc, inner))))
	}
	if meta := cardMetaLabel(c); meta != "" {
		rows = append(rows, rowStyle.Render(styleMuted().Render(truncateText("  "+meta, inner))))
	}
	return rows
}

func cardMetaLabel(c model.Card) string {
	var parts []string
	switch {
	case c.DateFrom != "" && c.DateTo != "" && c.DateFrom != c.DateTo:
		parts = append(parts, c.DateFrom+" → "+c.DateTo)
	case c.DateFrom != "":
		parts = append(parts, c.DateFrom)
	}
	if c.Status != "" {
		parts = append(parts, c.Status)
	}
	if c.Priority != "" {
		parts = append(parts, c.Priority)
	}
	return strings.Join(parts, "  ")
}

func (m appModel) viewRosterPane(width, height int) string {
	focused := m.view == viewBoard && m.focus == paneRoster
	users := m.rosterUsers()

	head := fmt.Sprintf("Resources (%d)", len(users))
	lines := []string{renderPaneHeader(head, width, focused)}

	query := m.rosterQuery
	switch {
	case m.rosterTyping:
		qst := lipgloss.NewStyle().Background(colorInputBg).Foreground(colorSurfaceFg)
		lines = append(lines, qst.Width(width).Render(truncateText(" /"+query+"▏", width)))
	case query != "":
		lines = append(lines, styleMuted().Render(truncateText(" /"+query, width)))
	default:
		lines = append(lines, "")
	}

	if len(users) == 0 {
		lines = append(lines, styleMuted().Render("(no matches)"))
		return normalizePane(strings.Join(lines, "\n"), width, height)
	}

	buckets := group.By(users, func(u model.User) string { return group.Key(u.Group) })
	row := 0
	for _, b := range buckets {
		lines = append(lines, styleMuted().Bold(true).Render(truncateText(b.Key, width)))
		for _, u := range b.Items {
			dot := "○"
			if u.Status == model.UserStatusOnline {
				dot = "●"
			}
			text := truncateText(" "+dot+" "+u.Name, width)
			if focused && row == m.rosterSel {
				text = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).
					Width(width).Render(text)
			}
			lines = append(lines, text)
			row++
		}
	}

	return normalizePane(strings.Join(lines, "\n"), width, height)
}

func (m appModel) viewDetailPane(width, height int) string {
	lines := []string{renderPaneHeader("Detail", width, false), ""}

	src := m.focus
	if src == paneRoster {
		src = paneAvailable
	}
	card, _, ok := m.selectedCard(src)
	if !ok {
		lines = append(lines, styleMuted().Render("(no card selected)"))
		return normalizePane(strings.Join(lines, "\n"), width, height)
	}

	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(truncateText(card.Title, width)))
	if meta := cardMetaLabel(card); meta != "" {
		lines = append(lines, styleMuted().Render(truncateText(meta, width)))
	}
	lines = append(lines, "")

	md := card.Description
	if strings.TrimSpace(card.Memo) != "" {
		md += "\n\n**Memo**\n\n" + card.Memo
	}
	if body := renderMarkdown(md, width); body != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}

	return normalizePane(strings.Join(lines, "\n"), width, height)
}
