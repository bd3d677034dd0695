package tui

import (
	"testing"

	"planboard/internal/board"
	"planboard/internal/model"
	"planboard/internal/roster"
	"planboard/internal/transition"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) appModel {
	t.Helper()
	st := board.NewStore(model.CollectionAvailable, model.CollectionEvents)
	cards := []model.Card{
		{ID: "card-1", Title: "Frontend Task", Description: "Complete the project setup", Group: "Development"},
		{ID: "card-2", Title: "UI Design", Description: "Design the user interface", Group: "Design"},
	}
	for _, c := range cards {
		if _, err := st.AddCard(model.CollectionAvailable, c); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	ros := roster.New([]model.User{
		{ID: "user-1", Name: "John Doe", Status: model.UserStatusOnline, Group: "Development"},
	})

	m := newAppModel(st, ros)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return mm.(appModel)
}

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) appModel {
	t.Helper()
	for _, k := range keys {
		mm, _ := m.Update(k)
		m = mm.(appModel)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestGrabDropConfirmFlow(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key(" ")) // grab card-1
	if got := m.ctrl.Phase(); got != transition.PhaseDragging {
		t.Fatalf("phase after grab: %v", got)
	}
	if got := m.ctrl.DraggedCardID(); got != "card-1" {
		t.Fatalf("dragged card: %q", got)
	}

	m = press(t, m, key("tab"), key("enter")) // focus events, drop
	if m.moveForm == nil {
		t.Fatalf("expected confirm form after drop")
	}
	if got := m.ctrl.Phase(); got != transition.PhaseAwaitingConfirmation {
		t.Fatalf("phase after drop: %v", got)
	}
	if got := m.moveForm.data().Text; got != "Frontend Task" {
		t.Fatalf("form text prefill: %q", got)
	}

	// Fill the date fields and confirm.
	m = press(t, m, key("tab"))
	m = typeText(t, m, "2025-03-01")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "2025-03-02")
	m = press(t, m, key("enter"))

	if m.moveForm != nil {
		t.Fatalf("form should close after commit; verr=%v err=%q", m.moveForm.verr, m.moveForm.err)
	}
	card, where, ok := m.st.Find("card-1")
	if !ok || where != model.CollectionEvents {
		t.Fatalf("card not moved: ok=%v where=%q", ok, where)
	}
	if card.DateFrom != "2025-03-01" || card.DateTo != "2025-03-02" {
		t.Fatalf("dates not applied: %+v", card)
	}
	if card.Status != "pending" || card.Priority != "medium" {
		t.Fatalf("defaults not applied: %+v", card)
	}
}

func TestSubmitWithMissingDatesKeepsFormOpen(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key(" "), key("tab"), key("enter"))
	if m.moveForm == nil {
		t.Fatalf("expected confirm form")
	}

	m = press(t, m, key("enter")) // dates empty
	if m.moveForm == nil {
		t.Fatalf("validation failure must keep the form open")
	}
	if m.moveForm.verr == nil || !m.moveForm.verr.Has("dateFrom") || !m.moveForm.verr.Has("dateTo") {
		t.Fatalf("expected dateFrom/dateTo validation error; got %v", m.moveForm.verr)
	}
	if _, where, _ := m.st.Find("card-1"); where != model.CollectionAvailable {
		t.Fatalf("card must stay put on validation failure; in %q", where)
	}
}

func TestEscCancelsPendingMove(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key(" "), key("tab"), key("enter"), key("esc"))
	if m.moveForm != nil {
		t.Fatalf("esc should close the form")
	}
	if got := m.ctrl.Phase(); got != transition.PhaseIdle {
		t.Fatalf("phase after cancel: %v", got)
	}
	if _, where, _ := m.st.Find("card-1"); where != model.CollectionAvailable {
		t.Fatalf("canceled move must not commit; card in %q", where)
	}
}

func TestEscCancelsDrag(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key(" "), key("esc"))
	if got := m.ctrl.Phase(); got != transition.PhaseIdle {
		t.Fatalf("phase after esc: %v", got)
	}
}

func TestDropOnSourcePaneIsNoOp(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key(" "), key("enter")) // enter on the source pane
	if m.moveForm != nil {
		t.Fatalf("dropping on the source must not open the form")
	}
	if got := m.ctrl.Phase(); got != transition.PhaseDragging {
		t.Fatalf("drag should stay active; phase %v", got)
	}
}

func TestCalendarDropPrefillsDates(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key(" "), key("c"))
	if m.view != viewCalendar {
		t.Fatalf("expected calendar view")
	}
	m.cal = calendarState{year: 2025, month: 4, day: 10}
	m = press(t, m, key("enter"))

	if m.moveForm == nil {
		t.Fatalf("expected confirm form after calendar drop")
	}
	if m.view != viewBoard {
		t.Fatalf("confirming happens back on the board view")
	}
	d := m.moveForm.data()
	if d.DateFrom != "2025-04-10" || d.DateTo != "2025-04-10" {
		t.Fatalf("calendar date not prefilled: %+v", d)
	}
}

func TestFilterDialogNarrowsPane(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key("f"))
	if m.filterForm == nil {
		t.Fatalf("expected filter dialog")
	}
	// Field 0 is titles; first option is card-1's title.
	m = press(t, m, key(" "), key("esc"))
	if m.filterForm != nil {
		t.Fatalf("esc should close the dialog")
	}

	cards := m.visibleCards(paneAvailable)
	if len(cards) != 1 || cards[0].ID != "card-1" {
		t.Fatalf("filter not applied: %+v", cards)
	}

	m = press(t, m, key("F"))
	if got := len(m.visibleCards(paneAvailable)); got != 2 {
		t.Fatalf("clear filters: got %d cards", got)
	}
}

func TestFoldGroupHidesItsCardsFromSelection(t *testing.T) {
	m := testModel(t)

	// Selection starts on card-1 (group Development); fold it.
	m = press(t, m, key("z"))
	if !m.collapsed["Development"] {
		t.Fatalf("group not folded: %v", m.collapsed)
	}
	card, _, ok := m.selectedCard(paneAvailable)
	if !ok || card.ID != "card-2" {
		t.Fatalf("selection should skip folded cards; got %+v ok=%v", card, ok)
	}

	m.collapsed["Development"] = false
	if got := len(m.selectableCards(paneAvailable)); got != 2 {
		t.Fatalf("unfolded: got %d selectable cards", got)
	}
}

func TestRosterSearchFiltersSidebar(t *testing.T) {
	m := testModel(t)

	m = press(t, m, key("tab"), key("tab")) // focus roster
	if m.focus != paneRoster {
		t.Fatalf("focus: %v", m.focus)
	}
	m = press(t, m, key("/"))
	m = typeText(t, m, "john")
	m = press(t, m, key("enter"))

	users := m.rosterUsers()
	if len(users) != 1 || users[0].Name != "John Doe" {
		t.Fatalf("roster filter: %+v", users)
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := testModel(t)
	if out := m.View(); out == "" {
		t.Fatalf("empty view")
	}
	m = press(t, m, key(" "), key("tab"), key("enter"))
	if out := m.View(); out == "" {
		t.Fatalf("empty modal view")
	}
	m = press(t, m, key("esc"), key("c"))
	if out := m.View(); out == "" {
		t.Fatalf("empty calendar view")
	}
}
