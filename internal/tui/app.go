package tui

import (
	"fmt"
	"strings"
	"time"

	"planboard/internal/board"
	"planboard/internal/filter"
	"planboard/internal/group"
	"planboard/internal/model"
	"planboard/internal/roster"
	"planboard/internal/transition"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewBoard view = iota
	viewCalendar
)

type pane int

const (
	paneAvailable pane = iota
	paneEvents
	paneRoster
)

type appModel struct {
	st      *board.Store
	ros     *roster.Roster
	filters *filter.Engine
	ctrl    *transition.Controller

	width  int
	height int

	view  view
	focus pane

	// Selection is tracked by card id so it survives filtering and moves.
	sel map[pane]string

	// Folded group buckets in the available pane, by group key.
	collapsed map[string]bool

	rosterSel    int
	rosterQuery  string
	rosterTyping bool

	cal calendarState

	moveForm   *moveFormModel
	filterForm *filterFormModel

	showDetail bool
	flash      string
}

func newAppModel(st *board.Store, ros *roster.Roster) appModel {
	return appModel{
		st:        st,
		ros:       ros,
		filters:   filter.NewEngine(),
		ctrl:      transition.NewController(st),
		view:      viewBoard,
		focus:     paneAvailable,
		sel:       map[pane]string{},
		collapsed: map[string]bool{},
		cal:       newCalendarState(time.Now()),
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func paneCollection(p pane) string {
	switch p {
	case paneAvailable:
		return model.CollectionAvailable
	case paneEvents:
		return model.CollectionEvents
	default:
		return ""
	}
}

func (m *appModel) visibleCards(p pane) []model.Card {
	col := paneCollection(p)
	if col == "" {
		return nil
	}
	return m.filters.Visible(col, m.st.List(col))
}

// selectableCards is visibleCards minus the cards hidden inside folded
// groups; selection and grabbing only ever touch what is on screen.
func (m *appModel) selectableCards(p pane) []model.Card {
	cards := m.visibleCards(p)
	if p != paneAvailable || len(m.collapsed) == 0 {
		return cards
	}
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if m.collapsed[group.Key(c.Group)] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// selectedCard resolves the pane's selected id against the currently visible
// cards, falling back to the nearest row when the id vanished.
func (m *appModel) selectedCard(p pane) (model.Card, int, bool) {
	cards := m.selectableCards(p)
	if len(cards) == 0 {
		return model.Card{}, -1, false
	}
	id := m.sel[p]
	for i, c := range cards {
		if c.ID == id {
			return c, i, true
		}
	}
	m.sel[p] = cards[0].ID
	return cards[0], 0, true
}

func (m *appModel) moveSelection(p pane, delta int) {
	cards := m.selectableCards(p)
	if len(cards) == 0 {
		return
	}
	_, i, ok := m.selectedCard(p)
	if !ok {
		return
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(cards) {
		i = len(cards) - 1
	}
	m.sel[p] = cards[i].ID
}

func (m *appModel) rosterUsers() []model.User {
	return m.ros.Filter(m.rosterQuery)
}

func (m *appModel) clampRosterSel() {
	n := len(m.rosterUsers())
	if n == 0 {
		m.rosterSel = 0
		return
	}
	if m.rosterSel < 0 {
		m.rosterSel = 0
	}
	if m.rosterSel >= n {
		m.rosterSel = n - 1
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals capture all input while open.
	if m.moveForm != nil {
		return m.updateMoveForm(msg)
	}
	if m.filterForm != nil {
		return m.updateFilterForm(msg)
	}
	if m.rosterTyping {
		return m.updateRosterQuery(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.view == viewCalendar {
		return m.updateCalendarKey(msg)
	}
	return m.updateBoardKey(msg)
}

func (m appModel) updateBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focus = (m.focus + 1) % 3
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m, nil

	case "up", "k":
		if m.focus == paneRoster {
			m.rosterSel--
			m.clampRosterSel()
		} else {
			m.moveSelection(m.focus, -1)
		}
		return m, nil
	case "down", "j":
		if m.focus == paneRoster {
			m.rosterSel++
			m.clampRosterSel()
		} else {
			m.moveSelection(m.focus, 1)
		}
		return m, nil

	case " ":
		return m.toggleGrab()

	case "enter":
		if m.ctrl.Phase() == transition.PhaseDragging {
			return m.dropOnFocusedPane()
		}
		return m.toggleGrab()

	case "esc":
		if m.ctrl.Phase() == transition.PhaseDragging {
			m.ctrl.DragEnd()
			m.flash = "Drag canceled"
			return m, nil
		}
		m.flash = ""
		return m, nil

	case "f":
		if m.focus == paneRoster {
			m.rosterTyping = true
			return m, nil
		}
		f := newFilterForm(m.filters, paneCollection(m.focus), m.st.List(paneCollection(m.focus)))
		m.filterForm = &f
		return m, nil
	case "F":
		if m.focus != paneRoster {
			m.filters.View(paneCollection(m.focus)).Clear()
			m.flash = "Filters cleared"
		}
		return m, nil

	case "/":
		if m.focus == paneRoster {
			m.rosterTyping = true
		}
		return m, nil

	case "c":
		m.view = viewCalendar
		return m, nil

	case "d":
		m.showDetail = !m.showDetail
		return m, nil

	case "z":
		if m.focus == paneAvailable {
			if card, _, ok := m.selectedCard(paneAvailable); ok {
				k := group.Key(card.Group)
				m.collapsed[k] = !m.collapsed[k]
			}
		}
		return m, nil
	}
	return m, nil
}

// toggleGrab starts dragging the focused pane's selected card, or releases a
// drag when the grabbed card is re-selected.
func (m appModel) toggleGrab() (tea.Model, tea.Cmd) {
	if m.focus == paneRoster {
		return m, nil
	}
	card, _, ok := m.selectedCard(m.focus)
	if !ok {
		return m, nil
	}
	if m.ctrl.Phase() == transition.PhaseDragging && m.ctrl.DraggedCardID() == card.ID {
		m.ctrl.DragEnd()
		m.flash = ""
		return m, nil
	}
	m.ctrl.DragStart(paneCollection(m.focus), card.ID)
	m.flash = fmt.Sprintf("Grabbed %q — move to a target pane and press enter (esc cancels)", card.Title)
	return m, nil
}

func (m appModel) dropOnFocusedPane() (tea.Model, tea.Cmd) {
	dest := paneCollection(m.focus)
	if dest == "" || dest == m.ctrl.SourceID() {
		return m, nil
	}
	if !m.ctrl.Drop(dest, transition.DropContext{}) {
		m.flash = "Drop failed"
		return m, nil
	}
	m.openMoveForm()
	return m, nil
}

func (m *appModel) openMoveForm() {
	card, dest, ok := m.ctrl.Pending()
	if !ok {
		return
	}
	f := newMoveForm(card, dest, m.ctrl.Form())
	m.moveForm = &f
	m.flash = ""
}

func (m appModel) updateMoveForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.ctrl.Cancel()
		m.moveForm = nil
		m.flash = "Move canceled"
		return m, nil

	case "tab", "down":
		m.moveForm.focusNext()
		m.ctrl.SetForm(m.moveForm.data())
		return m, nil
	case "shift+tab", "up":
		m.moveForm.focusPrev()
		m.ctrl.SetForm(m.moveForm.data())
		return m, nil

	case "enter":
		d := m.moveForm.data()
		card, dest, _ := m.ctrl.Pending()
		if err := m.ctrl.Submit(d); err != nil {
			m.moveForm.setError(err)
			return m, nil
		}
		m.moveForm = nil
		if _, _, ok := m.st.Find(card.ID); ok {
			m.flash = fmt.Sprintf("Moved %q to %s", card.Title, dest)
			m.sel[paneForCollection(dest)] = card.ID
		} else {
			m.flash = "Card disappeared before the move committed"
		}
		return m, nil
	}

	cmd := m.moveForm.updateFocused(msg)
	m.ctrl.SetForm(m.moveForm.data())
	return m, cmd
}

func (m appModel) updateFilterForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.filterForm = nil
		return m, nil
	case "left", "h":
		m.filterForm.prevField()
		return m, nil
	case "right", "l", "tab":
		m.filterForm.nextField()
		return m, nil
	case "up", "k":
		m.filterForm.moveOption(-1)
		return m, nil
	case "down", "j":
		m.filterForm.moveOption(1)
		return m, nil
	case " ":
		m.filterForm.toggle()
		return m, nil
	case "x":
		m.filterForm.clear()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateRosterQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.rosterTyping = false
		return m, nil
	case "backspace":
		if len(m.rosterQuery) > 0 {
			m.rosterQuery = m.rosterQuery[:len(m.rosterQuery)-1]
		}
		m.clampRosterSel()
		return m, nil
	case "ctrl+u":
		m.rosterQuery = ""
		m.clampRosterSel()
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.rosterQuery += string(msg.Runes)
		m.clampRosterSel()
	}
	return m, nil
}

func (m appModel) updateCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "c":
		m.view = viewBoard
		return m, nil
	case "left", "h":
		m.cal.moveDay(-1)
		return m, nil
	case "right", "l":
		m.cal.moveDay(1)
		return m, nil
	case "up", "k":
		m.cal.moveDay(-7)
		return m, nil
	case "down", "j":
		m.cal.moveDay(7)
		return m, nil
	case "[", "pgup":
		m.cal.moveMonth(-1)
		return m, nil
	case "]", "pgdown":
		m.cal.moveMonth(1)
		return m, nil
	case "t":
		m.cal = newCalendarState(time.Now())
		return m, nil
	case "enter":
		if m.ctrl.Phase() != transition.PhaseDragging {
			return m, nil
		}
		if m.ctrl.SourceID() == model.CollectionEvents {
			m.flash = "Already scheduled"
			return m, nil
		}
		if !m.ctrl.Drop(model.CollectionEvents, transition.DropContext{Date: m.cal.date()}) {
			m.flash = "Drop failed"
			return m, nil
		}
		m.view = viewBoard
		m.openMoveForm()
		return m, nil
	}
	return m, nil
}

func paneForCollection(col string) pane {
	if col == model.CollectionEvents {
		return paneEvents
	}
	return paneAvailable
}

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.viewHeader()
	footer := m.viewFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	var body string
	if m.view == viewCalendar {
		body = renderCalendar(m.cal, m.st.List(model.CollectionEvents), m.width, bodyHeight,
			m.ctrl.Phase() == transition.PhaseDragging)
	} else {
		body = m.viewBoard(bodyHeight)
	}

	screen := strings.Join([]string{header, "", body, "", footer}, "\n")

	if m.moveForm != nil {
		return overlayCentered(m.width, m.height, m.moveForm.view(modalWidth(m.width)))
	}
	if m.filterForm != nil {
		return overlayCentered(m.width, m.height, m.filterForm.view(modalWidth(m.width)))
	}
	return screen
}

func (m appModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("Planboard")
	mode := "board"
	if m.view == viewCalendar {
		mode = "calendar"
	}
	parts := []string{title, styleMuted().Render(mode)}

	if m.ctrl.Phase() == transition.PhaseDragging {
		if card, _, ok := m.st.Find(m.ctrl.DraggedCardID()); ok {
			drag := lipgloss.NewStyle().Foreground(colorDraggingFg).Bold(true).
				Render("dragging: " + card.Title)
			parts = append(parts, drag)
		}
	}
	return truncateText(strings.Join(parts, "  "), m.width)
}

func (m appModel) viewFooter() string {
	var help string
	switch {
	case m.view == viewCalendar && m.ctrl.Phase() == transition.PhaseDragging:
		help = "arrows: pick day  [/]: month  enter: drop here  esc: back  q: quit"
	case m.view == viewCalendar:
		help = "arrows: move  [/]: month  t: today  esc: back  q: quit"
	case m.ctrl.Phase() == transition.PhaseDragging:
		help = "tab: pane  enter: drop on pane  c: drop on calendar  esc: cancel  q: quit"
	case m.focus == paneRoster:
		help = "tab: pane  j/k: move  /: search  c: calendar  q: quit"
	default:
		help = "tab: pane  j/k: move  space: grab  z: fold group  f: filter  F: clear  d: detail  c: calendar  q: quit"
	}
	lines := []string{styleMuted().Render(truncateText(help, m.width))}
	if strings.TrimSpace(m.flash) != "" {
		lines = append([]string{truncateText(m.flash, m.width)}, lines...)
	}
	return strings.Join(lines, "\n")
}
