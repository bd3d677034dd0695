package tui

import (
	"fmt"
	"strings"
	"time"

	"planboard/internal/form"
	"planboard/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// calendarState is the month-grid cursor.
type calendarState struct {
	year  int
	month time.Month
	day   int
}

func newCalendarState(now time.Time) calendarState {
	return calendarState{year: now.Year(), month: now.Month(), day: now.Day()}
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (c *calendarState) clampDay() {
	n := daysIn(c.year, c.month)
	if c.day < 1 {
		c.day = 1
	}
	if c.day > n {
		c.day = n
	}
}

func (c *calendarState) moveDay(delta int) {
	t := time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, delta)
	c.year, c.month, c.day = t.Year(), t.Month(), t.Day()
}

func (c *calendarState) moveMonth(delta int) {
	// Anchor to the first so a day-31 cursor can't skip a short month.
	t := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	c.year, c.month = t.Year(), t.Month()
	c.clampDay()
}

// date returns the cursor as YYYY-MM-DD.
func (c calendarState) date() string {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).Format(form.DateLayout)
}

// eventsOn counts the scheduled cards whose date range covers the given day.
// Dates are YYYY-MM-DD so plain string comparison orders correctly.
func eventsOn(cards []model.Card, date string) int {
	n := 0
	for _, c := range cards {
		from := strings.TrimSpace(c.DateFrom)
		if from == "" {
			continue
		}
		to := strings.TrimSpace(c.DateTo)
		if to == "" {
			to = from
		}
		if from <= date && date <= to {
			n++
		}
	}
	return n
}

func renderCalendar(cal calendarState, events []model.Card, width, height int, dragging bool) string {
	const cellW = 5 // " 12• "
	gridW := cellW * 7

	title := fmt.Sprintf("%s %d", cal.month.String(), cal.year)
	weekdays := make([]string, 0, 7)
	for _, d := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		weekdays = append(weekdays, fmt.Sprintf(" %2s  ", d))
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Width(gridW).Align(lipgloss.Center).Render(title),
		styleMuted().Render(strings.Join(weekdays, "")),
	}

	first := time.Date(cal.year, cal.month, 1, 0, 0, 0, 0, time.UTC)
	// Weekday with Monday first.
	lead := (int(first.Weekday()) + 6) % 7
	total := daysIn(cal.year, cal.month)

	selStyle := lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	if dragging {
		selStyle = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true)
	}

	row := make([]string, 0, 7)
	flushRow := func() {
		if len(row) == 0 {
			return
		}
		for len(row) < 7 {
			row = append(row, strings.Repeat(" ", cellW))
		}
		lines = append(lines, strings.Join(row, ""))
		row = row[:0]
	}

	for i := 0; i < lead; i++ {
		row = append(row, strings.Repeat(" ", cellW))
	}
	for day := 1; day <= total; day++ {
		date := time.Date(cal.year, cal.month, day, 0, 0, 0, 0, time.UTC).Format(form.DateLayout)
		mark := " "
		if eventsOn(events, date) > 0 {
			mark = "•"
		}
		cell := fmt.Sprintf(" %2d%s ", day, mark)
		if day == cal.day {
			cell = selStyle.Render(cell)
		} else if mark == "•" {
			cell = lipgloss.NewStyle().Foreground(colorAccent).Render(cell)
		}
		row = append(row, cell)
		if len(row) == 7 {
			flushRow()
		}
	}
	flushRow()

	lines = append(lines, "")
	if n := eventsOn(events, cal.date()); n > 0 {
		lines = append(lines, styleMuted().Render(fmt.Sprintf("%s — %d scheduled", cal.date(), n)))
		for _, c := range events {
			from := strings.TrimSpace(c.DateFrom)
			to := strings.TrimSpace(c.DateTo)
			if to == "" {
				to = from
			}
			if from == "" || cal.date() < from || cal.date() > to {
				continue
			}
			lines = append(lines, truncateText("  "+c.Title, gridW))
		}
	} else {
		lines = append(lines, styleMuted().Render(cal.date()))
	}

	grid := strings.Join(lines, "\n")
	return normalizePane(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, grid), width, height)
}
