package tui

import (
	"fmt"
	"strings"

	"planboard/internal/filter"
	"planboard/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// filterFormModel is the per-pane filter dialog. Toggles apply to the view's
// live filter state immediately; closing the dialog keeps the selection.
type filterFormModel struct {
	viewName string
	state    filter.State

	// Options are computed from the unfiltered collection when the dialog
	// opens, so deselecting never makes an option disappear mid-edit.
	options map[filter.Field][]string

	fieldIdx int
	optIdx   int
}

func newFilterForm(eng *filter.Engine, viewName string, cards []model.Card) filterFormModel {
	f := filterFormModel{
		viewName: viewName,
		state:    eng.View(viewName),
		options:  map[filter.Field][]string{},
	}
	for _, field := range filter.Fields {
		f.options[field] = filter.Options(cards, field)
	}
	return f
}

func (f *filterFormModel) field() filter.Field {
	return filter.Fields[f.fieldIdx]
}

func (f *filterFormModel) nextField() {
	f.fieldIdx = (f.fieldIdx + 1) % len(filter.Fields)
	f.optIdx = 0
}

func (f *filterFormModel) prevField() {
	f.fieldIdx = (f.fieldIdx + len(filter.Fields) - 1) % len(filter.Fields)
	f.optIdx = 0
}

func (f *filterFormModel) moveOption(delta int) {
	opts := f.options[f.field()]
	if len(opts) == 0 {
		f.optIdx = 0
		return
	}
	f.optIdx += delta
	if f.optIdx < 0 {
		f.optIdx = 0
	}
	if f.optIdx >= len(opts) {
		f.optIdx = len(opts) - 1
	}
}

func (f *filterFormModel) toggle() {
	opts := f.options[f.field()]
	if f.optIdx < 0 || f.optIdx >= len(opts) {
		return
	}
	f.state.Toggle(f.field(), opts[f.optIdx])
}

func (f *filterFormModel) clear() {
	f.state.Clear()
}

func fieldLabel(field filter.Field) string {
	switch field {
	case filter.FieldTitle:
		return "Title"
	case filter.FieldDescription:
		return "Description"
	case filter.FieldGroup:
		return "Group"
	default:
		return string(field)
	}
}

func (f *filterFormModel) view(width int) string {
	bodyW := modalBodyWidth(width)

	tabStyle := styleMuted()
	tabActive := lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg).Padding(0, 1)
	tabIdle := tabStyle.Padding(0, 1)

	var tabs []string
	for i, field := range filter.Fields {
		label := fieldLabel(field)
		if n := len(f.state.Selected(field)); n > 0 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		if i == f.fieldIdx {
			tabs = append(tabs, tabActive.Render(label))
		} else {
			tabs = append(tabs, tabIdle.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	opts := f.options[f.field()]
	if len(opts) == 0 {
		b.WriteString(styleMuted().Render("(no values)"))
		b.WriteString("\n")
	}
	for i, opt := range opts {
		mark := "[ ]"
		if f.state.IsSelected(f.field(), opt) {
			mark = "[x]"
		}
		line := truncateText(mark+" "+opt, bodyW)
		if i == f.optIdx {
			line = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).
				Width(bodyW).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Width(bodyW).Render("h/l: field   j/k: move   space: toggle   x: clear all   esc: close"))

	return renderModalBox(width, "Filter: "+f.viewName, b.String())
}
