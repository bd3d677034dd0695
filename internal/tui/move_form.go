package tui

import (
	"errors"
	"fmt"
	"strings"

	"planboard/internal/form"
	"planboard/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// moveFormModel is the confirmation dialog for a pending card move.
type moveFormModel struct {
	card model.Card
	dest string

	inputs []textinput.Model
	focus  int

	verr *form.ValidationError
	err  string
}

const (
	moveFieldText = iota
	moveFieldDateFrom
	moveFieldDateTo
	moveFieldMemo
	moveFieldStatus
	moveFieldPriority
	moveFieldCount
)

var moveFieldLabels = [moveFieldCount]string{
	"Text",
	"Date from",
	"Date to",
	"Memo",
	"Status",
	"Priority",
}

// Required fields get a marker in the label.
var moveFieldRequired = [moveFieldCount]bool{true, true, true, false, false, false}

// moveFieldNames map inputs to the validator's field names.
var moveFieldNames = [moveFieldCount]string{"text", "dateFrom", "dateTo", "memo", "status", "priority"}

func newMoveForm(card model.Card, dest string, d form.Data) moveFormModel {
	f := moveFormModel{card: card, dest: dest}

	values := [moveFieldCount]string{d.Text, d.DateFrom, d.DateTo, d.Memo, d.Status, d.Priority}
	placeholders := [moveFieldCount]string{"", form.DateLayout, form.DateLayout, "", form.DefaultStatus, form.DefaultPriority}

	f.inputs = make([]textinput.Model, moveFieldCount)
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Placeholder = placeholders[i]
		ti.SetValue(values[i])
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent)
		f.inputs[i] = ti
	}
	f.inputs[f.focus].Focus()
	return f
}

func (f *moveFormModel) data() form.Data {
	return form.Data{
		Text:     f.inputs[moveFieldText].Value(),
		DateFrom: f.inputs[moveFieldDateFrom].Value(),
		DateTo:   f.inputs[moveFieldDateTo].Value(),
		Memo:     f.inputs[moveFieldMemo].Value(),
		Status:   f.inputs[moveFieldStatus].Value(),
		Priority: f.inputs[moveFieldPriority].Value(),
	}
}

func (f *moveFormModel) focusNext() { f.setFocus((f.focus + 1) % moveFieldCount) }
func (f *moveFormModel) focusPrev() { f.setFocus((f.focus + moveFieldCount - 1) % moveFieldCount) }

func (f *moveFormModel) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *moveFormModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// setError records a failed submit. Validation errors are kept structured so
// the offending fields can be highlighted; anything else is shown verbatim.
func (f *moveFormModel) setError(err error) {
	var ve form.ValidationError
	if errors.As(err, &ve) {
		f.verr = &ve
		f.err = ""
		for i := range moveFieldNames {
			if ve.Has(moveFieldNames[i]) {
				f.setFocus(i)
				break
			}
		}
		return
	}
	f.verr = nil
	f.err = err.Error()
}

func (f *moveFormModel) view(width int) string {
	bodyW := modalBodyWidth(width)

	labelStyle := styleMuted()
	badStyle := lipgloss.NewStyle().Foreground(colorErrorFg).Bold(true)
	inputStyle := lipgloss.NewStyle().Background(colorInputBg).Width(bodyW)

	var b strings.Builder
	b.WriteString(styleMuted().Render(truncateText(
		fmt.Sprintf("Move %q to %s", f.card.Title, f.dest), bodyW)))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := moveFieldLabels[i]
		if moveFieldRequired[i] {
			label += " *"
		}
		st := labelStyle
		if f.verr != nil && f.verr.Has(moveFieldNames[i]) {
			st = badStyle
			label += "  (required)"
		}
		b.WriteString(st.Render(truncateText(label, bodyW)))
		b.WriteString("\n")
		b.WriteString(inputStyle.Render(f.inputs[i].View()))
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(badStyle.Render(truncateText(f.err, bodyW)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Width(bodyW).Render("tab: next field   enter: confirm   esc: cancel"))

	return renderModalBox(width, "Confirm move", b.String())
}
