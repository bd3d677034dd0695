package filter

import (
	"sort"
	"strings"

	"planboard/internal/model"
)

// Field names a filterable card attribute.
type Field string

const (
	FieldTitle       Field = "titles"
	FieldDescription Field = "descriptions"
	FieldGroup       Field = "groups"
)

// Fields lists the filterable fields in display order.
var Fields = []Field{FieldTitle, FieldDescription, FieldGroup}

// State holds, per field, the set of accepted values. An empty set imposes
// no constraint on that field (pass-through), not "reject everything".
type State map[Field]map[string]bool

func NewState() State {
	return State{}
}

// Toggle flips value in the field's selection: selecting a selected value
// removes it, so toggling twice restores the original selection.
func (s State) Toggle(field Field, value string) {
	set := s[field]
	if set == nil {
		set = map[string]bool{}
		s[field] = set
	}
	if set[value] {
		delete(set, value)
		return
	}
	set[value] = true
}

func (s State) Selected(field Field) []string {
	set := s[field]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	// Consumers don't rely on selection order; sort for stable display.
	sort.Strings(out)
	return out
}

func (s State) IsSelected(field Field, value string) bool {
	return s[field][value]
}

// Active reports whether any field has a non-empty selection.
func (s State) Active() bool {
	for _, set := range s {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// Clear drops every selection.
func (s State) Clear() {
	for f := range s {
		delete(s, f)
	}
}

func fieldValue(c model.Card, field Field) string {
	switch field {
	case FieldTitle:
		return c.Title
	case FieldDescription:
		return c.Description
	case FieldGroup:
		// Cards without a group compare as "" (they only match when the
		// empty value is explicitly selected, which the UI never offers).
		return c.Group
	default:
		return ""
	}
}

// Visible returns the cards that pass the filter: for every field with a
// non-empty selection the card's value must be one of the selected values
// (AND across fields, OR within a field). Input order is preserved; the
// input is never mutated.
func Visible(cards []model.Card, s State) []model.Card {
	if !s.Active() {
		out := make([]model.Card, len(cards))
		copy(out, cards)
		return out
	}
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if matches(c, s) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c model.Card, s State) bool {
	for field, set := range s {
		if len(set) == 0 {
			continue
		}
		if !set[fieldValue(c, field)] {
			return false
		}
	}
	return true
}

// Options lists the unique selectable values for a field in first-seen
// order. Empty values are skipped (an absent group is not an option).
func Options(cards []model.Card, field Field) []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range cards {
		v := strings.TrimSpace(fieldValue(c, field))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Engine owns one independently addressable State per view. Mutating one
// view's filter never affects another's.
type Engine struct {
	views map[string]State
}

func NewEngine() *Engine {
	return &Engine{views: map[string]State{}}
}

// View returns the named view's state, creating it on first use.
func (e *Engine) View(view string) State {
	st, ok := e.views[view]
	if !ok {
		st = NewState()
		e.views[view] = st
	}
	return st
}

func (e *Engine) Toggle(view string, field Field, value string) {
	e.View(view).Toggle(field, value)
}

func (e *Engine) Visible(view string, cards []model.Card) []model.Card {
	return Visible(cards, e.View(view))
}
