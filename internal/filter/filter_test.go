package filter

import (
	"reflect"
	"testing"

	"planboard/internal/model"
)

func sampleCards() []model.Card {
	return []model.Card{
		{ID: "card-1", Title: "Frontend Task", Description: "Complete the project setup", Group: "Development"},
		{ID: "card-2", Title: "UI Design", Description: "Design the user interface", Group: "Design"},
		{ID: "card-3", Title: "Backend Task", Description: "Implement core features", Group: "Development"},
		{ID: "card-4", Title: "Testing", Description: "Perform unit testing", Group: "QA"},
		{ID: "card-5", Title: "Loose End", Description: "No group on this one"},
	}
}

func ids(cards []model.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestEmptyFilterPassesEverything(t *testing.T) {
	cards := sampleCards()
	got := Visible(cards, NewState())
	if !reflect.DeepEqual(got, cards) {
		t.Fatalf("empty filter must be identity; got %v", ids(got))
	}

	// A field toggled on and off again is empty, not "reject everything".
	st := NewState()
	st.Toggle(FieldGroup, "Design")
	st.Toggle(FieldGroup, "Design")
	if got := Visible(cards, st); len(got) != len(cards) {
		t.Fatalf("emptied selection must pass through; got %v", ids(got))
	}
}

func TestSingleFieldSelection(t *testing.T) {
	st := NewState()
	st.Toggle(FieldGroup, "Design")

	got := ids(Visible(sampleCards(), st))
	want := []string{"card-2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("groups={Design}: got %v want %v", got, want)
	}
}

func TestOrWithinFieldAndAcrossFields(t *testing.T) {
	st := NewState()
	st.Toggle(FieldGroup, "Development")
	st.Toggle(FieldGroup, "QA")
	st.Toggle(FieldTitle, "Backend Task")
	st.Toggle(FieldTitle, "Testing")

	// Card must match any selected title AND any selected group.
	got := ids(Visible(sampleCards(), st))
	want := []string{"card-3", "card-4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExactMatchNotSubstring(t *testing.T) {
	st := NewState()
	st.Toggle(FieldTitle, "Task")

	if got := Visible(sampleCards(), st); len(got) != 0 {
		t.Fatalf("substring must not match; got %v", ids(got))
	}
}

func TestToggleIdempotence(t *testing.T) {
	st := NewState()
	st.Toggle(FieldTitle, "Frontend Task")
	before := st.Selected(FieldTitle)

	st.Toggle(FieldDescription, "x")
	st.Toggle(FieldDescription, "x")

	if got := st.Selected(FieldDescription); got != nil {
		t.Fatalf("double toggle must restore empty selection; got %v", got)
	}
	if got := st.Selected(FieldTitle); !reflect.DeepEqual(got, before) {
		t.Fatalf("other fields must be untouched; got %v want %v", got, before)
	}
}

func TestViewsAreIndependent(t *testing.T) {
	e := NewEngine()
	e.Toggle("available jobs", FieldGroup, "Design")

	cards := sampleCards()
	if got := ids(e.Visible("available jobs", cards)); !reflect.DeepEqual(got, []string{"card-2"}) {
		t.Fatalf("available jobs view: got %v", got)
	}
	if got := e.Visible("events", cards); len(got) != len(cards) {
		t.Fatalf("events view must be unfiltered; got %v", ids(got))
	}
	if e.View("events").Active() {
		t.Fatalf("mutating one view leaked into another")
	}
}

func TestOptionsFirstSeenOrderSkipsEmpty(t *testing.T) {
	got := Options(sampleCards(), FieldGroup)
	want := []string{"Development", "Design", "QA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("options: got %v want %v", got, want)
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	cards := sampleCards()
	snapshot := make([]model.Card, len(cards))
	copy(snapshot, cards)

	st := NewState()
	st.Toggle(FieldGroup, "Development")
	_ = Visible(cards, st)

	if !reflect.DeepEqual(cards, snapshot) {
		t.Fatalf("Visible mutated its input")
	}
}
