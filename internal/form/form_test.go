package form

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateOk(t *testing.T) {
	d := Data{Text: "Frontend Task", DateFrom: "2024-02-20", DateTo: "2024-02-21"}
	if err := Validate(d); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	err := Validate(Data{})
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError; got %v", err)
	}
	want := []string{"text", "dateFrom", "dateTo"}
	if !reflect.DeepEqual(ve.Fields, want) {
		t.Fatalf("fields: got %v want %v", ve.Fields, want)
	}
	for _, f := range want {
		if !ve.Has(f) {
			t.Fatalf("Has(%q) = false", f)
		}
	}
	if ve.Has("memo") {
		t.Fatalf("memo is optional and must not be reported")
	}
}

func TestValidateRejectsUnparseableDates(t *testing.T) {
	cases := []Data{
		{Text: "x", DateFrom: "02/20/2024", DateTo: "2024-02-21"},
		{Text: "x", DateFrom: "2024-02-20", DateTo: "tomorrow"},
		{Text: "x", DateFrom: "2024-13-01", DateTo: "2024-02-21"},
	}
	for _, d := range cases {
		if err := Validate(d); err == nil {
			t.Fatalf("expected error for %+v", d)
		}
	}
}

func TestValidateWhitespaceTextIsMissing(t *testing.T) {
	err := Validate(Data{Text: "   ", DateFrom: "2024-02-20", DateTo: "2024-02-21"})
	var ve ValidationError
	if !errors.As(err, &ve) || !ve.Has("text") {
		t.Fatalf("whitespace-only text must fail; got %v", err)
	}
}

func TestOverridesApplyDefaults(t *testing.T) {
	d := Data{Text: "Frontend Task", DateFrom: "2024-02-20", DateTo: "2024-02-21"}
	o := d.Overrides()
	if o.Status != DefaultStatus || o.Priority != DefaultPriority {
		t.Fatalf("defaults not applied: %+v", o)
	}

	d.Status = "active"
	d.Priority = "high"
	o = d.Overrides()
	if o.Status != "active" || o.Priority != "high" {
		t.Fatalf("explicit values must win: %+v", o)
	}
}

func TestNewHasDefaults(t *testing.T) {
	d := New()
	if d.Status != DefaultStatus || d.Priority != DefaultPriority {
		t.Fatalf("New(): %+v", d)
	}
}
