package form

import (
	"fmt"
	"strings"
	"time"

	"planboard/internal/board"
)

const (
	DateLayout = "2006-01-02"

	DefaultStatus   = "pending"
	DefaultPriority = "medium"
)

// Data is the confirmation form for one pending move. It is created fresh
// when a transition becomes pending and discarded on commit or cancel.
type Data struct {
	Text     string `json:"text"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Memo     string `json:"memo,omitempty"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// New returns a form with defaults applied.
func New() Data {
	return Data{Status: DefaultStatus, Priority: DefaultPriority}
}

// ValidationError lists the missing/invalid required fields.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid form fields: %s", strings.Join(e.Fields, ", "))
}

// Has reports whether the named field failed validation.
func (e ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

func validDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Validate checks the required fields: text must be non-empty, dateFrom and
// dateTo must be parseable YYYY-MM-DD dates. Pure and synchronous; returns
// nil or a ValidationError naming every failing field.
func Validate(d Data) error {
	var missing []string
	if strings.TrimSpace(d.Text) == "" {
		missing = append(missing, "text")
	}
	if !validDate(d.DateFrom) {
		missing = append(missing, "dateFrom")
	}
	if !validDate(d.DateTo) {
		missing = append(missing, "dateTo")
	}
	if len(missing) > 0 {
		return ValidationError{Fields: missing}
	}
	return nil
}

// Overrides converts a validated form into the card overrides applied by the
// move, with the optional fields defaulted.
func (d Data) Overrides() board.Overrides {
	status := strings.TrimSpace(d.Status)
	if status == "" {
		status = DefaultStatus
	}
	priority := strings.TrimSpace(d.Priority)
	if priority == "" {
		priority = DefaultPriority
	}
	return board.Overrides{
		Title:    strings.TrimSpace(d.Text),
		DateFrom: strings.TrimSpace(d.DateFrom),
		DateTo:   strings.TrimSpace(d.DateTo),
		Memo:     strings.TrimSpace(d.Memo),
		Status:   status,
		Priority: priority,
	}
}
