package run

import (
	"math"
	"strconv"
	"strings"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/gookit/validate"
	"golang.org/x/text/unicode/norm"
)

// Form holds the raw text inputs for a run, as typed by the user.
type Form struct {
	Date     string
	Distance string
	Time     string
	Type     string
	Notes    string
}

// ParseForm converts raw inputs into a validated Record.
// Returns a *ValidationError when the date is missing or malformed, or when
// distance or time are not positive numbers.
func ParseForm(f Form) (Record, error) {
	date := strings.TrimSpace(f.Date)
	if date == "" {
		return Record{}, &ValidationError{Field: "date", Reason: "is required"}
	}

	distance, err := parsePositive("distance", f.Distance)
	if err != nil {
		return Record{}, err
	}
	minutes, err := parsePositive("time", f.Time)
	if err != nil {
		return Record{}, err
	}

	r := Record{
		Date:     date,
		Distance: distance,
		Time:     minutes,
		Type:     NormalizeLabel(f.Type),
		Notes:    strings.TrimSpace(f.Notes),
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func parsePositive(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	}
	if v <= 0 {
		return 0, &ValidationError{Field: field, Reason: "must be greater than 0"}
	}
	return v, nil
}

// validatedFields is the order in which field errors are reported.
var validatedFields = []string{"date", "distance", "time"}

// Validate checks the invariants of a record accepted through entry:
// a YYYY-MM-DD date and strictly positive distance and time.
func (r Record) Validate() error {
	v := validate.Map(map[string]any{
		"date":     r.Date,
		"distance": r.Distance,
		"time":     r.Time,
	})
	v.StringRules(map[string]string{
		"date":     "required",
		"distance": "required|gt:0",
		"time":     "required|gt:0",
	})
	v.StopOnError = false

	if !v.Validate() {
		for _, field := range validatedFields {
			if v.Errors.FieldOne(field) == "" {
				continue
			}
			if field == "date" {
				return &ValidationError{Field: field, Reason: "is required"}
			}
			return &ValidationError{Field: field, Reason: "must be greater than 0"}
		}
	}

	// gookit treats a zero number as empty and skips gt:0 for it.
	if !(r.Distance > 0) {
		return &ValidationError{Field: "distance", Reason: "must be greater than 0"}
	}
	if !(r.Time > 0) {
		return &ValidationError{Field: "time", Reason: "must be greater than 0"}
	}

	if _, err := calendar.ParseISO(r.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return nil
}

// NormalizeLabel trims a free-text label and puts it in Unicode NFC form so
// visually identical labels group together.
func NormalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
