package cli

import (
	"fmt"
	"strconv"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
)

const overwritePrompt = "You've already logged a run for this day. Overwrite it?"

// formatNumber prints a user-entered quantity without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPace(pace float64) string {
	return fmt.Sprintf("%.2f min/km", pace)
}

// describeRun renders the quantities of r, e.g. "5 km in 25 min".
func describeRun(r run.Record) string {
	return fmt.Sprintf("%s km in %s min", formatNumber(r.Distance), formatNumber(r.Time))
}

// resolveDay parses a date argument relative to today.
func resolveDay(s string, today calendar.Day) (calendar.Day, error) {
	day, err := calendar.ParseDay(s, today)
	if err != nil {
		return calendar.Day{}, &run.ValidationError{Field: "date", Reason: err.Error()}
	}
	return day, nil
}

// orNone substitutes a placeholder for an empty label.
func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
