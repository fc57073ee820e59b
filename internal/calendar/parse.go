package calendar

import (
	"fmt"
	"strings"
	"time"
)

// ParseDay parses a date expression relative to today.
// Supports: "today", "yesterday", weekday names with an optional "last "
// prefix (the most recent such day, today included), "2024-01-15",
// "Jan 2", "Jan 2 2006", "January 2", "January 2 2006", "2 Jan",
// "2 Jan 2006", "2 January", "2 January 2006".
func ParseDay(s string, today Day) (Day, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	cleaned := strings.TrimPrefix(s, "last ")
	if wd, ok := weekdays[cleaned]; ok {
		return previousWeekday(today, wd), nil
	}

	layouts := []string{
		Layout,
		"jan 2",
		"jan 2 2006",
		"january 2",
		"january 2 2006",
		"2 jan",
		"2 jan 2006",
		"2 january",
		"2 january 2006",
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			return Date(today.t.Year(), t.Month(), t.Day()), nil
		}
		return Date(t.Year(), t.Month(), t.Day()), nil
	}

	return Day{}, fmt.Errorf("unrecognized date %q", s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// previousWeekday returns the most recent occurrence of wd on or before today.
func previousWeekday(today Day, wd time.Weekday) Day {
	daysBack := int(today.Weekday()) - int(wd)
	if daysBack < 0 {
		daysBack += 7
	}
	return today.AddDays(-daysBack)
}
