package calendar

import (
	"fmt"
	"time"
)

// Layout is the ISO 8601 calendar date layout used as the record key.
const Layout = "2006-01-02"

// Day is a civil calendar date with no time-of-day or zone attached.
// The zero value is not a valid day.
type Day struct {
	t time.Time // midnight UTC
}

// Date builds a Day from its components. Out-of-range values normalise the
// same way time.Date does.
func Date(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the calendar date of now as observed in loc.
// A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := now.In(loc).Date()
	return Date(y, m, d)
}

// ParseISO parses a strict YYYY-MM-DD date.
func ParseISO(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Day{t: t}, nil
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// String returns the YYYY-MM-DD form, which is also the record key.
func (d Day) String() string {
	return d.t.Format(Layout)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return d.t
}

func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Before(o Day) bool {
	return d.t.Before(o.t)
}

func (d Day) Equal(o Day) bool {
	return d.t.Equal(o.t)
}
