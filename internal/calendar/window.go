package calendar

import (
	"github.com/teambition/rrule-go"
)

// Window returns the n consecutive days ending at end, newest first.
// Offset i in the result is end minus i days.
func Window(end Day, n int) []Day {
	if n <= 0 {
		return nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: end.AddDays(-(n - 1)).Time(),
		Count:   n,
	})
	if err != nil {
		// A DAILY rule with a positive count is always valid; fall back to
		// plain arithmetic rather than surface an impossible error.
		return stepBack(end, n)
	}

	occurrences := r.All()
	days := make([]Day, len(occurrences))
	for i, t := range occurrences {
		days[len(occurrences)-1-i] = Day{t: t}
	}
	return days
}

func stepBack(end Day, n int) []Day {
	days := make([]Day, n)
	for i := range days {
		days[i] = end.AddDays(-i)
	}
	return days
}
