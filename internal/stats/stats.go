// Package stats derives the run log's aggregates. Every function is pure:
// it reads a snapshot of records and an explicit "today" and nothing else.
package stats

import (
	"sort"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
)

const (
	WeekDays      = 7
	StreakHorizon = 365
	RecentLimit   = 10
	HeatmapDays   = 42
)

// Totals holds whole-log sums. Pace is minutes per kilometer.
type Totals struct {
	RunCount      int
	TotalDistance float64
	TotalTime     float64
	Pace          float64
}

// Week holds the stats of the trailing seven-day window.
type Week struct {
	Start       calendar.Day
	Count       int
	Distance    float64
	Time        float64
	AvgDistance float64
	AvgTime     float64
	Pace        float64
}

// HistoryItem is one rendered history entry with its derived pace.
type HistoryItem struct {
	run.Record
	Pace float64
}

// Series is the distance-over-time chart data, in date order.
type Series struct {
	Labels []string
	Values []float64
}

// TypeRow aggregates the runs sharing a type label.
type TypeRow struct {
	Type     string
	Count    int
	Distance float64
	Time     float64
}

// Summary is everything the front end renders for one snapshot.
type Summary struct {
	Today      calendar.Day
	Totals     Totals
	Week       Week
	Streak     int
	RecentDays []string
	History    []HistoryItem
	Chart      Series
	Heatmap    []bool
	ByType     []TypeRow
}

// Aggregate computes the full Summary for records as of today.
func Aggregate(records []run.Record, today calendar.Day) Summary {
	sorted := run.SortByDate(records)
	return Summary{
		Today:      today,
		Totals:     ComputeTotals(sorted),
		Week:       ComputeWeek(sorted, today),
		Streak:     Streak(sorted, today),
		RecentDays: RecentDays(sorted, RecentLimit),
		History:    History(sorted, RecentLimit),
		Chart:      Chart(sorted),
		Heatmap:    Heatmap(sorted, today),
		ByType:     ByType(sorted),
	}
}

// ComputeTotals sums distance and time over all records.
func ComputeTotals(records []run.Record) Totals {
	t := Totals{RunCount: len(records)}
	for _, r := range records {
		t.TotalDistance += r.Distance
		t.TotalTime += r.Time
	}
	t.Pace = run.PaceOf(t.TotalTime, t.TotalDistance)
	return t
}

// ComputeWeek aggregates records dated on or after today-6. Comparison is by
// calendar date only.
func ComputeWeek(records []run.Record, today calendar.Day) Week {
	w := Week{Start: today.AddDays(-(WeekDays - 1))}
	start := w.Start.String()

	for _, r := range records {
		if r.Date < start {
			continue
		}
		w.Count++
		w.Distance += r.Distance
		w.Time += r.Time
	}

	if w.Count > 0 {
		w.AvgDistance = run.Round(w.Distance/float64(w.Count), 2)
		w.AvgTime = run.Round(w.Time/float64(w.Count), 0)
	}
	w.Pace = run.PaceOf(w.Time, w.Distance)
	return w
}

// Streak counts consecutive days with a run, starting at today and walking
// backwards. The first day without a run ends the streak.
func Streak(records []run.Record, today calendar.Day) int {
	logged := dateSet(records)
	streak := 0
	for _, day := range calendar.Window(today, StreakHorizon) {
		if !logged[day.String()] {
			break
		}
		streak++
	}
	return streak
}

// RecentDays returns up to limit distinct record dates, newest first.
func RecentDays(records []run.Record, limit int) []string {
	dates := make([]string, 0, len(records))
	for d := range dateSet(records) {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > limit {
		dates = dates[:limit]
	}
	return dates
}

// History returns the last limit records of the date-ordered sequence,
// newest first, each with its pace.
func History(sorted []run.Record, limit int) []HistoryItem {
	start := len(sorted) - limit
	if start < 0 {
		start = 0
	}
	tail := sorted[start:]

	items := make([]HistoryItem, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		items = append(items, HistoryItem{Record: tail[i], Pace: tail[i].Pace()})
	}
	return items
}

// Chart returns the distance series in date order.
func Chart(sorted []run.Record) Series {
	s := Series{
		Labels: make([]string, len(sorted)),
		Values: make([]float64, len(sorted)),
	}
	for i, r := range sorted {
		s.Labels[i] = r.Date
		s.Values[i] = r.Distance
	}
	return s
}

// Heatmap reports, for each of the HeatmapDays days ending today, whether a
// run was logged. Index 0 is today.
func Heatmap(records []run.Record, today calendar.Day) []bool {
	logged := dateSet(records)
	days := calendar.Window(today, HeatmapDays)
	cells := make([]bool, len(days))
	for i, day := range days {
		cells[i] = logged[day.String()]
	}
	return cells
}

// UntypedLabel names the group of runs without a type.
const UntypedLabel = "untyped"

// ByType groups records by normalised type label, largest distance first.
func ByType(records []run.Record) []TypeRow {
	rowMap := make(map[string]*TypeRow)
	for _, r := range records {
		key := run.NormalizeLabel(r.Type)
		if key == "" {
			key = UntypedLabel
		}
		row, ok := rowMap[key]
		if !ok {
			row = &TypeRow{Type: key}
			rowMap[key] = row
		}
		row.Count++
		row.Distance += r.Distance
		row.Time += r.Time
	}

	rows := make([]TypeRow, 0, len(rowMap))
	for _, row := range rowMap {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Distance != rows[j].Distance {
			return rows[i].Distance > rows[j].Distance
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}

func dateSet(records []run.Record) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.Date] = true
	}
	return set
}
