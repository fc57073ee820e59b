package stats

import (
	"fmt"
	"testing"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runOn returns a record dated offset days before today.
func runOn(today calendar.Day, offset int, distance, minutes float64) run.Record {
	return run.Record{Date: today.AddDays(-offset).String(), Distance: distance, Time: minutes}
}

func TestAggregateEmpty(t *testing.T) {
	today := calendar.Date(2024, 3, 10)

	s := Aggregate(nil, today)

	assert.Equal(t, 0, s.Totals.RunCount)
	assert.Equal(t, 0.0, s.Totals.TotalDistance)
	assert.Equal(t, 0.0, s.Totals.TotalTime)
	assert.Equal(t, 0.0, s.Totals.Pace)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, "2024-03-04", s.Week.Start.String())
	assert.Equal(t, 0, s.Week.Count)
	assert.Equal(t, 0.0, s.Week.AvgDistance)
	assert.Equal(t, 0.0, s.Week.Pace)
	assert.Empty(t, s.RecentDays)
	assert.Empty(t, s.History)
	assert.Empty(t, s.Chart.Labels)
	assert.Empty(t, s.ByType)
	require.Len(t, s.Heatmap, HeatmapDays)
	for _, cell := range s.Heatmap {
		assert.False(t, cell)
	}
}

func TestTotalsAndPace(t *testing.T) {
	records := []run.Record{
		{Date: "2024-01-01", Distance: 5, Time: 25},
		{Date: "2024-01-08", Distance: 10, Time: 40},
	}

	totals := ComputeTotals(records)

	assert.Equal(t, 2, totals.RunCount)
	assert.Equal(t, 15.0, totals.TotalDistance)
	assert.Equal(t, 65.0, totals.TotalTime)
	assert.Equal(t, 4.33, totals.Pace)
}

func TestTotalsZeroDistanceGuarded(t *testing.T) {
	totals := ComputeTotals([]run.Record{{Date: "2024-01-01", Time: 30}})

	assert.Equal(t, 0.0, totals.Pace)
}

func TestWeekWindowBoundary(t *testing.T) {
	today := calendar.Date(2024, 3, 10)
	records := []run.Record{
		{Date: "2024-03-04", Distance: 6, Time: 30}, // exactly 6 days prior
		{Date: "2024-03-03", Distance: 100, Time: 600},
	}

	w := ComputeWeek(records, today)

	assert.Equal(t, "2024-03-04", w.Start.String())
	assert.Equal(t, 1, w.Count)
	assert.Equal(t, 6.0, w.Distance)
	assert.Equal(t, 30.0, w.Time)
}

func TestWeekAverages(t *testing.T) {
	today := calendar.Date(2024, 3, 10)
	records := []run.Record{
		runOn(today, 0, 5, 27),
		runOn(today, 2, 10, 50),
		runOn(today, 5, 7, 38),
		runOn(today, 9, 42, 240),
	}

	w := ComputeWeek(records, today)

	assert.Equal(t, 3, w.Count)
	assert.Equal(t, 22.0, w.Distance)
	assert.Equal(t, 115.0, w.Time)
	assert.Equal(t, 7.33, w.AvgDistance)
	assert.Equal(t, 38.0, w.AvgTime)
	assert.Equal(t, 5.23, w.Pace)
}

func TestWeekEmpty(t *testing.T) {
	today := calendar.Date(2024, 3, 10)

	w := ComputeWeek([]run.Record{runOn(today, 30, 5, 25)}, today)

	assert.Equal(t, 0, w.Count)
	assert.Equal(t, 0.0, w.AvgDistance)
	assert.Equal(t, 0.0, w.AvgTime)
	assert.Equal(t, 0.0, w.Pace)
}

func TestStreak(t *testing.T) {
	today := calendar.Date(2024, 3, 10)

	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"none", nil, 0},
		{"today only", []int{0}, 1},
		{"three consecutive", []int{0, 1, 2}, 3},
		{"gap at yesterday", []int{0, 2}, 1},
		{"missing today", []int{1, 2, 3}, 0},
		{"unordered input", []int{2, 0, 1, 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []run.Record
			for _, off := range tt.offsets {
				records = append(records, runOn(today, off, 5, 25))
			}
			assert.Equal(t, tt.want, Streak(records, today))
		})
	}
}

func TestStreakCrossesMonthBoundary(t *testing.T) {
	today := calendar.Date(2024, 3, 1)
	records := []run.Record{
		{Date: "2024-03-01"}, {Date: "2024-02-29"}, {Date: "2024-02-28"},
	}

	assert.Equal(t, 3, Streak(records, today))
}

func TestStreakCappedAtHorizon(t *testing.T) {
	today := calendar.Date(2024, 3, 10)
	var records []run.Record
	for i := 0; i < StreakHorizon+20; i++ {
		records = append(records, runOn(today, i, 5, 25))
	}

	assert.Equal(t, StreakHorizon, Streak(records, today))
}

func TestRecentDays(t *testing.T) {
	today := calendar.Date(2024, 3, 31)
	var records []run.Record
	for i := 0; i < 15; i++ {
		records = append(records, runOn(today, i*2, 5, 25))
	}

	days := RecentDays(records, RecentLimit)

	require.Len(t, days, 10)
	assert.Equal(t, "2024-03-31", days[0])
	assert.Equal(t, "2024-03-29", days[1])
	assert.Equal(t, "2024-03-13", days[9])
}

func TestRecentDaysCollapsesDuplicates(t *testing.T) {
	records := []run.Record{{Date: "2024-01-01"}, {Date: "2024-01-01"}, {Date: "2024-01-02"}}

	assert.Equal(t, []string{"2024-01-02", "2024-01-01"}, RecentDays(records, RecentLimit))
}

func TestHistory(t *testing.T) {
	var sorted []run.Record
	for d := 1; d <= 12; d++ {
		sorted = append(sorted, run.Record{Date: fmt.Sprintf("2024-01-%02d", d), Distance: 4, Time: float64(20 + d)})
	}

	items := History(sorted, RecentLimit)

	require.Len(t, items, 10)
	assert.Equal(t, "2024-01-12", items[0].Date)
	assert.Equal(t, "2024-01-03", items[9].Date)
	assert.Equal(t, 8.0, items[0].Pace)
	assert.Equal(t, 5.75, items[9].Pace)
}

func TestHistoryZeroDistance(t *testing.T) {
	items := History([]run.Record{{Date: "2024-01-01", Time: 10}}, RecentLimit)

	require.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].Pace)
}

func TestChartSeriesSorted(t *testing.T) {
	today := calendar.Date(2024, 1, 10)
	records := []run.Record{
		{Date: "2024-01-08", Distance: 10},
		{Date: "2024-01-01", Distance: 5},
	}

	s := Aggregate(records, today)

	assert.Equal(t, []string{"2024-01-01", "2024-01-08"}, s.Chart.Labels)
	assert.Equal(t, []float64{5, 10}, s.Chart.Values)
}

func TestHeatmap(t *testing.T) {
	today := calendar.Date(2024, 3, 10)
	records := []run.Record{
		runOn(today, 0, 5, 25),
		runOn(today, 3, 5, 25),
		runOn(today, 41, 5, 25),
		runOn(today, 42, 5, 25), // outside the window
		runOn(today, -1, 5, 25), // tomorrow
	}

	cells := Heatmap(records, today)

	require.Len(t, cells, 42)
	for i, cell := range cells {
		want := i == 0 || i == 3 || i == 41
		assert.Equal(t, want, cell, "offset %d", i)
	}
}

func TestByType(t *testing.T) {
	records := []run.Record{
		{Date: "2024-01-01", Distance: 5, Time: 25, Type: "Easy"},
		{Date: "2024-01-02", Distance: 12, Time: 70, Type: "Long"},
		{Date: "2024-01-03", Distance: 6, Time: 30, Type: " Easy "},
		{Date: "2024-01-04", Distance: 3, Time: 20},
	}

	rows := ByType(records)

	require.Len(t, rows, 3)
	assert.Equal(t, TypeRow{Type: "Long", Count: 1, Distance: 12, Time: 70}, rows[0])
	assert.Equal(t, TypeRow{Type: "Easy", Count: 2, Distance: 11, Time: 55}, rows[1])
	assert.Equal(t, TypeRow{Type: UntypedLabel, Count: 1, Distance: 3, Time: 20}, rows[2])
}
