package cli

import (
	"strings"
	"testing"

	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHistoryEmpty(t *testing.T) {
	assert.Contains(t, renderHistory(nil), "no runs logged")
}

func TestRenderHistory(t *testing.T) {
	items := []stats.HistoryItem{
		{Record: run.Record{Date: "2024-03-09", Distance: 8, Time: 44, Type: "Tempo", Notes: "hills"}, Pace: 5.5},
		{Record: run.Record{Date: "2024-03-08", Distance: 5, Time: 25}, Pace: 5},
	}

	lines := strings.Split(strings.TrimSuffix(renderHistory(items), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2024-03-09")
	assert.Contains(t, lines[0], "8 km in 44 min")
	assert.Contains(t, lines[0], "5.50 min/km")
	assert.Contains(t, lines[0], "Tempo")
	assert.Contains(t, lines[0], "hills")
	assert.Contains(t, lines[1], "5.00 min/km")
}

func TestRenderStats(t *testing.T) {
	records := []run.Record{
		{Date: "2024-03-10", Distance: 5, Time: 25, Type: "Easy"},
		{Date: "2024-03-09", Distance: 10, Time: 60, Type: "Long"},
		{Date: "2024-02-01", Distance: 3, Time: 20},
	}

	out := renderStats(stats.Aggregate(records, fixedToday()))

	assert.Contains(t, out, "runs:      3")
	assert.Contains(t, out, "distance:  18.00 km")
	assert.Contains(t, out, "time:      105 min")
	assert.Contains(t, out, "streak:    2 days")
	assert.Contains(t, out, "since 2024-03-04")
	assert.Contains(t, out, "distance:  15.00 km (avg 7.50 km)")
	assert.Contains(t, out, "2024-03-10, 2024-03-09, 2024-02-01")
	assert.Contains(t, out, "untyped")
}

func TestRenderStatsEmpty(t *testing.T) {
	out := renderStats(stats.Aggregate(nil, fixedToday()))

	assert.Contains(t, out, "runs:      0")
	assert.Contains(t, out, "pace:      0.00 min/km")
	assert.Contains(t, out, "streak:    0 days")
	assert.NotContains(t, out, "Recent days")
	assert.NotContains(t, out, "By type")
}

func TestRenderChart(t *testing.T) {
	series := stats.Series{
		Labels: []string{"2024-03-01", "2024-03-02", "2024-03-03"},
		Values: []float64{10, 5, 0.1},
	}

	lines := strings.Split(strings.TrimSuffix(renderChart(series, 0, 10), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, 10, strings.Count(lines[0], "█"))
	assert.Equal(t, 5, strings.Count(lines[1], "█"))
	assert.Equal(t, 1, strings.Count(lines[2], "█"), "small values still get a bar")
	assert.True(t, strings.HasSuffix(lines[2], " 0.1"))
}

func TestRenderChartLastN(t *testing.T) {
	series := stats.Series{
		Labels: []string{"2024-03-01", "2024-03-02", "2024-03-03"},
		Values: []float64{10, 5, 7},
	}

	out := renderChart(series, 2, 10)

	assert.NotContains(t, out, "2024-03-01")
	assert.Contains(t, out, "2024-03-02")
	assert.Contains(t, out, "2024-03-03")
}

func TestRenderChartEmpty(t *testing.T) {
	assert.Contains(t, renderChart(stats.Series{}, 0, 10), "no runs logged")
}

func TestRenderHeatmap(t *testing.T) {
	today := fixedToday()
	records := []run.Record{
		{Date: "2024-03-10", Distance: 5, Time: 25},
		{Date: "2024-01-29", Distance: 5, Time: 25},
	}

	out := renderHeatmap(stats.Heatmap(records, today), today)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "2024-01-29"))
	assert.True(t, strings.HasPrefix(lines[5], "2024-03-04"))
	assert.Equal(t, 2, strings.Count(out, "■"))
	assert.Equal(t, 40, strings.Count(out, "·"))
	assert.True(t, strings.HasSuffix(lines[5], "■"), "today is the last cell")

	cells := strings.Fields(lines[0])
	assert.Equal(t, "■", cells[1], "oldest day is the first cell")
}

func TestRenderChartClampsNonPositiveValues(t *testing.T) {
	series := stats.Series{
		Labels: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		Values: []float64{5, -1, 0},
	}

	var out string
	require.NotPanics(t, func() { out = renderChart(series, 0, 40) })

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 40, strings.Count(lines[0], "█"))
	assert.Equal(t, 0, strings.Count(lines[1], "█"))
	assert.True(t, strings.HasSuffix(lines[1], " -1"))
	assert.Equal(t, 0, strings.Count(lines[2], "█"))
}
