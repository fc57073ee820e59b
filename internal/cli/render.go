package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 40
	labelColWidth   = 10
)

func padRight(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

// renderHistory lists history items newest first, one per line.
func renderHistory(items []stats.HistoryItem) string {
	if len(items) == 0 {
		return Silent("no runs logged") + "\n"
	}

	var b strings.Builder
	for _, item := range items {
		line := fmt.Sprintf("%s  %s  %s",
			Info(item.Date),
			padRight(describeRun(item.Record), 22),
			Silent(formatPace(item.Pace)),
		)
		if item.Type != "" {
			line += "  " + Primary(item.Type)
		}
		if item.Notes != "" {
			line += "  " + Silent(item.Notes)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderStats prints the totals, weekly window, streak, recent days and the
// per-type breakdown of a summary.
func renderStats(s stats.Summary) string {
	var b strings.Builder

	b.WriteString(Header("Totals"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  runs:      %d\n", s.Totals.RunCount)
	fmt.Fprintf(&b, "  distance:  %.2f km\n", s.Totals.TotalDistance)
	fmt.Fprintf(&b, "  time:      %.0f min\n", s.Totals.TotalTime)
	fmt.Fprintf(&b, "  pace:      %s\n", formatPace(s.Totals.Pace))
	fmt.Fprintf(&b, "  streak:    %s\n", Primary(formatStreak(s.Streak)))

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Last %d days", stats.WeekDays)))
	b.WriteString(Silent(fmt.Sprintf(" (since %s)", s.Week.Start)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  runs:      %d\n", s.Week.Count)
	fmt.Fprintf(&b, "  distance:  %.2f km (avg %.2f km)\n", s.Week.Distance, s.Week.AvgDistance)
	fmt.Fprintf(&b, "  time:      %.0f min (avg %.0f min)\n", s.Week.Time, s.Week.AvgTime)
	fmt.Fprintf(&b, "  pace:      %s\n", formatPace(s.Week.Pace))

	if len(s.RecentDays) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recent days"))
		b.WriteString("\n  ")
		b.WriteString(Silent(strings.Join(s.RecentDays, ", ")))
		b.WriteString("\n")
	}

	if len(s.ByType) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("By type"))
		b.WriteString("\n")
		for _, row := range s.ByType {
			fmt.Fprintf(&b, "  %s %3d runs  %8.2f km  %6.0f min\n",
				padRight(row.Type, 12), row.Count, row.Distance, row.Time)
		}
	}

	return b.String()
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// renderChart draws the series as horizontal bars scaled to the largest
// value. Only the last n points are drawn when n > 0.
func renderChart(series stats.Series, n, width int) string {
	labels, values := series.Labels, series.Values
	if n > 0 && len(values) > n {
		labels = labels[len(labels)-n:]
		values = values[len(values)-n:]
	}
	if len(values) == 0 {
		return Silent("no runs logged") + "\n"
	}
	if width <= 0 {
		width = defaultBarWidth
	}

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}

	var b strings.Builder
	for i, v := range values {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(v / peak * float64(width)))
		}
		if bar == 0 && v > 0 {
			bar = 1
		}
		// imported records are stored unvalidated and may be negative
		bar = max(0, min(bar, width))
		fmt.Fprintf(&b, "%s %s %s\n",
			padRight(labels[i], labelColWidth),
			barStyle.Render(strings.Repeat("█", bar))+strings.Repeat(" ", width-bar),
			formatNumber(v),
		)
	}
	return b.String()
}

// renderHeatmap lays the cells out in rows of a week, oldest first. cells[0]
// is today, as stats.Heatmap returns them.
func renderHeatmap(cells []bool, today calendar.Day) string {
	n := len(cells)
	var b strings.Builder
	for row := 0; row*stats.WeekDays < n; row++ {
		first := n - 1 - row*stats.WeekDays
		b.WriteString(Silent(padRight(today.AddDays(-first).String(), labelColWidth)))
		for col := 0; col < stats.WeekDays; col++ {
			offset := first - col
			if offset < 0 {
				break
			}
			b.WriteString(" ")
			if cells[offset] {
				b.WriteString(cellOnStyle.Render("■"))
			} else {
				b.WriteString(cellOffStyle.Render("·"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
