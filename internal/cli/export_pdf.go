package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderSummaryPDF writes a summary of the run log followed by every run in
// date order to outputPath.
func renderSummaryPDF(summary stats.Summary, sorted []run.Record, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Running log", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("As of %s", summary.Today), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	addPDFSection(m, "Totals", [][2]string{
		{"Runs", fmt.Sprintf("%d", summary.Totals.RunCount)},
		{"Distance", fmt.Sprintf("%.2f km", summary.Totals.TotalDistance)},
		{"Time", fmt.Sprintf("%.0f min", summary.Totals.TotalTime)},
		{"Pace", formatPace(summary.Totals.Pace)},
		{"Streak", formatStreak(summary.Streak)},
	})

	addPDFSection(m, fmt.Sprintf("Last %d days (since %s)", stats.WeekDays, summary.Week.Start), [][2]string{
		{"Runs", fmt.Sprintf("%d", summary.Week.Count)},
		{"Distance", fmt.Sprintf("%.2f km (avg %.2f km)", summary.Week.Distance, summary.Week.AvgDistance)},
		{"Time", fmt.Sprintf("%.0f min (avg %.0f min)", summary.Week.Time, summary.Week.AvgTime)},
		{"Pace", formatPace(summary.Week.Pace)},
	})

	if len(summary.ByType) > 0 {
		rows := make([][2]string, 0, len(summary.ByType))
		for _, row := range summary.ByType {
			rows = append(rows, [2]string{
				row.Type,
				fmt.Sprintf("%d runs, %.2f km, %.0f min", row.Count, row.Distance, row.Time),
			})
		}
		addPDFSection(m, "By type", rows)
	}

	if len(sorted) > 0 {
		addRunTable(m, sorted)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

func addPDFSection(m core.Maroto, title string, rows [][2]string) {
	m.AddRow(8,
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Color: &pdfHeaderColor,
		}),
	)
	for _, row := range rows {
		m.AddRow(6,
			text.NewCol(4, "  "+row[0], props.Text{Size: 9}),
			text.NewCol(8, row[1], props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(4)
}

func addRunTable(m core.Maroto, sorted []run.Record) {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(7,
		text.NewCol(2, "Date", header),
		text.NewCol(2, "Distance", header),
		text.NewCol(2, "Time", header),
		text.NewCol(2, "Pace", header),
		text.NewCol(4, "Type / notes", header),
	)

	for _, r := range sorted {
		label := r.Type
		if r.Notes != "" {
			if label != "" {
				label += ": "
			}
			label += r.Notes
		}
		m.AddRow(5,
			text.NewCol(2, r.Date, props.Text{Size: 8}),
			text.NewCol(2, formatNumber(r.Distance)+" km", props.Text{Size: 8}),
			text.NewCol(2, formatNumber(r.Time)+" min", props.Text{Size: 8}),
			text.NewCol(2, formatPace(r.Pace()), props.Text{Size: 8}),
			text.NewCol(4, label, props.Text{Size: 8, Color: &pdfMutedColor}),
		)
	}
}
