package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export the run log as JSON or a PDF summary",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "export format: json or pdf", Default: "json"},
		{Name: "output", Shorthand: "o", Usage: "output file, - for stdout (default: runData.json or runData.pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		return runExport(cmd, env.store, env.today(), format, output)
	},
}.Build()

func runExport(cmd *cobra.Command, st *store.Store, today calendar.Day, format, output string) error {
	switch format {
	case "json":
		return exportJSON(cmd, st, output)
	case "pdf":
		return exportPDF(cmd, st, today, output)
	default:
		return fmt.Errorf("unsupported export format %q (supported: json, pdf)", format)
	}
}

func exportJSON(cmd *cobra.Command, st *store.Store, output string) error {
	data, err := st.ExportSnapshot()
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if output == "" {
		output = "runData.json"
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("writing %q: %w", output, err)
	}

	records, err := st.LoadAll()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d runs to %s\n", len(records), Primary(output))
	return nil
}

func exportPDF(cmd *cobra.Command, st *store.Store, today calendar.Day, output string) error {
	if output == "-" {
		return fmt.Errorf("pdf export needs an output file")
	}
	if output == "" {
		output = "runData.pdf"
	}

	records, err := st.LoadAll()
	if err != nil {
		return err
	}

	summary := stats.Aggregate(records, today)
	if err := renderSummaryPDF(summary, run.SortByDate(records), output); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d runs to %s\n", len(records), Primary(output))
	return nil
}
