package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var chartCmd = LeafCommand{
	Use:   "chart",
	Short: "Chart distance per run over time",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "last", Usage: "chart only the last N runs, 0 for all", Default: 30},
		{Name: "width", Usage: "width of the longest bar", Default: defaultBarWidth},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		last, _ := cmd.Flags().GetInt("last")
		width, _ := cmd.Flags().GetInt("width")
		return runChart(cmd, env.store, last, width)
	},
}.Build()

func runChart(cmd *cobra.Command, st *store.Store, last, width int) error {
	records, err := st.LoadAll()
	if err != nil {
		return err
	}

	series := stats.Chart(run.SortByDate(records))
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderChart(series, last, width))
	return nil
}
