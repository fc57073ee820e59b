package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var heatmapCmd = LeafCommand{
	Use:   "heatmap",
	Short: "Show which of the last six weeks had a run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		return runHeatmap(cmd, env.store, env.today())
	},
}.Build()

func runHeatmap(cmd *cobra.Command, st *store.Store, today calendar.Day) error {
	records, err := st.LoadAll()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderHeatmap(stats.Heatmap(records, today), today))
	return nil
}
