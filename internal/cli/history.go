package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show recently logged runs",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "number of runs to show, 0 for all", Default: stats.RecentLimit},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		limit, _ := cmd.Flags().GetInt("limit")
		return runHistory(cmd, env.store, limit)
	},
}.Build()

func runHistory(cmd *cobra.Command, st *store.Store, limit int) error {
	records, err := st.LoadAll()
	if err != nil {
		return err
	}

	sorted := run.SortByDate(records)
	if limit <= 0 {
		limit = len(sorted)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderHistory(stats.History(sorted, limit)))
	return nil
}
