package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/stats"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = LeafCommand{
	Use:   "stats",
	Short: "Show totals, weekly stats and streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		return runStats(cmd, env.store, env.today())
	},
}.Build()

func runStats(cmd *cobra.Command, st *store.Store, today calendar.Day) error {
	summary, err := summarize(st, today)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderStats(summary))
	return nil
}

// summarize loads the run log and aggregates it as of today.
func summarize(st *store.Store, today calendar.Day) (stats.Summary, error) {
	records, err := st.LoadAll()
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Aggregate(records, today), nil
}
