package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var removeCmd = LeafCommand{
	Use:     "remove <date>",
	Aliases: []string{"rm"},
	Short:   "Remove a logged run",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}

		return runRemove(cmd, env.store, env.today(), args[0], confirm)
	},
}.Build()

func runRemove(cmd *cobra.Command, st *store.Store, today calendar.Day, dateArg string, confirm ConfirmFunc) error {
	day, err := resolveDay(dateArg, today)
	if err != nil {
		return err
	}
	date := day.String()

	existing, found, err := st.ExistingRecordFor(date)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no run logged on %s", date)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Info(existing.Date), describeRun(existing), Silent(orNone(existing.Type)))

	confirmed, err := confirm("Remove this run?")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if _, err := st.Delete(date); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "removed run on %s\n", Primary(date))
	return nil
}
