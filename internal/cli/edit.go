package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var editCmd = LeafCommand{
	Use:   "edit <date>",
	Short: "Edit a logged run",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "distance", Usage: "new distance in kilometers"},
		{Name: "time", Usage: "new duration in minutes"},
		{Name: "type", Usage: "new run type"},
		{Name: "notes", Usage: "new notes"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		changes := map[string]string{}
		for _, name := range editableFields {
			if cmd.Flags().Changed(name) {
				changes[name], _ = cmd.Flags().GetString(name)
			}
		}

		return runEdit(cmd, env.store, env.today(), args[0], changes, NewPromptKit())
	},
}.Build()

// editableFields are the record fields edit can change, in prompt order.
// The date is the record's key and is not editable.
var editableFields = []string{"distance", "time", "type", "notes"}

var editPromptTitles = map[string]string{
	"distance": "Distance (km)",
	"time":     "Time (minutes)",
	"type":     "Type",
	"notes":    "Notes",
}

// runEdit applies changes (field name to new raw value) to the run logged on
// dateArg. With no changes every field is prompted for, pre-filled with its
// current value.
func runEdit(cmd *cobra.Command, st *store.Store, today calendar.Day, dateArg string, changes map[string]string, pk PromptKit) error {
	day, err := resolveDay(dateArg, today)
	if err != nil {
		return err
	}

	before, found, err := st.ExistingRecordFor(day.String())
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no run logged on %s", day)
	}

	values := map[string]string{
		"distance": formatNumber(before.Distance),
		"time":     formatNumber(before.Time),
		"type":     before.Type,
		"notes":    before.Notes,
	}

	if len(changes) > 0 {
		for name, value := range changes {
			values[name] = value
		}
	} else {
		if pk.Prompt == nil {
			return fmt.Errorf("nothing to change: pass --distance, --time, --type or --notes")
		}
		for _, name := range editableFields {
			answer, err := pk.Prompt(editPromptTitles[name], values[name])
			if err != nil {
				return err
			}
			values[name] = answer
		}
	}

	after, err := run.ParseForm(run.Form{
		Date:     before.Date,
		Distance: values["distance"],
		Time:     values["time"],
		Type:     values["type"],
		Notes:    values["notes"],
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if after == before {
		_, _ = fmt.Fprintln(w, "no changes")
		return nil
	}

	if err := st.Upsert(after); err != nil {
		return err
	}

	printEditDiff(cmd, before, after)
	return nil
}

func printEditDiff(cmd *cobra.Command, before, after run.Record) {
	w := cmd.OutOrStdout()

	if before.Distance != after.Distance {
		_, _ = fmt.Fprintf(w, "  distance: %s → %s\n",
			Silent(formatNumber(before.Distance)+" km"),
			Primary(formatNumber(after.Distance)+" km"),
		)
	}

	if before.Time != after.Time {
		_, _ = fmt.Fprintf(w, "  time:     %s → %s\n",
			Silent(formatNumber(before.Time)+" min"),
			Primary(formatNumber(after.Time)+" min"),
		)
	}

	if before.Type != after.Type {
		_, _ = fmt.Fprintf(w, "  type:     %s → %s\n",
			Silent(orNone(before.Type)),
			Primary(orNone(after.Type)),
		)
	}

	if before.Notes != after.Notes {
		_, _ = fmt.Fprintf(w, "  notes:    %s → %s\n",
			Silent(orNone(before.Notes)),
			Primary(orNone(after.Notes)),
		)
	}

	_, _ = fmt.Fprintf(w, "updated run on %s (%s)\n", Info(after.Date), Silent(formatPace(after.Pace())))
}
