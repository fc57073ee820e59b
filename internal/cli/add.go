package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = LeafCommand{
	Use:     "add",
	Aliases: []string{"log"},
	Short:   "Log a run",
	Args:    cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "run date: YYYY-MM-DD, today, yesterday or a weekday (default: today)"},
		{Name: "distance", Usage: "distance in kilometers"},
		{Name: "time", Usage: "duration in minutes"},
		{Name: "type", Usage: "run type, e.g. Easy, Tempo, Long"},
		{Name: "notes", Usage: "free-form notes"},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "overwrite an existing run without asking"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		dateFlag, _ := cmd.Flags().GetString("date")
		distanceFlag, _ := cmd.Flags().GetString("distance")
		timeFlag, _ := cmd.Flags().GetString("time")
		typeFlag, _ := cmd.Flags().GetString("type")
		notesFlag, _ := cmd.Flags().GetString("notes")
		yes, _ := cmd.Flags().GetBool("yes")

		pk := NewPromptKit()
		if yes {
			pk.Confirm = AlwaysYes()
		}

		form := run.Form{
			Distance: distanceFlag,
			Time:     timeFlag,
			Type:     typeFlag,
			Notes:    notesFlag,
		}
		return runAdd(cmd, env.store, env.today(), dateFlag, form, pk)
	},
}.Build()

func runAdd(cmd *cobra.Command, st *store.Store, today calendar.Day, dateFlag string, form run.Form, pk PromptKit) error {
	day, err := resolveDay(dateFlag, today)
	if err != nil {
		return err
	}
	form.Date = day.String()

	if err := promptMissing(pk.Prompt, "Distance (km)", &form.Distance); err != nil {
		return err
	}
	if err := promptMissing(pk.Prompt, "Time (minutes)", &form.Time); err != nil {
		return err
	}

	r, err := run.ParseForm(form)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	existing, found, err := st.ExistingRecordFor(r.Date)
	if err != nil {
		return err
	}
	if found {
		_, _ = fmt.Fprintf(w, "%s %s on %s\n", Warning("already logged:"), describeRun(existing), existing.Date)
		confirmed, err := pk.Confirm(overwritePrompt)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	if err := st.Upsert(r); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "logged %s on %s (%s)\n",
		Primary(describeRun(r)),
		Info(r.Date),
		Silent(formatPace(r.Pace())),
	)
	return nil
}

// promptMissing asks for a required value the flags left empty. Without a
// prompt the value stays empty and validation reports it.
func promptMissing(prompt PromptFunc, title string, value *string) error {
	if *value != "" || prompt == nil {
		return nil
	}
	answer, err := prompt(title, "")
	if err != nil {
		return err
	}
	*value = answer
	return nil
}
