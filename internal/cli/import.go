package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = LeafCommand{
	Use:   "import <file>",
	Short: "Replace the run log with an exported JSON file",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "replace existing runs without asking"},
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

		return runImport(cmd, env.store, args[0], confirm)
	},
}.Build()

func runImport(cmd *cobra.Command, st *store.Store, path string, confirm ConfirmFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	existing, err := st.LoadAll()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(existing) > 0 {
		confirmed, err := confirm(fmt.Sprintf("Replace all %d logged runs with the contents of %s?", len(existing), path))
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	n, err := st.ReplaceAll(data)
	if err != nil {
		var formatErr *run.FormatError
		if errors.As(err, &formatErr) {
			return fmt.Errorf("invalid JSON file %q: %w", path, err)
		}
		return err
	}

	_, _ = fmt.Fprintf(w, "imported %d runs from %s\n", n, Primary(path))
	return nil
}
