package cli

import (
	"fmt"

	"github.com/Flyrell/runlog/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Inspect runlog configuration",
	Subcommands: []*cobra.Command{
		configShowCmd,
	},
}.Build()

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print the effective configuration and where it came from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.Close() }()

		return runConfigShow(cmd, env.conf)
	},
}.Build()

func runConfigShow(cmd *cobra.Command, conf *config.Config) error {
	source := conf.Path
	if source == "" {
		source = "(none, using defaults)"
	}
	timezone := conf.Timezone
	if timezone == "" {
		timezone = "(local)"
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("config file:"), source)
	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("data dir:"), Primary(conf.DataDir))
	_, _ = fmt.Fprintf(w, "%s     %s\n", Silent("backend:"), conf.Backend)
	_, _ = fmt.Fprintf(w, "%s    %t\n", Silent("compress:"), conf.Compress)
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("storage key:"), conf.StorageKey)
	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("timezone:"), timezone)
	_, _ = fmt.Fprintf(w, "%s   %s\n", Silent("log level:"), conf.LogLevel)
	return nil
}
