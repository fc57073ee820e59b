package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "runlog",
	Short:        "A personal running log",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.runlog/config.yaml)")
	flags.String("data-dir", "", "directory the run log is stored in (default: ~/.runlog)")
	flags.String("backend", "", "storage backend: file or sqlite (default: file)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error or disabled (default: warn)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command, for tools that walk the command tree.
func Root() *cobra.Command {
	return rootCmd
}
