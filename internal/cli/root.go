package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "availability",
	Short:         "Keep a weekly availability calendar up to date from plain sentences",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.availability/config.yaml)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "profile name or ID (default: default)")
	rootCmd.SetHelpFunc(colorizedHelpFunc())
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		tellCmd,
		parseCmd,
		showCmd,
		presetCmd,
		rangeCmd,
		resetCmd,
		exportCmd,
		importCmd,
		historyCmd,
		undoCmd,
		chatCmd,
		profileCmd,
		configCmd,
		completionCmd,
		versionCmd,
	)
}

// Execute runs the command tree. ctx is handed to every command and
// cancels store operations.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
