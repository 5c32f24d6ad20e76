package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change settings.

Settings are read from ~/.availability/config.yaml (or --config) and can be
overridden with AVAILABILITY_* environment variables, e.g.
AVAILABILITY_STORE_DRIVER=redis.`,
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configListCmd,
	},
}.Build()
