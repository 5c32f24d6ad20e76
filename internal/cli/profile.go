package cli

import "github.com/spf13/cobra"

var profileCmd = GroupCommand{
	Use:   "profile",
	Short: "Manage availability profiles",
	Subcommands: []*cobra.Command{
		profileAddCmd,
		profileListCmd,
		profileRemoveCmd,
	},
}.Build()
