package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var profileAddCmd = LeafCommand{
	Use:   "add NAME",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runProfileAdd(cmd, a.svc, args[0])
		})
	},
}.Build()

func runProfileAdd(cmd *cobra.Command, svc *session.Service, name string) error {
	p, err := svc.AddProfile(cmdContext(cmd), name)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("profile '%s' created (%s)", Primary(p.Name), Silent(p.ID))))
	return nil
}
