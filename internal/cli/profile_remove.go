package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var profileRemoveCmd = LeafCommand{
	Use:   "remove NAME",
	Short: "Remove a profile with its availability and history",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runProfileRemove(cmd, a.svc, args[0], confirmFor(cmd, promptKitFor(cmd)))
		})
	},
}.Build()

func runProfileRemove(cmd *cobra.Command, svc *session.Service, ref string, confirm ConfirmFunc) error {
	ctx := cmdContext(cmd)

	// Look the profile up first so a typo fails before the prompt.
	p, cal, err := svc.Calendar(ctx, ref)
	if err != nil {
		return err
	}

	if !cal.IsEmpty() {
		confirmed, err := confirm(fmt.Sprintf("Profile '%s' has availability on %d day(s). Remove it with its history?",
			p.Name, len(cal.Days())))
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("aborted")
		}
	}

	if _, err := svc.RemoveProfile(ctx, p.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("profile '%s' removed", Primary(p.Name))))
	return nil
}
