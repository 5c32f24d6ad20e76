package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var resetCmd = LeafCommand{
	Use:   "reset",
	Short: "Clear all availability for the profile",
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runReset(cmd, a.svc, profileFlag(cmd), confirmFor(cmd, promptKitFor(cmd)))
		})
	},
}.Build()

func runReset(cmd *cobra.Command, svc *session.Service, profileRef string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	p, cal, err := svc.Calendar(cmdContext(cmd), profileRef)
	if err != nil {
		return err
	}
	if cal.IsEmpty() {
		_, _ = fmt.Fprintln(w, Silent("No availability set."))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Clear all availability for '%s'?", p.Name))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("No changes made."))
		return nil
	}

	res, err := svc.Reset(cmdContext(cmd), p.Slug)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Primary(res.Message))
	if res.EntryID != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", Success("Saved"), Silent("("+res.EntryID+")"))
	}
	return nil
}
