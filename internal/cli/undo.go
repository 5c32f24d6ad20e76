package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var undoCmd = LeafCommand{
	Use:   "undo",
	Short: "Revert the most recent change",
	Long:  "Revert the most recent change. Undoing an undo restores the change it reverted.",
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runUndo(cmd, a.svc, profileFlag(cmd), confirmFor(cmd, promptKitFor(cmd)))
		})
	},
}.Build()

func runUndo(cmd *cobra.Command, svc *session.Service, profileRef string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	_, entries, err := svc.History(cmdContext(cmd), profileRef, 0)
	if err != nil {
		return err
	}
	var last string
	for _, e := range entries {
		if e.Changed {
			last = e.Message
			break
		}
	}
	if last == "" {
		_, _ = fmt.Fprintln(w, Silent("Nothing to undo."))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Revert '%s'?", last))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("No changes made."))
		return nil
	}

	res, err := svc.Undo(cmdContext(cmd), profileRef)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Primary(res.Message))
	printSaved(w, res)
	return nil
}
