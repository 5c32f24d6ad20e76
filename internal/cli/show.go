package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var showCmd = LeafCommand{
	Use:   "show",
	Short: "Print the weekly availability calendar",
	BoolFlags: []BoolFlag{
		{Name: "interactive", Shorthand: "i", Usage: "browse the week in a full-screen viewer"},
		{Name: "grid", Usage: "draw the half-hour grid"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		grid, _ := cmd.Flags().GetBool("grid")
		return withApp(cmd, func(a *app) error {
			return runShow(cmd, a.svc, profileFlag(cmd), interactive, grid)
		})
	},
}.Build()

func runShow(cmd *cobra.Command, svc *session.Service, profileRef string, interactive, grid bool) error {
	p, cal, err := svc.Calendar(cmdContext(cmd), profileRef)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Availability for %s", p.Name)

	switch {
	case interactive:
		return runWeekView(cmd, cal, title)
	case grid:
		return printWeekTable(cmd.OutOrStdout(), cal, title)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Availability for '%s':", Primary(p.Name))))
	printCalendar(w, cal)
	return nil
}
