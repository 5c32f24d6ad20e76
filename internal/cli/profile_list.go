package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var profileListCmd = LeafCommand{
	Use:   "list",
	Short: "List all profiles with a summary of their week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runProfileList(cmd, a.svc)
		})
	},
}.Build()

func runProfileList(cmd *cobra.Command, svc *session.Service) error {
	ctx := cmdContext(cmd)
	profiles, err := svc.Profiles(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(profiles) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No profiles found."))
		return nil
	}

	for i, p := range profiles {
		_, cal, err := svc.Calendar(ctx, p.Slug)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(p.ID), Primary(p.Name))
		if cal.IsEmpty() {
			_, _ = fmt.Fprintln(w, Silent("└── (no availability set)"))
		} else {
			days := cal.Days()
			_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("└── %s, %s a week",
				schedule.FormatDays(days), schedule.FormatMinutes(cal.TotalMinutes()))))
		}
		if i < len(profiles)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
	return nil
}
