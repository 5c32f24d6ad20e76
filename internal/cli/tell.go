package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/availability"
	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

const confirmPrompt = "Does this summary look correct?"

var tellCmd = LeafCommand{
	Use:   "tell TEXT...",
	Short: "Update availability from a sentence",
	Example: `  availability tell "Monday–Wednesday 9am-6pm, Thursday-Friday 10am-5pm"
  availability tell "I can't work Wednesdays anymore"
  availability tell --yes "only mornings on Friday"`,
	Args: cobra.MinimumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "apply without asking for confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			confirm := confirmFor(cmd, promptKitFor(cmd))
			return runTell(cmd, a.svc, profileFlag(cmd), strings.Join(args, " "), confirm)
		})
	},
}.Build()

func runTell(cmd *cobra.Command, svc *session.Service, profileRef, text string, confirm ConfirmFunc) error {
	ctx := cmdContext(cmd)
	w := cmd.OutOrStdout()

	preview, err := svc.Preview(ctx, profileRef, text)
	if err != nil {
		return err
	}
	if !preview.Outcome.Matched {
		_, _ = fmt.Fprintln(w, Warning(availability.ClarificationMessage))
		return nil
	}

	_, _ = fmt.Fprintln(w, Primary(preview.Message))
	printRejected(w, preview.Report.Rejected)
	if !preview.Changed {
		_, _ = fmt.Fprintln(w, Silent("Nothing to change."))
		return nil
	}

	ok, err := confirm(confirmPrompt)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("No changes made."))
		return nil
	}

	res, err := svc.Tell(ctx, profileRef, text)
	if err != nil {
		return err
	}
	printSaved(w, res)
	return nil
}

func printRejected(w io.Writer, rejected []availability.Rejection) {
	for _, r := range rejected {
		_, _ = fmt.Fprintf(w, "%s\n", Warning(fmt.Sprintf("Skipped %s %s: %v",
			r.Day.Short(), schedule.FormatRange(r.Range), r.Err)))
	}
}

func printSaved(w io.Writer, res session.Result) {
	if res.EntryID != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", Success("Saved"), Silent("("+res.EntryID+")"))
	}
	printCalendar(w, res.Calendar)
}

func printCalendar(w io.Writer, cal schedule.Calendar) {
	if cal.IsEmpty() {
		_, _ = fmt.Fprintln(w, Silent("No availability set."))
		return
	}
	for _, line := range schedule.FormatCalendar(cal) {
		_, _ = fmt.Fprintf(w, "  %s\n", Text(line))
	}
}
