package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/history"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var historyCmd = LeafCommand{
	Use:   "history [ID]",
	Short: "Show the changes made to a profile's availability",
	Long: `Show the changes made to a profile's availability, newest first.
With an entry ID (or a prefix of one), show that entry and the week as it was before it.`,
	Args: cobra.RangeArgs(0, 1),
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "maximum number of entries to show (0 = all)", Default: 20},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return withApp(cmd, func(a *app) error {
				return runHistoryEntry(cmd, a.svc, profileFlag(cmd), args[0])
			})
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must be 0 or positive")
		}

		return withApp(cmd, func(a *app) error {
			return runHistory(cmd, a.svc, profileFlag(cmd), limit)
		})
	},
}.Build()

func runHistory(cmd *cobra.Command, svc *session.Service, profileRef string, limit int) error {
	p, entries, err := svc.History(cmdContext(cmd), profileRef, limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(w, "no entries found for '%s'\n", p.Name)
		return nil
	}

	for _, e := range entries {
		printHistoryLine(w, e)
	}
	return nil
}

func printHistoryLine(w io.Writer, e history.Entry) {
	detail := e.Message
	if e.Input != "" && e.Type == history.TypeTell {
		detail = fmt.Sprintf("%q  %s", e.Input, e.Message)
	}
	if !e.Changed {
		detail += " " + Silent("(no change)")
	}
	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
		Silent(e.ID),
		Text(e.CreatedAt.Local().Format("2006-01-02 15:04:05")),
		Info(fmt.Sprintf("%-6s", e.Type)),
		Text(detail),
	)
}

func runHistoryEntry(cmd *cobra.Command, svc *session.Service, profileRef, id string) error {
	e, err := svc.HistoryEntry(cmdContext(cmd), profileRef, id)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printHistoryLine(w, e)
	if e.Input != "" {
		_, _ = fmt.Fprintf(w, "input:  %s\n", Text(e.Input))
	}
	if e.Mode != "" {
		_, _ = fmt.Fprintf(w, "mode:   %s\n", Text(e.Mode))
	}
	_, _ = fmt.Fprintln(w, "before:")
	printCalendar(w, e.Before)
	return nil
}
