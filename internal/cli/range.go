package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var rangeCmd = GroupCommand{
	Use:   "range",
	Short: "Add or remove a single time range",
	Subcommands: []*cobra.Command{
		rangeAddCmd,
		rangeRemoveCmd,
	},
}.Build()

var rangeAddCmd = LeafCommand{
	Use:     "add DAY FROM TO",
	Short:   "Add a time range to a day",
	Example: "  availability range add tuesday 9am 12:30pm",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runRangeAdd(cmd, a.svc, profileFlag(cmd), args[0], args[1], args[2])
		})
	},
}.Build()

var rangeRemoveCmd = LeafCommand{
	Use:     "remove DAY N",
	Short:   "Remove the N-th range of a day (as numbered by 'show --interactive')",
	Example: "  availability range remove tuesday 1",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runRangeRemove(cmd, a.svc, profileFlag(cmd), args[0], args[1])
		})
	},
}.Build()

func parseDayArg(s string) (schedule.Day, error) {
	d, ok := schedule.ParseDay(s)
	if !ok {
		return 0, fmt.Errorf("unknown day %q", s)
	}
	return d, nil
}

func runRangeAdd(cmd *cobra.Command, svc *session.Service, profileRef, dayArg, from, to string) error {
	day, err := parseDayArg(dayArg)
	if err != nil {
		return err
	}
	r, err := schedule.ParseTimeRange(from, to)
	if err != nil {
		return err
	}

	res, err := svc.EditRange(cmdContext(cmd), profileRef, session.RangeEdit{Op: session.RangeAdd, Day: day, Range: r})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Primary(res.Message))
	return nil
}

func runRangeRemove(cmd *cobra.Command, svc *session.Service, profileRef, dayArg, nArg string) error {
	day, err := parseDayArg(dayArg)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(nArg)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid range number %q: expected 1 or more", nArg)
	}

	res, err := svc.EditRange(cmdContext(cmd), profileRef, session.RangeEdit{Op: session.RangeRemove, Day: day, Index: n - 1})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Primary(res.Message))
	return nil
}
