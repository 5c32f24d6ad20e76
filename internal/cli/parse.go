package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/availability"
	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

var parseCmd = LeafCommand{
	Use:     "parse TEXT...",
	Short:   "Show how a sentence is understood without changing anything",
	Example: `  availability parse --json "weekdays 9-5 except Friday"`,
	Args:    cobra.MinimumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "json", Usage: "print the outcome as JSON"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		parser := availability.Parser{AttachWindow: cfg.AttachWindow}
		return runParse(cmd, parser, strings.Join(args, " "), asJSON)
	},
}.Build()

func runParse(cmd *cobra.Command, parser availability.Parser, text string, asJSON bool) error {
	out := parser.Parse(text)
	w := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !out.Matched {
		_, _ = fmt.Fprintln(w, Warning(availability.ClarificationMessage))
		return nil
	}

	mode := string(out.Mode)
	if !out.Explicit {
		mode += " (default)"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("mode:  "), Info(mode))
	if len(out.Days) > 0 {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("days:  "), Text(schedule.FormatDays(out.Days)))
	}
	for _, dr := range out.TimeRanges {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", Silent("range: "), Text(dr.Day.Short()), Text(schedule.FormatRange(dr.Range)))
	}
	if out.Unscoped != nil {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", Silent("range: "), Text(schedule.FormatRange(*out.Unscoped)), Silent("(days already worked)"))
	}
	if len(out.Slots) > 0 {
		names := make([]string, len(out.Slots))
		for i, s := range out.Slots {
			names[i] = string(s)
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("slots: "), Text(strings.Join(names, ", ")))
	}
	_, _ = fmt.Fprintln(w, Primary(out.Message))
	return nil
}
