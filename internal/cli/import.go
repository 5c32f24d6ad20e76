package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var importCmd = LeafCommand{
	Use:   "import FILE",
	Short: "Replace a profile's availability from a file",
	Long: `Replace a profile's availability from a file ("-" reads stdin).

  json   a calendar as written by 'export --format json'
  rrule  schedule entries as written by 'export --format rrule'
  lines  one schedule per line, e.g. "from 9am to 5pm every weekday"`,
	Args: cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "import format (json, rrule, lines)", Default: formatJSON},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return withApp(cmd, func(a *app) error {
			return runImport(cmd, a.svc, profileFlag(cmd), args[0], format, confirmFor(cmd, promptKitFor(cmd)))
		})
	},
}.Build()

func runImport(cmd *cobra.Command, svc *session.Service, profileRef, path, format string, confirm ConfirmFunc) error {
	data, err := readImportFile(cmd, path)
	if err != nil {
		return err
	}
	cal, err := decodeCalendar(data, format)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := svc.Profile(cmdContext(cmd), profileRef)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, "Imported week:")
	printCalendar(w, cal)

	ok, err := confirm(fmt.Sprintf("Replace availability for '%s'?", p.Name))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("No changes made."))
		return nil
	}

	res, err := svc.Import(cmdContext(cmd), p.Slug, path, cal)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Primary(res.Message))
	if res.EntryID != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", Success("Saved"), Silent("("+res.EntryID+")"))
	}
	return nil
}

func decodeCalendar(data []byte, format string) (schedule.Calendar, error) {
	switch format {
	case formatJSON:
		var cal schedule.Calendar
		if err := json.Unmarshal(data, &cal); err != nil {
			return schedule.Calendar{}, err
		}
		return cal, nil
	case formatRRule:
		var entries []schedule.ScheduleEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return schedule.Calendar{}, err
		}
		return schedule.FromEntries(entries)
	case formatLines:
		entries, err := parseScheduleLines(data)
		if err != nil {
			return schedule.Calendar{}, err
		}
		return schedule.FromEntries(entries)
	}
	return schedule.Calendar{}, fmt.Errorf("unsupported import format %q (supported: json, rrule, lines)", format)
}

// parseScheduleLines reads one schedule entry per line. Blank lines and
// lines starting with # are skipped.
func parseScheduleLines(data []byte) ([]schedule.ScheduleEntry, error) {
	var entries []schedule.ScheduleEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := schedule.ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
