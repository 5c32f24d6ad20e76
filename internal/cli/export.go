package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

// Export and import formats.
const (
	formatJSON  = "json"
	formatRRule = "rrule"
	formatLines = "lines"
	formatPDF   = "pdf"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export a profile's availability",
	Long: `Export a profile's availability.

  json   the calendar as a map of day names to time ranges
  rrule  weekly schedule entries, one RRULE per group of days sharing the same hours
  pdf    a printable weekly sheet (written to --output or <profile>-availability.pdf)`,
	Example: `  availability export --format rrule
  availability export --format pdf --output week.pdf`,
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "export format (json, rrule, pdf)", Default: formatJSON},
		{Name: "output", Shorthand: "o", Usage: "write to this file instead of stdout"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		return withApp(cmd, func(a *app) error {
			return runExport(cmd, a.svc, profileFlag(cmd), format, output)
		})
	},
}.Build()

func runExport(cmd *cobra.Command, svc *session.Service, profileRef, format, output string) error {
	p, cal, err := svc.Calendar(cmdContext(cmd), profileRef)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(cal, "", "  ")
	case formatRRule:
		var entries []schedule.ScheduleEntry
		if entries, err = schedule.ToEntries(cal); err == nil {
			data, err = json.MarshalIndent(entries, "", "  ")
		}
	case formatPDF:
		if output == "" {
			output = p.Slug + "-availability.pdf"
		}
		if err := renderAvailabilityPDF(p.Name, cal, output); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported availability to %s\n", output)
		return nil
	default:
		return fmt.Errorf("unsupported export format %q (supported: json, rrule, pdf)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s export: %w", format, err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported availability to %s\n", output)
	return nil
}

// readImportFile reads path, or stdin when path is "-".
func readImportFile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
