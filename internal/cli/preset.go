package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

var presetCmd = newPresetCmd()

func newPresetCmd() *cobra.Command {
	names := make([]string, 0, len(schedule.Presets()))
	for _, p := range schedule.Presets() {
		names = append(names, string(p))
	}
	return LeafCommand{
		Use:       "preset [NAME]",
		Short:     "Replace the whole week with a preset pattern",
		Args:      cobra.RangeArgs(0, 1),
		ValidArgs: names,
		BoolFlags: []BoolFlag{
			{Name: "yes", Shorthand: "y", Usage: "apply without asking for confirmation"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return withApp(cmd, func(a *app) error {
				kit := promptKitFor(cmd)
				return runPreset(cmd, a.svc, profileFlag(cmd), name, kit.Select, confirmFor(cmd, kit))
			})
		},
	}.Build()
}

func runPreset(cmd *cobra.Command, svc *session.Service, profileRef, name string, sel SelectFunc, confirm ConfirmFunc) error {
	presets := schedule.Presets()

	var preset schedule.Preset
	if name == "" {
		options := make([]string, len(presets))
		for i, p := range presets {
			options[i] = fmt.Sprintf("%s (%s)", p, p.Description())
		}
		idx, err := sel("Choose a preset", options)
		if err != nil {
			return err
		}
		preset = presets[idx]
	} else {
		var err error
		if preset, err = schedule.ParsePreset(name); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	ok, err := confirm(fmt.Sprintf("Replace your whole week with '%s' (%s)?", preset, preset.Description()))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("No changes made."))
		return nil
	}

	res, err := svc.ApplyPreset(cmdContext(cmd), profileRef, preset)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Primary(res.Message))
	printSaved(w, res)
	return nil
}
