package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/session"
)

const chatGreeting = "Tell me when you can work, e.g. \"weekdays 9-5\" or \"I can't work Fridays\".\n" +
	"Type 'show' to see your week, 'undo' to revert the last change and 'done' to finish."

var chatCmd = LeafCommand{
	Use:   "chat",
	Short: "Update availability in a conversation",
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "apply every understood message without confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			kit := promptKitFor(cmd)
			return runChat(cmd, a.svc, profileFlag(cmd), kit.Prompt, confirmFor(cmd, kit))
		})
	},
}.Build()

func runChat(cmd *cobra.Command, svc *session.Service, profileRef string, prompt PromptFunc, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()
	ctx := cmdContext(cmd)

	p, err := svc.Profile(ctx, profileRef)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Info(chatGreeting))

	for {
		text, err := prompt(">")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "":
			continue
		case "done", "exit", "quit", "bye":
			_, _ = fmt.Fprintln(w, Success("All set. Your availability is saved."))
			return nil
		case "show":
			_, cal, err := svc.Calendar(ctx, p.Slug)
			if err != nil {
				return err
			}
			printCalendar(w, cal)
			continue
		case "undo":
			res, err := svc.Undo(ctx, p.Slug)
			if err != nil {
				_, _ = fmt.Fprintln(w, Warning(err.Error()))
				continue
			}
			_, _ = fmt.Fprintln(w, Primary(res.Message))
			continue
		}

		if err := runTell(cmd, svc, p.Slug, text, confirm); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w)
	return nil
}
