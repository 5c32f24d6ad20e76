package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// shellSetup is where a shell loads completions from.
type shellSetup struct {
	rcFile string // relative to the home directory
	hook   string
}

var shellSetups = map[string]shellSetup{
	"bash":       {rcFile: ".bashrc", hook: `eval "$(availability completion generate bash)"`},
	"zsh":        {rcFile: ".zshrc", hook: `eval "$(availability completion generate zsh)"`},
	"fish":       {rcFile: ".config/fish/config.fish", hook: `availability completion generate fish | source`},
	"powershell": {rcFile: ".config/powershell/Microsoft.PowerShell_profile.ps1", hook: `availability completion generate powershell | Out-String | Invoke-Expression`},
}

var validShells = []string{"bash", "zsh", "fish", "powershell"}

const completionMarker = "availability completion"

var completionCmd = GroupCommand{
	Use:   "completion",
	Short: "Manage shell completions",
	Subcommands: []*cobra.Command{
		completionGenerateCmd,
		completionInstallCmd,
	},
}.Build()

var completionGenerateCmd = newCompletionGenerateCmd()

func newCompletionGenerateCmd() *cobra.Command {
	return LeafCommand{
		Use:       "generate [SHELL]",
		Short:     "Print the completion script for a shell",
		Args:      cobra.RangeArgs(0, 1),
		ValidArgs: validShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := shellArg(args)
			if err != nil {
				return err
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
}

var completionInstallCmd = LeafCommand{
	Use:       "install [SHELL]",
	Short:     "Load completions from your shell's startup file",
	Args:      cobra.RangeArgs(0, 1),
	ValidArgs: validShells,
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellArg(args)
		if err != nil {
			return err
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCompletionInstall(cmd, shell, homeDir, confirmFor(cmd, promptKitFor(cmd)))
	},
}.Build()

func shellArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if shell := detectShell(); shell != "" {
		return shell, nil
	}
	return "", fmt.Errorf("could not detect shell from $SHELL; pass one of: %s", strings.Join(validShells, ", "))
}

// detectShell names the login shell from $SHELL, or returns "".
func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	}
	return ""
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	}
	return fmt.Errorf("unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
}

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	setup, ok := shellSetups[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
	}
	rcPath := filepath.Join(homeDir, setup.rcFile)
	display := filepath.Join("~", setup.rcFile)
	w := cmd.OutOrStdout()

	if data, err := os.ReadFile(rcPath); err == nil && strings.Contains(string(data), completionMarker) {
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("shell completions already installed for %s in %s", Primary(shell), Primary(display))))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, display))
	if err != nil || !ok {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, writeErr := fmt.Fprintf(f, "\n# availability shell completion\n%s\n", setup.hook)
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	if writeErr != nil {
		return writeErr
	}

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("shell completions installed for %s in %s", Primary(shell), Primary(display))))
	return nil
}
