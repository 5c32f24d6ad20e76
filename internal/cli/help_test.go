package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestColorizeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"section header", "Available Commands:", []string{"Available Commands:"}},
		{"command listing", "  tell        Update availability from a sentence", []string{"tell", "Update availability"}},
		{"flag line", "  -y, --yes   apply without asking for confirmation", []string{"--yes", "apply without"}},
		{"footer", `Use "availability [command] --help" for more information about a command.`, []string{"availability [command]"}},
		{"plain", "Keep a weekly availability calendar up to date", []string{"Keep a weekly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorizeLine(tt.line)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestColorizedHelpFunc(t *testing.T) {
	// A standalone command keeps the shared tree untouched.
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
	}
	cmd.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	colorizedHelpFunc()(cmd, nil)

	output := buf.String()
	assert.Contains(t, output, "A test CLI app")
	assert.Contains(t, output, "test-app")
	assert.Contains(t, output, "sub")
	assert.Contains(t, output, "Flags:")
	assert.Same(t, buf, cmd.OutOrStdout(), "writer restored")
}

func TestRootUsesColorizedHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Keep a weekly availability calendar")
	assert.Contains(t, buf.String(), "Available Commands:")
}
