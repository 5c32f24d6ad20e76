package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCompletion(shell string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := newCompletionGenerateCmd()
	cmd.SetOut(stdout)
	err := runCompletion(cmd, shell)
	return stdout.String(), err
}

func TestCompletionGenerate(t *testing.T) {
	for _, shell := range validShells {
		t.Run(shell, func(t *testing.T) {
			stdout, err := execCompletion(shell)
			assert.NoError(t, err)
			assert.NotEmpty(t, stdout)
		})
	}

	_, err := execCompletion("invalid")
	assert.ErrorContains(t, err, "unsupported shell: invalid")
}

func TestCompletionAutoDetect(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	stdout := new(bytes.Buffer)
	cmd := newCompletionGenerateCmd()
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})
	assert.NoError(t, cmd.Execute())
	assert.NotEmpty(t, stdout.String())

	t.Setenv("SHELL", "/bin/csh")
	cmd = newCompletionGenerateCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	assert.ErrorContains(t, cmd.Execute(), "could not detect shell")
}

func TestDetectShell(t *testing.T) {
	tests := map[string]string{
		"/bin/bash":           "bash",
		"/usr/local/bin/zsh":  "zsh",
		"/usr/bin/fish":       "fish",
		"/usr/local/bin/pwsh": "powershell",
		"/bin/csh":            "",
		"":                    "",
	}
	for env, want := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv("SHELL", env)
			assert.Equal(t, want, detectShell())
		})
	}
}

func execCompletionInstall(shell, homeDir string, confirm ConfirmFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(stdout)
	err := runCompletionInstall(cmd, shell, homeDir, confirm)
	return stdout.String(), err
}

func TestCompletionInstall(t *testing.T) {
	for shell, setup := range shellSetups {
		t.Run(shell, func(t *testing.T) {
			home := t.TempDir()

			stdout, err := execCompletionInstall(shell, home, AlwaysYes())
			require.NoError(t, err)
			assert.Contains(t, stdout, "shell completions installed for "+shell)

			data, err := os.ReadFile(filepath.Join(home, setup.rcFile))
			require.NoError(t, err)
			assert.Contains(t, string(data), setup.hook)
			assert.Contains(t, string(data), "# availability shell completion")
		})
	}
}

func TestCompletionInstallKeepsExistingConfig(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	require.NoError(t, os.WriteFile(rc, []byte("# existing\n"), 0644))

	_, err := execCompletionInstall("zsh", home, AlwaysYes())
	require.NoError(t, err)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, "# existing\n\n# availability shell completion\n"+shellSetups["zsh"].hook+"\n", string(data))

	stdout, err := execCompletionInstall("zsh", home, AlwaysYes())
	require.NoError(t, err)
	assert.Contains(t, stdout, "already installed")
}

func TestCompletionInstallDeclined(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	require.NoError(t, os.WriteFile(rc, []byte("# existing\n"), 0644))

	stdout, err := execCompletionInstall("zsh", home, alwaysNo())
	assert.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, "# existing\n", string(data))
}

func TestCompletionInstallUnsupportedShell(t *testing.T) {
	_, err := execCompletionInstall("csh", t.TempDir(), AlwaysYes())
	assert.ErrorContains(t, err, "unsupported shell")
}

func TestCompletionRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range completionCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"generate", "install"}, names)
}
