package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// helpRule styles a help line matching re. style receives the submatches.
type helpRule struct {
	re    *regexp.Regexp
	style func(m []string) string
}

var helpRules = []helpRule{
	// "Usage:", "Available Commands:", "Flags:"
	{regexp.MustCompile(`^\s*([A-Z][A-Za-z ]+:)\s*$`), func(m []string) string { return Info(m[0]) }},
	// Use "availability [command] --help" ...
	{regexp.MustCompile(`^\s*Use "`), func(m []string) string { return Silent(m[0]) }},
	// "  -p, --profile string   profile name"
	{regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`), func(m []string) string { return m[1] + Primary(m[2]) + Text(m[3]) }},
	// "  tell        Update availability from a sentence"
	{regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`), func(m []string) string { return m[1] + Primary(m[2]) + Text(m[3]) }},
}

// colorizedHelpFunc renders cobra's usage text with the CLI's colours.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		} else if cmd.Short != "" {
			buf.WriteString(cmd.Short + "\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(out)

		var result strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}
		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	for _, rule := range helpRules {
		if m := rule.re.FindStringSubmatch(line); m != nil {
			return rule.style(m)
		}
	}
	return Text(line)
}
