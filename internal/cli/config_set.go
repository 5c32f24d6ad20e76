package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/config"
)

var configSetCmd = LeafCommand{
	Use:       "set KEY VALUE",
	Short:     "Change a setting and save it to the config file",
	Example:   "  availability config set store.driver redis\n  availability config set parser.attach_window 32",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runConfigSet(cmd, cfg, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, cfg *config.Config, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to '%s' in %s", Primary(key), value, Silent(cfg.Path()))))
	return nil
}
