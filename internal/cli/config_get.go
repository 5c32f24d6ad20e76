package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/config"
)

var configGetCmd = LeafCommand{
	Use:       "get KEY",
	Short:     "Print the effective value of a setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runConfigGet(cmd, cfg, args[0])
	},
}.Build()

func runConfigGet(cmd *cobra.Command, cfg *config.Config, key string) error {
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
