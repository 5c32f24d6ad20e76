package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/config"
)

var configListCmd = LeafCommand{
	Use:   "list",
	Short: "Print every setting with its effective value",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runConfigList(cmd, cfg)
	},
}.Build()

func runConfigList(cmd *cobra.Command, cfg *config.Config) error {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Silent("# "+cfg.Path()))
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if key == config.KeyRedisPassword && value != "" {
			value = "********"
		}
		_, _ = fmt.Fprintf(w, "%s = %s\n", Primary(padRight(key, 22)), Text(value))
	}
	return nil
}
