package cli

import "github.com/spf13/cobra"

// BoolFlag defines a boolean flag for a command.
type BoolFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   bool
}

// StringFlag defines a string flag for a command.
type StringFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   string
}

// IntFlag defines an integer flag for a command.
type IntFlag struct {
	Name    string
	Usage   string
	Default int
}

// LeafCommand defines a command that executes logic.
// Every leaf command file declares one of these and calls Build().
type LeafCommand struct {
	Use       string
	Short     string
	Long      string
	Example   string
	Args      cobra.PositionalArgs
	ValidArgs []string
	BoolFlags []BoolFlag
	StrFlags  []StringFlag
	IntFlags  []IntFlag
	RunE      func(cmd *cobra.Command, args []string) error
}

// Build creates a cobra.Command with all flags registered.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:       lc.Use,
		Short:     lc.Short,
		Long:      lc.Long,
		Example:   lc.Example,
		Args:      lc.Args,
		ValidArgs: lc.ValidArgs,
		RunE:      lc.RunE,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().BoolP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().StringP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.IntFlags {
		cmd.Flags().Int(f.Name, f.Default, f.Usage)
	}
	return cmd
}

// GroupCommand defines a command that only holds subcommands.
type GroupCommand struct {
	Use         string
	Short       string
	Long        string
	Subcommands []*cobra.Command
}

// Build creates a cobra.Command with all subcommands registered.
func (gc GroupCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   gc.Use,
		Short: gc.Short,
		Long:  gc.Long,
	}
	for _, sub := range gc.Subcommands {
		cmd.AddCommand(sub)
	}
	return cmd
}
