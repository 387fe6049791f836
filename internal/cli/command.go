package cli

import "github.com/spf13/cobra"

// BoolFlag defines a boolean flag. Shorthand is optional.
type BoolFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   bool
}

// StringFlag defines a string flag. Shorthand is optional.
type StringFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   string
}

// LeafCommand describes a command that runs logic. The root command is a
// LeafCommand too: it analyzes its argument and also carries the version
// subcommand.
type LeafCommand struct {
	Use         string
	Short       string
	Args        cobra.PositionalArgs
	BoolFlags   []BoolFlag
	StrFlags    []StringFlag
	Subcommands []*cobra.Command
	RunE        func(cmd *cobra.Command, args []string) error
}

// Build creates the cobra.Command. Usage is not printed on RunE errors
// because those are reported as a single error line.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:          lc.Use,
		Short:        lc.Short,
		Args:         lc.Args,
		RunE:         lc.RunE,
		SilenceUsage: true,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().BoolP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().StringP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	cmd.AddCommand(lc.Subcommands...)
	return cmd
}
