package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = LeafCommand{
	Use:   "timeaudit <timecard-file>",
	Short: "Flag labor-compliance risks in a timecard export",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "per-employee", Usage: "keep separate running state for each employee"},
		{Name: "summary", Shorthand: "s", Usage: "print a table of violation counts after the report"},
		{Name: "log-json", Usage: "write logs as JSON"},
	},
	StrFlags: []StringFlag{
		{Name: "config", Shorthand: "c", Usage: "YAML file with rule thresholds"},
		{Name: "export", Usage: "export format (pdf)"},
		{Name: "output", Shorthand: "o", Usage: "export file path (default: <input>-compliance.pdf)"},
		{Name: "log-level", Usage: "log level (debug, info, warn, error)", Default: "warn"},
	},
	Subcommands: []*cobra.Command{versionCmd},
	RunE:        runAnalyzeCmd,
}.Build()

func init() {
	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

func Execute() error {
	return rootCmd.Execute()
}
