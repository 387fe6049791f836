package cli

import (
	"regexp"
	"strings"

	"github.com/Flyrell/timeaudit/internal/compliance"
	"github.com/spf13/cobra"
)

var (
	// Matches section headers like "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// Matches command listings: "  version   Print the version information"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// Matches flag lines: "      --summary   print a table..."
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// Matches footer lines: "Use "..." for more information"
	footerRe = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc returns a help function that prints the command's short
// description, Cobra's usage text with colors applied, and on the root
// command the list of reported rules.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		if cmd.Short != "" {
			result.WriteString(Primary(cmd.Short))
			result.WriteString("\n\n")
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}
		if !cmd.HasParent() {
			result.WriteString(rulesHelp())
		}

		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

// rulesHelp lists the report messages under a "Rules:" section.
func rulesHelp() string {
	var b strings.Builder
	b.WriteString("\n" + Info("Rules:") + "\n")
	for _, r := range compliance.Rules {
		b.WriteString("  " + Primary(r.String()) + Text("  "+r.Message()) + "\n")
	}
	return b.String()
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	if sectionHeaderRe.MatchString(strings.TrimSpace(line)) {
		return Info(line)
	}

	if footerRe.MatchString(strings.TrimSpace(line)) {
		return Silent(line)
	}

	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}

	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}

	return Text(line)
}
