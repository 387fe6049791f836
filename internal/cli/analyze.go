package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Flyrell/timeaudit/internal/compliance"
	"github.com/Flyrell/timeaudit/internal/config"
	"github.com/Flyrell/timeaudit/internal/logger"
	"github.com/Flyrell/timeaudit/internal/stringutil"
	"github.com/Flyrell/timeaudit/internal/timecard"
	"github.com/spf13/cobra"
)

// analyzeOptions holds the flag values of the root command.
type analyzeOptions struct {
	configPath  string
	export      string
	output      string
	perEmployee bool
	summary     bool
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")
	exportFlag, _ := cmd.Flags().GetString("export")
	outputFlag, _ := cmd.Flags().GetString("output")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	perEmployeeFlag, _ := cmd.Flags().GetBool("per-employee")
	summaryFlag, _ := cmd.Flags().GetBool("summary")
	logJSONFlag, _ := cmd.Flags().GetBool("log-json")

	level, err := logger.ParseLevel(logLevelFlag)
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		JSON:   logJSONFlag,
	})

	return runAnalyze(cmd, args[0], analyzeOptions{
		configPath:  configFlag,
		export:      exportFlag,
		output:      outputFlag,
		perEmployee: perEmployeeFlag,
		summary:     summaryFlag,
	}, log)
}

func runAnalyze(cmd *cobra.Command, path string, opts analyzeOptions, log logger.Logger) error {
	if opts.export != "" && opts.export != "pdf" {
		return fmt.Errorf("unsupported export format %q (supported: pdf)", opts.export)
	}

	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return err
	}
	evalOpts := cfg.Options()
	if opts.perEmployee {
		evalOpts.Mode = compliance.PerEmployeeState
	}

	out := cmd.OutOrStdout()

	table, err := timecard.Load(path)
	if err != nil {
		return printLoadFailure(out, err)
	}

	rows := timecard.Normalize(table)
	log.Info("loaded timecard", "path", path, "rows", len(rows), "state", evalOpts.Mode.String())

	skipped := 0
	evalOpts.OnSkip = func(r timecard.Row) {
		skipped++
		log.Debug("skipping row with missing clock time", "line", r.Line, "employee", r.EmployeeName)
	}

	var diags []compliance.Diagnostic
	for d := range compliance.Evaluate(rows, evalOpts) {
		if _, err := fmt.Fprintln(out, d.String()); err != nil {
			return err
		}
		diags = append(diags, d)
	}
	log.Info("evaluated timecard", "evaluated", len(rows)-skipped, "skipped", skipped, "violations", len(diags))
	if skipped > 0 {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), Warning(skippedNotice(skipped)))
	}

	report := compliance.BuildReport(path, diags)

	if opts.summary {
		if _, err := fmt.Fprintln(out, renderSummaryTable(report)); err != nil {
			return err
		}
	}

	if opts.export == "pdf" {
		outputPath := opts.output
		if outputPath == "" {
			outputPath = defaultExportPath(path)
		}
		if err := renderExportPDF(report, outputPath); err != nil {
			return err
		}
		log.Info("exported report", "path", outputPath)
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported report to %s\n", outputPath)
	}

	return nil
}

// printLoadFailure reports a load or schema failure as a single line and
// ends the run cleanly. Other errors are returned unchanged.
func printLoadFailure(w io.Writer, err error) error {
	var schemaErr *timecard.SchemaError
	var loadErr *timecard.LoadError

	switch {
	case errors.As(err, &schemaErr):
		_, _ = fmt.Fprintf(w, "%s %s\n", Error("Missing required columns:"), strings.Join(schemaErr.Missing, ", "))
	case errors.As(err, &loadErr):
		_, _ = fmt.Fprintf(w, "%s %v\n", Error("Error reading timecard file:"), loadErr.Err)
	default:
		return err
	}
	return nil
}

func skippedNotice(n int) string {
	if n == 1 {
		return "Skipped 1 row with a missing clock time"
	}
	return fmt.Sprintf("Skipped %d rows with missing clock times", n)
}

// defaultExportPath derives "<slug>-compliance.pdf" from the input file name.
func defaultExportPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	slug := stringutil.Slugify(base)
	if slug == "" {
		slug = "timecard"
	}
	return slug + "-compliance.pdf"
}
