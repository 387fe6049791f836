package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Flyrell/timeaudit/internal/compliance"
	"github.com/Flyrell/timeaudit/internal/timecard"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const pdfClockLayout = "Mon Jan 2, 2006 3:04 PM"

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderExportPDF generates a PDF compliance report and saves it to the
// given path.
func renderExportPDF(report compliance.Report, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, "Timecard compliance report", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, filepath.Base(report.Source), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	if len(report.Employees) == 0 {
		m.AddRow(8, text.NewCol(12, "No violations found.", props.Text{Size: 10}))
	}

	for _, emp := range report.Employees {
		m.AddRow(8,
			text.NewCol(9, fmt.Sprintf("%s (%s)", emp.Name, emp.Position), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, violationCount(emp.Total()), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, v := range emp.Violations {
			m.AddRow(5,
				text.NewCol(4, "  "+v.ClockIn.Format(pdfClockLayout), props.Text{
					Size:  8,
					Color: &pdfMutedColor,
				}),
				text.NewCol(6, v.Rule.Message(), props.Text{Size: 8}),
				text.NewCol(2, timecard.FormatDuration(v.HoursWorked), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}

		// Spacer between employees
		m.AddRow(4)
	}

	// Per-rule totals footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	for _, r := range compliance.Rules {
		m.AddRow(6,
			text.NewCol(9, r.Message(), props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("%d", report.Counts[r]), props.Text{
				Size:  9,
				Align: align.Right,
			}),
		)
	}
	m.AddRow(10,
		text.NewCol(9, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d", report.Total), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

func violationCount(n int) string {
	if n == 1 {
		return "1 violation"
	}
	return fmt.Sprintf("%d violations", n)
}
