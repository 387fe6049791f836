package cli

import (
	"strconv"

	"github.com/Flyrell/timeaudit/internal/compliance"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	summaryCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	summaryTotalStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// renderSummaryTable renders violation counts per employee and rule, with a
// totals row at the bottom.
func renderSummaryTable(report compliance.Report) string {
	headers := []string{"Employee", "Position"}
	for _, r := range compliance.Rules {
		headers = append(headers, r.String())
	}
	headers = append(headers, "total")

	rows := make([][]string, 0, len(report.Employees)+1)
	for _, emp := range report.Employees {
		row := []string{emp.Name, emp.Position}
		for _, r := range compliance.Rules {
			row = append(row, strconv.Itoa(emp.Counts[r]))
		}
		rows = append(rows, append(row, strconv.Itoa(emp.Total())))
	}

	totals := []string{"Total", ""}
	for _, r := range compliance.Rules {
		totals = append(totals, strconv.Itoa(report.Counts[r]))
	}
	rows = append(rows, append(totals, strconv.Itoa(report.Total)))
	lastRow := len(rows) - 1

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return summaryHeaderStyle
			case row == lastRow:
				return summaryTotalStyle
			}
			return summaryCellStyle
		}).
		Render()
}
