package compliance

import (
	"time"

	"github.com/Flyrell/timeaudit/internal/timecard"
)

// Violation is a single diagnostic as shown in a report.
type Violation struct {
	ClockIn     time.Time
	HoursWorked time.Duration
	Rule        Rule
}

// EmployeeReport groups the violations of one employee/position pair.
type EmployeeReport struct {
	Name       string
	Position   string
	Violations []Violation
	Counts     map[Rule]int
}

// Total returns the number of violations across all rules.
func (e EmployeeReport) Total() int {
	return len(e.Violations)
}

// Report holds the grouped result of an evaluation pass.
type Report struct {
	Source    string
	Employees []EmployeeReport
	Counts    map[Rule]int
	Total     int
}

// BuildReport groups diagnostics by employee and position, keeping the order
// in which each pair first appears.
func BuildReport(source string, diags []Diagnostic) Report {
	type key struct{ name, position string }

	index := make(map[key]int)
	report := Report{Source: source, Counts: make(map[Rule]int)}

	for _, d := range diags {
		k := key{d.Row.EmployeeName, d.Row.PositionStatus}
		i, ok := index[k]
		if !ok {
			i = len(report.Employees)
			index[k] = i
			report.Employees = append(report.Employees, EmployeeReport{
				Name:     k.name,
				Position: k.position,
				Counts:   make(map[Rule]int),
			})
		}

		emp := &report.Employees[i]
		clockIn, _ := d.Row.ClockIn.Get()
		emp.Violations = append(emp.Violations, Violation{
			ClockIn:     clockIn,
			HoursWorked: d.Row.HoursWorked(),
			Rule:        d.Rule,
		})
		emp.Counts[d.Rule]++
		report.Counts[d.Rule]++
		report.Total++
	}

	return report
}

// CountSkipped returns how many rows Evaluate would skip.
func CountSkipped(rows []timecard.Row) int {
	n := 0
	for _, r := range rows {
		if !r.Evaluable() {
			n++
		}
	}
	return n
}
