package timecard

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// TimestampLayout is the clock-in/clock-out cell format, e.g. "3/14/2024 2:05 PM".
const TimestampLayout = "1/2/2006 3:04 PM"

// ParseTimestamp parses a clock cell. The AM/PM marker is case-insensitive
// and minutes may be one digit ("2:5 PM"). Hour 0 is rejected on a 12-hour
// clock. Cells that do not match TimestampLayout are missing.
func ParseTimestamp(s string) Optional[time.Time] {
	fields := strings.Fields(strings.ToUpper(s))
	if len(fields) != 3 {
		return Missing[time.Time]()
	}
	hour, minute, ok := strings.Cut(fields[1], ":")
	if !ok || strings.Trim(hour, "0") == "" {
		return Missing[time.Time]()
	}
	if len(minute) == 1 {
		fields[1] = hour + ":0" + minute
	}
	t, err := time.Parse(TimestampLayout, strings.Join(fields, " "))
	if err != nil {
		return Missing[time.Time]()
	}
	return Some(t)
}

// Normalize converts the table's records into typed rows, sorted by employee
// name then clock-in time.
func Normalize(t *Table) []Row {
	var (
		nameIdx     = t.Column(ColEmployeeName)
		positionIdx = t.Column(ColPositionStatus)
		inIdx       = t.Column(ColClockIn)
		outIdx      = t.Column(ColClockOut)
		hoursIdx    = t.Column(ColTimecardHours)
	)

	rows := make([]Row, 0, len(t.Records))
	for _, rec := range t.Records {
		rows = append(rows, Row{
			Line:           rec.Line,
			EmployeeName:   cell(rec.Cells, nameIdx),
			PositionStatus: cell(rec.Cells, positionIdx),
			ClockIn:        ParseTimestamp(cell(rec.Cells, inIdx)),
			ClockOut:       ParseTimestamp(cell(rec.Cells, outIdx)),
			TimecardHours:  ParseHours(cell(rec.Cells, hoursIdx)),
		})
	}

	SortRows(rows)
	return rows
}

// SortRows orders rows by employee name, then clock-in time. Rows with an
// empty employee name or a missing clock-in sort after the others in their
// group. The sort is stable, so ties keep source order.
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, compareRows)
}

func compareRows(a, b Row) int {
	if c := compareNames(a.EmployeeName, b.EmployeeName); c != 0 {
		return c
	}

	aIn, aOK := a.ClockIn.Get()
	bIn, bOK := b.ClockIn.Get()
	switch {
	case aOK && bOK:
		return aIn.Compare(bIn)
	case aOK:
		return -1
	case bOK:
		return 1
	}
	return 0
}

func compareNames(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return cmp.Compare(a, b)
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
