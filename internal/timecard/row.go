package timecard

import "time"

// Column names the loader requires in the header row.
const (
	ColEmployeeName   = "Employee Name"
	ColPositionStatus = "Position Status"
	ColClockIn        = "Time"
	ColClockOut       = "Time Out"
	ColTimecardHours  = "Timecard Hours (as Time)"
)

// RequiredColumns lists every column a timecard source must carry, in the
// order missing ones are reported.
var RequiredColumns = []string{
	ColEmployeeName,
	ColPositionStatus,
	ColClockIn,
	ColClockOut,
	ColTimecardHours,
}

// Optional holds a parsed cell value, or nothing when the cell was empty or
// could not be parsed.
type Optional[T any] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// Missing returns the empty marker for T.
func Missing[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsMissing reports whether no value is present.
func (o Optional[T]) IsMissing() bool {
	return !o.valid
}

// OrZero returns the value, or the zero value of T when missing.
func (o Optional[T]) OrZero() T {
	return o.value
}

// Row is one shift record after normalization.
type Row struct {
	Line           int // source line (CSV) or sheet row number, 1-based, header included
	EmployeeName   string
	PositionStatus string
	ClockIn        Optional[time.Time]
	ClockOut       Optional[time.Time]
	TimecardHours  Optional[time.Duration]
}

// HoursWorked returns the recorded timecard hours, treating a missing value
// as zero.
func (r Row) HoursWorked() time.Duration {
	return r.TimecardHours.OrZero()
}

// Evaluable reports whether both clock times are present.
func (r Row) Evaluable() bool {
	return !r.ClockIn.IsMissing() && !r.ClockOut.IsMissing()
}
