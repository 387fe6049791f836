package compliance

import (
	"iter"
	"time"

	"github.com/Flyrell/timeaudit/internal/timecard"
)

// StateMode selects how running state is scoped during a scan.
type StateMode int

const (
	// RollingState keeps one state across all rows, so counters carry over
	// from one employee to the next.
	RollingState StateMode = iota
	// PerEmployeeState keeps independent state per employee name, starting
	// fresh at each employee's first row.
	PerEmployeeState
)

// ParseStateMode maps "rolling" and "per-employee" to a StateMode.
func ParseStateMode(s string) (StateMode, bool) {
	switch s {
	case "", "rolling":
		return RollingState, true
	case "per-employee":
		return PerEmployeeState, true
	}
	return 0, false
}

func (m StateMode) String() string {
	if m == PerEmployeeState {
		return "per-employee"
	}
	return "rolling"
}

// Options configures an evaluation pass.
type Options struct {
	Thresholds Thresholds
	Mode       StateMode
	// OnSkip, if set, is called for each row left out because a clock time is
	// missing.
	OnSkip func(timecard.Row)
}

// DefaultOptions returns the default thresholds with rolling state.
func DefaultOptions() Options {
	return Options{Thresholds: DefaultThresholds()}
}

// runState is the running per-scan state the rules read.
type runState struct {
	consecutiveDays  int
	previousClockOut timecard.Optional[time.Time]
}

// advance updates the state after a row has been checked. The counter resets
// when the row's clock-out falls more than one calendar day after its
// clock-in.
func (s *runState) advance(in, out time.Time) {
	if calendarDays(in, out) > 1 {
		s.consecutiveDays = 0
	} else {
		s.consecutiveDays++
	}
	s.previousClockOut = timecard.Some(out)
}

// Evaluate walks rows in the given order and yields one Diagnostic per
// triggered rule. Rows missing a clock time are skipped without touching
// state. Each range over the returned sequence starts from fresh state.
func Evaluate(rows []timecard.Row, opts Options) iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		states := newStateTable(opts.Mode)
		for _, row := range rows {
			in, inOK := row.ClockIn.Get()
			out, outOK := row.ClockOut.Get()
			if !inOK || !outOK {
				if opts.OnSkip != nil {
					opts.OnSkip(row)
				}
				continue
			}

			st := states.get(row.EmployeeName)
			for _, rule := range check(st, row, in, opts.Thresholds) {
				if !yield(Diagnostic{Row: row, Rule: rule}) {
					return
				}
			}
			st.advance(in, out)
		}
	}
}

// check returns the rules row violates given the state before it.
func check(st *runState, row timecard.Row, in time.Time, th Thresholds) []Rule {
	var fired []Rule

	if st.consecutiveDays >= th.MaxConsecutiveDays {
		fired = append(fired, RuleConsecutiveDays)
	}

	if prev, ok := st.previousClockOut.Get(); ok {
		gap := in.Sub(prev)
		if gap > th.RestFloor && gap < th.MinRest {
			fired = append(fired, RuleShortRest)
		}
	}

	if row.HoursWorked() > th.MaxShift {
		fired = append(fired, RuleLongShift)
	}

	return fired
}

type stateTable struct {
	mode      StateMode
	rolling   runState
	employees map[string]*runState
}

func newStateTable(mode StateMode) *stateTable {
	return &stateTable{mode: mode, employees: make(map[string]*runState)}
}

func (t *stateTable) get(employee string) *runState {
	if t.mode != PerEmployeeState {
		return &t.rolling
	}
	st, ok := t.employees[employee]
	if !ok {
		st = &runState{}
		t.employees[employee] = st
	}
	return st
}

// calendarDays returns the number of calendar days from a's date to b's date.
func calendarDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
