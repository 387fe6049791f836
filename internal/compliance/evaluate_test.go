package compliance

import (
	"slices"
	"testing"
	"time"

	"github.com/Flyrell/timeaudit/internal/timecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func shift(name string, in, out time.Time, hours string) timecard.Row {
	return timecard.Row{
		EmployeeName:   name,
		PositionStatus: "Cook",
		ClockIn:        timecard.Some(in),
		ClockOut:       timecard.Some(out),
		TimecardHours:  timecard.ParseHours(hours),
	}
}

// dailyShifts returns n 9am-5pm shifts for name starting on the given day.
func dailyShifts(name string, startDay, n int) []timecard.Row {
	rows := make([]timecard.Row, 0, n)
	for d := startDay; d < startDay+n; d++ {
		rows = append(rows, shift(name, at(d, 9, 0), at(d, 17, 0), "8:00"))
	}
	return rows
}

func rulesOf(diags []Diagnostic) []Rule {
	rules := make([]Rule, len(diags))
	for i, d := range diags {
		rules[i] = d.Rule
	}
	return rules
}

func evaluate(rows []timecard.Row, opts Options) []Diagnostic {
	return slices.Collect(Evaluate(rows, opts))
}

func TestEvaluateSkipsRowsMissingClockTimes(t *testing.T) {
	missingOut := shift("Ana", at(2, 2, 0), at(2, 4, 0), "20:00")
	missingOut.ClockOut = timecard.Missing[time.Time]()
	missingIn := shift("Ana", at(2, 3, 0), at(2, 4, 0), "20:00")
	missingIn.ClockIn = timecard.Missing[time.Time]()

	rows := []timecard.Row{
		shift("Ana", at(1, 14, 0), at(1, 22, 0), "8:00"),
		missingOut,
		missingIn,
		shift("Ana", at(2, 5, 0), at(2, 13, 0), "8:00"),
	}

	var skipped []timecard.Row
	opts := DefaultOptions()
	opts.OnSkip = func(r timecard.Row) { skipped = append(skipped, r) }

	diags := evaluate(rows, opts)

	// The gap is measured from the first row, not from the skipped ones.
	require.Len(t, diags, 1)
	assert.Equal(t, RuleShortRest, diags[0].Rule)
	assert.Equal(t, at(2, 5, 0), diags[0].Row.ClockIn.OrZero())
	assert.Len(t, skipped, 2)
}

func TestShortRestBoundaries(t *testing.T) {
	prevOut := at(1, 22, 0)
	tests := []struct {
		name string
		gap  time.Duration
		want bool
	}{
		{"overlapping", -30 * time.Minute, false},
		{"adjacent", 0, false},
		{"exactly one hour", time.Hour, false},
		{"1.01 hours", time.Hour + 36*time.Second, true},
		{"seven hours", 7 * time.Hour, true},
		{"eight hours", 8 * time.Hour, true},
		{"9.99 hours", 9*time.Hour + 59*time.Minute + 24*time.Second, true},
		{"exactly ten hours", 10 * time.Hour, false},
		{"twelve hours", 12 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := prevOut.Add(tt.gap)
			rows := []timecard.Row{
				shift("Ana", at(1, 14, 0), prevOut, "8:00"),
				shift("Ana", in, in.Add(8*time.Hour), "8:00"),
			}

			diags := evaluate(rows, DefaultOptions())
			if tt.want {
				assert.Equal(t, []Rule{RuleShortRest}, rulesOf(diags))
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestLongShiftBoundaries(t *testing.T) {
	tests := []struct {
		hours string
		want  bool
	}{
		{"14:00", false},
		{"14:01", true},
		{"15:30", true},
		{"8:00", false},
		{"", false},
		{"junk", false},
	}

	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			rows := []timecard.Row{shift("Ana", at(1, 6, 0), at(1, 22, 0), tt.hours)}

			diags := evaluate(rows, DefaultOptions())
			if tt.want {
				assert.Equal(t, []Rule{RuleLongShift}, rulesOf(diags))
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestConsecutiveDaysFiresOnEighthShift(t *testing.T) {
	rows := dailyShifts("Ana", 1, 9)

	diags := evaluate(rows, DefaultOptions())

	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, RuleConsecutiveDays, d.Rule)
	}
	assert.Equal(t, at(8, 9, 0), diags[0].Row.ClockIn.OrZero())
	assert.Equal(t, at(9, 9, 0), diags[1].Row.ClockIn.OrZero())
}

func TestMultiDayShiftResetsConsecutiveDays(t *testing.T) {
	rows := dailyShifts("Ana", 1, 7)
	rows = append(rows,
		shift("Ana", at(8, 9, 0), at(10, 9, 0), "8:00"),
		shift("Ana", at(10, 20, 0), at(11, 4, 0), "8:00"),
	)

	diags := evaluate(rows, DefaultOptions())

	// The eighth row still fires on the counter it started with; the reset
	// only shows on the row after it.
	require.Len(t, diags, 1)
	assert.Equal(t, RuleConsecutiveDays, diags[0].Rule)
	assert.Equal(t, at(8, 9, 0), diags[0].Row.ClockIn.OrZero())
}

func TestOvernightShiftDoesNotReset(t *testing.T) {
	rows := dailyShifts("Ana", 1, 6)
	rows = append(rows,
		shift("Ana", at(7, 20, 0), at(8, 4, 0), "8:00"),
		shift("Ana", at(8, 20, 0), at(9, 4, 0), "8:00"),
	)

	diags := evaluate(rows, DefaultOptions())

	assert.Equal(t, []Rule{RuleConsecutiveDays}, rulesOf(diags))
}

func TestRulesCoFireInOrder(t *testing.T) {
	rows := dailyShifts("Ana", 1, 7)
	rows = append(rows, shift("Ana", at(7, 22, 0), at(8, 14, 0), "16:00"))

	diags := evaluate(rows, DefaultOptions())

	assert.Equal(t, []Rule{RuleConsecutiveDays, RuleShortRest, RuleLongShift}, rulesOf(diags))
	for _, d := range diags {
		assert.Equal(t, at(7, 22, 0), d.Row.ClockIn.OrZero())
	}
}

func TestRollingStateCarriesAcrossEmployees(t *testing.T) {
	rows := dailyShifts("Ana", 1, 7)
	rows = append(rows, shift("Ben", at(8, 1, 0), at(8, 9, 0), "8:00"))

	t.Run("rolling", func(t *testing.T) {
		diags := evaluate(rows, DefaultOptions())

		assert.Equal(t, []Rule{RuleConsecutiveDays, RuleShortRest}, rulesOf(diags))
		for _, d := range diags {
			assert.Equal(t, "Ben", d.Row.EmployeeName)
		}
	})

	t.Run("per-employee", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Mode = PerEmployeeState

		assert.Empty(t, evaluate(rows, opts))
	})
}

func TestPerEmployeeStateStillTracksEachEmployee(t *testing.T) {
	rows := append(dailyShifts("Ana", 1, 8), dailyShifts("Ben", 1, 8)...)
	opts := DefaultOptions()
	opts.Mode = PerEmployeeState

	diags := evaluate(rows, opts)

	require.Len(t, diags, 2)
	assert.Equal(t, "Ana", diags[0].Row.EmployeeName)
	assert.Equal(t, "Ben", diags[1].Row.EmployeeName)
}

func TestEvaluateIsRepeatable(t *testing.T) {
	rows := append(dailyShifts("Ana", 1, 9), shift("Ana", at(10, 1, 0), at(10, 20, 0), "19:00"))
	seq := Evaluate(rows, DefaultOptions())

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, evaluate(rows, DefaultOptions()))
}

func TestEvaluateStopsWhenConsumerBreaks(t *testing.T) {
	rows := append(dailyShifts("Ana", 1, 7), shift("Ana", at(7, 22, 0), at(8, 14, 0), "16:00"))

	var got []Diagnostic
	for d := range Evaluate(rows, DefaultOptions()) {
		got = append(got, d)
		break
	}

	assert.Len(t, got, 1)
}

func TestCustomThresholds(t *testing.T) {
	opts := DefaultOptions()
	opts.Thresholds.MaxConsecutiveDays = 2
	opts.Thresholds.MaxShift = 7 * time.Hour

	diags := evaluate(dailyShifts("Ana", 1, 3), opts)

	assert.Equal(t, []Rule{RuleLongShift, RuleLongShift, RuleConsecutiveDays, RuleLongShift}, rulesOf(diags))
}

func TestDiagnosticString(t *testing.T) {
	row := shift("Ana Diaz", at(1, 9, 0), at(1, 17, 0), "15:30")
	row.PositionStatus = "Line Cook - Full Time"

	tests := []struct {
		rule Rule
		want string
	}{
		{RuleConsecutiveDays, "Employee: Ana Diaz, Position: Line Cook - Full Time, Worked for 7 consecutive days"},
		{RuleShortRest, "Employee: Ana Diaz, Position: Line Cook - Full Time, Less than 10 hours between shifts"},
		{RuleLongShift, "Employee: Ana Diaz, Position: Line Cook - Full Time, Worked more than 14 hours in a single shift"},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Diagnostic{Row: row, Rule: tt.rule}.String())
		})
	}
}

func TestParseStateMode(t *testing.T) {
	tests := []struct {
		input string
		want  StateMode
		ok    bool
	}{
		{"", RollingState, true},
		{"rolling", RollingState, true},
		{"per-employee", PerEmployeeState, true},
		{"global", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStateMode(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
