package compliance

import (
	"fmt"
	"time"

	"github.com/Flyrell/timeaudit/internal/timecard"
)

// Rule identifies one of the fixed compliance checks.
type Rule int

const (
	RuleConsecutiveDays Rule = iota
	RuleShortRest
	RuleLongShift
)

// Rules lists every rule in evaluation order.
var Rules = []Rule{RuleConsecutiveDays, RuleShortRest, RuleLongShift}

// Message returns the fixed text reported for a violation of r.
func (r Rule) Message() string {
	switch r {
	case RuleConsecutiveDays:
		return "Worked for 7 consecutive days"
	case RuleShortRest:
		return "Less than 10 hours between shifts"
	case RuleLongShift:
		return "Worked more than 14 hours in a single shift"
	}
	return fmt.Sprintf("unknown rule %d", int(r))
}

// String returns a short identifier for r.
func (r Rule) String() string {
	switch r {
	case RuleConsecutiveDays:
		return "consecutive-days"
	case RuleShortRest:
		return "short-rest"
	case RuleLongShift:
		return "long-shift"
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// Thresholds holds the limits the rules compare against.
type Thresholds struct {
	// MaxConsecutiveDays is the counter value at which the consecutive-days
	// rule fires.
	MaxConsecutiveDays int
	// MinRest is the exclusive upper bound of a short rest gap.
	MinRest time.Duration
	// RestFloor is the exclusive lower bound of a short rest gap. Gaps at or
	// below it are treated as adjacent or overlapping shifts.
	RestFloor time.Duration
	// MaxShift is the longest single shift allowed.
	MaxShift time.Duration
}

// DefaultThresholds returns 7 days, 10h rest with a 1h floor, and 14h shifts.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxConsecutiveDays: 7,
		MinRest:            10 * time.Hour,
		RestFloor:          time.Hour,
		MaxShift:           14 * time.Hour,
	}
}

// Diagnostic is one rule violation on one row.
type Diagnostic struct {
	Row  timecard.Row
	Rule Rule
}

// String formats d as a report line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("Employee: %s, Position: %s, %s", d.Row.EmployeeName, d.Row.PositionStatus, d.Rule.Message())
}
