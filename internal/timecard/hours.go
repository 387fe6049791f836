package timecard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseHours parses a timecard hours cell such as "8:30" or "15:05" into a
// duration. Hours are unbounded. Anything past a second ":" is ignored.
// Empty cells and cells without an integer hours:minutes pair are missing.
func ParseHours(s string) Optional[time.Duration] {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return Missing[time.Duration]()
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Missing[time.Duration]()
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Missing[time.Duration]()
	}

	return Some(time.Duration(hours)*time.Hour + time.Duration(mins)*time.Minute)
}

// FormatDuration renders a duration as hours and minutes.
// Examples: 90m → "1h 30m", 30m → "30m".
func FormatDuration(d time.Duration) string {
	m := int(d / time.Minute)
	if m <= 0 {
		return "0m"
	}

	hours := m / 60
	mins := m % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || hours == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}

	return strings.Join(parts, " ")
}
