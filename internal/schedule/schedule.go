// Package schedule holds the weekly availability model: days, times of day,
// time ranges, the Calendar value, and its storable and printable forms.
package schedule

import (
	"fmt"
	"strings"
)

// ParseEntry parses a schedule line of the form
// "from <time> to <time> <recurrence>", e.g. "from 9am to 5pm every weekday".
// The recurrence may be natural language or a raw RRULE.
func ParseEntry(input string) (ScheduleEntry, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	r, remainder, err := extractTimes(normalized)
	if err != nil {
		return ScheduleEntry{}, err
	}

	remainder = strings.TrimSpace(remainder)
	if remainder == "" {
		return ScheduleEntry{}, fmt.Errorf("expected a recurrence after the time range in %q", input)
	}

	rule, err := parseRecurrence(remainder)
	if err != nil {
		return ScheduleEntry{}, fmt.Errorf("invalid recurrence: %w", err)
	}
	if _, err := recurrenceDays(rule); err != nil {
		return ScheduleEntry{}, fmt.Errorf("invalid recurrence: %w", err)
	}

	return ScheduleEntry{Ranges: []TimeRange{r}, RRule: rule.String()}, nil
}

// extractTimes parses "from <time> to <time> ..." and returns the range
// plus the remaining string after the "to <time>" segment.
func extractTimes(s string) (TimeRange, string, error) {
	if !strings.HasPrefix(s, "from ") {
		return TimeRange{}, "", fmt.Errorf("expected 'from <time> to <time>', got %q", s)
	}

	afterFrom := s[len("from "):]

	toIdx := findToKeyword(afterFrom)
	if toIdx == -1 {
		return TimeRange{}, "", fmt.Errorf("expected 'to <time>' in %q", s)
	}

	fromStr := strings.TrimSpace(afterFrom[:toIdx])
	afterTo := strings.TrimSpace(afterFrom[toIdx+len("to "):])

	toStr, remainder := splitTimeAndRemainder(afterTo)

	r, err := ParseTimeRange(fromStr, toStr)
	if err != nil {
		return TimeRange{}, "", err
	}
	return r, remainder, nil
}

// findToKeyword finds the index of " to " as a word boundary in s.
// Returns -1 if not found. The returned index points at "to " (past the leading space).
func findToKeyword(s string) int {
	pos := strings.Index(s, " to ")
	if pos == -1 {
		return -1
	}
	return pos + 1
}

// splitTimeAndRemainder splits "5pm every weekday" into ("5pm", "every weekday").
// A detached meridiem ("5 pm every weekday") stays with the time.
func splitTimeAndRemainder(s string) (string, string) {
	parts := strings.SplitN(s, " ", 3)
	if len(parts) >= 2 && (parts[1] == "am" || parts[1] == "pm") {
		rest := ""
		if len(parts) == 3 {
			rest = parts[2]
		}
		return parts[0] + parts[1], rest
	}
	parts = strings.SplitN(s, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
