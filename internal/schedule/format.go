package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeSeparator joins the start and end of a formatted range.
const RangeSeparator = "–"

// Format12h renders t on a 12-hour clock with a lower-case meridiem,
// omitting zero minutes: "9 am", "1:30 pm", "12 pm". 24:00 renders as "12 am".
func Format12h(t TimeOfDay) string {
	h := t.Hour % 24
	suffix := "am"
	display := h
	if h == 0 {
		display = 12
	} else if h == 12 {
		suffix = "pm"
	} else if h > 12 {
		display = h - 12
		suffix = "pm"
	}

	if t.Minute == 0 {
		return fmt.Sprintf("%d %s", display, suffix)
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute, suffix)
}

// FormatRange renders r as "9 am–5 pm".
func FormatRange(r TimeRange) string {
	return Format12h(r.Start) + RangeSeparator + Format12h(r.End)
}

// FormatRanges renders ranges comma-separated, or "unavailable" when empty.
func FormatRanges(ranges []TimeRange) string {
	if len(ranges) == 0 {
		return "unavailable"
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = FormatRange(r)
	}
	return strings.Join(parts, ", ")
}

// FormatDays renders days as "Mon, Tue, Wed" in the order given.
func FormatDays(days []Day) string {
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Short()
	}
	return strings.Join(labels, ", ")
}

// FormatCalendar renders one line per day: "Mon  9 am–5 pm".
func FormatCalendar(c Calendar) []string {
	lines := make([]string, 0, DaysPerWeek)
	for _, d := range AllDays() {
		lines = append(lines, fmt.Sprintf("%s  %s", d.Short(), FormatRanges(c.Ranges(d))))
	}
	return lines
}

// FormatMinutes renders a duration as "8h", "8h 30m" or "45m".
func FormatMinutes(m int) string {
	if m <= 0 {
		return "0m"
	}
	hours, mins := m/60, m%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatRRule returns a human-readable description of an RRULE string.
func FormatRRule(rruleStr string) string {
	upper := strings.ToUpper(strings.TrimPrefix(rruleStr, "RRULE:"))

	parts := make(map[string]string)
	for _, seg := range strings.Split(upper, ";") {
		kv := strings.SplitN(seg, "=", 2)
		if len(kv) == 2 {
			parts[kv[0]] = kv[1]
		}
	}

	freq := parts["FREQ"]
	byday := parts["BYDAY"]
	interval := 1
	if v, ok := parts["INTERVAL"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			interval = n
		}
	}

	if freq == "WEEKLY" && byday != "" {
		days := strings.Split(byday, ",")
		if isWeekdays(days) {
			return "every weekday"
		}
		if isWeekends(days) {
			return "every weekend"
		}
		if isEveryDay(days) {
			return "every day"
		}
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = dayAbbrevToName(d)
		}
		return "every " + strings.Join(names, ", ")
	}

	if freq == "DAILY" {
		if interval > 1 {
			return fmt.Sprintf("every %d days", interval)
		}
		return "every day"
	}

	if freq == "WEEKLY" {
		if interval > 1 {
			return fmt.Sprintf("every %d weeks", interval)
		}
		return "every week"
	}

	return rruleStr
}

// FormatScheduleEntry returns a full human-readable line for a schedule entry.
// Multiple time ranges are joined with " + ".
func FormatScheduleEntry(e ScheduleEntry) string {
	rangeParts := make([]string, len(e.Ranges))
	for i, r := range e.Ranges {
		rangeParts[i] = FormatRange(r)
	}
	timeRange := strings.Join(rangeParts, " + ")
	if e.RRule == "" {
		return timeRange
	}
	return fmt.Sprintf("%s, %s", timeRange, FormatRRule(e.RRule))
}

// matchExactSet returns true if actual contains exactly the expected strings (in any order).
func matchExactSet(actual []string, expected ...string) bool {
	if len(actual) != len(expected) {
		return false
	}
	set := make(map[string]bool, len(expected))
	for _, e := range expected {
		set[e] = false
	}
	for _, a := range actual {
		if _, ok := set[a]; !ok {
			return false
		}
		set[a] = true
	}
	for _, v := range set {
		if !v {
			return false
		}
	}
	return true
}

func isWeekdays(days []string) bool {
	return matchExactSet(days, "MO", "TU", "WE", "TH", "FR")
}

func isWeekends(days []string) bool {
	return matchExactSet(days, "SA", "SU")
}

func isEveryDay(days []string) bool {
	return matchExactSet(days, "MO", "TU", "WE", "TH", "FR", "SA", "SU")
}

var rruleDayNames = map[string]string{
	"MO": "Monday",
	"TU": "Tuesday",
	"WE": "Wednesday",
	"TH": "Thursday",
	"FR": "Friday",
	"SA": "Saturday",
	"SU": "Sunday",
}

func dayAbbrevToName(abbrev string) string {
	if name, ok := rruleDayNames[strings.ToUpper(abbrev)]; ok {
		return name
	}
	return abbrev
}
