package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/teambition/rrule-go"
)

var everyNWeeks = regexp.MustCompile(`^every (\d+) weeks?$`)

// parseRecurrence parses a natural language or raw RRULE recurrence string.
func parseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Raw RRULE passthrough
	if isRawRRule(s) {
		raw := strings.ToUpper(s)
		raw = strings.TrimPrefix(raw, "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	// Natural language patterns
	switch s {
	case "every day", "daily", "everyday":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.DAILY,
		})

	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})

	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	}

	if strings.HasPrefix(s, "every ") {
		// "every N weeks" has no weekly day set to offer.
		if everyNWeeks.MatchString(s) {
			n, _ := strconv.Atoi(everyNWeeks.FindStringSubmatch(s)[1])
			return nil, fmt.Errorf("recurrence every %d weeks does not name days", n)
		}

		if d, ok := ParseDay(strings.TrimPrefix(s, "every ")); ok {
			return rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{rruleWeekday(d)},
			})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// isRawRRule returns true if the string looks like a raw RRULE.
// Works on both lowercased and original-case input.
func isRawRRule(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "freq=") || strings.HasPrefix(lower, "rrule:")
}

var rruleWeekdays = [DaysPerWeek]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

func rruleWeekday(d Day) rrule.Weekday {
	return rruleWeekdays[d]
}

// recurrenceDays returns the week days an RRULE fires on. Daily rules and
// weekly rules without BYDAY cover every day.
func recurrenceDays(r *rrule.RRule) ([]Day, error) {
	opts := r.OrigOptions
	switch opts.Freq {
	case rrule.DAILY, rrule.WEEKLY:
	default:
		return nil, fmt.Errorf("unsupported recurrence frequency %v", opts.Freq)
	}
	if opts.Interval > 1 {
		return nil, fmt.Errorf("recurrence interval %d is not weekly", opts.Interval)
	}
	if len(opts.Byweekday) == 0 {
		return AllDays(), nil
	}
	days := make([]Day, 0, len(opts.Byweekday))
	for _, wd := range opts.Byweekday {
		days = append(days, Day(wd.Day()))
	}
	return SortDays(days), nil
}
