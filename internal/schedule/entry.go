package schedule

import (
	"fmt"

	"github.com/teambition/rrule-go"
)

// ScheduleEntry is the storable recurring form of availability: one or more
// time ranges plus a weekly recurrence rule naming the days they apply to.
type ScheduleEntry struct {
	Ranges   []TimeRange `json:"ranges"`
	RRule    string      `json:"rrule"`              // RFC 5545 RRULE string (always present)
	Override bool        `json:"override,omitempty"` // when true, replaces all previous ranges for matching days
}

// DefaultSchedules returns the default working schedule: Mon-Fri 9am-5pm.
func DefaultSchedules() []ScheduleEntry {
	entries, _ := ToEntries(PresetCalendar(PresetWeekdays))
	return entries
}

// ToEntries converts a calendar into weekly schedule entries. Days holding
// the same list of ranges share one entry; entries are ordered by their
// first day.
func ToEntries(c Calendar) ([]ScheduleEntry, error) {
	var (
		order  []string
		groups = make(map[string][]Day)
	)
	for _, d := range c.Days() {
		key := RangesKey(c.Ranges(d))
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], d)
	}

	entries := make([]ScheduleEntry, 0, len(order))
	for _, key := range order {
		days := groups[key]
		weekdays := make([]rrule.Weekday, len(days))
		for i, d := range days {
			weekdays[i] = rruleWeekday(d)
		}
		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: weekdays,
		})
		if err != nil {
			return nil, fmt.Errorf("building rrule for %s: %w", FormatDays(days), err)
		}
		entries = append(entries, ScheduleEntry{
			Ranges: c.Ranges(days[0]),
			RRule:  r.String(),
		})
	}
	return entries, nil
}
