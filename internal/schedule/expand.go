package schedule

import "fmt"

// FromEntries rebuilds a calendar from schedule entries, in order. An entry's
// ranges are added to the days its rule fires on; an override entry replaces
// whatever earlier entries put on those days.
func FromEntries(entries []ScheduleEntry) (Calendar, error) {
	var c Calendar
	for i, e := range entries {
		if len(e.Ranges) == 0 {
			return Calendar{}, fmt.Errorf("schedule entry %d has no time ranges", i+1)
		}
		r, err := parseRecurrence(e.RRule)
		if err != nil {
			return Calendar{}, fmt.Errorf("schedule entry %d: %w", i+1, err)
		}
		days, err := recurrenceDays(r)
		if err != nil {
			return Calendar{}, fmt.Errorf("schedule entry %d: %w", i+1, err)
		}

		for _, d := range days {
			ranges := e.Ranges
			if !e.Override {
				ranges = append(c.Ranges(d), e.Ranges...)
			}
			c, err = c.Set(d, ranges...)
			if err != nil {
				return Calendar{}, fmt.Errorf("schedule entry %d: %w", i+1, err)
			}
		}
	}
	return c, nil
}
