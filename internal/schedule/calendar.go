package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidRange is returned for a range whose start is not before its end.
	ErrInvalidRange = errors.New("start time must be before end time")
	// ErrOverlap is returned when ranges on the same day overlap.
	ErrOverlap = errors.New("time ranges overlap")
)

// TimeRange is a span of availability within a single day.
type TimeRange struct {
	Start TimeOfDay `json:"start"` // "HH:MM"
	End   TimeOfDay `json:"end"`   // "HH:MM", "24:00" for end of day
}

// NewTimeRange builds a TimeRange from minutes since midnight.
func NewTimeRange(startMin, endMin int) TimeRange {
	return TimeRange{Start: TimeFromMinutes(startMin), End: TimeFromMinutes(endMin)}
}

// ParseTimeRange parses two time strings ("9am", "17:00") into a validated range.
func ParseTimeRange(from, to string) (TimeRange, error) {
	start, err := ParseTimeOfDay(from)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid from time %q: %w", from, err)
	}
	end, err := ParseTimeOfDay(to)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid to time %q: %w", to, err)
	}
	// A range never ends at 00:00; "12am" as an end means the end of the day.
	if end.Minutes() == 0 {
		end = EndOfDay
	}
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// Validate checks that both ends are clock times and start < end.
func (r TimeRange) Validate() error {
	if !r.Start.Valid() || !r.End.Valid() {
		return fmt.Errorf("time range %s out of range", r)
	}
	if !r.Start.Before(r.End) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Overlaps reports whether r and o share any minute. Touching ranges do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Minutes is the length of r.
func (r TimeRange) Minutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// String returns the range as "HH:MM-HH:MM".
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// RangesKey joins ranges into a comparable key, "09:00-12:00,13:00-17:00".
// Days with equal keys hold the same ranges.
func RangesKey(ranges []TimeRange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// ValidateRanges checks that each range has start < end and that no two
// ranges overlap.
func ValidateRanges(ranges []TimeRange) error {
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return validateNoOverlap(ranges)
}

// validateNoOverlap checks that no two ranges overlap. Ranges are assumed to
// already be individually valid. Sorts a copy by start time and checks each pair.
func validateNoOverlap(ranges []TimeRange) error {
	if len(ranges) < 2 {
		return nil
	}

	sorted := sortedCopy(ranges)
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		curr := sorted[i]
		if curr.Overlaps(prev) {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, prev, curr)
		}
	}
	return nil
}

func sortedCopy(ranges []TimeRange) []TimeRange {
	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].End.Before(sorted[j].End)
	})
	return sorted
}

// Calendar is a week of availability: for each day an ordered list of
// non-overlapping ranges. It is a value: every method that changes it
// returns a new Calendar and leaves the receiver untouched.
type Calendar struct {
	days [DaysPerWeek][]TimeRange
}

// Ranges returns a copy of the ranges for d in start order.
func (c Calendar) Ranges(d Day) []TimeRange {
	if !d.Valid() || len(c.days[d]) == 0 {
		return nil
	}
	out := make([]TimeRange, len(c.days[d]))
	copy(out, c.days[d])
	return out
}

// Has reports whether d holds any availability.
func (c Calendar) Has(d Day) bool {
	return d.Valid() && len(c.days[d]) > 0
}

// Days returns the days holding availability, in week order.
func (c Calendar) Days() []Day {
	var days []Day
	for _, d := range AllDays() {
		if c.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// IsEmpty reports whether no day holds availability.
func (c Calendar) IsEmpty() bool {
	return len(c.Days()) == 0
}

// Set replaces the ranges of d. The ranges are validated and stored sorted.
func (c Calendar) Set(d Day, ranges ...TimeRange) (Calendar, error) {
	if !d.Valid() {
		return c, fmt.Errorf("invalid day %d", int(d))
	}
	if err := ValidateRanges(ranges); err != nil {
		return c, fmt.Errorf("%s: %w", d, err)
	}
	next := c.clone()
	if len(ranges) == 0 {
		next.days[d] = nil
	} else {
		next.days[d] = sortedCopy(ranges)
	}
	return next, nil
}

// Clear empties d.
func (c Calendar) Clear(d Day) Calendar {
	next := c.clone()
	if d.Valid() {
		next.days[d] = nil
	}
	return next
}

// AddRange appends r to d. It rejects an invalid range or one that overlaps
// what d already holds.
func (c Calendar) AddRange(d Day, r TimeRange) (Calendar, error) {
	if err := r.Validate(); err != nil {
		return c, err
	}
	for _, existing := range c.Ranges(d) {
		if existing.Overlaps(r) {
			return c, fmt.Errorf("%w: %s and %s", ErrOverlap, existing, r)
		}
	}
	return c.Set(d, append(c.Ranges(d), r)...)
}

// RemoveRange drops every range on d equal to r and reports whether any matched.
func (c Calendar) RemoveRange(d Day, r TimeRange) (Calendar, bool) {
	current := c.Ranges(d)
	kept := current[:0:0]
	for _, existing := range current {
		if existing != r {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(current) {
		return c, false
	}
	next := c.clone()
	next.days[d] = kept
	if len(kept) == 0 {
		next.days[d] = nil
	}
	return next, true
}

// RemoveRangeAt drops the range at 0-based index i on d.
func (c Calendar) RemoveRangeAt(d Day, i int) (Calendar, error) {
	current := c.Ranges(d)
	if i < 0 || i >= len(current) {
		return c, fmt.Errorf("%s has no range #%d", d, i+1)
	}
	r := current[i]
	next, _ := c.RemoveRange(d, r)
	return next, nil
}

// Equal reports whether both calendars hold the same ranges on every day.
func (c Calendar) Equal(o Calendar) bool {
	for _, d := range AllDays() {
		a, b := c.days[d], o.days[d]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

func (c Calendar) clone() Calendar {
	var next Calendar
	for i, ranges := range c.days {
		if len(ranges) > 0 {
			next.days[i] = append([]TimeRange(nil), ranges...)
		}
	}
	return next
}

// MarshalJSON writes the calendar as an object keyed by lower-case day name,
// with every day present.
func (c Calendar) MarshalJSON() ([]byte, error) {
	out := make(map[string][]TimeRange, DaysPerWeek)
	for _, d := range AllDays() {
		ranges := c.days[d]
		if ranges == nil {
			ranges = []TimeRange{}
		}
		out[d.String()] = ranges
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the form written by MarshalJSON and validates every day.
func (c *Calendar) UnmarshalJSON(data []byte) error {
	var raw map[string][]TimeRange
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var next Calendar
	for name, ranges := range raw {
		d, ok := ParseDay(name)
		if !ok {
			return fmt.Errorf("unknown day %q", name)
		}
		var err error
		next, err = next.Set(d, ranges...)
		if err != nil {
			return err
		}
	}
	*c = next
	return nil
}

// Minutes is the total length of the ranges held by d.
func (c Calendar) Minutes(d Day) int {
	total := 0
	for _, r := range c.Ranges(d) {
		total += r.Minutes()
	}
	return total
}

// TotalMinutes is the available time across the whole week.
func (c Calendar) TotalMinutes() int {
	total := 0
	for _, d := range c.Days() {
		total += c.Minutes(d)
	}
	return total
}
