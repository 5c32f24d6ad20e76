package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Day is a day of the week in Monday-first order. The zero value is Monday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of days in the week ordering.
const DaysPerWeek = 7

var dayNames = [DaysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// AllDays returns every day in week order.
func AllDays() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Weekdays returns Monday through Friday.
func Weekdays() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// WeekendDays returns Saturday and Sunday.
func WeekendDays() []Day {
	return []Day{Saturday, Sunday}
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the lower-case day name, e.g. "monday".
func (d Day) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return dayNames[d]
}

// Title returns the capitalized day name, e.g. "Monday".
func (d Day) Title() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Short returns the three-letter label, e.g. "Mon".
func (d Day) Short() string {
	return d.Title()[:3]
}

// Weekday converts d to a time.Weekday.
func (d Day) Weekday() time.Weekday {
	return time.Weekday((int(d) + 1) % DaysPerWeek)
}

// FromWeekday converts a time.Weekday to a Day.
func FromWeekday(wd time.Weekday) Day {
	return Day((int(wd) + 6) % DaysPerWeek)
}

// MarshalText encodes d as its lower-case name.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid day %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts anything ParseDay does.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, ok := ParseDay(string(text))
	if !ok {
		return fmt.Errorf("unknown day %q", string(text))
	}
	*d = parsed
	return nil
}

// dayAliases resolves a three-letter prefix to its day. Longer spellings are
// accepted when they are a prefix of the full name ("tues", "thurs").
var dayAliases = map[string]Day{
	"mon": Monday,
	"tue": Tuesday,
	"wed": Wednesday,
	"thu": Thursday,
	"fri": Friday,
	"sat": Saturday,
	"sun": Sunday,
}

// irregularAliases are spellings that are not a prefix of the full name.
var irregularAliases = map[string]Day{
	"weds": Wednesday,
}

// ParseDay resolves a day name, abbreviation or plural ("mondays") to a Day.
func ParseDay(s string) (Day, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := irregularAliases[s]; ok {
		return d, true
	}
	if len(s) < 3 {
		return 0, false
	}
	d, ok := dayAliases[s[:3]]
	if !ok {
		return 0, false
	}
	full := dayNames[d]
	if strings.HasPrefix(full, s) || s == full+"s" {
		return d, true
	}
	return 0, false
}

// DayRange expands from..to inclusive in week order. When from comes after
// to, the walk wraps past Sunday back to Monday, so the result always has
// ((to - from) mod 7) + 1 days.
func DayRange(from, to Day) []Day {
	if !from.Valid() || !to.Valid() {
		return nil
	}
	n := (int(to)-int(from)+DaysPerWeek)%DaysPerWeek + 1
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, Day((int(from)+i)%DaysPerWeek))
	}
	return days
}

// SortDays sorts days into week order and drops duplicates.
func SortDays(days []Day) []Day {
	var seen [DaysPerWeek]bool
	for _, d := range days {
		if d.Valid() {
			seen[d] = true
		}
	}
	out := make([]Day, 0, len(days))
	for i, ok := range seen {
		if ok {
			out = append(out, Day(i))
		}
	}
	return out
}
