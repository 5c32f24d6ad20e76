package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a day. A TimeOfDay may equal it
// only as the end of a range ("24:00").
const MinutesPerDay = 24 * 60

// TimeOfDay represents a clock time without a date component.
type TimeOfDay struct {
	Hour   int // 0-24, 24 only with Minute 0
	Minute int // 0-59
}

// EndOfDay is midnight at the end of the day.
var EndOfDay = TimeOfDay{Hour: 24}

// TimeFromMinutes builds a TimeOfDay from minutes since midnight.
func TimeFromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// Minutes returns minutes since midnight (0-1440).
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Minutes() < u.Minutes()
}

// Valid reports whether t is a clock time between 00:00 and 24:00 inclusive.
func (t TimeOfDay) Valid() bool {
	if t.Hour == 24 {
		return t.Minute == 0
	}
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// String returns TimeOfDay in "HH:MM" format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalText encodes t as "HH:MM".
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts anything ParseTimeOfDay does.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

var (
	// 9:30am, 9:30pm
	timeColonAMPM = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	// 9.30am, 9.30pm
	timeDotAMPM = regexp.MustCompile(`^(\d{1,2})\.(\d{2})\s*(am|pm)$`)
	// 9am, 2pm
	timeAMPM = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
	// 14:00, 09:30
	time24h = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	// 14.00, 09.30
	timeDot24h = regexp.MustCompile(`^(\d{1,2})\.(\d{2})$`)
)

// ParseTimeOfDay parses a time string into a TimeOfDay.
// Supported formats: "9:30am", "9.30am", "9am", "14:00", "14.00", "24:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if m := timeColonAMPM.FindStringSubmatch(s); m != nil {
		return parseHourMinuteAMPM(m[1], m[2], m[3])
	}

	if m := timeDotAMPM.FindStringSubmatch(s); m != nil {
		return parseHourMinuteAMPM(m[1], m[2], m[3])
	}

	if m := timeAMPM.FindStringSubmatch(s); m != nil {
		return parseHourMinuteAMPM(m[1], "0", m[2])
	}

	if m := time24h.FindStringSubmatch(s); m != nil {
		return parseHourMinute24(m[1], m[2])
	}

	if m := timeDot24h.FindStringSubmatch(s); m != nil {
		return parseHourMinute24(m[1], m[2])
	}

	return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
}

func parseHourMinuteAMPM(hourStr, minStr, ampm string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, err
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, err
	}

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range for 12-hour format", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}

	return TimeOfDay{Hour: To24Hour(hour, ampm), Minute: minute}, nil
}

func parseHourMinute24(hourStr, minStr string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, err
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, err
	}

	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("time %s out of range", t)
	}
	return t, nil
}

// To24Hour applies standard 12-hour conversion: 12am is 0, 12pm is 12, and
// any other pm hour gains 12. Meridiem may be "am", "pm", "a" or "p".
func To24Hour(hour int, meridiem string) int {
	switch {
	case strings.HasPrefix(meridiem, "a"):
		if hour == 12 {
			return 0
		}
	case strings.HasPrefix(meridiem, "p"):
		if hour < 12 {
			return hour + 12
		}
	}
	return hour
}
