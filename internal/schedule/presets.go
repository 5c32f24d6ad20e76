package schedule

import (
	"fmt"
	"strings"
)

// Slot is a coarse part of the day named in prose ("mornings").
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// AllSlots returns the slots in day order.
func AllSlots() []Slot {
	return []Slot{SlotMorning, SlotAfternoon, SlotEvening}
}

var slotRanges = map[Slot]TimeRange{
	SlotMorning:   {Start: TimeOfDay{Hour: 6}, End: TimeOfDay{Hour: 12}},
	SlotAfternoon: {Start: TimeOfDay{Hour: 12}, End: TimeOfDay{Hour: 18}},
	SlotEvening:   {Start: TimeOfDay{Hour: 18}, End: EndOfDay},
}

// Range returns the default range a slot stands for.
func (s Slot) Range() (TimeRange, bool) {
	r, ok := slotRanges[s]
	return r, ok
}

// SlotRanges converts slots to their default ranges in day order, joining
// ranges that touch: morning and afternoon become 06:00-18:00.
func SlotRanges(slots []Slot) []TimeRange {
	var want [3]bool
	for _, s := range slots {
		for i, known := range AllSlots() {
			if s == known {
				want[i] = true
			}
		}
	}

	var out []TimeRange
	for i, s := range AllSlots() {
		if !want[i] {
			continue
		}
		r := slotRanges[s]
		if n := len(out); n > 0 && out[n-1].End == r.Start {
			out[n-1].End = r.End
			continue
		}
		out = append(out, r)
	}
	return out
}

// Preset is a named whole-week pattern.
type Preset string

const (
	PresetWeekdays   Preset = "weekdays"
	PresetWeekends   Preset = "weekends"
	PresetMornings   Preset = "mornings"
	PresetAfternoons Preset = "afternoons"
	PresetEvenings   Preset = "evenings"
	PresetAllDay     Preset = "allday"
	PresetClear      Preset = "clear"
)

// Presets returns every preset in display order.
func Presets() []Preset {
	return []Preset{PresetWeekdays, PresetWeekends, PresetMornings, PresetAfternoons, PresetEvenings, PresetAllDay, PresetClear}
}

// ParsePreset resolves a preset name, case-insensitively.
func ParsePreset(s string) (Preset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q", s)
}

// Description returns a short summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetWeekdays:
		return "Monday to Friday, 9 am–5 pm"
	case PresetWeekends:
		return "Saturday and Sunday, 8 am–8 pm"
	case PresetMornings:
		return "every day, mornings"
	case PresetAfternoons:
		return "every day, afternoons"
	case PresetEvenings:
		return "every day, evenings"
	case PresetAllDay:
		return "every day, all day"
	case PresetClear:
		return "no availability"
	}
	return string(p)
}

// PresetCalendar builds the whole-week calendar a preset stands for.
func PresetCalendar(p Preset) Calendar {
	var (
		days []Day
		r    TimeRange
	)
	switch p {
	case PresetWeekdays:
		days, r = Weekdays(), NewTimeRange(9*60, 17*60)
	case PresetWeekends:
		days, r = WeekendDays(), NewTimeRange(8*60, 20*60)
	case PresetMornings:
		days, r = AllDays(), slotRanges[SlotMorning]
	case PresetAfternoons:
		days, r = AllDays(), slotRanges[SlotAfternoon]
	case PresetEvenings:
		days, r = AllDays(), slotRanges[SlotEvening]
	case PresetAllDay:
		days, r = AllDays(), NewTimeRange(0, MinutesPerDay)
	default:
		return Calendar{}
	}

	var c Calendar
	for _, d := range days {
		c, _ = c.Set(d, r)
	}
	return c
}
