package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRanges(t *testing.T) {
	tests := []struct {
		name  string
		slots []Slot
		want  []TimeRange
	}{
		{"morning", []Slot{SlotMorning}, []TimeRange{rng(6, 12)}},
		{"morning and afternoon coalesce", []Slot{SlotAfternoon, SlotMorning}, []TimeRange{rng(6, 18)}},
		{"morning and evening stay apart", []Slot{SlotEvening, SlotMorning}, []TimeRange{rng(6, 12), {Start: hm(18, 0), End: EndOfDay}}},
		{"all", AllSlots(), []TimeRange{{Start: hm(6, 0), End: EndOfDay}}},
		{"duplicates", []Slot{SlotMorning, SlotMorning}, []TimeRange{rng(6, 12)}},
		{"none", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotRanges(tt.slots))
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Weekdays ")
	require.NoError(t, err)
	assert.Equal(t, PresetWeekdays, p)

	_, err = ParsePreset("fortnightly")
	assert.Error(t, err)

	for _, p := range Presets() {
		assert.NotEmpty(t, p.Description())
	}
}

func TestPresetCalendar(t *testing.T) {
	tests := []struct {
		preset Preset
		days   []Day
		ranges []TimeRange
	}{
		{PresetWeekdays, Weekdays(), []TimeRange{rng(9, 17)}},
		{PresetWeekends, WeekendDays(), []TimeRange{rng(8, 20)}},
		{PresetMornings, AllDays(), []TimeRange{rng(6, 12)}},
		{PresetAfternoons, AllDays(), []TimeRange{rng(12, 18)}},
		{PresetEvenings, AllDays(), []TimeRange{{Start: hm(18, 0), End: EndOfDay}}},
		{PresetAllDay, AllDays(), []TimeRange{{Start: hm(0, 0), End: EndOfDay}}},
		{PresetClear, nil, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			c := PresetCalendar(tt.preset)
			assert.Equal(t, tt.days, c.Days())
			for _, d := range tt.days {
				assert.Equal(t, tt.ranges, c.Ranges(d))
			}
		})
	}
}
