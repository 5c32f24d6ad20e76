package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedules(t *testing.T) {
	schedules := DefaultSchedules()
	require.Len(t, schedules, 1)
	assert.Equal(t, []TimeRange{rng(9, 17)}, schedules[0].Ranges)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", schedules[0].RRule)
}

func TestToEntriesGroupsIdenticalDays(t *testing.T) {
	var c Calendar
	for _, d := range []Day{Monday, Tuesday, Wednesday} {
		c, _ = c.Set(d, rng(9, 18))
	}
	c, _ = c.Set(Thursday, rng(10, 17))
	c, _ = c.Set(Friday, rng(10, 17))
	c, _ = c.Set(Sunday, rng(9, 18))

	entries, err := ToEntries(c)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,TU,WE,SU", entries[0].RRule)
	assert.Equal(t, []TimeRange{rng(9, 18)}, entries[0].Ranges)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=TH,FR", entries[1].RRule)
	assert.Equal(t, []TimeRange{rng(10, 17)}, entries[1].Ranges)
}

func TestToEntriesEmpty(t *testing.T) {
	entries, err := ToEntries(Calendar{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesRoundTrip(t *testing.T) {
	var c Calendar
	c, _ = c.Set(Monday, rng(9, 12), rng(13, 17))
	c, _ = c.Set(Saturday, TimeRange{Start: hm(18, 0), End: EndOfDay})

	entries, err := ToEntries(c)
	require.NoError(t, err)

	back, err := FromEntries(entries)
	require.NoError(t, err)
	assert.True(t, back.Equal(c))
}

func TestFromEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []ScheduleEntry
		check   func(t *testing.T, c Calendar)
		wantErr bool
	}{
		{
			name: "additive entries on one day",
			entries: []ScheduleEntry{
				{Ranges: []TimeRange{rng(9, 12)}, RRule: "FREQ=WEEKLY;BYDAY=MO"},
				{Ranges: []TimeRange{rng(13, 17)}, RRule: "FREQ=WEEKLY;BYDAY=MO"},
			},
			check: func(t *testing.T, c Calendar) {
				assert.Equal(t, []TimeRange{rng(9, 12), rng(13, 17)}, c.Ranges(Monday))
				assert.Equal(t, []Day{Monday}, c.Days())
			},
		},
		{
			name: "override replaces earlier ranges",
			entries: []ScheduleEntry{
				{Ranges: []TimeRange{rng(9, 17)}, RRule: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
				{Ranges: []TimeRange{rng(8, 16)}, RRule: "FREQ=WEEKLY;BYDAY=MO", Override: true},
			},
			check: func(t *testing.T, c Calendar) {
				assert.Equal(t, []TimeRange{rng(8, 16)}, c.Ranges(Monday))
				assert.Equal(t, []TimeRange{rng(9, 17)}, c.Ranges(Tuesday))
			},
		},
		{
			name:    "daily covers every day",
			entries: []ScheduleEntry{{Ranges: []TimeRange{rng(6, 12)}, RRule: "FREQ=DAILY"}},
			check: func(t *testing.T, c Calendar) {
				assert.Equal(t, AllDays(), c.Days())
			},
		},
		{
			name:    "no ranges",
			entries: []ScheduleEntry{{RRule: "FREQ=DAILY"}},
			wantErr: true,
		},
		{
			name:    "reversed range",
			entries: []ScheduleEntry{{Ranges: []TimeRange{rng(22, 6)}, RRule: "FREQ=DAILY"}},
			wantErr: true,
		},
		{
			name: "overlapping additive entries",
			entries: []ScheduleEntry{
				{Ranges: []TimeRange{rng(9, 12)}, RRule: "FREQ=WEEKLY;BYDAY=MO"},
				{Ranges: []TimeRange{rng(11, 13)}, RRule: "FREQ=WEEKLY;BYDAY=MO"},
			},
			wantErr: true,
		},
		{
			name:    "monthly rule",
			entries: []ScheduleEntry{{Ranges: []TimeRange{rng(9, 12)}, RRule: "FREQ=MONTHLY"}},
			wantErr: true,
		},
		{
			name:    "biweekly rule",
			entries: []ScheduleEntry{{Ranges: []TimeRange{rng(9, 12)}, RRule: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromEntries(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		input   string
		want    []Day
		wantErr bool
	}{
		{input: "every day", want: AllDays()},
		{input: "daily", want: AllDays()},
		{input: "every weekday", want: Weekdays()},
		{input: "weekends", want: WeekendDays()},
		{input: "every tuesday", want: []Day{Tuesday}},
		{input: "every thurs", want: []Day{Thursday}},
		{input: "FREQ=WEEKLY;BYDAY=SU,MO", want: []Day{Monday, Sunday}},
		{input: "RRULE:FREQ=WEEKLY;BYDAY=FR", want: []Day{Friday}},
		{input: "every 2 weeks", wantErr: true},
		{input: "sometimes", wantErr: true},
		{input: "FREQ=NOPE", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := parseRecurrence(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			days, err := recurrenceDays(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}
