package availability

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		changes []Change
		want    string
	}{
		{
			name: "groups identical ranges in first-seen order",
			mode: ModeAdd,
			changes: []Change{
				{Day: mon, Ranges: []schedule.TimeRange{span(9, 0, 17, 0)}},
				{Day: tue, Ranges: []schedule.TimeRange{span(13, 0, 18, 0)}},
				{Day: wed, Ranges: []schedule.TimeRange{span(9, 0, 17, 0)}},
			},
			want: "Updated your availability to add Mon, Wed (9 am–5 pm); Tue (1 pm–6 pm)",
		},
		{
			name:    "minutes only when non-zero",
			mode:    ModeAdd,
			changes: []Change{{Day: sat, Ranges: []schedule.TimeRange{span(8, 30, 12, 0)}}},
			want:    "Updated your availability to add Sat (8:30 am–12 pm)",
		},
		{
			name:    "several ranges on one day",
			mode:    ModeOnly,
			changes: []Change{{Day: sun, Ranges: []schedule.TimeRange{span(9, 0, 12, 0), span(18, 0, 24, 0)}}},
			want:    "Updated your availability to only include Sun (9 am–12 pm, 6 pm–12 am)",
		},
		{
			name:    "whole days removed",
			mode:    ModeRemove,
			changes: []Change{{Day: mon}, {Day: wed}},
			want:    "Updated your availability to remove Mon, Wed",
		},
		{
			name: "no changes",
			mode: ModeAdd,
			want: NoChangeMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.mode, tt.changes))
		})
	}
}

func rangeSet(ranges []DayRange) map[string]bool {
	set := make(map[string]bool, len(ranges))
	for _, r := range ranges {
		set[r.Day.String()+" "+r.Range.String()] = true
	}
	return set
}

func TestConfirmationRoundTrip(t *testing.T) {
	inputs := []string{
		"Monday–Wednesday 9am-6pm, Thursday-Friday 10am-5pm",
		"weekdays 9-5",
		"Saturday 6:30pm-midnight",
		"Mon, Wed 7:15am-11:45am, Sunday 12pm-4pm",
		"remove Tuesday 9am-1pm",
		"only Thursday and Sunday 12am-6am",
		"every day 00:00-24:00",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			out := Parse(input)
			assert.NotEmpty(t, out.TimeRanges)

			again := Parse(out.Message)
			assert.Equal(t, rangeSet(out.TimeRanges), rangeSet(again.TimeRanges), out.Message)
		})
	}
}

func TestConfirmationRoundTripAllRanges(t *testing.T) {
	for start := 0; start < schedule.MinutesPerDay; start += 30 {
		for end := start + 30; end <= schedule.MinutesPerDay; end += 90 {
			r := schedule.NewTimeRange(start, end)
			out := Outcome{
				Matched:    true,
				Mode:       ModeAdd,
				Days:       []schedule.Day{mon, tue, sat},
				TimeRanges: []DayRange{dr(mon, r), dr(tue, r), dr(sat, schedule.NewTimeRange(start, schedule.MinutesPerDay))},
			}
			message := composeOutcome(out)

			again := Parse(message)
			assert.Equal(t, rangeSet(out.TimeRanges), rangeSet(again.TimeRanges), fmt.Sprintf("%s: %s", r, message))
		}
	}
}
