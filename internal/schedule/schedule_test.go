package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeRange
		rrule   string
		wantErr bool
	}{
		{name: "weekdays", input: "from 9am to 5pm every weekday", want: rng(9, 17), rrule: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
		{name: "detached meridiem", input: "from 9 am to 5 pm weekends", want: rng(9, 17), rrule: "FREQ=WEEKLY;BYDAY=SA,SU"},
		{name: "24h daily", input: "From 08:00 to 12:30 daily", want: TimeRange{Start: hm(8, 0), End: hm(12, 30)}, rrule: "FREQ=DAILY"},
		{name: "single day", input: "from 6pm to 12am every friday", want: TimeRange{Start: hm(18, 0), End: EndOfDay}, rrule: "FREQ=WEEKLY;BYDAY=FR"},
		{name: "raw rrule", input: "from 9am to 1pm FREQ=WEEKLY;BYDAY=MO,WE", want: rng(9, 13), rrule: "FREQ=WEEKLY;BYDAY=MO,WE"},
		{name: "no from", input: "9am to 5pm every weekday", wantErr: true},
		{name: "no to", input: "from 9am every weekday", wantErr: true},
		{name: "no recurrence", input: "from 9am to 5pm", wantErr: true},
		{name: "reversed", input: "from 5pm to 9am every day", wantErr: true},
		{name: "bad recurrence", input: "from 9am to 5pm on a whim", wantErr: true},
		{name: "monthly", input: "from 9am to 5pm FREQ=MONTHLY", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []TimeRange{tt.want}, got.Ranges)
			assert.Equal(t, tt.rrule, got.RRule)
		})
	}
}
