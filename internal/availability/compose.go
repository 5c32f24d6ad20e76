package availability

import (
	"fmt"
	"strings"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

// ClarificationMessage is shown when an utterance did not match.
const ClarificationMessage = "I'm sorry, I couldn't understand your availability preferences. " +
	"Could you please specify which days and times you're available? " +
	"For example: 'Monday to Friday 9am-5pm' or 'I can't work weekends'"

// NoChangeMessage is shown when a matched utterance left the calendar as it was.
const NoChangeMessage = "Your availability is unchanged."

// Change is one day's part of a confirmation: the ranges the day now holds,
// or for removals the ranges taken away. No ranges means the whole day.
type Change struct {
	Day    schedule.Day         `json:"day"`
	Ranges []schedule.TimeRange `json:"ranges,omitempty"`
}

// Compose renders changes as one sentence. Days with the same ranges share
// a clause: "Updated your availability to add Mon, Tue (9 am–5 pm); Wed (1 pm–6 pm)".
func Compose(mode Mode, changes []Change) string {
	if len(changes) == 0 {
		return NoChangeMessage
	}

	var (
		order  []string
		days   = make(map[string][]schedule.Day)
		ranges = make(map[string][]schedule.TimeRange)
	)
	for _, c := range changes {
		key := schedule.RangesKey(c.Ranges)
		if _, ok := days[key]; !ok {
			order = append(order, key)
			ranges[key] = c.Ranges
		}
		days[key] = append(days[key], c.Day)
	}

	clauses := make([]string, 0, len(order))
	for _, key := range order {
		clause := schedule.FormatDays(days[key])
		if rs := ranges[key]; len(rs) > 0 {
			clause += " (" + schedule.FormatRanges(rs) + ")"
		}
		clauses = append(clauses, clause)
	}
	return "Updated your availability to " + mode.verb() + " " + strings.Join(clauses, "; ")
}

// composeOutcome previews the message for an outcome before it is applied.
func composeOutcome(o Outcome) string {
	if o.Unscoped != nil {
		return fmt.Sprintf("Updated your availability to %s %s on the days you already work",
			o.Mode.verb(), schedule.FormatRange(*o.Unscoped))
	}
	return Compose(o.Mode, o.changes())
}

// changes lists what the outcome asks for, per day in week order: the day's
// stated ranges, else the slot ranges, else (for removals) the whole day.
func (o Outcome) changes() []Change {
	byDay := make(map[schedule.Day][]schedule.TimeRange)
	days := append([]schedule.Day(nil), o.Days...)
	for _, dr := range o.TimeRanges {
		byDay[dr.Day] = append(byDay[dr.Day], dr.Range)
		days = append(days, dr.Day)
	}

	var slotRanges []schedule.TimeRange
	if o.Mode != ModeRemove {
		slotRanges = schedule.SlotRanges(o.Slots)
	}

	var changes []Change
	for _, d := range schedule.SortDays(days) {
		switch {
		case len(byDay[d]) > 0:
			changes = append(changes, Change{Day: d, Ranges: byDay[d]})
		case o.Mode == ModeRemove:
			changes = append(changes, Change{Day: d})
		case len(slotRanges) > 0:
			changes = append(changes, Change{Day: d, Ranges: slotRanges})
		}
	}
	return changes
}
