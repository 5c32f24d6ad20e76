package availability

import "github.com/aaronsmc/office-wishlist-agent/internal/schedule"

// resolveRange puts two clock readings on the 24-hour clock.
//
// A stated meridiem converts its own side only. When neither side states one,
// the first matching rule applies:
//
//	start < end, both < 12    both morning        9-11   -> 09:00-11:00
//	start > end, both < 12    end is afternoon    9-5    -> 09:00-17:00
//	start < 12, end >= 12     as written          9-13   -> 09:00-13:00
//	both >= 12                as written          13-17  -> 13:00-17:00
//
// Anything else is left as written and may come out malformed ("12-5"); Apply
// rejects those. An end of 00:00 is the end of the day.
func resolveRange(start, end Token) schedule.TimeRange {
	sh, eh := start.Hour, end.Hour

	switch {
	case start.Meridiem != "" || end.Meridiem != "":
		if start.Meridiem != "" {
			sh = schedule.To24Hour(sh, start.Meridiem)
		}
		if end.Meridiem != "" {
			eh = schedule.To24Hour(eh, end.Meridiem)
		}
	case sh < 12 && eh < 12 && sh < eh:
	case sh < 12 && eh < 12 && sh > eh:
		eh += 12
	case sh < 12 && eh >= 12:
	case sh >= 12 && eh >= 12:
	}

	r := schedule.TimeRange{
		Start: schedule.TimeOfDay{Hour: sh, Minute: start.Minute},
		End:   schedule.TimeOfDay{Hour: eh, Minute: end.Minute},
	}
	if r.End.Minutes() == 0 {
		r.End = schedule.EndOfDay
	}
	return r
}

// envelope merges ranges into one spanning the earliest start to the latest
// end. Gaps between the ranges are lost.
func envelope(ranges []schedule.TimeRange) schedule.TimeRange {
	out := ranges[0]
	for _, r := range ranges[1:] {
		if r.Start.Before(out.Start) {
			out.Start = r.Start
		}
		if out.End.Before(r.End) {
			out.End = r.End
		}
	}
	return out
}
