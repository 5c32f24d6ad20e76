package availability

import "github.com/aaronsmc/office-wishlist-agent/internal/schedule"

// Rejection is a range Apply refused to store.
type Rejection struct {
	Day   schedule.Day
	Range schedule.TimeRange
	Err   error
}

// Report describes what Apply did.
type Report struct {
	Mode     Mode
	Changes  []Change       // days the edit touched, in week order
	Cleared  []schedule.Day // days emptied because the mode was only
	Rejected []Rejection
	Changed  bool // the new calendar differs from the old one
	Message  string
}

// Days returns the days named in Changes.
func (r Report) Days() []schedule.Day {
	days := make([]schedule.Day, len(r.Changes))
	for i, c := range r.Changes {
		days[i] = c.Day
	}
	return days
}

// Apply derives a new calendar from cal according to the outcome's mode.
// cal is never modified.
//
//	add     each named day's ranges are replaced by the new ones
//	remove  stated ranges are removed where they match exactly; a day with
//	        no stated range is cleared
//	only    every day is cleared, then the named days are set
//
// A malformed range (start >= end) is rejected and its day left alone.
func Apply(o Outcome, cal schedule.Calendar) (schedule.Calendar, Report) {
	report := Report{Mode: o.Mode}
	if !o.Matched {
		report.Message = ClarificationMessage
		return cal, report
	}

	targets := o.changes()
	if o.Unscoped != nil {
		for _, d := range cal.Days() {
			targets = append(targets, Change{Day: d, Ranges: []schedule.TimeRange{*o.Unscoped}})
		}
	}

	next := cal
	if o.Mode == ModeOnly {
		next = schedule.Calendar{}
	}

	var set [schedule.DaysPerWeek]bool
	for _, t := range targets {
		if rejected := validate(t); len(rejected) > 0 {
			report.Rejected = append(report.Rejected, rejected...)
			continue
		}

		if o.Mode == ModeRemove {
			var change *Change
			next, change = remove(next, t)
			if change != nil {
				report.Changes = append(report.Changes, *change)
			}
			continue
		}

		updated, err := next.Set(t.Day, t.Ranges...)
		if err != nil {
			for _, r := range t.Ranges {
				report.Rejected = append(report.Rejected, Rejection{Day: t.Day, Range: r, Err: err})
			}
			continue
		}
		next = updated
		set[t.Day] = true
		report.Changes = append(report.Changes, Change{Day: t.Day, Ranges: next.Ranges(t.Day)})
	}

	if o.Mode == ModeOnly {
		for _, d := range cal.Days() {
			if !set[d] {
				report.Cleared = append(report.Cleared, d)
			}
		}
	}

	report.Changed = !next.Equal(cal)
	report.Message = Compose(o.Mode, report.Changes)
	return next, report
}

func validate(t Change) []Rejection {
	var rejected []Rejection
	for _, r := range t.Ranges {
		if err := r.Validate(); err != nil {
			rejected = append(rejected, Rejection{Day: t.Day, Range: r, Err: err})
		}
	}
	return rejected
}

// remove applies one removal target and returns what it took away, or nil
// when the day did not hold it.
func remove(cal schedule.Calendar, t Change) (schedule.Calendar, *Change) {
	if len(t.Ranges) == 0 {
		if !cal.Has(t.Day) {
			return cal, nil
		}
		return cal.Clear(t.Day), &Change{Day: t.Day}
	}

	var removed []schedule.TimeRange
	for _, r := range t.Ranges {
		var ok bool
		if cal, ok = cal.RemoveRange(t.Day, r); ok {
			removed = append(removed, r)
		}
	}
	if len(removed) == 0 {
		return cal, nil
	}
	return cal, &Change{Day: t.Day, Ranges: removed}
}
