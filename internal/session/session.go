// Package session applies availability edits to stored profiles. It is the
// only writer of calendars and keeps edits to one profile strictly ordered.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aaronsmc/office-wishlist-agent/internal/availability"
	"github.com/aaronsmc/office-wishlist-agent/internal/history"
	"github.com/aaronsmc/office-wishlist-agent/internal/profile"
	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/store"
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Parser availability.Parser
	Logger *slog.Logger
	Now    func() time.Time
}

// Service parses, applies, persists and records edits.
type Service struct {
	store    store.Store
	registry *profile.Registry
	parser   availability.Parser
	logger   *slog.Logger
	now      func() time.Time

	mu    sync.Mutex // guards locks and registry writes
	locks map[string]*sync.Mutex
}

func New(s store.Store, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:    s,
		registry: profile.NewRegistry(s),
		parser:   opts.Parser,
		logger:   logger,
		now:      now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Result is the outcome of one edit.
type Result struct {
	Profile  profile.Profile
	Outcome  availability.Outcome // set by Tell
	Report   availability.Report  // set by Tell
	Calendar schedule.Calendar    // the calendar after the edit
	Changed  bool
	Message  string
	EntryID  string // history entry, empty when nothing was recorded
}

func (s *Service) lock(slug string) func() {
	s.mu.Lock()
	l, ok := s.locks[slug]
	if !ok {
		l = &sync.Mutex{}
		s.locks[slug] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Profile resolves ref to a profile. An empty ref means the default profile,
// which is created on first use.
func (s *Service) Profile(ctx context.Context, ref string) (profile.Profile, error) {
	if ref == "" || ref == profile.DefaultName {
		s.mu.Lock()
		defer s.mu.Unlock()
		p, created, err := s.registry.Ensure(ctx, profile.DefaultName)
		if err != nil {
			return profile.Profile{}, err
		}
		if created {
			s.logger.Info("profile created", "profile", p.Slug, "id", p.ID)
		}
		return p, nil
	}
	return s.registry.Find(ctx, ref)
}

// Calendar returns the profile's current calendar.
func (s *Service) Calendar(ctx context.Context, ref string) (profile.Profile, schedule.Calendar, error) {
	p, err := s.Profile(ctx, ref)
	if err != nil {
		return profile.Profile{}, schedule.Calendar{}, err
	}
	cal, err := s.registry.Calendar(ctx, p)
	return p, cal, err
}

// Preview parses text against the profile's calendar without storing
// anything. Its Message is the confirmation the edit would produce.
func (s *Service) Preview(ctx context.Context, ref, text string) (Result, error) {
	p, cal, err := s.Calendar(ctx, ref)
	if err != nil {
		return Result{}, err
	}
	out := s.parser.Parse(text)
	next, report := availability.Apply(out, cal)
	return Result{
		Profile:  p,
		Outcome:  out,
		Report:   report,
		Calendar: next,
		Changed:  report.Changed,
		Message:  report.Message,
	}, nil
}

// change is what an edit function hands back to edit.
type change struct {
	next    schedule.Calendar
	message string
	mode    string
	input   string // replaces the input passed to edit when set
	skip    bool   // nothing to record
}

// edit runs fn on the profile's calendar under the profile lock, saves the
// result when it differs and records a history entry.
func (s *Service) edit(ctx context.Context, ref, typ, input string, fn func(cal schedule.Calendar) (change, error)) (Result, error) {
	p, err := s.Profile(ctx, ref)
	if err != nil {
		return Result{}, err
	}
	unlock := s.lock(p.Slug)
	defer unlock()

	cal, err := s.registry.Calendar(ctx, p)
	if err != nil {
		return Result{}, err
	}
	c, err := fn(cal)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Profile:  p,
		Calendar: c.next,
		Changed:  !c.next.Equal(cal),
		Message:  c.message,
	}
	if c.skip {
		return res, nil
	}

	if res.Changed {
		if err := s.registry.SaveCalendar(ctx, p, c.next); err != nil {
			return Result{}, err
		}
	}

	if c.input != "" {
		input = c.input
	}
	e := history.NewEntry(typ, input, c.message, s.now())
	e.Mode = c.mode
	e.Changed = res.Changed
	e.Before = cal
	if err := history.Write(ctx, s.store, p.Slug, e); err != nil {
		return res, err
	}
	res.EntryID = e.ID

	s.logger.Info("availability updated",
		"profile", p.Slug, "type", typ, "changed", res.Changed, "entry", e.ID)
	return res, nil
}

// Tell parses one utterance and applies it. An unmatched utterance leaves
// the calendar alone and returns the clarification message.
func (s *Service) Tell(ctx context.Context, ref, text string) (Result, error) {
	out := s.parser.Parse(text)
	var report availability.Report

	res, err := s.edit(ctx, ref, history.TypeTell, text, func(cal schedule.Calendar) (change, error) {
		var next schedule.Calendar
		next, report = availability.Apply(out, cal)
		for _, r := range report.Rejected {
			s.logger.Debug("range rejected", "day", r.Day, "range", r.Range, "err", r.Err)
		}
		return change{
			next:    next,
			message: report.Message,
			mode:    string(out.Mode),
			skip:    !out.Matched,
		}, nil
	})
	if err != nil {
		return Result{}, err
	}
	if !out.Matched {
		s.logger.Debug("utterance not understood", "profile", res.Profile.Slug)
	}
	res.Outcome = out
	res.Report = report
	return res, nil
}

// ApplyPreset replaces the calendar with a preset.
func (s *Service) ApplyPreset(ctx context.Context, ref string, preset schedule.Preset) (Result, error) {
	return s.edit(ctx, ref, history.TypePreset, string(preset), func(schedule.Calendar) (change, error) {
		return change{
			next:    schedule.PresetCalendar(preset),
			message: fmt.Sprintf("Applied the %s preset: %s", preset, preset.Description()),
		}, nil
	})
}

// Reset clears the calendar.
func (s *Service) Reset(ctx context.Context, ref string) (Result, error) {
	return s.edit(ctx, ref, history.TypeReset, "", func(schedule.Calendar) (change, error) {
		return change{next: schedule.Calendar{}, message: "Cleared your availability"}, nil
	})
}

// RangeOp is a manual range edit.
type RangeOp string

const (
	RangeAdd    RangeOp = "add"
	RangeRemove RangeOp = "remove"
)

// RangeEdit adds Range to Day, or removes the Index-th range (0-based) of Day.
type RangeEdit struct {
	Op    RangeOp
	Day   schedule.Day
	Range schedule.TimeRange
	Index int
}

// EditRange applies a manual edit. Invalid or overlapping ranges and bad
// indexes are errors and change nothing.
func (s *Service) EditRange(ctx context.Context, ref string, edit RangeEdit) (Result, error) {
	input := fmt.Sprintf("%s %s %s", edit.Op, edit.Day, edit.Range)
	if edit.Op == RangeRemove {
		input = fmt.Sprintf("%s %s #%d", edit.Op, edit.Day, edit.Index+1)
	}
	return s.edit(ctx, ref, history.TypeRange, input, func(cal schedule.Calendar) (change, error) {
		switch edit.Op {
		case RangeAdd:
			next, err := cal.AddRange(edit.Day, edit.Range)
			if err != nil {
				return change{}, err
			}
			return change{
				next:    next,
				message: fmt.Sprintf("Added %s %s", edit.Day.Short(), schedule.FormatRange(edit.Range)),
			}, nil
		case RangeRemove:
			ranges := cal.Ranges(edit.Day)
			next, err := cal.RemoveRangeAt(edit.Day, edit.Index)
			if err != nil {
				return change{}, err
			}
			return change{
				next:    next,
				message: fmt.Sprintf("Removed %s %s", edit.Day.Short(), schedule.FormatRange(ranges[edit.Index])),
			}, nil
		}
		return change{}, fmt.Errorf("unknown range operation %q", edit.Op)
	})
}

// Import replaces the calendar with cal.
func (s *Service) Import(ctx context.Context, ref, source string, cal schedule.Calendar) (Result, error) {
	return s.edit(ctx, ref, history.TypeImport, source, func(schedule.Calendar) (change, error) {
		days := len(cal.Days())
		return change{next: cal, message: fmt.Sprintf("Imported availability for %d day(s)", days)}, nil
	})
}

// Undo restores the calendar as it was before the newest change. The entry
// is read under the profile lock so a concurrent edit cannot slip in between.
func (s *Service) Undo(ctx context.Context, ref string) (Result, error) {
	p, err := s.Profile(ctx, ref)
	if err != nil {
		return Result{}, err
	}
	return s.edit(ctx, p.Slug, history.TypeUndo, "", func(schedule.Calendar) (change, error) {
		last, ok, err := history.Last(ctx, s.store, p.Slug)
		if err != nil {
			return change{}, err
		}
		if !ok {
			return change{}, fmt.Errorf("nothing to undo")
		}
		return change{
			next:    last.Before,
			message: fmt.Sprintf("Reverted '%s'", last.Message),
			input:   last.ID,
		}, nil
	})
}

// History returns the profile's newest entries first.
func (s *Service) History(ctx context.Context, ref string, limit int) (profile.Profile, []history.Entry, error) {
	p, err := s.Profile(ctx, ref)
	if err != nil {
		return profile.Profile{}, nil, err
	}
	entries, err := history.Recent(ctx, s.store, p.Slug, limit)
	return p, entries, err
}

// HistoryEntry returns the entry whose ID starts with id.
func (s *Service) HistoryEntry(ctx context.Context, ref, id string) (history.Entry, error) {
	p, err := s.Profile(ctx, ref)
	if err != nil {
		return history.Entry{}, err
	}
	return history.Find(ctx, s.store, p.Slug, id)
}

// Profiles lists every profile.
func (s *Service) Profiles(ctx context.Context) ([]profile.Profile, error) {
	return s.registry.List(ctx)
}

// AddProfile registers a new profile.
func (s *Service) AddProfile(ctx context.Context, name string) (profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.registry.Add(ctx, name)
	if err == nil {
		s.logger.Info("profile created", "profile", p.Slug, "id", p.ID)
	}
	return p, err
}

// RemoveProfile deletes a profile with its calendar and history.
func (s *Service) RemoveProfile(ctx context.Context, ref string) (profile.Profile, error) {
	p, err := s.registry.Find(ctx, ref)
	if err != nil {
		return profile.Profile{}, err
	}
	unlock := s.lock(p.Slug)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err = s.registry.Remove(ctx, p.ID)
	if err == nil {
		s.logger.Info("profile removed", "profile", p.Slug)
	}
	return p, err
}
