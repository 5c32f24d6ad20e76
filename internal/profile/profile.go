package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaronsmc/office-wishlist-agent/internal/hashutil"
	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/store"
	"github.com/aaronsmc/office-wishlist-agent/internal/stringutil"
)

// DefaultName is the profile used when none is given.
const DefaultName = "default"

var (
	ErrNotFound = errors.New("profile not found")
	ErrExists   = errors.New("profile already exists")
)

// registryKey holds the list of profiles.
const registryKey = "profiles"

// Profile is one person whose availability is tracked.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// registry is the stored form of all profiles.
type registry struct {
	Profiles []Profile `json:"profiles"`
}

// CalendarKey returns the store key of a profile's calendar.
func CalendarKey(slug string) string {
	return store.Join("calendars", slug)
}

// HistoryPrefix returns the store key prefix of a profile's history entries.
func HistoryPrefix(slug string) string {
	return store.Join("history", slug) + "/"
}

// Registry reads and writes profiles and their calendars. It does not lock;
// callers serialize writes.
type Registry struct {
	store store.Store
	now   func() time.Time
}

func NewRegistry(s store.Store) *Registry {
	return &Registry{store: s, now: time.Now}
}

func (r *Registry) read(ctx context.Context) (*registry, error) {
	var reg registry
	err := store.GetJSON(ctx, r.store, registryKey, &reg)
	if errors.Is(err, store.ErrNotFound) {
		return &registry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return &reg, nil
}

func (r *Registry) write(ctx context.Context, reg *registry) error {
	if err := store.SetJSON(ctx, r.store, registryKey, reg); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}

// find matches a profile by name (case-insensitive), slug or ID.
func find(reg *registry, ref string) *Profile {
	ref = strings.TrimSpace(ref)
	for i := range reg.Profiles {
		p := &reg.Profiles[i]
		if strings.EqualFold(p.Name, ref) || p.Slug == ref || p.ID == ref {
			return p
		}
	}
	return nil
}

// List returns all profiles in creation order.
func (r *Registry) List(ctx context.Context) ([]Profile, error) {
	reg, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Profiles, nil
}

// Find looks up a profile by name, slug or ID.
func (r *Registry) Find(ctx context.Context, ref string) (Profile, error) {
	reg, err := r.read(ctx)
	if err != nil {
		return Profile{}, err
	}
	p := find(reg, ref)
	if p == nil {
		return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return *p, nil
}

// Add registers a new profile.
func (r *Registry) Add(ctx context.Context, name string) (Profile, error) {
	p, created, err := r.Ensure(ctx, name)
	if err != nil {
		return Profile{}, err
	}
	if !created {
		return Profile{}, fmt.Errorf("%w: %s", ErrExists, name)
	}
	return p, nil
}

// Ensure returns the named profile, registering it first if needed.
// created reports whether it was new.
func (r *Registry) Ensure(ctx context.Context, name string) (p Profile, created bool, err error) {
	name = strings.TrimSpace(name)
	slug := stringutil.Slugify(name)
	if slug == "" {
		return Profile{}, false, fmt.Errorf("invalid profile name %q", name)
	}

	reg, err := r.read(ctx)
	if err != nil {
		return Profile{}, false, err
	}
	if existing := find(reg, name); existing != nil {
		return *existing, false, nil
	}
	for _, other := range reg.Profiles {
		if other.Slug == slug {
			return Profile{}, false, fmt.Errorf("%w: %q clashes with %q", ErrExists, name, other.Name)
		}
	}

	p = Profile{
		ID:        hashutil.NewID(r.now(), "profile", name),
		Name:      name,
		Slug:      slug,
		CreatedAt: r.now().UTC(),
	}
	reg.Profiles = append(reg.Profiles, p)
	if err := r.write(ctx, reg); err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}

// Remove deletes a profile with its calendar and history.
func (r *Registry) Remove(ctx context.Context, ref string) (Profile, error) {
	reg, err := r.read(ctx)
	if err != nil {
		return Profile{}, err
	}
	p := find(reg, ref)
	if p == nil {
		return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	removed := *p

	kept := make([]Profile, 0, len(reg.Profiles)-1)
	for _, other := range reg.Profiles {
		if other.ID != removed.ID {
			kept = append(kept, other)
		}
	}
	reg.Profiles = kept
	if err := r.write(ctx, reg); err != nil {
		return Profile{}, err
	}

	keys, err := r.store.Keys(ctx, HistoryPrefix(removed.Slug))
	if err != nil {
		return removed, err
	}
	for _, key := range append(keys, CalendarKey(removed.Slug)) {
		if err := r.store.Delete(ctx, key); err != nil && !errors.Is(err, store.ErrNotFound) {
			return removed, fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return removed, nil
}

// Calendar loads the profile's calendar. A profile with no stored calendar
// has an empty one.
func (r *Registry) Calendar(ctx context.Context, p Profile) (schedule.Calendar, error) {
	var cal schedule.Calendar
	err := store.GetJSON(ctx, r.store, CalendarKey(p.Slug), &cal)
	if errors.Is(err, store.ErrNotFound) {
		return schedule.Calendar{}, nil
	}
	if err != nil {
		return schedule.Calendar{}, fmt.Errorf("load calendar for %s: %w", p.Name, err)
	}
	return cal, nil
}

// SaveCalendar stores the profile's calendar.
func (r *Registry) SaveCalendar(ctx context.Context, p Profile, cal schedule.Calendar) error {
	if err := store.SetJSON(ctx, r.store, CalendarKey(p.Slug), cal); err != nil {
		return fmt.Errorf("save calendar for %s: %w", p.Name, err)
	}
	return nil
}
