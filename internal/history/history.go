// Package history records every edit applied to a profile's calendar.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaronsmc/office-wishlist-agent/internal/hashutil"
	"github.com/aaronsmc/office-wishlist-agent/internal/profile"
	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/store"
)

const (
	TypeTell   = "tell"
	TypePreset = "preset"
	TypeReset  = "reset"
	TypeRange  = "range"
	TypeImport = "import"
	TypeUndo   = "undo"
)

// Entry is one applied edit.
type Entry struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Input     string            `json:"input"`
	Mode      string            `json:"mode,omitempty"`
	Message   string            `json:"message"`
	Changed   bool              `json:"changed"`
	Before    schedule.Calendar `json:"before"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewEntry fills in the ID and creation time.
func NewEntry(typ, input, message string, now time.Time) Entry {
	return Entry{
		ID:        hashutil.NewID(now, "history", typ, input),
		Type:      typ,
		Input:     input,
		Message:   message,
		CreatedAt: now.UTC(),
	}
}

// key sorts entries chronologically: zero-padded creation time, then ID.
func key(slug string, e Entry) string {
	return profile.HistoryPrefix(slug) + fmt.Sprintf("%019d-%s", e.CreatedAt.UnixNano(), e.ID)
}

// Write stores e in the profile's history.
func Write(ctx context.Context, s store.Store, slug string, e Entry) error {
	if err := store.SetJSON(ctx, s, key(slug, e), e); err != nil {
		return fmt.Errorf("write history entry %s: %w", e.ID, err)
	}
	return nil
}

// ReadAll returns the profile's entries, oldest first. Unreadable entries are
// skipped so one corrupt value does not hide the rest.
func ReadAll(ctx context.Context, s store.Store, slug string) ([]Entry, error) {
	keys, err := s.Keys(ctx, profile.HistoryPrefix(slug))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, k := range keys {
		data, err := s.Get(ctx, k)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil || e.ID == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func Recent(ctx context.Context, s store.Store, slug string, limit int) ([]Entry, error) {
	entries, err := ReadAll(ctx, s, slug)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, entries[i])
	}
	return out, nil
}

// Find returns the entry whose ID starts with prefix. An ambiguous prefix
// is an error.
func Find(ctx context.Context, s store.Store, slug, prefix string) (Entry, error) {
	if prefix == "" {
		return Entry{}, fmt.Errorf("empty entry ID")
	}
	entries, err := ReadAll(ctx, s, slug)
	if err != nil {
		return Entry{}, err
	}
	var match *Entry
	for i := range entries {
		if !strings.HasPrefix(entries[i].ID, prefix) {
			continue
		}
		if match != nil {
			return Entry{}, fmt.Errorf("entry prefix '%s' is ambiguous", prefix)
		}
		match = &entries[i]
	}
	if match == nil {
		return Entry{}, fmt.Errorf("entry '%s' not found", prefix)
	}
	return *match, nil
}

// Last returns the newest entry that changed the calendar. An undo counts,
// so undoing twice restores the undone edit.
func Last(ctx context.Context, s store.Store, slug string) (Entry, bool, error) {
	entries, err := ReadAll(ctx, s, slug)
	if err != nil {
		return Entry{}, false, err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Changed {
			return entries[i], true, nil
		}
	}
	return Entry{}, false, nil
}
