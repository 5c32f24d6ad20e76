// Package store persists values by key. Keys are slash-separated paths such
// as "calendars/default"; values are opaque bytes, usually JSON.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotFound is returned by Get and Delete for a missing key.
var ErrNotFound = errors.New("key not found")

// Store is a durable key/value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists the keys under prefix in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

var segmentPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateKey rejects keys that could escape the store's namespace.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	for _, seg := range strings.Split(key, "/") {
		if !segmentPattern.MatchString(seg) {
			return fmt.Errorf("invalid key %q", key)
		}
	}
	return nil
}

// Join builds a key from segments.
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}

// GetJSON reads key and decodes it into v.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
