// Package hashutil generates the short hex IDs given to profiles and history
// entries. IDs are 7 hex digits so they can be typed by prefix.
package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// IDLength is the number of hex digits in an ID.
const IDLength = 7

var seq atomic.Uint64

// NewID derives an ID from what is being identified ("profile", a name; or
// "history", an edit type and its input) and when it was created. A process
// counter is mixed in so two IDs minted at the same instant still differ.
func NewID(at time.Time, parts ...string) string {
	seed := fmt.Sprintf("%s\x00%d\x00%d", strings.Join(parts, "\x00"), at.UnixNano(), seq.Add(1))
	return IDFromSeed(seed)
}

// IDFromSeed hashes seed into an ID.
func IDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:IDLength]
}
