package hashutil

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{7}$`)

func TestNewID(t *testing.T) {
	at := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

	profileID := NewID(at, "profile", "Priya")
	assert.Regexp(t, idPattern, profileID)

	again := NewID(at, "profile", "Priya")
	assert.NotEqual(t, profileID, again, "same name and instant still yield distinct IDs")

	entryID := NewID(at, "history", "tell", "Monday 9-5")
	assert.Regexp(t, idPattern, entryID)
}

func TestIDFromSeed(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"same seed", "history\x00tell", "history\x00tell", true},
		{"different kind", "profile\x00default", "history\x00default", false},
		{"different input", "history\x00tell\x00Monday", "history\x00tell\x00Friday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := IDFromSeed(tt.a), IDFromSeed(tt.b)
			assert.Regexp(t, idPattern, a)
			assert.Equal(t, tt.same, a == b)
		})
	}
}
