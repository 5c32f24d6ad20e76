package stringutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"default profile", "default", "default"},
		{"person name", "Priya Patel", "priya-patel"},
		{"apostrophe", "O'Brien", "o-brien"},
		{"accented letters dropped", "Zoë Park", "zo-park"},
		{"punctuation runs", "night shift -- team B", "night-shift-team-b"},
		{"edges trimmed", "  (reception)  ", "reception"},
		{"digits kept", "Desk 42", "desk-42"},
		{"nothing storable", "!!!", ""},
		{"empty", "", ""},
		{"long name capped", strings.Repeat("a", 60), strings.Repeat("a", MaxSlugLength)},
		{"cap does not leave a hyphen", strings.Repeat("a", 47) + " b", strings.Repeat("a", 47)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
