// Package stringutil holds small string helpers shared by the profile code.
package stringutil

import (
	"regexp"
	"strings"
)

// MaxSlugLength caps slugs so store keys stay short.
const MaxSlugLength = 48

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a profile name into the slug used in its store keys
// ("calendars/<slug>", "history/<slug>/..."). Runs of anything but a-z and
// 0-9 become one hyphen; the result never starts or ends with a hyphen.
// An empty slug means the name cannot be stored.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	return s
}
