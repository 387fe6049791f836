package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string to a lowercase, hyphen-separated slug safe for
// file names. Runs of anything other than ASCII letters and digits collapse
// into a single hyphen; leading and trailing hyphens are dropped.
func Slugify(name string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
