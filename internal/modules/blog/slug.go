package blog

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, strip non-word
// characters, collapse whitespace/underscore/hyphen runs to a single hyphen,
// trim leading and trailing hyphens. Idempotent on already-slugified input.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugCollapsePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
