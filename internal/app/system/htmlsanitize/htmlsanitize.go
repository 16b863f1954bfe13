// Package htmlsanitize cleans user-supplied text before it leaves the app.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute, keeping only text.
var strict = bluemonday.StrictPolicy()

// StripTags returns s with all markup removed and surrounding space trimmed.
// Entities bluemonday escapes are decoded again so "Tom & Jerry" survives
// unchanged; the result is plain text, not HTML.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
