// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"strings"
	"unicode"
)

// Slugify derives a filename-safe slug from a title: lowercased, runs of
// non-alphanumeric characters collapsed to single hyphens, trimmed. Collision
// suffixing happens in the storage layer, which can see existing files.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}
