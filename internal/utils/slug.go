package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a scheme name.
// "PM-KISAN Samman Nidhi" -> "pm-kisan-samman-nidhi".
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
