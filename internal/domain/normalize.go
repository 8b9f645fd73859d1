package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTitle prepares a page title for use as a storage key:
//   - converts to Unicode NFC
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved: "Haus" and "haus" are different pages.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(norm.NFC.String(title))
	if title == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(title))
	prevSpace := false
	for _, r := range title {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			r = ' '
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
