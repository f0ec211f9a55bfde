package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares free text for pattern matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses every whitespace run (spaces, tabs, newlines) into one space
//
// Punctuation and diacritics are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
