package sentiment

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims text, then drops every rune that is not a
// letter, number or whitespace. Underscores are dropped as well. The result is
// trimmed again so that Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.TrimSpace(strings.ToLower(text))

	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)

	return strings.TrimSpace(text)
}
