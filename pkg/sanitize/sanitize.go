// Package sanitize normalizes contact form text before it is rendered in
// email bodies or stored in the submission log. This is a minimal
// XSS-character strip, not full HTML sanitization.
package sanitize

import "strings"

// Text removes every literal angle bracket and trims surrounding whitespace.
// Stripping happens before the trim so the result is idempotent even when
// brackets wrap padded text.
func Text(input string) string {
	if input == "" {
		return ""
	}
	stripped := strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(stripped)
}

// Email trims and lower-cases an address. No bracket stripping: the value has
// already passed format validation.
func Email(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
