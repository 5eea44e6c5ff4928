// Package contactutil normalizes contact values before they are stored on a card.
// Nothing here validates; malformed input is passed through trimmed.
package contactutil

import "strings"

// NormalizeEmail lowercases and trims an e-mail address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeE164 trims a phone number and drops the visual separators
// (space, dash, dot, parentheses) so "+41 (44) 123-45-67" becomes "+41441234567".
func NormalizeE164(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '-', '.', '(', ')':
			return -1
		}
		return r
	}, s)
}

// NormalizeWeb trims a URL and lowercases a scheme given in any case.
func NormalizeWeb(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "://"); i > 0 {
		return strings.ToLower(s[:i]) + s[i:]
	}
	return s
}
