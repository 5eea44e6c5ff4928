package textutil

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidText = errors.New("invalid text")

// Canonicalize applies NFKC, trims, and collapses runs of whitespace into a
// single space. Control and format characters are dropped. Invalid UTF-8
// returns ErrInvalidText.
func Canonicalize(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidText
	}
	s = strings.TrimSpace(norm.NFKC.String(s))
	if s == "" {
		return "", nil
	}

	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		if unicode.IsControl(r) || unicode.In(r, unicode.Cf) {
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String()), nil
}

// Initial returns the first letter of the trimmed value in NFC, together with
// any combining marks that stay attached to it, or false when blank.
func Initial(s string) (string, bool) {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	return s[:norm.NFC.NextBoundaryInString(s, true)], true
}
