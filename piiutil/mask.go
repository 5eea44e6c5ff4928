package piiutil

import (
	"strings"
	"unicode"
)

const (
	shortDigitCount = 4
	keepShortDigits = 1
	keepLongDigits  = 4
)

// MaskEmail keeps the first rune of the local part and the whole domain.
//
//	"ben@example.com" -> "b**@example.com"
//	"b@example.com"   -> "b@example.com"
//	"weird"           -> "w***d"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskMiddle([]rune(email))
	}

	local := []rune(email[:at])
	if len(local) == 1 {
		return email
	}
	return string(local[0]) + strings.Repeat("*", len(local)-1) + email[at:]
}

// MaskPhone keeps formatting symbols and the last 4 digits (1 digit when the
// number has 4 digits or fewer).
//
//	"+41441234567" -> "+*******4567"
//	"123"          -> "**3"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return maskMiddle(runes)
	}

	keep := keepLongDigits
	if total <= shortDigitCount {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		seen++
		if seen > keep {
			runes[i] = '*'
		}
	}
	return string(runes)
}

// MaskContact masks value according to the contact kind. Kinds that are not
// personal identifiers (web) are returned trimmed.
func MaskContact(kind, value string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "email", "e-mail":
		return MaskEmail(value)
	case "web", "url":
		return strings.TrimSpace(value)
	default:
		return MaskPhone(value)
	}
}

func maskMiddle(runes []rune) string {
	switch n := len(runes); n {
	case 0:
		return ""
	case 1:
		return string(runes)
	case 2:
		return string(runes[0]) + "*"
	default:
		return string(runes[0]) + strings.Repeat("*", n-2) + string(runes[n-1])
	}
}
