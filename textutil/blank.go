package textutil

import "strings"

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// JoinNonBlank joins the trimmed non-blank values with sep. Blank values leave
// no separator behind.
func JoinNonBlank(sep string, values ...string) string {
	return strings.Join(NonBlank(values...), sep)
}

// NonBlank keeps the trimmed non-blank values in their original order.
func NonBlank(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
