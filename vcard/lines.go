package vcard

import "strings"

// AddressLines returns the set address fields, trimmed, in canonical order:
// street address, extended address, post office box, postal code, locality,
// region, country.
func AddressLines(c *ContactCard) []string {
	if c == nil {
		return []string{}
	}
	fields := addressFields(c)
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := strings.TrimSpace(*f.ptr); v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

// FullAddressLines is FullName followed by AddressLines. The name line is
// always present, even when empty.
func FullAddressLines(c *ContactCard) []string {
	addr := AddressLines(c)
	lines := make([]string, 0, len(addr)+1)
	lines = append(lines, FullName(c))
	return append(lines, addr...)
}

// ContactLines returns one display line per contact in association order.
func ContactLines(c *ContactCard) []string {
	if c == nil {
		return []string{}
	}
	lines := make([]string, 0, len(c.Contacts))
	for _, ct := range c.Contacts {
		lines = append(lines, ct.String())
	}
	return lines
}
