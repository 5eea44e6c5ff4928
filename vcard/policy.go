package vcard

import (
	"errors"

	vcerrors "github.com/vortex-fintech/go-vcards/errors"
)

var ErrInvalidPolicy = errors.New("invalid policy")

// Policy bounds the length, in runes, of card fields.
type Policy struct {
	MaxNameRunes    int
	MaxAddressRunes int
	MaxContactRunes int
}

// DefaultPolicy matches a varchar(255) column per field.
var DefaultPolicy = Policy{
	MaxNameRunes:    255,
	MaxAddressRunes: 255,
	MaxContactRunes: 255,
}

// Validate rejects non-positive limits.
func (p Policy) Validate() error {
	var errs []error
	for _, l := range []struct {
		name  string
		value int
	}{
		{"max_name_runes", p.MaxNameRunes},
		{"max_address_runes", p.MaxAddressRunes},
		{"max_contact_runes", p.MaxContactRunes},
	} {
		if l.value <= 0 {
			errs = append(errs, vcerrors.PolicyInvariant(ErrInvalidPolicy, l.name, "must_be_positive"))
		}
	}
	return errors.Join(errs...)
}
