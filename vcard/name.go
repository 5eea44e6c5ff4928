package vcard

import (
	"errors"
	"strings"

	vcerrors "github.com/vortex-fintech/go-vcards/errors"
	"github.com/vortex-fintech/go-vcards/textutil"
)

// ErrMissingName is the base of every error ValidateName returns.
var ErrMissingName = errors.New("missing name")

// ValidateName checks that the card carries at least one of full, given or
// family name. When none is present it returns one error per checked field,
// in the order full_name, given_name, family_name. Whitespace-only values do
// not count as present.
func ValidateName(c *ContactCard) []error {
	if c != nil && hasName(c) {
		return nil
	}
	reason := string(vcerrors.ReasonMissingName)
	return []error{
		vcerrors.DomainInvariant(ErrMissingName, FieldFullName, reason),
		vcerrors.DomainInvariant(ErrMissingName, FieldGivenName, reason),
		vcerrors.DomainInvariant(ErrMissingName, FieldFamilyName, reason),
	}
}

func hasName(c *ContactCard) bool {
	return !textutil.IsBlank(c.FullName) ||
		!textutil.IsBlank(c.GivenName) ||
		!textutil.IsBlank(c.FamilyName)
}

// FullName returns the stored full name unchanged when set, otherwise given
// and family name joined by a single space.
func FullName(c *ContactCard) string {
	if c == nil {
		return ""
	}
	if !textutil.IsBlank(c.FullName) {
		return c.FullName
	}
	return textutil.JoinNonBlank(" ", c.GivenName, c.FamilyName)
}

// AbbreviatedName returns the stored full name unchanged when set, otherwise
// the initial of the given name followed by the family name ("L. Clark").
// Only the first letter of the given name is used, however many words it
// has; a decomposed accent stays on it.
func AbbreviatedName(c *ContactCard) string {
	if c == nil {
		return ""
	}
	if !textutil.IsBlank(c.FullName) {
		return c.FullName
	}

	family := strings.TrimSpace(c.FamilyName)
	initial, ok := textutil.Initial(c.GivenName)
	if !ok {
		return family
	}
	return textutil.JoinNonBlank(" ", initial+".", family)
}
