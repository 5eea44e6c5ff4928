package vcard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	play "github.com/go-playground/validator/v10"

	vcerrors "github.com/vortex-fintech/go-vcards/errors"
	"github.com/vortex-fintech/go-vcards/validator"
)

// Validate runs ValidateWithPolicy with DefaultPolicy.
func Validate(c *ContactCard) error {
	return ValidateWithPolicy(c, DefaultPolicy)
}

// ValidateWithPolicy checks the name invariant, the contact entries and the
// field lengths of p. Values of the well-known contact kinds must also be
// well formed: E.164 for phone, mobile and fax, an address for email and an
// absolute URL for web. It returns nil or an errors.ErrorResponse with one
// violation per problem; a missing name contributes three. An invalid policy
// is returned as is.
func ValidateWithPolicy(c *ContactCard, p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c == nil {
		c = &ContactCard{}
	}

	violations := vcerrors.ViolationsFromInvariants(ValidateName(c))

	if err := validator.Struct(c); err != nil {
		var ves play.ValidationErrors
		if !errors.As(err, &ves) {
			return fmt.Errorf("validate card: %w", err)
		}
		violations = append(violations, vcerrors.FromPlayground(ves, validator.TagReasons())...)
	}

	violations = append(violations, lengthViolations(nameFields(c), p.MaxNameRunes)...)
	violations = append(violations, lengthViolations(addressFields(c), p.MaxAddressRunes)...)
	for i := range c.Contacts {
		f := field{name: "contacts[" + strconv.Itoa(i) + "].value", ptr: &c.Contacts[i].Value}
		violations = append(violations, lengthViolations([]field{f}, p.MaxContactRunes)...)
		violations = append(violations, formatViolations(f, c.Contacts[i].Kind)...)
	}

	if len(violations) == 0 {
		return nil
	}
	return vcerrors.ValidationViolations(violations)
}

func lengthViolations(fields []field, maxRunes int) []vcerrors.FieldViolation {
	tag := "max=" + strconv.Itoa(maxRunes)
	var out []vcerrors.FieldViolation
	for _, f := range fields {
		if err := validator.Var(*f.ptr, tag); err != nil {
			out = append(out, vcerrors.FieldViolation{
				Field:       f.name,
				Reason:      validator.ReasonFor("max"),
				Description: fmt.Sprintf("%s exceeds %d characters", f.name, maxRunes),
			})
		}
	}
	return out
}

// formatTags maps well-known contact kinds to the tag their value must pass.
var formatTags = map[string]string{
	KindPhone:  "e164",
	KindMobile: "e164",
	KindFax:    "e164",
	KindEmail:  "email",
	KindWeb:    "url",
}

// formatViolations checks the value of f against its kind. Blank values are
// left to the notblank tag.
func formatViolations(f field, kind string) []vcerrors.FieldViolation {
	kind = strings.ToLower(strings.TrimSpace(kind))
	tag, ok := formatTags[kind]
	if !ok || strings.TrimSpace(*f.ptr) == "" {
		return nil
	}
	if err := validator.Var(*f.ptr, tag); err != nil {
		return []vcerrors.FieldViolation{{
			Field:       f.name,
			Reason:      validator.ReasonFor(tag),
			Description: fmt.Sprintf("%s is not a valid %s", f.name, kind),
		}}
	}
	return nil
}
