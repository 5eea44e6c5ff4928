package vcard

import (
	"errors"
	"strconv"

	vcerrors "github.com/vortex-fintech/go-vcards/errors"
	"github.com/vortex-fintech/go-vcards/textutil"
)

// Normalize canonicalizes every name and address field in place (NFKC,
// trimmed, inner whitespace collapsed) and re-normalizes contact values for
// their kind. Fields holding invalid UTF-8 are left untouched and reported.
func Normalize(c *ContactCard) error {
	if c == nil {
		return nil
	}

	var errs []error
	for _, f := range append(nameFields(c), addressFields(c)...) {
		out, err := textutil.Canonicalize(*f.ptr)
		if err != nil {
			errs = append(errs, vcerrors.DomainInvariant(err, f.name, "invalid_text"))
			continue
		}
		*f.ptr = out
	}

	for i, ct := range c.Contacts {
		kind, err := textutil.Canonicalize(ct.Kind)
		if err != nil {
			errs = append(errs, vcerrors.DomainInvariant(err, "contacts["+strconv.Itoa(i)+"].kind", "invalid_text"))
			continue
		}
		c.Contacts[i] = NewContact(kind, ct.Value)
	}

	return errors.Join(errs...)
}
