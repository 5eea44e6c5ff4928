package errors

import (
	"errors"
	"fmt"
)

// InvariantKind classifies a broken card invariant.
type InvariantKind string

const (
	KindDomain InvariantKind = "domain"
	KindPolicy InvariantKind = "policy"
)

// InvariantError is a single broken invariant bound to a card field.
type InvariantError struct {
	Kind   InvariantKind
	Base   error
	Field  string
	Reason string
}

func (e InvariantError) Error() string {
	switch {
	case e.Field == "" && e.Base == nil:
		return e.Reason
	case e.Field == "":
		return fmt.Sprintf("%v: %s", e.Base, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
}

// Unwrap supports errors.Is against the sentinel in Base.
func (e InvariantError) Unwrap() error {
	return e.Base
}

// DomainInvariant reports a field-level problem, e.g. "family_name: missing_name".
func DomainInvariant(base error, field, reason string) error {
	return InvariantError{Kind: KindDomain, Base: base, Field: field, Reason: reason}
}

// PolicyInvariant reports a misconfigured validation policy.
func PolicyInvariant(base error, field, reason string) error {
	return InvariantError{Kind: KindPolicy, Base: base, Field: field, Reason: reason}
}

func IsInvariant(err error) bool {
	var ie InvariantError
	return errors.As(err, &ie)
}

// ViolationsFromInvariants keeps the order of errs. Errors that are not
// invariants are reported under the "_error" field.
func ViolationsFromInvariants(errs []error) []FieldViolation {
	if len(errs) == 0 {
		return nil
	}
	out := make([]FieldViolation, 0, len(errs))
	for _, err := range errs {
		var ie InvariantError
		if !errors.As(err, &ie) {
			out = append(out, FieldViolation{Field: "_error", Reason: string(ReasonUnexpected), Description: err.Error()})
			continue
		}
		out = append(out, FieldViolation{Field: ie.Field, Reason: ie.Reason, Description: ie.Error()})
	}
	return out
}
