package errors

import (
	"errors"
)

// ToErrorResponse converts any error into ErrorResponse.
// Supported inputs:
// - ErrorResponse / *ErrorResponse (passthrough)
// - InvariantError, possibly wrapped
// - errors.Join of the above, flattened into one validation response; a
//   policy invariant anywhere in the join makes the whole response internal
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason(string(ReasonUnexpected))
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}
	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if resp, ok := policyResponse(errs); ok {
			return resp
		}
		return ValidationViolations(ViolationsFromInvariants(errs))
	}

	var ie InvariantError
	if !errors.As(err, &ie) {
		return Internal().WithReason(string(ReasonUnexpected))
	}

	switch ie.Kind {
	case KindPolicy:
		resp, _ := policyResponse([]error{ie})
		return resp
	default:
		if ie.Field == "" {
			return InvalidArgument().WithReason(ie.Reason)
		}
		return ValidationViolations(ViolationsFromInvariants([]error{ie}))
	}
}

// policyResponse collects every policy invariant in errs into one internal
// response, one detail per field. ok is false when there is none.
func policyResponse(errs []error) (resp ErrorResponse, ok bool) {
	resp = Internal().WithReason(string(ReasonInvalidPolicy))
	for _, err := range errs {
		var ie InvariantError
		if !errors.As(err, &ie) || ie.Kind != KindPolicy {
			continue
		}
		resp = resp.WithDetail(ie.Field, ie.Reason)
		ok = true
	}
	return resp, ok
}
