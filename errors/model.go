package errors

import (
	"encoding/json"
	"sort"

	"google.golang.org/grpc/codes"
)

// Domain is attached to every response built by this package.
const Domain = "vcards"

// Reason is a stable machine-readable code.
type Reason string

const (
	ReasonValidationFailed Reason = "validation_failed"
	ReasonMissingName      Reason = "missing_name"
	ReasonInvalidPolicy    Reason = "invalid_policy"
	ReasonUnexpected       Reason = "unexpected_error"
)

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the transport-agnostic shape of a card error. Builder methods
// return modified copies.
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Domain: Domain}
}

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument).WithReason("invalid_argument")
}

func Internal() ErrorResponse {
	return New("Internal error", codes.Internal).WithReason("internal")
}

// ValidationViolations is the response a failed card validation is reported with.
func ValidationViolations(v []FieldViolation) ErrorResponse {
	e := New("Contact card validation failed", codes.InvalidArgument).WithReason(string(ReasonValidationFailed))
	return e.WithViolations(v)
}

// ValidationFields builds violations from a field->reason map. Fields are sorted so
// the output is stable.
func ValidationFields(fields map[string]string) ErrorResponse {
	return ValidationViolations(ViolationsFromMap(fields))
}

func (e ErrorResponse) WithReason(r string) ErrorResponse { e.Reason = Reason(r); return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for dk, dv := range e.Details {
		details[dk] = dv
	}
	details[k] = v
	e.Details = details
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append(append([]FieldViolation(nil), e.Violations...), v...)
	return e
}

// HasField reports whether any violation targets field.
func (e ErrorResponse) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func (e ErrorResponse) Error() string {
	b, _ := json.Marshal(struct {
		Code       string            `json:"code"`
		Reason     Reason            `json:"reason,omitempty"`
		Domain     string            `json:"domain,omitempty"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details,omitempty"`
		Violations []FieldViolation  `json:"violations,omitempty"`
	}{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Domain:     e.Domain,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	})
	return string(b)
}

func ViolationsFromMap(m map[string]string) []FieldViolation {
	if len(m) == 0 {
		return nil
	}
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]FieldViolation, 0, len(m))
	for _, f := range fields {
		out = append(out, FieldViolation{Field: f, Reason: m[f]})
	}
	return out
}
