package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// ToGRPC renders the response as a status error carrying ErrorInfo and, for
// validation failures, BadRequest field violations.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	if e.Reason != "" || e.Domain != "" || len(e.Details) > 0 {
		ei := &errdetails.ErrorInfo{
			Reason:   string(e.Reason),
			Domain:   e.Domain,
			Metadata: cloneMap(e.Details),
		}
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}

	if len(e.Violations) > 0 && e.Code == codes.InvalidArgument {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Reason,
			})
		}
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}

	return st.Err()
}

// FromGRPC is the inverse of ToGRPC. Violation descriptions are not carried
// over the wire; reasons are.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Internal().WithReason(string(ReasonUnexpected))
	}

	out := ErrorResponse{Code: st.Code(), Message: st.Message()}
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			out.Reason = Reason(x.GetReason())
			out.Domain = x.GetDomain()
			out.Details = cloneMap(x.GetMetadata())
		case *errdetails.BadRequest:
			vs := make([]FieldViolation, 0, len(x.GetFieldViolations()))
			for _, fv := range x.GetFieldViolations() {
				vs = append(vs, FieldViolation{Field: fv.GetField(), Reason: fv.GetDescription()})
			}
			out.Violations = vs
		}
	}
	return out
}

func cloneMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
