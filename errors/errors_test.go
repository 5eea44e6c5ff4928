package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http/httptest"
	"testing"

	play "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

var errMissing = stderrors.New("missing name")

func TestDomainInvariant(t *testing.T) {
	err := DomainInvariant(errMissing, "family_name", "missing_name")
	if err.Error() != "family_name: missing_name" {
		t.Fatalf("unexpected string: %s", err.Error())
	}
	if !IsInvariant(err) {
		t.Fatalf("IsInvariant should return true")
	}
	if !stderrors.Is(err, errMissing) {
		t.Fatalf("DomainInvariant should unwrap to base error")
	}
}

func TestInvariantErrorWithoutField(t *testing.T) {
	err := PolicyInvariant(stderrors.New("invalid policy"), "", "max_runes")
	assert.Equal(t, "invalid policy: max_runes", err.Error())

	bare := InvariantError{Reason: "broken"}
	assert.Equal(t, "broken", bare.Error())
}

func TestToErrorResponseFromDomain(t *testing.T) {
	er := ToErrorResponse(DomainInvariant(errMissing, "full_name", "missing_name"))
	require.Equal(t, codes.InvalidArgument, er.Code)
	require.Equal(t, ReasonValidationFailed, er.Reason)
	require.Len(t, er.Violations, 1)
	assert.Equal(t, "full_name", er.Violations[0].Field)
	assert.Equal(t, "missing_name", er.Violations[0].Reason)
}

func TestToErrorResponseFromWrappedDomain(t *testing.T) {
	err := fmt.Errorf("wrap: %w", DomainInvariant(errMissing, "given_name", "missing_name"))
	er := ToErrorResponse(err)
	assert.True(t, er.HasField("given_name"))
}

func TestToErrorResponseFromJoined(t *testing.T) {
	err := stderrors.Join(
		DomainInvariant(errMissing, "full_name", "missing_name"),
		DomainInvariant(errMissing, "given_name", "missing_name"),
		DomainInvariant(errMissing, "family_name", "missing_name"),
	)
	er := ToErrorResponse(err)
	require.Len(t, er.Violations, 3)
	assert.Equal(t, []string{"full_name", "given_name", "family_name"}, []string{
		er.Violations[0].Field, er.Violations[1].Field, er.Violations[2].Field,
	})
}

func TestToErrorResponsePolicy(t *testing.T) {
	er := ToErrorResponse(PolicyInvariant(stderrors.New("bad"), "max_name_runes", "must_be_positive"))
	assert.Equal(t, codes.Internal, er.Code)
	assert.Equal(t, ReasonInvalidPolicy, er.Reason)
	assert.Equal(t, "must_be_positive", er.Details["max_name_runes"])
}

func TestToErrorResponseJoinedPolicy(t *testing.T) {
	err := stderrors.Join(
		PolicyInvariant(stderrors.New("bad"), "max_name_runes", "must_be_positive"),
		DomainInvariant(errMissing, "full_name", "missing_name"),
		PolicyInvariant(stderrors.New("bad"), "max_contact_runes", "must_be_positive"),
	)
	er := ToErrorResponse(err)
	require.Equal(t, codes.Internal, er.Code)
	assert.Equal(t, ReasonInvalidPolicy, er.Reason)
	assert.Empty(t, er.Violations)
	assert.Equal(t, map[string]string{
		"max_name_runes":    "must_be_positive",
		"max_contact_runes": "must_be_positive",
	}, er.Details)
}

func TestToErrorResponseUnknownAndNil(t *testing.T) {
	assert.Equal(t, ReasonUnexpected, ToErrorResponse(stderrors.New("random")).Reason)
	assert.Equal(t, codes.Internal, ToErrorResponse(nil).Code)
}

func TestToErrorResponsePassThrough(t *testing.T) {
	in := InvalidArgument().WithReason("bad").WithDetail("x", "y")
	out := ToErrorResponse(in)
	assert.Equal(t, Reason("bad"), out.Reason)
	assert.Equal(t, "y", out.Details["x"])

	out = ToErrorResponse(&in)
	assert.Equal(t, "y", out.Details["x"])
}

func TestWithDetailDoesNotShareMap(t *testing.T) {
	a := InvalidArgument().WithDetail("a", "1")
	b := a.WithDetail("b", "2")
	assert.Len(t, a.Details, 1)
	assert.Len(t, b.Details, 2)
}

func TestViolationsFromMapIsSorted(t *testing.T) {
	vs := ViolationsFromMap(map[string]string{"b": "x", "a": "y"})
	require.Len(t, vs, 2)
	assert.Equal(t, "a", vs[0].Field)
	assert.Nil(t, ViolationsFromMap(nil))
}

func TestErrorStringIsJSON(t *testing.T) {
	er := ValidationFields(map[string]string{"full_name": "missing_name"})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(er.Error()), &decoded))
	assert.Equal(t, "InvalidArgument", decoded["code"])
	assert.Equal(t, Domain, decoded["domain"])
}

func TestGRPCRoundTrip(t *testing.T) {
	in := ValidationFields(map[string]string{"family_name": "missing_name", "full_name": "missing_name"})

	out := FromGRPC(in.ToGRPC())
	assert.Equal(t, codes.InvalidArgument, out.Code)
	assert.Equal(t, ReasonValidationFailed, out.Reason)
	assert.Equal(t, Domain, out.Domain)
	require.Len(t, out.Violations, 2)
	assert.Equal(t, "family_name", out.Violations[0].Field)
	assert.Equal(t, "missing_name", out.Violations[0].Reason)
}

func TestFromGRPCNonStatus(t *testing.T) {
	out := FromGRPC(stderrors.New("plain"))
	assert.Equal(t, codes.Internal, out.Code)
}

func TestToHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFields(map[string]string{"full_name": "missing_name"}).ToHTTP(rec)

	assert.Equal(t, 422, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body struct {
		Code       string           `json:"code"`
		Violations []FieldViolation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "InvalidArgument", body.Code)
	require.Len(t, body.Violations, 1)
}

func TestHTTPStatusFallback(t *testing.T) {
	assert.Equal(t, 500, HTTPStatus(codes.Unavailable))
	assert.Equal(t, 412, HTTPStatus(codes.FailedPrecondition))
}

type nestedCard struct {
	Owner struct {
		Email string `validate:"required,email"`
	}
}

func TestFromPlaygroundNamespace(t *testing.T) {
	err := play.New().Struct(nestedCard{})
	require.Error(t, err)

	vs := FromPlayground(err.(play.ValidationErrors), map[string]string{"required": "required"})
	require.Len(t, vs, 1)
	assert.Equal(t, "Owner.Email", vs[0].Field)
	assert.Equal(t, "required", vs[0].Reason)
}
