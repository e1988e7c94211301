package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_MarkAndMatch(t *testing.T) {
	err := NewError("bad input").
		WithHint("Check the request body").
		WithReportableDetails(map[string]interface{}{"field": "view"}).
		Mark(ErrValidation)

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, "Check the request body", Hint(err))
	assert.Equal(t, "view", ReportableDetails(err)["field"])
}

func TestBuilder_WithError_PreservesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := WithError(cause).
		WithHintf("Failed to read %s export", "revenue").
		Mark(ErrInternal)

	assert.True(t, Is(err, cause))
	assert.True(t, Is(err, ErrInternal))
	assert.Equal(t, "Failed to read revenue export", Hint(err))
}

func TestNewErrorResponse(t *testing.T) {
	err := NewErrorf("unknown view: %s", "dashboard").
		WithHint("View is not supported").
		Mark(ErrUnknownView)

	resp := NewErrorResponse(err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "View is not supported", resp.Error.Message)
	assert.Equal(t, "unknown view: dashboard", resp.Error.InternalError)
}

func TestNewErrorResponse_PlainError(t *testing.T) {
	resp := NewErrorResponse(errors.New("boom"))

	require.NotNil(t, resp)
	assert.Equal(t, "boom", resp.Error.Message)
	assert.Nil(t, resp.Error.ReportableDetails)
}

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "Validation", err: NewError("x").Mark(ErrValidation), status: http.StatusBadRequest},
		{name: "MissingField", err: NewError("x").Mark(ErrMissingField), status: http.StatusBadRequest},
		{name: "UnknownView", err: NewError("x").Mark(ErrUnknownView), status: http.StatusNotFound},
		{name: "UnknownDataset", err: NewError("x").Mark(ErrUnknownDataset), status: http.StatusNotFound},
		{name: "NotFound", err: NewError("x").Mark(ErrNotFound), status: http.StatusNotFound},
		{name: "Internal", err: NewError("x").Mark(ErrInternal), status: http.StatusInternalServerError},
		{name: "Plain", err: errors.New("x"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromErr(tt.err))
		})
	}
}
