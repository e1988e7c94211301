package errors

import "net/http"

// ErrorDetail carries the user-facing portion of an error.
type ErrorDetail struct {
	Message           string                 `json:"message"`
	InternalError     string                 `json:"internal_error,omitempty"`
	ReportableDetails map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the JSON shape rendered for failed API requests.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse builds the response body for err. The hint, when present,
// is the message shown to the caller; the raw error string is kept under
// internal_error for operators.
func NewErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := Hint(err)
	if message == "" {
		message = err.Error()
	}

	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message:           message,
			InternalError:     err.Error(),
			ReportableDetails: ReportableDetails(err),
		},
	}
}

// HTTPStatusFromErr maps the error markers onto HTTP status codes.
func HTTPStatusFromErr(err error) int {
	switch {
	case IsNotFound(err), IsUnknownDataset(err), IsUnknownView(err):
		return http.StatusNotFound
	case IsValidation(err), IsMissingField(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
