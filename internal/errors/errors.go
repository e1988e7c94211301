package errors

import (
	"github.com/cockroachdb/errors"
)

// Marker errors for the well-known failure classes of the engine. Errors
// produced by this package are matched against these with errors.Is via the
// predicate helpers below.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrInternal       = errors.New("internal error")
	ErrMissingField   = errors.New("missing field")
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrUnknownView    = errors.New("unknown view")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

func IsUnknownDataset(err error) bool {
	return errors.Is(err, ErrUnknownDataset)
}

func IsUnknownView(err error) bool {
	return errors.Is(err, ErrUnknownView)
}

// Hint extracts the hint attached to err, if any.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.hint
	}
	return ""
}

// ReportableDetails extracts the reportable details attached to err, if any.
func ReportableDetails(err error) map[string]interface{} {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.details
	}
	return nil
}
