package service

import (
	"errors"
	"fmt"

	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

var (
	// ErrMissingTenantContext is returned before any collection access when a
	// caller omits the tenant id. Always a caller bug; the UI should force
	// re-authentication rather than retry.
	ErrMissingTenantContext = tenancy.ErrMissingTenantContext

	// ErrNotFound covers both "the id never existed" and "the record belongs
	// to another tenant". The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when a record's current status forbids the
	// requested operation, such as deleting a purchase order that is no
	// longer a draft.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError reports a payload that is missing required fields or
// references a record outside the caller's tenant. A foreign id that exists
// under a different tenant is reported as if it did not exist.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
