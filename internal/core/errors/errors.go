// Package errors provides centralized error definitions for the application.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Media fetch errors.
var (
	// ErrUpstreamError indicates a non-2xx response from a media host.
	ErrUpstreamError = errors.New("upstream error")

	// ErrTooLarge indicates the declared or measured media size exceeds the ceiling.
	ErrTooLarge = errors.New("media exceeds size limit")
)

// Quota errors.
var (
	// ErrQuotaExceeded indicates the user hit the daily download limit.
	ErrQuotaExceeded = errors.New("daily quota exceeded")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
