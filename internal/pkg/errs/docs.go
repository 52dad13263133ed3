// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found for the calling tenant
//   - ObjectConflictError: For transitions attempted on deleted or finalized objects
//   - UpstreamUnavailableError: For cross-service calls that timed out or failed
//   - UpstreamRejectedError: For negative answers from another service
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf and StatusOf classify any wrapped error into the kinds exposed by the
// transports (validation 400, not_found 404, conflict 409, upstream_unavailable 503,
// internal 500).
package errs
