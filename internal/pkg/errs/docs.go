// Package errs provides the standardized error types used across the
// application's error taxonomy: not-found, forbidden (ownership), and
// validation failures.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructor functions with and without cause
//   - Error() for message formatting
//   - Unwrap() returning the sentinel, so callers classify with errors.Is
//
// Domain-specific sentinels (insufficient stock, invalid state transitions)
// live next to the aggregates that raise them; this package holds only the
// cross-cutting kinds.
package errs
