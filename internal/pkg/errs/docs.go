// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common validation scenarios
// (ValueIsRequiredError, ValueIsInvalidError, ObjectNotFoundError) and for the
// domain-specific failure kinds of the dispatch core:
//   - InvalidTransitionError: an order status change violates the lifecycle state machine
//   - DuplicateCredentialError: a phone number or username is already registered
//   - AuthenticationFailedError: a login credential mismatch
//   - PersistenceError: the durable store failed after an in-memory mutation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Validation errors are returned before any state is mutated. PersistenceError
// is the one exception: it is surfaced after the in-memory mutation has been
// applied, because the store has no rollback support.
package errs
