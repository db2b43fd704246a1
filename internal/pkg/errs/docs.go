// Package errs provides standardized error types for the parcel coordination
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a rule
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//   - InvalidTransitionError: a lifecycle state change is not permitted
//   - ConcurrencyConflictError: a conditional update lost a race
//   - PersistenceUnavailableError: the storage collaborator is unreachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
package errs
