// Package errs provides the error taxonomy of the ordering core.
//
// Every error type follows one pattern:
//   - a sentinel error variable naming the category (e.g. ErrObjectNotFound)
//   - a struct carrying the offending parameter and an optional Cause
//   - NewXxxError and NewXxxErrorWithCause constructors
//   - Unwrap returning the sentinel, Is delegating to the Cause
//
// Callers therefore match both the category and the specific reason:
//
//	errors.Is(err, errs.ErrReferenceIsInvalid)   // category
//	errors.Is(err, services.ErrDishUnavailable) // reason carried as Cause
//
// ValueIsInvalidError, ValueIsOutOfRangeError and ValueIsRequiredError also match
// ErrValidationFailed, the category returned to callers for malformed input.
package errs
