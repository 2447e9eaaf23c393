package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrReferenceIsInvalid  = errors.New("reference is invalid")
	ErrUnauthorized        = errors.New("not the owner")
	ErrTransitionIsInvalid = errors.New("transition is invalid")

	// ErrValidationFailed is matched by every value error.
	ErrValidationFailed = errors.New("validation failed")
)

func causeIs(cause, target error) bool {
	return cause != nil && errors.Is(cause, target)
}

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(fmt.Sprint(v))
}

// ObjectNotFoundError reports an absent table, dish, order or customer.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error { return ErrObjectNotFound }

func (e *ObjectNotFoundError) Is(target error) bool { return causeIs(e.Cause, target) }

// ValueIsInvalidError reports a value that breaks a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error { return ErrValueIsInvalid }

func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrValidationFailed || causeIs(e.Cause, target)
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error { return ErrValueIsOutOfRange }

func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrValidationFailed || causeIs(e.Cause, target)
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error { return ErrValueIsRequired }

func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrValidationFailed || causeIs(e.Cause, target)
}

// ReferenceIsInvalidError reports an entity that exists but may not be used here,
// such as a dish that is off the menu or belongs to another restaurant.
type ReferenceIsInvalidError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewReferenceIsInvalidError(paramName string, id any) *ReferenceIsInvalidError {
	return &ReferenceIsInvalidError{ParamName: paramName, ID: id}
}

func NewReferenceIsInvalidErrorWithCause(paramName string, id any, cause error) *ReferenceIsInvalidError {
	return &ReferenceIsInvalidError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ReferenceIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrReferenceIsInvalid, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrReferenceIsInvalid, e.ParamName, e.ID)
}

func (e *ReferenceIsInvalidError) Unwrap() error { return ErrReferenceIsInvalid }

func (e *ReferenceIsInvalidError) Is(target error) bool { return causeIs(e.Cause, target) }

// UnauthorizedError reports an actor acting on a resource it does not own.
type UnauthorizedError struct {
	ParamName string
	ID        any
	Actor     string
	Cause     error
}

func NewUnauthorizedError(paramName string, id any, actor string) *UnauthorizedError {
	return &UnauthorizedError{ParamName: paramName, ID: id, Actor: actor}
}

func NewUnauthorizedErrorWithCause(paramName string, id any, actor string, cause error) *UnauthorizedError {
	return &UnauthorizedError{ParamName: paramName, ID: id, Actor: actor, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	msg := fmt.Sprintf("%s: %s does not own %s %s", ErrUnauthorized, e.Actor, e.ParamName, e.ID)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *UnauthorizedError) Unwrap() error { return ErrUnauthorized }

func (e *UnauthorizedError) Is(target error) bool { return causeIs(e.Cause, target) }

// TransitionIsInvalidError reports a state change the state machine does not allow.
type TransitionIsInvalidError struct {
	From string
	To   string
}

func NewTransitionIsInvalidError(from, to string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{From: from, To: to}
}

func (e *TransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: cannot move to %s from %s", ErrTransitionIsInvalid, e.To, e.From)
}

func (e *TransitionIsInvalidError) Unwrap() error { return ErrTransitionIsInvalid }
