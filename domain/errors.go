package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MissingFieldError reports a required field absent from the Record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// ValidationError reports a categorical value outside its permitted set.
type ValidationError struct {
	Field     string
	Value     any
	Permitted []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for field %q, permitted: [%s]",
		e.Value, e.Field, strings.Join(e.Permitted, ", "))
}

// TypeCoercionError reports a numeric field that could not be coerced
// to its target type.
type TypeCoercionError struct {
	Field  string
	Value  any
	Target string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("field %q: cannot coerce %v to %s", e.Field, e.Value, e.Target)
}

// EnvelopeError reports an invocation envelope that could not be decoded.
type EnvelopeError struct {
	Reason string
	Err    error
}

func (e *EnvelopeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed invocation envelope: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed invocation envelope: %s", e.Reason)
}

func (e *EnvelopeError) Unwrap() error { return e.Err }

// StorageReadError reports a request-log read that failed for a reason
// other than the object not existing yet.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("reading log object %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError reports a failed log or metric write.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("writing log object %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// IsClientError reports whether err should surface as a 4xx response
// rather than a server fault.
func IsClientError(err error) bool {
	var (
		missing  *MissingFieldError
		invalid  *ValidationError
		coercion *TypeCoercionError
		envelope *EnvelopeError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &invalid) ||
		errors.As(err, &coercion) ||
		errors.As(err, &envelope)
}
