package validator

import "errors"

var (
	// ErrAsyncValidationFailed is the fallback when an async validator rejects with a nil-message error.
	ErrAsyncValidationFailed = errors.New("async validation failed")
)

// AsyncValidationError wraps a rejection surfaced by an asynchronous validator.
type AsyncValidationError struct {
	Err error
}

func (e *AsyncValidationError) Error() string {
	if e.Err == nil {
		return ErrAsyncValidationFailed.Error()
	}
	return e.Err.Error()
}

func (e *AsyncValidationError) Unwrap() error {
	return e.Err
}

// IsAsyncValidationError reports whether err came out of an async round.
func IsAsyncValidationError(err error) bool {
	var aerr *AsyncValidationError
	return errors.As(err, &aerr)
}
