package errors

import (
	stderrors "errors"
)

// FromError converts any error into an *Errno.
// Errnos pass through unchanged; other errors are wrapped as ErrInternal.
func FromError(err error) *Errno {
	if err == nil {
		return nil
	}

	var e *Errno
	if stderrors.As(err, &e) {
		return e
	}
	return ErrInternal.WithCause(err)
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code int) bool {
	var e *Errno
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or 0 for nil and
// the internal-error code for unrecognized errors.
func GetCode(err error) int {
	if err == nil {
		return 0
	}

	var e *Errno
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrInternal.Code
}

// Is is a convenience re-export of errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a convenience re-export of errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
