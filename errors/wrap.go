package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original
// error. The wrapped error is accessible via Unwrap and compatible with
// errors.Is and errors.As.
//
// If the wrapped error is a ModelError, its classification is preserved.
// Otherwise, the default classification for the error code is used.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) ModelError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var modelErr ModelError
	if errors.As(err, &modelErr) {
		classification = modelErr.Classification()
	}

	return &modelError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) ModelError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
