package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a ModelError.
// The code is taken from the outermost ModelError in the chain.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var modelErr ModelError
	if stderrors.As(err, &modelErr) {
		return modelErr.Code()
	}

	return CodeUnknown
}

// IsCode reports whether the outermost ModelError in err's chain carries
// the given code.
//
// Example:
//
//	if errors.IsCode(err, errors.CodeStoreClosed) {
//	    // the store was closed out from under us
//	}
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a ModelError,
// which prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var modelErr ModelError
	if stderrors.As(err, &modelErr) {
		return modelErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a ModelError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
