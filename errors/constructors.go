package errors

import "fmt"

// New creates a new ModelError with the given code and message.
// The classification is determined by the error code's default mapping.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "no entity at key")
func New(code ErrorCode, message string) ModelError {
	return &modelError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new ModelError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeIndexOutOfRange, "index %d outside [0, %d)", i, n)
func Newf(code ErrorCode, format string, args ...any) ModelError {
	return &modelError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        fmt.Sprintf(format, args...),
	}
}
