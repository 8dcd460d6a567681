package errors

// ModelError extends the standard error interface with the structured
// information the node model attaches to every surfaced failure.
//
// ModelError provides error codes for categorization, classification for
// retry decisions, contextual metadata, and compatibility with standard
// library error handling (errors.Is, errors.As, errors.Unwrap).
type ModelError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]any

	// Unwrap returns the wrapped error, or nil if this error does not wrap
	// another error.
	Unwrap() error
}
