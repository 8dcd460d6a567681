package errors

import "fmt"

// modelError is the concrete implementation of ModelError.
// It is private to enforce construction through package functions.
type modelError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *modelError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *modelError) Code() ErrorCode {
	return e.code
}

func (e *modelError) Classification() ErrorClassification {
	return e.classification
}

func (e *modelError) Message() string {
	return e.message
}

// Context returns a defensive copy of the context map so callers cannot
// mutate the error after construction.
func (e *modelError) Context() map[string]any {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]any, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *modelError) Unwrap() error {
	return e.cause
}
