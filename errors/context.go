package errors

// WithContext returns a copy of err with the given metadata attached.
// Existing context entries are preserved; new entries override old ones on
// key collision. The input map is copied to prevent external mutation.
//
// If err is not a ModelError it is first wrapped with CodeUnknown.
//
// Example:
//
//	return errors.WithContext(err, map[string]any{"key": key, "url": url})
func WithContext(err error, ctx map[string]any) ModelError {
	if err == nil {
		return nil
	}

	base, ok := err.(*modelError)
	if !ok {
		base = &modelError{
			code:           CodeUnknown,
			classification: getDefaultClassification(CodeUnknown),
			message:        err.Error(),
			cause:          err,
		}
	}

	merged := make(map[string]any, len(base.context)+len(ctx))
	for k, v := range base.context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &modelError{
		code:           base.code,
		classification: base.classification,
		message:        base.message,
		context:        merged,
		cause:          base.cause,
	}
}
