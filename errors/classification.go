package errors

// ErrorClassification indicates whether an error may succeed on retry.
// Structural contract violations are permanent; backing-namespace I/O
// failures may be transient.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed
	// on retry, such as transient I/O errors from the backing namespace.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on
	// retry, such as contract violations and missing keys.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry may help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeInvalidURL:      ClassificationPermanent,
	CodeStoreClosed:     ClassificationPermanent,
	CodeNotFound:        ClassificationPermanent,
	CodeNoMatch:         ClassificationPermanent,
	CodeIndexOutOfRange: ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns the default classification for a code.
// Unknown codes are treated as permanent, which is the safe default.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
