// Package errors provides the structured error system used across the node
// model and its stores. It extends Go's standard error handling with string
// error codes, retry classification, context attachment, and full
// compatibility with errors.Is, errors.As, and errors.Unwrap.
package errors

// ErrorCode identifies a specific error condition.
// Codes are string-based for debuggability in logs and test output.
type ErrorCode string

const (
	// CodeInvalidURL indicates a store constructor was given a locator it
	// does not recognize.
	CodeInvalidURL ErrorCode = "INVALID_URL"

	// CodeStoreClosed indicates an operation was attempted on a store after
	// Close. Stores never transition back to a usable state.
	CodeStoreClosed ErrorCode = "STORE_CLOSED"

	// CodeNotFound indicates no entity exists at the requested key.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeNoMatch indicates an entity exists but no registered node type
	// claimed its key.
	CodeNoMatch ErrorCode = "NO_MATCH"

	// CodeIndexOutOfRange indicates container or leaf indexing outside the
	// valid range.
	CodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// CodeIO indicates a backing-namespace I/O failure that was not
	// recovered locally.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeInternal indicates an unexpected internal failure.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error, typically one that did
	// not originate from this package.
	CodeUnknown ErrorCode = "UNKNOWN"
)
