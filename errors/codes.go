package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Privilege-data errors. These indicate defective input data, never a
// transient fault, so none of them are retryable.
const (
	// ErrCodeMissingContext indicates a Project-domain record without a context.
	ErrCodeMissingContext ErrorCode = "MISSING_CONTEXT"
	// ErrCodeMalformedToken indicates a token whose field arity doesn't match its grammar.
	ErrCodeMalformedToken ErrorCode = "MALFORMED_TOKEN"
	// ErrCodeUnknownLevel indicates an access level outside the known vocabulary.
	ErrCodeUnknownLevel ErrorCode = "UNKNOWN_LEVEL"
	// ErrCodeUnknownDomain indicates a domain tag outside {account, project}.
	ErrCodeUnknownDomain ErrorCode = "UNKNOWN_DOMAIN"
	// ErrCodeInvalidArea indicates an area or context value that breaks the token grammar.
	ErrCodeInvalidArea ErrorCode = "INVALID_AREA"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Authentication/Authorization errors
const (
	// ErrCodeUnauthorized indicates the request is unauthorized.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the request is forbidden.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeInvalidToken indicates a claims token that failed verification.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeStoreError indicates a privilege-store error.
	ErrCodeStoreError ErrorCode = "STORE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeStoreError: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
