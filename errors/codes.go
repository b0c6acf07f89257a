package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a caller-supplied argument is invalid.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Arithmetic errors
const (
	// ErrCodeNumericOverflow indicates a computation exceeded the representable
	// integer range. Surfaced as a typed failure, never a silent wraparound.
	ErrCodeNumericOverflow ErrorCode = "NUMERIC_OVERFLOW"
)

// Sequence errors
const (
	// ErrCodeSequenceExhausted indicates a pull was attempted on a sequence
	// iterator that has already been closed.
	ErrCodeSequenceExhausted ErrorCode = "SEQUENCE_EXHAUSTED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument:   false,
	ErrCodeNumericOverflow:   false,
	ErrCodeSequenceExhausted: false,
	ErrCodeInternal:          false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// Pure computation has no transient failure source, so every code in this
// package maps to false; the predicate exists so callers embedding primekit
// errors into a larger taxonomy can treat all AppErrors uniformly.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
