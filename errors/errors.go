package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidArgument creates a new AppError for an invalid caller argument.
func InvalidArgument(argument, reason string) *AppError {
	details := make(map[string]any)
	if argument != "" {
		details["argument"] = argument
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		Retryable: false, Details: details,
	}
}

// Overflow creates a new AppError for an arithmetic overflow during operation.
func Overflow(operation string, value int64) *AppError {
	return &AppError{
		Code: ErrCodeNumericOverflow, Message: fmt.Sprintf("Numeric overflow during %s.", operation),
		Retryable: false,
		Details:   map[string]any{"operation": operation, "value": value},
	}
}

// Exhausted creates a new AppError for a pull on a closed sequence iterator.
func Exhausted(resource string) *AppError {
	return &AppError{
		Code: ErrCodeSequenceExhausted, Message: fmt.Sprintf("The %s is exhausted.", resource),
		Retryable: false,
		Details:   map[string]any{"resource": resource},
	}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// Code extracts the ErrorCode from err, unwrapping as needed.
// Returns ErrCodeInternal for non-AppError errors and "" for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsInvalidArgument reports whether err carries ErrCodeInvalidArgument.
func IsInvalidArgument(err error) bool {
	return Code(err) == ErrCodeInvalidArgument
}

// IsOverflow reports whether err carries ErrCodeNumericOverflow.
func IsOverflow(err error) bool {
	return Code(err) == ErrCodeNumericOverflow
}

// IsExhausted reports whether err carries ErrCodeSequenceExhausted.
func IsExhausted(err error) bool {
	return Code(err) == ErrCodeSequenceExhausted
}
