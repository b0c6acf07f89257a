// Package errors provides unified error handling for primekit.
// It implements structured error types with machine-readable error codes
// so callers can branch on failure kind without string matching.
package errors
