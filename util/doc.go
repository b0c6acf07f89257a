// Package util provides generic utility functions for primekit.
//
// It includes overflow-checked int64 arithmetic, an independent trial-division
// primality check, and small slice helpers.
package util
