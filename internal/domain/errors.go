package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced row does not exist
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is returned when a debit would take a balance below zero
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ValidationError collects every input problem found before any write happens.
type ValidationError struct {
	Problems []string // One entry per failed rule, in check order
}

// Required records that field was missing or blank
func (e *ValidationError) Required(field string) {
	e.Problems = append(e.Problems, field+" is required;")
}

// Add records a free-form problem
func (e *ValidationError) Add(problem string) {
	e.Problems = append(e.Problems, problem)
}

// HasProblems reports whether any rule failed
func (e *ValidationError) HasProblems() bool {
	return len(e.Problems) > 0
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, " ")
}

// StorageError wraps a failure raised by the database while reading or
// flushing staged writes. Its text may carry driver detail and must not be
// returned to callers verbatim.
type StorageError struct {
	Op  string // Operation that failed, e.g. "insert members"
	Err error  // Underlying cause
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
