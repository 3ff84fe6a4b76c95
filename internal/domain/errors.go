package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrContractNotFound is returned when a contract is not found
	ErrContractNotFound = fmt.Errorf("contract %w", ErrNotFound)

	// ErrAllocationNotFound is returned when an allocation is not found
	ErrAllocationNotFound = fmt.Errorf("allocation %w", ErrNotFound)

	// ErrDraftNotFound is returned when a draft is not found or is owned by another actor
	ErrDraftNotFound = fmt.Errorf("draft %w", ErrNotFound)

	// ErrConflict is returned when a write violates a uniqueness constraint
	ErrConflict = errors.New("conflict")

	// ErrDuplicateAllocation is returned when a contract already has an allocation for the channel
	ErrDuplicateAllocation = fmt.Errorf("allocation for channel already exists: %w", ErrConflict)

	// ErrResourceExhausted is returned when a connection could not be acquired within the configured timeout
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrActorRequired is returned when a mutating operation is called without an actor identity
	ErrActorRequired = errors.New("actor identity is required")
)

// ValidationErrors carries one human readable message per offending field.
// It is returned as a value, never raised past the ledger boundary.
type ValidationErrors map[string]string

// Add records a message for a field, keeping the first message if one already exists
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; exists {
		return
	}
	v[field] = message
}

// Set records a message for a field, replacing any existing message
func (v ValidationErrors) Set(field, message string) {
	v[field] = message
}

// Merge copies every field of other that is not already present
func (v ValidationErrors) Merge(other ValidationErrors) {
	for field, message := range other {
		v.Add(field, message)
	}
}

// HasErrors reports whether any field failed validation
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Fields returns the offending field names in sorted order
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, field := range v.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors extracts field errors from err, if any
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// TransactionError reports a failure inside an atomic block after the block was rolled back
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s failed: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
