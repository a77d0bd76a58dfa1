// Package storeerror defines the failures reported by the record and
// category stores.
package storeerror

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToExport is returned when a copy or share targets an empty list.
	ErrNothingToExport = errors.New("no records to export")

	// ErrNoPendingRequest is returned when a delete is confirmed or cancelled
	// without a prior request.
	ErrNoPendingRequest = errors.New("no pending delete request")
)

// ValidationError reports a record that cannot be persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports a category name that is already listed.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("category %q already exists", e.Name)
}

// EmptyNameError reports a category name that is blank after trimming.
type EmptyNameError struct{}

func (e *EmptyNameError) Error() string {
	return "category name is empty"
}

// ReservedCategoryError reports an attempt to change the synthetic "all"
// category.
type ReservedCategoryError struct {
	Name      string
	Operation string
}

func (e *ReservedCategoryError) Error() string {
	return fmt.Sprintf("cannot %s reserved category %q", e.Operation, e.Name)
}

// MinimumCategoryError reports a removal that would leave no real category.
type MinimumCategoryError struct {
	Name string
}

func (e *MinimumCategoryError) Error() string {
	return fmt.Sprintf("cannot remove %q: at least one category is required", e.Name)
}

// NotFoundError reports a missing category or record.
type NotFoundError struct {
	Category string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("category %q not found", e.Category)
	}
	return fmt.Sprintf("record %s not found in category %q", e.ID, e.Category)
}

// PersistenceError wraps a failure of the underlying key-value store or of
// the document codec.
type PersistenceError struct {
	Key string
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
