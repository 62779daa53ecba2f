// Package apperrors defines the error kinds surfaced by the repository and
// service layers. The HTTP layer maps each kind to a status code; no other
// layer looks at status codes.
package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports one or more request fields that failed
// validation. Field names are the JSON names seen by the caller.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// Details joins the field errors as "field: message" pairs in a stable
// order, the form exposed in the error response body.
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+": "+e.Fields[name])
	}
	return strings.Join(pairs, ", ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError reports that no record exists for the requested key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s", e.Resource, e.Key)
}

// NewNotFoundError builds a NotFoundError for a numeric id.
func NewNotFoundError(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: fmt.Sprintf("id: %d", id)}
}

// ConflictError reports a uniqueness constraint violation.
type ConflictError struct {
	Resource string
	Key      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists with %s", e.Resource, e.Key)
}

// StorageError wraps an unexpected failure from the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
