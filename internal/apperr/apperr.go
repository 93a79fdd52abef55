// Package apperr defines the application error taxonomy shared by the
// permission engine, the tracker engine and the HTTP layer. Callers can tell
// "fix your input" (Validation) from "you lack rights" (Permission) from
// "try again" (Conflict) without string matching.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes one field-level validation failure with enough context
// for user-facing messaging.
type FieldError struct {
	Field   string `json:"field"`
	Label   string `json:"label,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationError means the input violates structural, type or constraint
// rules. Always recoverable by correcting the input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Validation builds a ValidationError.
func Validation(msg string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

// PermissionError means the resolved capability is insufficient for the
// requested operation.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// Permission builds a PermissionError.
func Permission(msg string) *PermissionError { return &PermissionError{Message: msg} }

// NotFoundError means the entity does not exist or the principal has no view
// access; the two are indistinguishable by design on read paths.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

// NotFound builds a NotFoundError for the given entity kind.
func NotFound(kind string) *NotFoundError { return &NotFoundError{Kind: kind} }

// ConflictError means the write lost to a concurrent one (duplicate daily
// entry, optimistic-lock loss). Retryable after re-reading current state.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflict builds a ConflictError.
func Conflict(msg string) *ConflictError { return &ConflictError{Message: msg} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPermission reports whether err is a PermissionError.
func IsPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// Wrap adds operation context to a lower-level store error while keeping the
// taxonomy type visible to errors.As.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
