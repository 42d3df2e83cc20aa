package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling without
// handlers having to know every concrete error type.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrPrecondition = errors.New("precondition failed")
	ErrConflict     = errors.New("conflict")
	ErrGeneration   = errors.New("generation failed")
	ErrExport       = errors.New("export failed")
	ErrUnauthorized = errors.New("unauthorized")
)

type (
	// NotFoundError indicates a resource is absent or not owned by the
	// caller. Ownership misses deliberately read as not-found so one user
	// can never learn that another user's resource exists.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// PreconditionError indicates an operation that requires state the
	// resource has not reached yet (e.g. refining a section with no content)
	PreconditionError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *PreconditionError) Error() string { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *PreconditionError) StatusCode() int { return http.StatusUnprocessableEntity }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// ConflictError indicates a concurrent write was detected: the state the
// caller captured is no longer the state in the store.
type ConflictError struct {
	Message      string
	ResourceType string // type of resource (section, project)
	ResourceID   string // ID of the conflicting resource
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// GenerationError indicates the external text-generation service failed.
// The upstream error is retained for logs and errors.As; user-visible
// messages carry only Message.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) StatusCode() int { return http.StatusBadGateway }

func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

// ExportError wraps a document rendering failure.
type ExportError struct {
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) StatusCode() int { return http.StatusInternalServerError }

func (e *ExportError) Is(target error) bool { return target == ErrExport }
