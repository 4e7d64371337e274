package models

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services unwraps to one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")

	// ErrDuplicateKey is raised by the repository layer when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Error carries a message meant for the API client next to its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error { return newError(ErrNotFound, format, args...) }

func Unauthorizedf(format string, args ...any) error {
	return newError(ErrUnauthorized, format, args...)
}

func Forbiddenf(format string, args ...any) error { return newError(ErrForbidden, format, args...) }

func Validationf(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func Conflictf(format string, args ...any) error { return newError(ErrConflict, format, args...) }
