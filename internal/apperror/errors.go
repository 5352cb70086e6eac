package apperror

import (
	"errors"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/data"
)

// Sentinel kinds, matched with errors.Is by the HTTP layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
)

// Error is a classified error whose Message is safe to return to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) error {
	return New(ErrNotFound, message)
}

func Conflict(message string) error {
	return New(ErrConflict, message)
}

func BadRequest(message string) error {
	return New(ErrBadRequest, message)
}

// ValidationError carries per-field messages produced by request validation.
type ValidationError struct {
	Message string
	Fields  []data.ValidationErrorData
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func Validation(message string, fields []data.ValidationErrorData) error {
	return &ValidationError{Message: message, Fields: fields}
}
