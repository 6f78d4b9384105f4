package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service unwraps to one of these.
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput is returned when caller supplied data is rejected
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState is returned when an operation is not allowed in the current lifecycle state
	ErrInvalidState = errors.New("invalid state")
	// ErrValidation is returned when request field validation fails
	ErrValidation = errors.New("validation error")
)

// Error carries a caller-facing message on top of an error kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// InvalidInput builds an *Error of kind ErrInvalidInput with msg as is.
func InvalidInput(msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

// InvalidInputf is InvalidInput with a formatted message.
func InvalidInputf(format string, args ...any) *Error {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// NotFound builds an *Error of kind ErrNotFound with msg as is.
func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// NotFoundf is NotFound with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// InvalidState builds an *Error of kind ErrInvalidState with msg as is.
func InvalidState(msg string) *Error {
	return &Error{Kind: ErrInvalidState, Message: msg}
}

// InvalidStatef is InvalidState with a formatted message.
func InvalidStatef(format string, args ...any) *Error {
	return InvalidState(fmt.Sprintf(format, args...))
}
