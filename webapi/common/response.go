// Package common holds the response envelope, error mapping and request
// binding shared by the HTTP handlers.
package common

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Timestamp   time.Time         `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// ValidationFailed is the error label of request validation responses.
const ValidationFailed = "Validation Failed"

const internalMessage = "An unexpected error occurred"

// ErrorResponseJSON writes an ErrorResponse with the standard error label
// for status.
func ErrorResponseJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

// ValidationErrorJSON writes a 400 carrying every field error.
func ValidationErrorJSON(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Timestamp:   time.Now().UTC(),
		Status:      fiber.StatusBadRequest,
		Error:       ValidationFailed,
		Message:     "Request validation failed",
		FieldErrors: fieldErrors,
	})
}

// ErrorJSON maps err to a status and writes it. Messages of unclassified
// errors are not exposed.
func ErrorJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return ErrorResponseJSON(c, status, internalMessage)
	}
	return ErrorResponseJSON(c, status, err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the fiber.Config ErrorHandler. It renders errors that
// escape handlers, such as unknown routes or oversized bodies.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ErrorResponseJSON(c, fe.Code, fe.Message)
	}
	return ErrorJSON(c, err)
}
