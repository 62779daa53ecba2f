package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"inventory/internal/apperrors"
)

// ErrorResponse is the body returned for every failed request.
// Details is present only for validation errors (field: message pairs),
// conflicts and unexpected failures; it is omitted for not-found errors.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Details   string    `json:"details,omitempty"`
}

// ErrorHandler maps error kinds to HTTP statuses and the error body shape.
// It is the only place status codes are decided; install it as the fiber
// app's ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "An unexpected error occurred"
	details := err.Error()

	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var conflictErr *apperrors.ConflictError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
		message = "Validation error"
		details = validationErr.Details()
	case errors.As(err, &notFoundErr):
		status = fiber.StatusNotFound
		message = notFoundErr.Error()
		details = ""
	case errors.As(err, &conflictErr):
		status = fiber.StatusConflict
		message = "Conflict"
		details = conflictErr.Error()
	case errors.As(err, &fiberErr):
		// Routing-level errors (unknown path, bad method) keep fiber's
		// status but use the shared body shape.
		status = fiberErr.Code
		message = fiberErr.Message
		details = ""
	default:
		log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Message:   message,
		Path:      c.Path(),
		Details:   details,
	})
}
