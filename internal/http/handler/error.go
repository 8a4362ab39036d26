package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"devtools/internal/http/middleware"
	"devtools/internal/service"
)

// errorPayload defines the standardized JSON error response body used by the
// /api endpoints and infrastructure routes.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// renderToolError renders a tool failure as an HTML error fragment. Tool
// actions answer 200 with the fragment so the HTMX swap replaces the result
// area, mirroring how success fragments are delivered. Typed tool errors are
// shown verbatim; anything else gets a generic message.
func renderToolError(c *fiber.Ctx, err error) error {
	msg := "Something went wrong. Please try again."
	var toolErr *service.Error
	if errors.As(err, &toolErr) {
		msg = toolErr.Message
	}
	return c.Render("partials/error", fiber.Map{
		"Success": false,
		"Error":   msg,
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes stray
// errors (unknown routes, method mismatches, panics recovered by fiber).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
