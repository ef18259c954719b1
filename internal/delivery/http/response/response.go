// Package response writes the wire format the StarFund frontend consumes:
// success bodies are the entity itself, failures are {"message": ...}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the failure envelope. Message carries the user-facing,
// localized text the client displays verbatim.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON writes a success body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes a failure body.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Message: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}
