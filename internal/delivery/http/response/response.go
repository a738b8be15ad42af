// Package response holds the wire-format helpers for the HTTP delivery.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorMessage is the error body contract. Every failure, whatever the
// status code, serializes as {"message": string}.
type ErrorMessage struct {
	Message string `json:"message"`
}

// JSON writes a success payload as-is. The API serializes entities and
// collections directly, without an envelope.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes the {"message": ...} error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorMessage{Message: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
