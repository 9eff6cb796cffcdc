// Package response defines the wire shapes of the account API.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorList is the error body of every failed request. Clients receive a
// flat list of messages regardless of which layer produced the failure.
type ErrorList struct {
	Errors []string `json:"errors"`
}

// JSON writes a success payload as-is. Success bodies are endpoint-specific
// so there is no envelope around them.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Errors writes the error list body with the given status code.
func Errors(c echo.Context, statusCode int, messages ...string) error {
	return c.JSON(statusCode, ErrorList{Errors: messages})
}
