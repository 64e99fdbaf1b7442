// Package response writes the JSON bodies returned by the HTTP API.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the body of every error response and of plain acknowledgements.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as-is. Successful responses carry no envelope.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
