// Package respond provides the uniform response envelope used by every API endpoint.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the success wrapper shape. Data is always serialized, even for
// an empty collection, so clients can rely on the field being present.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ErrorEnvelope is the failure wrapper shape. It carries Errors (always a
// list, even for a single cause) and no Data field.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// Ok builds a success envelope around the given payload.
func Ok[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: data}
}

// Fail builds an error envelope. When no explicit errors are supplied the
// message doubles as the single error entry so Errors is never empty.
func Fail(message string, errs ...string) ErrorEnvelope {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return ErrorEnvelope{Success: false, Message: message, Errors: errs}
}

// OK writes a 200 success envelope.
func OK[T any](c *gin.Context, message string, data T) {
	c.JSON(http.StatusOK, Ok(message, data))
}

// Created writes a 201 success envelope and sets the Location header to the
// item route of the newly created resource.
func Created[T any](c *gin.Context, location, message string, data T) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, Ok(message, data))
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, status int, message string, errs ...string) {
	c.JSON(status, Fail(message, errs...))
}
